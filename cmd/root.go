package cmd

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/blackjack/internal/config"
	"github.com/arcanaland/blackjack/internal/score"
)

var logger = log.New(io.Discard, "", log.LstdFlags)

// defaultNoColor is what fatih/color decided from the environment at startup
var defaultNoColor = colorize.NoColor

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "blackjack",
	Short: "Single-player blackjack in your terminal",
	Long: `Blackjack is a single-player game against a dealer who stands on 17.
Wins, losses and draws are kept between sessions in a score store.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			logger.SetOutput(cmd.ErrOrStderr())
			score.Logger.SetOutput(cmd.ErrOrStderr())
		} else {
			logger.SetOutput(io.Discard)
			score.Logger.SetOutput(io.Discard)
		}
		noColor, _ := cmd.Flags().GetBool("no-color")
		colorize.NoColor = noColor || defaultNoColor
	},
}

func init() {
	RootCmd.PersistentFlags().String("store", "", "Score store backend: toml, sqlite or memory")
	RootCmd.PersistentFlags().String("score-path", "", "Path of the score file or database")
	RootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
	RootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log diagnostics to stderr")
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}

// loadConfig reads the config file and applies command line overrides
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("store") {
		cfg.ScoreBackend, _ = cmd.Flags().GetString("store")
	}
	if cmd.Flags().Changed("score-path") {
		cfg.ScorePath, _ = cmd.Flags().GetString("score-path")
	}
	if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
		cfg.SetColor(false)
	}

	// env values are only rejected once flags had their chance to override them
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// openStore opens the configured score store. The returned func releases it.
func openStore(cfg *config.Config) (score.Store, func() error, error) {
	noop := func() error { return nil }
	path := cfg.ResolvedScorePath()

	switch cfg.ScoreBackend {
	case config.BackendMemory:
		logger.Printf("[SCORE] using in-memory store")
		return score.NewMemoryStore(), noop, nil
	case config.BackendSQLite:
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, nil, fmt.Errorf("error creating score directory: %w", err)
		}
		s, err := score.OpenSQLite(path)
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil
	default:
		logger.Printf("[SCORE] using score file %s", path)
		return score.NewFileStore(path), noop, nil
	}
}
