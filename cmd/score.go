package cmd

import (
	"fmt"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/blackjack/internal/config"
	"github.com/arcanaland/blackjack/internal/score"
)

// scoreCmd represents the score command group
var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Inspect and manage the win/loss/draw counters",
}

var scoreShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the stored counters",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, store, closeStore, err := scoreStore(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		c := score.Load(store)
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, colorize.CyanString("Store:  ")+describeStore(cfg))
		fmt.Fprintln(out, colorize.CyanString("Wins:   ")+colorize.GreenString("%d", c.Wins))
		fmt.Fprintln(out, colorize.CyanString("Losses: ")+colorize.RedString("%d", c.Losses))
		fmt.Fprintln(out, colorize.CyanString("Draws:  ")+fmt.Sprintf("%d", c.Draws))
		fmt.Fprintln(out, colorize.CyanString("Rounds: ")+fmt.Sprintf("%d", c.Total()))
		return nil
	},
}

var scoreResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Set all counters back to zero",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, store, closeStore, err := scoreStore(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		if err := score.Save(store, score.Counters{}); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Counters reset in %s\n", describeStore(cfg))
		return nil
	},
}

var scoreCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Check that the stored counters can be read",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, store, closeStore, err := scoreStore(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		results := score.Check(store)
		out := cmd.OutOrStdout()

		fmt.Fprintln(out, "Check Results:")
		fmt.Fprintln(out, "--------------")

		if results.OK() {
			fmt.Fprintf(out, "✅ Score store %s is readable.\n", describeStore(cfg))
		} else {
			fmt.Fprintf(out, "❌ Score store %s has %d problems:\n", describeStore(cfg), len(results.Errors))
			for i, e := range results.Errors {
				fmt.Fprintf(out, "%d. %s\n", i+1, e)
			}
		}

		if len(results.Warnings) > 0 {
			fmt.Fprintln(out, "\nWarnings:")
			for i, warn := range results.Warnings {
				fmt.Fprintf(out, "%d. %s\n", i+1, warn)
			}
		}

		if !results.OK() {
			return fmt.Errorf("score check failed")
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(scoreCmd)
	scoreCmd.AddCommand(scoreShowCmd)
	scoreCmd.AddCommand(scoreResetCmd)
	scoreCmd.AddCommand(scoreCheckCmd)
}

func scoreStore(cmd *cobra.Command) (*config.Config, score.Store, func() error, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, nil, err
	}
	store, closeStore, err := openStore(cfg)
	if err != nil {
		return nil, nil, nil, err
	}
	return cfg, store, closeStore, nil
}

func describeStore(cfg *config.Config) string {
	if cfg.ScoreBackend == config.BackendMemory {
		return "memory"
	}
	return fmt.Sprintf("%s (%s)", cfg.ResolvedScorePath(), cfg.ScoreBackend)
}
