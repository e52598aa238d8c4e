package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arcanaland/blackjack/internal/game"
	"github.com/arcanaland/blackjack/internal/render"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play blackjack against the dealer",
	Long: `Play starts an interactive session. A round is dealt immediately.

Commands:
  h, hit     draw a card
  s, stand   end your turn and let the dealer play
  n, new     deal a new round
  q, quit    leave the table
  ?, help    show this list`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		store, closeStore, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer closeStore()

		theme, err := render.ParseTheme(cfg.Theme)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		term := render.NewTerminal(out, theme, cfg.Color && render.IsTerminal(out))

		var opts []game.Option
		if seed, _ := cmd.Flags().GetUint64("seed"); seed > 0 {
			logger.Printf("[PLAY] shuffling with seed %d", seed)
			opts = append(opts, game.WithRand(rand.New(rand.NewPCG(seed, seed))))
		}

		engine := game.New(store, term, opts...)
		return runSession(engine, term, cmd.InOrStdin(), out)
	},
}

func init() {
	RootCmd.AddCommand(playCmd)

	playCmd.Flags().Uint64("seed", 0, "Seed for reproducible shuffles (0 picks a random seed)")
}

// runSession deals a round and then reads commands from in until quit or EOF
func runSession(engine *game.Engine, term *render.Terminal, in io.Reader, out io.Writer) error {
	if err := engine.Start(); err != nil {
		return err
	}

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, term.Prompt())
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}

		var err error
		switch strings.ToLower(strings.TrimSpace(scanner.Text())) {
		case "h", "hit":
			err = engine.Hit()
		case "s", "stand":
			err = engine.Stand()
		case "n", "new":
			fmt.Fprintln(out)
			err = engine.Start()
		case "q", "quit", "exit":
			return nil
		case "?", "help":
			fmt.Fprintln(out, "h/hit, s/stand, n/new, q/quit")
		case "":
		default:
			fmt.Fprintf(out, "Unknown command: %s\n", scanner.Text())
		}

		switch {
		case errors.Is(err, game.ErrRoundNotInProgress):
			fmt.Fprintln(out, "The round is over. Type n to deal again.")
			continue
		case errors.Is(err, game.ErrScoreNotSaved):
			logger.Printf("[PLAY] %v", err)
			fmt.Fprintln(out, "Warning: the score could not be saved.")
			continue
		}
		if err != nil {
			return err
		}
	}
}
