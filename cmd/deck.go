package cmd

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arcanaland/blackjack/internal/card"
	"github.com/arcanaland/blackjack/internal/deck"
	"github.com/arcanaland/blackjack/internal/render"
)

// deckCmd prints a fresh deck
var deckCmd = &cobra.Command{
	Use:   "deck",
	Short: "Print a fresh 52-card deck",
	Long: `Deck prints the 52 cards a round is dealt from, one suit per line.
With --shuffle the deck is shuffled first; the last card printed is the
first one dealt.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		theme, err := render.ParseTheme(cfg.Theme)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		term := render.NewTerminal(out, theme, cfg.Color && render.IsTerminal(out))

		d := deck.New()
		if shuffle, _ := cmd.Flags().GetBool("shuffle"); shuffle {
			var r *rand.Rand
			if seed, _ := cmd.Flags().GetUint64("seed"); seed > 0 {
				r = rand.New(rand.NewPCG(seed, seed))
			}
			d.Shuffle(r)
		}

		cards := d.Cards()
		perLine := len(card.Ranks)
		for i := 0; i < len(cards); i += perLine {
			faces := make([]string, 0, perLine)
			for _, c := range cards[i:min(i+perLine, len(cards))] {
				faces = append(faces, term.Card(c))
			}
			fmt.Fprintln(out, strings.Join(faces, " "))
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(deckCmd)

	deckCmd.Flags().Bool("shuffle", false, "Shuffle the deck before printing")
	deckCmd.Flags().Uint64("seed", 0, "Seed for a reproducible shuffle")
}
