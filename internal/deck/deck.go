package deck

import (
	"errors"
	"math/rand/v2"

	"github.com/arcanaland/blackjack/internal/card"
)

// Size is the number of cards in a full deck
const Size = 52

// ErrEmpty is returned when drawing from a deck with no cards left
var ErrEmpty = errors.New("deck is empty")

// Deck represents an ordered pile of cards. Cards are drawn from the end.
type Deck struct {
	cards []card.Card
}

// New creates a full 52-card deck in suit-major, rank-minor order.
func New() *Deck {
	cards := make([]card.Card, 0, Size)
	for _, suit := range card.Suits {
		for _, rank := range card.Ranks {
			cards = append(cards, card.New(rank, suit))
		}
	}
	return &Deck{cards: cards}
}

// FromCards creates a deck holding exactly the given cards. The last card
// in the slice is the first one drawn.
func FromCards(cards []card.Card) *Deck {
	c := make([]card.Card, len(cards))
	copy(c, cards)
	return &Deck{cards: c}
}

// Shuffle permutes the deck in place using Fisher-Yates. A nil source
// falls back to the global generator.
func (d *Deck) Shuffle(r *rand.Rand) {
	intN := rand.IntN
	if r != nil {
		intN = r.IntN
	}
	for i := len(d.cards) - 1; i > 0; i-- {
		j := intN(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Draw removes and returns the last card of the deck
func (d *Deck) Draw() (card.Card, error) {
	if len(d.cards) == 0 {
		return card.Card{}, ErrEmpty
	}
	c := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return c, nil
}

// Len returns the number of cards left
func (d *Deck) Len() int {
	return len(d.cards)
}

// Cards returns a copy of the remaining cards, bottom first
func (d *Deck) Cards() []card.Card {
	c := make([]card.Card, len(d.cards))
	copy(c, d.cards)
	return c
}
