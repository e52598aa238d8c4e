package game

import (
	"strings"

	"github.com/arcanaland/blackjack/internal/card"
)

// Blackjack is the highest total a hand can hold without busting
const Blackjack = 21

// Hand is the ordered list of cards held by the player or the dealer
type Hand []card.Card

// Value returns the total of the hand. Aces count as 11 until the hand
// would bust, then drop to 1 one at a time.
func (h Hand) Value() int {
	value := 0
	aces := 0
	for _, c := range h {
		value += c.Value()
		if c.IsAce() {
			aces++
		}
	}

	for value > Blackjack && aces > 0 {
		value -= 10
		aces--
	}
	return value
}

// IsBust reports whether the hand is over 21
func (h Hand) IsBust() bool {
	return h.Value() > Blackjack
}

func (h Hand) String() string {
	s := make([]string, len(h))
	for i, c := range h {
		s[i] = c.String()
	}
	return strings.Join(s, " ")
}
