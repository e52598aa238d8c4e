package card

import "strconv"

// Suit is one of the four French suits, stored as its symbol
type Suit string

// Rank is the card label as printed on its face (A, 2..10, J, Q, K)
type Rank string

const (
	Spades   Suit = "♠"
	Hearts   Suit = "♥"
	Diamonds Suit = "♦"
	Clubs    Suit = "♣"
)

const (
	Ace   Rank = "A"
	Two   Rank = "2"
	Three Rank = "3"
	Four  Rank = "4"
	Five  Rank = "5"
	Six   Rank = "6"
	Seven Rank = "7"
	Eight Rank = "8"
	Nine  Rank = "9"
	Ten   Rank = "10"
	Jack  Rank = "J"
	Queen Rank = "Q"
	King  Rank = "K"
)

// Suits lists the suits in deck construction order
var Suits = []Suit{Spades, Hearts, Diamonds, Clubs}

// Ranks lists the ranks in deck construction order
var Ranks = []Rank{Ace, Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King}

// Card represents a playing card
type Card struct {
	Suit Suit
	Rank Rank
}

// New returns a card of the given rank and suit
func New(rank Rank, suit Suit) Card {
	return Card{Suit: suit, Rank: rank}
}

// Value returns the blackjack value of the card, counting an Ace as 11
func (c Card) Value() int {
	switch c.Rank {
	case Ace:
		return 11
	case Jack, Queen, King:
		return 10
	default:
		v, err := strconv.Atoi(string(c.Rank))
		if err != nil {
			return 0
		}
		return v
	}
}

// IsAce reports whether the card is an Ace
func (c Card) IsAce() bool {
	return c.Rank == Ace
}

// IsRed reports whether the card belongs to a red suit
func (c Card) IsRed() bool {
	return c.Suit == Hearts || c.Suit == Diamonds
}

func (c Card) String() string {
	return string(c.Rank) + string(c.Suit)
}
