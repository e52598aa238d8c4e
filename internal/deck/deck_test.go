package deck

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/blackjack/internal/card"
)

func TestNew(t *testing.T) {
	d := New()
	require.Equal(t, Size, d.Len())

	seen := make(map[card.Card]int)
	for _, c := range d.Cards() {
		seen[c]++
	}
	assert.Len(t, seen, Size)
	for _, suit := range card.Suits {
		for _, rank := range card.Ranks {
			assert.Equal(t, 1, seen[card.New(rank, suit)], "%s%s", rank, suit)
		}
	}
}

func TestNewIsOrdered(t *testing.T) {
	cards := New().Cards()
	assert.Equal(t, card.New(card.Ace, card.Spades), cards[0])
	assert.Equal(t, card.New(card.King, card.Spades), cards[12])
	assert.Equal(t, card.New(card.Ace, card.Hearts), cards[13])
	assert.Equal(t, card.New(card.King, card.Clubs), cards[51])
	assert.Equal(t, New().Cards(), cards)
}

func TestShufflePreservesCards(t *testing.T) {
	d := New()
	d.Shuffle(rand.New(rand.NewPCG(1, 2)))

	assert.ElementsMatch(t, New().Cards(), d.Cards())
	assert.NotEqual(t, New().Cards(), d.Cards())
}

func TestShuffleNilSource(t *testing.T) {
	d := New()
	d.Shuffle(nil)
	assert.ElementsMatch(t, New().Cards(), d.Cards())
}

func TestShuffleIsUniform(t *testing.T) {
	const trials = 20000
	r := rand.New(rand.NewPCG(42, 7))
	target := card.New(card.Ace, card.Spades)

	var positions [Size]int
	first := make(map[card.Card]int)
	last := make(map[card.Card]int)
	for i := 0; i < trials; i++ {
		d := New()
		d.Shuffle(r)
		first[d.cards[0]]++
		last[d.cards[Size-1]]++
		for pos, c := range d.cards {
			if c == target {
				positions[pos]++
				break
			}
		}
	}

	expected := float64(trials) / Size
	for pos, n := range positions {
		assert.InDelta(t, expected, float64(n), expected*0.3, "position %d", pos)
	}

	require.Len(t, first, Size)
	require.Len(t, last, Size)
	for _, c := range New().Cards() {
		assert.InDelta(t, expected, float64(first[c]), expected*0.3, "%s first", c)
		assert.InDelta(t, expected, float64(last[c]), expected*0.3, "%s last", c)
	}
}

func TestDraw(t *testing.T) {
	d := FromCards([]card.Card{
		card.New(card.Two, card.Hearts),
		card.New(card.King, card.Spades),
	})

	c, err := d.Draw()
	require.NoError(t, err)
	assert.Equal(t, card.New(card.King, card.Spades), c)
	assert.Equal(t, 1, d.Len())

	c, err = d.Draw()
	require.NoError(t, err)
	assert.Equal(t, card.New(card.Two, card.Hearts), c)

	_, err = d.Draw()
	assert.ErrorIs(t, err, ErrEmpty)
	assert.Equal(t, 0, d.Len())
}

func TestFromCardsCopies(t *testing.T) {
	cards := []card.Card{card.New(card.Ace, card.Clubs)}
	d := FromCards(cards)
	cards[0] = card.New(card.Two, card.Clubs)

	c, err := d.Draw()
	require.NoError(t, err)
	assert.Equal(t, card.New(card.Ace, card.Clubs), c)
}
