package score

import (
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"
)

// Keys under which the counters are persisted
const (
	KeyWins   = "wins"
	KeyLosses = "losses"
	KeyDraws  = "draws"
)

// Keys lists every persisted key in display order
var Keys = []string{KeyWins, KeyLosses, KeyDraws}

var (
	ErrNotFound     = errors.New("score key not found")
	ErrInvalidValue = errors.New("invalid score value")
)

// Logger receives store diagnostics. It discards output unless replaced.
var Logger = log.New(io.Discard, "", log.LstdFlags)

// Store is a durable key to integer mapping
type Store interface {
	Get(key string) (int, error)
	Set(key string, value int) error
}

// Counters holds the win/loss/draw tally
type Counters struct {
	Wins   int
	Losses int
	Draws  int
}

// Total returns the number of finished rounds
func (c Counters) Total() int {
	return c.Wins + c.Losses + c.Draws
}

func (c Counters) String() string {
	return fmt.Sprintf("Wins: %d | Losses: %d | Draws: %d", c.Wins, c.Losses, c.Draws)
}

// Load reads the counters from the store. Any key that is missing or
// cannot be read counts as zero.
func Load(s Store) Counters {
	return Counters{
		Wins:   get(s, KeyWins),
		Losses: get(s, KeyLosses),
		Draws:  get(s, KeyDraws),
	}
}

func get(s Store, key string) int {
	v, err := s.Get(key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			Logger.Printf("[SCORE] reading %q: %v, using 0", key, err)
		}
		return 0
	}
	if v < 0 {
		Logger.Printf("[SCORE] negative value %d for %q, using 0", v, key)
		return 0
	}
	return v
}

// Save writes all three counters to the store
func Save(s Store, c Counters) error {
	values := map[string]int{
		KeyWins:   c.Wins,
		KeyLosses: c.Losses,
		KeyDraws:  c.Draws,
	}
	for _, key := range Keys {
		if err := s.Set(key, values[key]); err != nil {
			return fmt.Errorf("failed to save %s: %w", key, err)
		}
	}
	return nil
}

// parseValue reads the leading integer of a stored counter. Leading
// whitespace and trailing garbage are ignored, so "12abc" is 12 and "3.7"
// is 3. A value without leading digits is invalid.
func parseValue(raw string) (int, error) {
	s := strings.TrimSpace(raw)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, fmt.Errorf("%w: %q", ErrInvalidValue, raw)
	}
	v, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidValue, raw)
	}
	return v, nil
}
