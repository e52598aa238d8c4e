package game

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/arcanaland/blackjack/internal/deck"
	"github.com/arcanaland/blackjack/internal/score"
)

// DealerStandThreshold is the total at which the dealer stops drawing
const DealerStandThreshold = 17

var (
	// ErrRoundNotInProgress is returned by Hit and Stand outside of a round
	ErrRoundNotInProgress = errors.New("no round in progress")
	// ErrScoreNotSaved is returned when a round ended but the store rejected the update
	ErrScoreNotSaved = errors.New("score was not saved")
)

// State is the lifecycle stage of the current round
type State int

const (
	NotStarted State = iota
	InProgress
	Over
)

func (s State) String() string {
	switch s {
	case NotStarted:
		return "not started"
	case InProgress:
		return "in progress"
	case Over:
		return "over"
	default:
		return "unknown"
	}
}

// Outcome is how a finished round was decided
type Outcome int

const (
	NoOutcome Outcome = iota
	PlayerBust
	DealerBust
	PlayerWin
	DealerWin
	Push
)

func (o Outcome) String() string {
	switch o {
	case PlayerBust:
		return "Bust! You lose."
	case DealerBust:
		return "Dealer busts! You win!"
	case PlayerWin:
		return "You win!"
	case DealerWin:
		return "You lose!"
	case Push:
		return "Draw!"
	default:
		return ""
	}
}

// Seat identifies whose hand is being rendered
type Seat int

const (
	PlayerSeat Seat = iota
	DealerSeat
)

func (s Seat) String() string {
	if s == DealerSeat {
		return "Dealer"
	}
	return "Player"
}

// Renderer displays the state of a round. Every call is made synchronously
// right after the state it describes changes.
type Renderer interface {
	RenderHand(seat Seat, hand Hand, hideFirst bool)
	ShowMessage(msg string)
	SetActionsEnabled(enabled bool)
	ShowScore(c score.Counters)
}

// DeckFactory returns the deck a new round is dealt from
type DeckFactory func() *deck.Deck

// Option configures an Engine
type Option func(*Engine)

// WithRand shuffles every new deck with r
func WithRand(r *rand.Rand) Option {
	return func(e *Engine) {
		e.newDeck = ShuffledDeck(r)
	}
}

// WithDeckFactory replaces the deck source, typically with a stacked deck
func WithDeckFactory(f DeckFactory) Option {
	return func(e *Engine) {
		e.newDeck = f
	}
}

// ShuffledDeck returns a factory producing fresh decks shuffled with r
func ShuffledDeck(r *rand.Rand) DeckFactory {
	return func() *deck.Deck {
		d := deck.New()
		d.Shuffle(r)
		return d
	}
}

// Engine runs single-player rounds against the dealer and keeps the
// win/loss/draw tally. It is not safe for concurrent use.
type Engine struct {
	store    score.Store
	renderer Renderer
	newDeck  DeckFactory

	deck     *deck.Deck
	player   Hand
	dealer   Hand
	state    State
	outcome  Outcome
	message  string
	counters score.Counters
}

// New creates an engine, loading the counters from store and showing them.
func New(store score.Store, renderer Renderer, opts ...Option) *Engine {
	e := &Engine{
		store:    store,
		renderer: renderer,
		newDeck:  ShuffledDeck(nil),
	}
	for _, opt := range opts {
		opt(e)
	}

	e.counters = score.Load(store)
	e.renderer.ShowScore(e.counters)
	return e
}

// Start discards any current round and deals a new one
func (e *Engine) Start() error {
	e.deck = e.newDeck()
	e.player = Hand{}
	e.dealer = Hand{}
	e.outcome = NoOutcome
	e.state = NotStarted

	for i := 0; i < 2; i++ {
		if err := e.deal(&e.player); err != nil {
			return err
		}
		if err := e.deal(&e.dealer); err != nil {
			return err
		}
	}
	e.state = InProgress

	e.renderer.RenderHand(DealerSeat, e.dealer, true)
	e.renderer.RenderHand(PlayerSeat, e.player, false)
	e.setMessage(fmt.Sprintf("Player: %d | Dealer: ?", e.player.Value()))
	e.renderer.SetActionsEnabled(true)
	return nil
}

// Hit draws a card for the player. A bust ends the round as a loss.
func (e *Engine) Hit() error {
	if e.state != InProgress {
		return ErrRoundNotInProgress
	}

	if err := e.deal(&e.player); err != nil {
		return err
	}
	e.renderer.RenderHand(PlayerSeat, e.player, false)

	value := e.player.Value()
	if value > Blackjack {
		e.setMessage(fmt.Sprintf("%s (%d)", PlayerBust, value))
		return e.finish(PlayerBust)
	}

	e.setMessage(fmt.Sprintf("Player: %d | Dealer: ?", value))
	return nil
}

// Stand ends the player's turn, plays the dealer's hand and settles the round.
func (e *Engine) Stand() error {
	if e.state != InProgress {
		return ErrRoundNotInProgress
	}

	e.renderer.RenderHand(DealerSeat, e.dealer, false)

	dealerValue := e.dealer.Value()
	for dealerValue < DealerStandThreshold {
		if err := e.deal(&e.dealer); err != nil {
			return err
		}
		dealerValue = e.dealer.Value()
	}
	e.renderer.RenderHand(DealerSeat, e.dealer, false)

	playerValue := e.player.Value()
	var outcome Outcome
	switch {
	case dealerValue > Blackjack:
		outcome = DealerBust
	case playerValue > dealerValue:
		outcome = PlayerWin
	case playerValue < dealerValue:
		outcome = DealerWin
	default:
		outcome = Push
	}

	e.setMessage(fmt.Sprintf("%s Player: %d | Dealer: %d", outcome, playerValue, dealerValue))
	return e.finish(outcome)
}

// finish records the outcome, persists the counters and closes the round.
// The round is over even when persisting fails.
func (e *Engine) finish(o Outcome) error {
	e.outcome = o
	e.state = Over

	switch o {
	case DealerBust, PlayerWin:
		e.counters.Wins++
	case PlayerBust, DealerWin:
		e.counters.Losses++
	case Push:
		e.counters.Draws++
	}

	err := score.Save(e.store, e.counters)
	e.renderer.ShowScore(e.counters)
	e.renderer.SetActionsEnabled(false)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrScoreNotSaved, err)
	}
	return nil
}

func (e *Engine) deal(h *Hand) error {
	c, err := e.deck.Draw()
	if err != nil {
		return fmt.Errorf("failed to deal: %w", err)
	}
	*h = append(*h, c)
	return nil
}

func (e *Engine) setMessage(msg string) {
	e.message = msg
	e.renderer.ShowMessage(msg)
}

// State returns the lifecycle stage of the current round
func (e *Engine) State() State { return e.state }

// Outcome returns how the last round ended, or NoOutcome while one is running
func (e *Engine) Outcome() Outcome { return e.outcome }

// Message returns the last status line shown
func (e *Engine) Message() string { return e.message }

// Counters returns the current tally
func (e *Engine) Counters() score.Counters { return e.counters }

// PlayerHand returns a copy of the player's cards
func (e *Engine) PlayerHand() Hand { return append(Hand(nil), e.player...) }

// DealerHand returns a copy of the dealer's cards
func (e *Engine) DealerHand() Hand { return append(Hand(nil), e.dealer...) }

// DeckRemaining returns the number of undealt cards
func (e *Engine) DeckRemaining() int {
	if e.deck == nil {
		return 0
	}
	return e.deck.Len()
}
