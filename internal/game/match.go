package game

import (
	"context"
	"fmt"

	"github.com/peterkuimelis/artheist/internal/log"
)

// DefaultMaxPlies is the ply cap applied when MatchConfig.MaxPlies is zero.
const DefaultMaxPlies = 16

// MatchConfig holds configuration for playing one game to completion.
type MatchConfig struct {
	Deck     *Deck // fixed deal order (nil deals a fresh shuffled deck)
	Rand     Rand  // source of all random decisions (nil for time-seeded)
	Logger   log.EventLogger
	MaxPlies int // stalemate after this many plies (0 = DefaultMaxPlies)
}

// Outcome describes how a match ended.
type Outcome struct {
	Winner    Player
	Stalemate bool
	Reason    EndReason
	DecidedBy TieBreak
	Plies     int
	Scores    [2]Score
}

func (o Outcome) String() string {
	if o.Stalemate {
		return fmt.Sprintf("Stalemate after %d plies", o.Plies)
	}
	return fmt.Sprintf("%s wins after %d plies (%s, decided by %s)", o.Winner, o.Plies, o.Reason, o.DecidedBy)
}

// Match plays a single game under a ply cap.
type Match struct {
	State    *GameState
	Logger   log.EventLogger
	maxPlies int
}

// NewMatch deals a game from the given config.
func NewMatch(cfg MatchConfig) *Match {
	rng := cfg.Rand
	if rng == nil {
		rng = NewRand(0)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.NopLogger{}
	}

	var deck Deck
	if cfg.Deck != nil {
		deck = *cfg.Deck
	} else {
		deck = NewDeck(rng)
	}

	maxPlies := cfg.MaxPlies
	if maxPlies == 0 {
		maxPlies = DefaultMaxPlies
	}

	return &Match{
		State:    NewGameState(deck, rng, logger),
		Logger:   logger,
		maxPlies: maxPlies,
	}
}

// Run plays plies until the game ends or the cap is hit. Reaching the cap
// without a winner is a stalemate.
func (m *Match) Run(ctx context.Context) (Outcome, error) {
	gs := m.State

	for gs.Ply < m.maxPlies {
		if err := ctx.Err(); err != nil {
			return Outcome{}, err
		}
		_, over, err := gs.PlayNextMove()
		if err != nil {
			return Outcome{}, err
		}
		if over {
			return m.outcome(), nil
		}
	}

	gs.Reason = EndPlyCap
	m.Logger.Log(log.NewStalemateEvent(gs.Ply, m.maxPlies))
	return m.outcome(), nil
}

func (m *Match) outcome() Outcome {
	gs := m.State
	return Outcome{
		Winner:    gs.Winner,
		Stalemate: !gs.Over,
		Reason:    gs.Reason,
		DecidedBy: gs.DecidedBy,
		Plies:     gs.Ply,
		Scores:    [2]Score{gs.Hands[0].CalculateScore(), gs.Hands[1].CalculateScore()},
	}
}

// RunMatch deals and plays a single game.
func RunMatch(ctx context.Context, cfg MatchConfig) (Outcome, error) {
	return NewMatch(cfg).Run(ctx)
}
