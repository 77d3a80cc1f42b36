package game

import (
	"errors"
	"fmt"
	"strings"

	"github.com/peterkuimelis/artheist/internal/log"
)

const (
	InitialGallerySize    = 1
	InitialCollectionSize = 4
	PullAlarmChance       = 0.1
	GallerySwapChance     = 0.5
)

var (
	ErrEmptyGallery    = errors.New("gallery is empty")
	ErrEmptyCollection = errors.New("private collection is empty")
	ErrGameOver        = errors.New("game is already over")
)

// --- GameState ---

// GameState holds the complete state of one game.
type GameState struct {
	Hands      [2]Hand
	ToPlay     Player
	Gallery    []Card // face-up; exchanges use the front (index 0), new cards go to the back
	Collection []Card // face-down; top of the collection is the last element (pop from end)

	Ply int // plies played so far

	// Game result
	Over      bool
	Winner    Player
	Reason    EndReason
	DecidedBy TieBreak

	rng    Rand
	logger log.EventLogger
}

// NewGameState deals a deck: P1 gets cards 0-1, P2 gets 2-3, card 4 opens the
// gallery and cards 5-8 form the private collection with card 8 on top.
// A nil rng is time-seeded; a nil logger drops events.
func NewGameState(deck Deck, rng Rand, logger log.EventLogger) *GameState {
	if rng == nil {
		rng = NewRand(0)
	}
	if logger == nil {
		logger = log.NopLogger{}
	}

	gallery := make([]Card, 0, InitialGallerySize+InitialCollectionSize)
	gallery = append(gallery, deck[4])
	collection := make([]Card, 0, InitialCollectionSize)
	collection = append(collection, deck[5:]...)

	gs := &GameState{
		Hands: [2]Hand{
			{deck[0], deck[1]},
			{deck[2], deck[3]},
		},
		ToPlay:     PlayerOne,
		Gallery:    gallery,
		Collection: collection,
		rng:        rng,
		logger:     logger,
	}

	names := make([]string, len(collection))
	for i, c := range collection {
		names[i] = c.String()
	}
	gs.logger.Log(log.NewDealEvent([2][2]string{
		{deck[0].String(), deck[1].String()},
		{deck[2].String(), deck[3].String()},
	}, deck[4].String(), names))

	return gs
}

// PlayNextMove advances the game by exactly one ply. It returns the winner and
// true once the game has ended; otherwise the player is meaningless and false.
func (gs *GameState) PlayNextMove() (Player, bool, error) {
	if gs.Over {
		return gs.Winner, true, ErrGameOver
	}

	gs.Ply++
	actor := gs.ToPlay
	hand := &gs.Hands[actor]
	gs.ToPlay = actor.Next()
	gs.log(log.NewTurnEvent(gs.Ply, int(actor)))

	// The alarm roll happens every ply and is checked against the hand before any exchange.
	if chance(gs.rng, PullAlarmChance) && hand.HasPullAlarm() {
		alarm := hand[0]
		if !alarm.IsPullAlarm() {
			alarm = hand[1]
		}
		gs.log(log.NewPullAlarmEvent(gs.Ply, int(actor), alarm.String()))
		return gs.finish(EndPullAlarm)
	}

	slot := gs.rng.Intn(2)
	given := hand[slot]

	if chance(gs.rng, GallerySwapChance) {
		if len(gs.Gallery) == 0 {
			return 0, false, gs.invariantError(ErrEmptyGallery)
		}
		hand[slot], gs.Gallery[0] = gs.Gallery[0], given
		gs.log(log.NewGallerySwapEvent(gs.Ply, int(actor), given.String(), hand[slot].String()))
		return 0, false, nil
	}

	if len(gs.Collection) == 0 {
		return 0, false, gs.invariantError(ErrEmptyCollection)
	}
	top := gs.Collection[len(gs.Collection)-1]
	gs.Collection = gs.Collection[:len(gs.Collection)-1]
	hand[slot] = top
	gs.Gallery = append(gs.Gallery, given)
	gs.log(log.NewCollectionDrawEvent(gs.Ply, int(actor), given.String(), top.String(), len(gs.Collection)))

	if len(gs.Collection) == 0 {
		gs.log(log.NewCollectionEmptyEvent(gs.Ply, int(actor)))
		return gs.finish(EndCollectionExhausted)
	}
	return 0, false, nil
}

// finish resolves the winner and marks the game over.
func (gs *GameState) finish(reason EndReason) (Player, bool, error) {
	winner, level, err := gs.resolveWinner()
	if err != nil {
		return 0, true, fmt.Errorf("ply %d (%s): %w", gs.Ply, reason, err)
	}
	gs.Over = true
	gs.Winner = winner
	gs.Reason = reason
	gs.DecidedBy = level
	gs.log(log.NewWinEvent(gs.Ply, int(winner), fmt.Sprintf("%s, decided by %s", reason, level)))
	return winner, true, nil
}

func (gs *GameState) invariantError(err error) error {
	return fmt.Errorf("ply %d: %w\n%s", gs.Ply, err, gs)
}

// CardCount returns the number of cards across both hands and both piles.
func (gs *GameState) CardCount() int {
	return len(gs.Hands[0]) + len(gs.Hands[1]) + len(gs.Gallery) + len(gs.Collection)
}

// CheckInvariants verifies that every card is held exactly once and the gallery is not empty.
func (gs *GameState) CheckInvariants() error {
	if n := gs.CardCount(); n != DeckSize {
		return fmt.Errorf("card count is %d, want %d", n, DeckSize)
	}
	if len(gs.Gallery) == 0 {
		return ErrEmptyGallery
	}
	all := make([]Card, 0, DeckSize)
	all = append(all, gs.Hands[0][:]...)
	all = append(all, gs.Hands[1][:]...)
	all = append(all, gs.Gallery...)
	all = append(all, gs.Collection...)
	if _, err := ValidateDeck(all); err != nil {
		return err
	}
	return nil
}

// String dumps the full state for diagnostics.
func (gs *GameState) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "ply %d, %s to play", gs.Ply, gs.ToPlay)
	switch {
	case gs.Reason == EndPlyCap:
		fmt.Fprintf(&sb, ", over: stalemate (%s)", gs.Reason)
	case gs.Over:
		fmt.Fprintf(&sb, ", over: %s won (%s)", gs.Winner, gs.Reason)
	}
	sb.WriteByte('\n')
	for p := PlayerOne; p <= PlayerTwo; p++ {
		fmt.Fprintf(&sb, "  %s hand: %s %+v\n", p, gs.Hands[p], gs.Hands[p].CalculateScore())
	}
	fmt.Fprintf(&sb, "  gallery: %s\n", cardList(gs.Gallery))
	fmt.Fprintf(&sb, "  collection: %s", cardList(gs.Collection))
	return sb.String()
}

func cardList(cards []Card) string {
	names := make([]string, len(cards))
	for i, c := range cards {
		names[i] = c.String()
	}
	return "[" + strings.Join(names, ", ") + "]"
}

func (gs *GameState) log(event log.GameEvent) {
	gs.logger.Log(event)
}
