package game

import (
	"errors"
	"slices"
	"testing"

	"github.com/peterkuimelis/artheist/internal/log"
)

func TestNewGameStateDeal(t *testing.T) {
	logger := log.NewMemoryLogger()
	gs := NewGameState(tableDeck(), NewScriptedRand(t), logger)

	if gs.Hands[PlayerOne] != (Hand{WaterLilies, MonaLisa}) {
		t.Errorf("P1 hand = %s", gs.Hands[PlayerOne])
	}
	if gs.Hands[PlayerTwo] != (Hand{StarryNight, Guernica}) {
		t.Errorf("P2 hand = %s", gs.Hands[PlayerTwo])
	}
	if !slices.Equal(gs.Gallery, []Card{BlueNude}) {
		t.Errorf("gallery = %v", gs.Gallery)
	}
	if !slices.Equal(gs.Collection, []Card{TheNightWatch, ThePotatoEaters, Haystacks, Sunflowers}) {
		t.Errorf("collection = %v", gs.Collection)
	}
	if gs.ToPlay != PlayerOne {
		t.Errorf("to play = %s, want P1", gs.ToPlay)
	}
	if err := gs.CheckInvariants(); err != nil {
		t.Errorf("invariants: %v", err)
	}
	if deals := logger.EventsOfType(log.EventDeal); len(deals) != 1 {
		t.Errorf("expected one deal event, got %d", len(deals))
	}
}

// TestGallerySwapAndCollectionDraw walks three exchanges and an alarm.
func TestGallerySwapAndCollectionDraw(t *testing.T) {
	rng := NewScriptedRand(t).
		AddPly(false, 0, true).  // P1 swaps WaterLilies for BlueNude
		AddPly(false, 1, false). // P2 draws Sunflowers, hangs Guernica
		AddPly(false, 0, false). // P1 draws Haystacks, hangs BlueNude
		AddAlarm()               // P2 holds Sunflowers and pulls the alarm
	logger := log.NewMemoryLogger()
	gs := NewGameState(tableDeck(), rng, logger)

	// Ply 1
	if _, over, err := gs.PlayNextMove(); err != nil || over {
		t.Fatalf("ply 1: over=%t err=%v", over, err)
	}
	if gs.Hands[PlayerOne] != (Hand{BlueNude, MonaLisa}) {
		t.Errorf("ply 1: P1 hand = %s", gs.Hands[PlayerOne])
	}
	if !slices.Equal(gs.Gallery, []Card{WaterLilies}) {
		t.Errorf("ply 1: gallery = %v", gs.Gallery)
	}
	if len(gs.Collection) != 4 {
		t.Errorf("ply 1: collection size = %d, want 4", len(gs.Collection))
	}

	// Ply 2
	if _, over, err := gs.PlayNextMove(); err != nil || over {
		t.Fatalf("ply 2: over=%t err=%v", over, err)
	}
	if gs.Hands[PlayerTwo] != (Hand{StarryNight, Sunflowers}) {
		t.Errorf("ply 2: P2 hand = %s", gs.Hands[PlayerTwo])
	}
	if !slices.Equal(gs.Gallery, []Card{WaterLilies, Guernica}) {
		t.Errorf("ply 2: gallery = %v", gs.Gallery)
	}
	if !slices.Equal(gs.Collection, []Card{TheNightWatch, ThePotatoEaters, Haystacks}) {
		t.Errorf("ply 2: collection = %v", gs.Collection)
	}

	// Ply 3
	if _, over, err := gs.PlayNextMove(); err != nil || over {
		t.Fatalf("ply 3: over=%t err=%v", over, err)
	}
	if gs.Hands[PlayerOne] != (Hand{Haystacks, MonaLisa}) {
		t.Errorf("ply 3: P1 hand = %s", gs.Hands[PlayerOne])
	}
	if !slices.Equal(gs.Gallery, []Card{WaterLilies, Guernica, BlueNude}) {
		t.Errorf("ply 3: gallery = %v", gs.Gallery)
	}

	// Ply 4: P2 [StarryNight, Sunflowers] = 7 beats P1 [Haystacks, MonaLisa] = 6
	winner, over, err := gs.PlayNextMove()
	if err != nil {
		t.Fatalf("ply 4: %v", err)
	}
	if !over || winner != PlayerTwo {
		t.Fatalf("ply 4: over=%t winner=%s, want P2 to win", over, winner)
	}
	if gs.Reason != EndPullAlarm || gs.DecidedBy != TieBreakScore {
		t.Errorf("reason = %s by %s", gs.Reason, gs.DecidedBy)
	}
	if gs.ToPlay != PlayerOne {
		t.Errorf("turn should still pass on a terminating ply, to play = %s", gs.ToPlay)
	}
	if err := gs.CheckInvariants(); err != nil {
		t.Errorf("invariants: %v", err)
	}
	if !rng.Exhausted() {
		t.Error("not every scripted decision was used")
	}

	alarms := logger.EventsOfType(log.EventPullAlarm)
	if len(alarms) != 1 || alarms[0].Card != "Sunflowers" || alarms[0].Player != 1 {
		t.Errorf("alarm events = %+v", alarms)
	}
	if last := logger.LastEvent(); last.Type != log.EventWin || last.Player != 1 {
		t.Errorf("last event = %+v, want P2 win", last)
	}
	t.Logf("Event log:\n%s", log.FormatAll(logger.Events()))
}

func TestCollectionExhaustionEndsGame(t *testing.T) {
	rng := NewScriptedRand(t).
		AddPly(false, 0, false). // P1 hangs WaterLilies, takes Sunflowers
		AddPly(false, 0, false). // P2 hangs StarryNight, takes Haystacks
		AddPly(false, 1, false). // P1 hangs MonaLisa, takes ThePotatoEaters
		AddPly(false, 1, false)  // P2 hangs Guernica, takes TheNightWatch
	logger := log.NewMemoryLogger()
	gs := NewGameState(tableDeck(), rng, logger)

	for ply := 1; ply <= 3; ply++ {
		if _, over, err := gs.PlayNextMove(); err != nil || over {
			t.Fatalf("ply %d: over=%t err=%v", ply, over, err)
		}
		if err := gs.CheckInvariants(); err != nil {
			t.Fatalf("ply %d: %v", ply, err)
		}
	}

	winner, over, err := gs.PlayNextMove()
	if err != nil {
		t.Fatalf("ply 4: %v", err)
	}
	if !over {
		t.Fatal("game should end when the collection runs out")
	}
	// P1 [Sunflowers, ThePotatoEaters] = 6 beats P2 [Haystacks, TheNightWatch] = 4
	if winner != PlayerOne {
		t.Errorf("winner = %s, want P1", winner)
	}
	if gs.Reason != EndCollectionExhausted {
		t.Errorf("reason = %s", gs.Reason)
	}
	if len(gs.Collection) != 0 || len(gs.Gallery) != 5 {
		t.Errorf("collection %v gallery %v", gs.Collection, gs.Gallery)
	}
	if !slices.Equal(gs.Gallery, []Card{BlueNude, WaterLilies, StarryNight, MonaLisa, Guernica}) {
		t.Errorf("gallery = %v", gs.Gallery)
	}
	if err := gs.CheckInvariants(); err != nil {
		t.Errorf("invariants: %v", err)
	}
	if len(logger.EventsOfType(log.EventCollectionEmpty)) != 1 {
		t.Error("expected a collection-empty event")
	}
}

// TestAlarmRollWithoutAlarmCard: a successful roll does nothing without an alarm card.
func TestAlarmRollWithoutAlarmCard(t *testing.T) {
	rng := NewScriptedRand(t).AddPly(true, 0, true)
	gs := NewGameState(tableDeck(), rng, nil)

	if _, over, err := gs.PlayNextMove(); err != nil || over {
		t.Fatalf("over=%t err=%v", over, err)
	}
	if gs.Hands[PlayerOne] != (Hand{BlueNude, MonaLisa}) {
		t.Errorf("P1 hand = %s, want the gallery swap to go ahead", gs.Hands[PlayerOne])
	}
}

// TestAlarmChecksHandBeforeExchange: the alarm card must be held at the start of the ply.
func TestAlarmChecksHandBeforeExchange(t *testing.T) {
	// P1 [WaterLilies, MonaLisa], gallery [Sunflowers]
	deck := makeDeck(t, WaterLilies, MonaLisa, StarryNight, Guernica, Sunflowers,
		TheNightWatch, ThePotatoEaters, Haystacks, BlueNude)
	rng := NewScriptedRand(t).
		AddPly(false, 0, true). // P1 takes Sunflowers from the gallery
		AddPly(false, 0, true). // P2 takes WaterLilies from the gallery
		AddAlarm()              // P1 now holds Sunflowers
	gs := NewGameState(deck, rng, nil)

	for ply := 1; ply <= 2; ply++ {
		if _, over, err := gs.PlayNextMove(); err != nil || over {
			t.Fatalf("ply %d: over=%t err=%v", ply, over, err)
		}
	}
	if _, over, err := gs.PlayNextMove(); err != nil || !over {
		t.Fatalf("ply 3: over=%t err=%v, want alarm", over, err)
	}
	if gs.Reason != EndPullAlarm {
		t.Errorf("reason = %s", gs.Reason)
	}
	if gs.Hands[PlayerOne] != (Hand{Sunflowers, MonaLisa}) {
		t.Errorf("no exchange should happen on an alarm ply, P1 hand = %s", gs.Hands[PlayerOne])
	}
}

func TestPlayAfterGameOver(t *testing.T) {
	rng := NewScriptedRand(t).
		AddPly(false, 0, false).
		AddPly(false, 0, false).
		AddPly(false, 1, false).
		AddPly(false, 1, false)
	gs := NewGameState(tableDeck(), rng, nil)
	for !gs.Over {
		if _, _, err := gs.PlayNextMove(); err != nil {
			t.Fatalf("PlayNextMove: %v", err)
		}
	}
	winner, over, err := gs.PlayNextMove()
	if !errors.Is(err, ErrGameOver) {
		t.Fatalf("expected ErrGameOver, got %v", err)
	}
	if !over || winner != gs.Winner {
		t.Errorf("over=%t winner=%s", over, winner)
	}
}

func TestEmptyGalleryIsInvariantViolation(t *testing.T) {
	gs := NewGameState(tableDeck(), NewScriptedRand(t).AddPly(false, 0, true), nil)
	gs.Gallery = gs.Gallery[:0]

	_, _, err := gs.PlayNextMove()
	if !errors.Is(err, ErrEmptyGallery) {
		t.Fatalf("expected ErrEmptyGallery, got %v", err)
	}
}

func TestEmptyCollectionIsInvariantViolation(t *testing.T) {
	gs := NewGameState(tableDeck(), NewScriptedRand(t).AddPly(false, 0, false), nil)
	gs.Collection = nil

	_, _, err := gs.PlayNextMove()
	if !errors.Is(err, ErrEmptyCollection) {
		t.Fatalf("expected ErrEmptyCollection, got %v", err)
	}
}

// TestRandomGamesKeepInvariants plays many seeded games ply by ply.
func TestRandomGamesKeepInvariants(t *testing.T) {
	for seed := int64(1); seed <= 2000; seed++ {
		rng := NewRand(seed)
		gs := NewGameState(NewDeck(rng), rng, nil)

		for gs.Ply < DefaultMaxPlies && !gs.Over {
			collection := len(gs.Collection)
			if _, _, err := gs.PlayNextMove(); err != nil {
				t.Fatalf("seed %d: %v", seed, err)
			}
			if err := gs.CheckInvariants(); err != nil {
				t.Fatalf("seed %d ply %d: %v\n%s", seed, gs.Ply, err, gs)
			}
			if len(gs.Collection) > collection {
				t.Fatalf("seed %d ply %d: collection grew", seed, gs.Ply)
			}
		}
		if gs.Ply > DefaultMaxPlies {
			t.Fatalf("seed %d: played %d plies", seed, gs.Ply)
		}
	}
}
