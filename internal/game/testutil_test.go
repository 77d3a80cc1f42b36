package game

import (
	"context"
	"testing"

	"github.com/peterkuimelis/artheist/internal/log"
)

// ScriptedRand is a Rand that replays predefined decisions.
// Used in tests to deterministically drive the game.
type ScriptedRand struct {
	t      *testing.T
	floats []float64
	ints   []int
	fpos   int
	ipos   int
}

func NewScriptedRand(t *testing.T) *ScriptedRand {
	return &ScriptedRand{t: t}
}

// AddPly scripts one full ply: the alarm roll, the slot pick and the exchange roll.
func (sr *ScriptedRand) AddPly(alarm bool, slot int, gallery bool) *ScriptedRand {
	sr.floats = append(sr.floats, roll(alarm, PullAlarmChance), roll(gallery, GallerySwapChance))
	sr.ints = append(sr.ints, slot)
	return sr
}

// AddAlarm scripts a ply whose alarm roll succeeds. If the hand holds no
// alarm card the ply continues with the given slot and exchange.
func (sr *ScriptedRand) AddAlarm() *ScriptedRand {
	sr.floats = append(sr.floats, 0)
	return sr
}

func roll(hit bool, p float64) float64 {
	if hit {
		return p / 2
	}
	return (1 + p) / 2
}

func (sr *ScriptedRand) Float64() float64 {
	if sr.fpos >= len(sr.floats) {
		sr.t.Fatalf("scripted rand: out of floats after %d draws", sr.fpos)
	}
	f := sr.floats[sr.fpos]
	sr.fpos++
	return f
}

func (sr *ScriptedRand) Intn(n int) int {
	if sr.ipos >= len(sr.ints) {
		sr.t.Fatalf("scripted rand: out of ints after %d draws", sr.ipos)
	}
	i := sr.ints[sr.ipos]
	sr.ipos++
	if i >= n {
		sr.t.Fatalf("scripted rand: %d out of range for Intn(%d)", i, n)
	}
	return i
}

// Shuffle leaves the order untouched so decks stay as written.
func (sr *ScriptedRand) Shuffle(n int, swap func(i, j int)) {}

// Exhausted reports whether every scripted draw was consumed.
func (sr *ScriptedRand) Exhausted() bool {
	return sr.fpos == len(sr.floats) && sr.ipos == len(sr.ints)
}

// --- Test deck helpers ---

// makeDeck builds a deck from cards in deal order.
func makeDeck(t *testing.T, cards ...Card) Deck {
	t.Helper()
	deck, err := ValidateDeck(cards)
	if err != nil {
		t.Fatalf("makeDeck: %v", err)
	}
	return deck
}

// tableDeck is the nine cards in table order:
// P1 [WaterLilies, MonaLisa], P2 [StarryNight, Guernica], gallery [BlueNude],
// collection [TheNightWatch, ThePotatoEaters, Haystacks, Sunflowers] (Sunflowers on top).
func tableDeck() Deck {
	return Deck(AllCards())
}

// runMatchToCompletion runs a match and returns the logger for inspection.
func runMatchToCompletion(t *testing.T, cfg MatchConfig) (Outcome, *log.MemoryLogger) {
	t.Helper()
	logger := log.NewMemoryLogger()
	cfg.Logger = logger

	outcome, err := RunMatch(context.Background(), cfg)
	if err != nil {
		t.Logf("Event log:\n%s", log.FormatAll(logger.Events()))
		t.Fatalf("Match error: %v", err)
	}

	t.Logf("Match result: %s", outcome)
	t.Logf("Event log:\n%s", log.FormatAll(logger.Events()))

	return outcome, logger
}
