package log

import (
	"fmt"
	"io"
	"strings"
)

// EventLogger is the interface for logging game events.
type EventLogger interface {
	Log(event GameEvent)
	Events() []GameEvent
}

// --- MemoryLogger: stores events in memory for test assertions ---

type MemoryLogger struct {
	events []GameEvent
	seq    int
}

func NewMemoryLogger() *MemoryLogger {
	return &MemoryLogger{}
}

func (l *MemoryLogger) Log(event GameEvent) {
	l.seq++
	event.Seq = l.seq
	l.events = append(l.events, event)
}

func (l *MemoryLogger) Events() []GameEvent {
	return l.events
}

// EventsOfType returns all events matching the given type.
func (l *MemoryLogger) EventsOfType(t EventType) []GameEvent {
	var result []GameEvent
	for _, e := range l.events {
		if e.Type == t {
			result = append(result, e)
		}
	}
	return result
}

// LastEvent returns the most recent event, or a zero event if none.
func (l *MemoryLogger) LastEvent() GameEvent {
	if len(l.events) == 0 {
		return GameEvent{}
	}
	return l.events[len(l.events)-1]
}

// --- TextLogger: writes human-readable lines to an io.Writer ---

type TextLogger struct {
	MemoryLogger
	w io.Writer
}

func NewTextLogger(w io.Writer) *TextLogger {
	return &TextLogger{w: w}
}

func (l *TextLogger) Log(event GameEvent) {
	l.MemoryLogger.Log(event)
	fmt.Fprintln(l.w, FormatEvent(event))
}

// --- NopLogger: drops everything, used for bulk simulation ---

type NopLogger struct{}

func (NopLogger) Log(GameEvent) {}

func (NopLogger) Events() []GameEvent { return nil }

// --- FuncLogger: forwards each event to a callback ---

// FuncLogger adapts a function into an EventLogger. Events are not retained.
type FuncLogger func(event GameEvent)

func (f FuncLogger) Log(event GameEvent) { f(event) }

func (f FuncLogger) Events() []GameEvent { return nil }

// --- Formatting ---

// PlayerName returns "P1" or "P2" for display.
func PlayerName(p int) string {
	return fmt.Sprintf("P%d", p+1)
}

// FormatEvent formats a single event as a human-readable line.
func FormatEvent(e GameEvent) string {
	kind := e.Type.String()
	for len(kind) < 16 {
		kind += " "
	}
	return fmt.Sprintf("P%-2d %s| %s", e.Ply, kind, e.Details)
}

// FormatAll formats all events as a multi-line string.
func FormatAll(events []GameEvent) string {
	var sb strings.Builder
	for _, e := range events {
		sb.WriteString(FormatEvent(e))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// --- Helper constructors for common events ---

func NewDealEvent(hands [2][2]string, gallery string, collection []string) GameEvent {
	return GameEvent{
		Type: EventDeal,
		Details: fmt.Sprintf("Deal: P1 [%s, %s] P2 [%s, %s] gallery [%s] collection [%s]",
			hands[0][0], hands[0][1], hands[1][0], hands[1][1], gallery, strings.Join(collection, ", ")),
	}
}

func NewTurnEvent(ply int, player int) GameEvent {
	return GameEvent{
		Ply:     ply,
		Player:  player,
		Type:    EventTurn,
		Details: fmt.Sprintf("=== Ply %d (%s) ===", ply, PlayerName(player)),
	}
}

func NewPullAlarmEvent(ply int, player int, cardName string) GameEvent {
	return GameEvent{
		Ply:     ply,
		Player:  player,
		Type:    EventPullAlarm,
		Card:    cardName,
		Details: fmt.Sprintf("%s pulls the alarm holding %s", PlayerName(player), cardName),
	}
}

func NewGallerySwapEvent(ply int, player int, given, taken string) GameEvent {
	return GameEvent{
		Ply:     ply,
		Player:  player,
		Type:    EventGallerySwap,
		Card:    taken,
		Details: fmt.Sprintf("%s swaps %s for %s from the gallery", PlayerName(player), given, taken),
	}
}

func NewCollectionDrawEvent(ply int, player int, given, taken string, remaining int) GameEvent {
	return GameEvent{
		Ply:     ply,
		Player:  player,
		Type:    EventCollectionDraw,
		Card:    taken,
		Details: fmt.Sprintf("%s takes %s from the private collection and hangs %s in the gallery (%d left)", PlayerName(player), taken, given, remaining),
	}
}

func NewCollectionEmptyEvent(ply int, player int) GameEvent {
	return GameEvent{
		Ply:     ply,
		Player:  player,
		Type:    EventCollectionEmpty,
		Details: "The private collection is empty",
	}
}

func NewWinEvent(ply int, winner int, reason string) GameEvent {
	return GameEvent{
		Ply:     ply,
		Player:  winner,
		Type:    EventWin,
		Details: fmt.Sprintf("%s wins! (%s)", PlayerName(winner), reason),
	}
}

func NewStalemateEvent(ply int, maxPlies int) GameEvent {
	return GameEvent{
		Ply:     ply,
		Player:  -1,
		Type:    EventStalemate,
		Details: fmt.Sprintf("Stalemate: ply limit reached (%d plies)", maxPlies),
	}
}
