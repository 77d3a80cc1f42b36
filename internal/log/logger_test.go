package log

import (
	"bytes"
	"strings"
	"testing"
)

func TestMemoryLoggerSequence(t *testing.T) {
	l := NewMemoryLogger()
	l.Log(NewTurnEvent(1, 0))
	l.Log(NewGallerySwapEvent(1, 0, "Haystacks", "MonaLisa"))
	l.Log(NewTurnEvent(2, 1))

	events := l.Events()
	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(events))
	}
	for i, e := range events {
		if e.Seq != i+1 {
			t.Errorf("event %d: expected seq %d, got %d", i, i+1, e.Seq)
		}
	}
	if n := len(l.EventsOfType(EventTurn)); n != 2 {
		t.Errorf("expected 2 turn events, got %d", n)
	}
	if last := l.LastEvent(); last.Ply != 2 || last.Player != 1 {
		t.Errorf("unexpected last event %+v", last)
	}
	if (&MemoryLogger{}).LastEvent() != (GameEvent{}) {
		t.Error("empty logger should return a zero event")
	}
}

func TestTextLoggerFormats(t *testing.T) {
	var buf bytes.Buffer
	l := NewTextLogger(&buf)
	l.Log(NewCollectionDrawEvent(3, 0, "BlueNude", "Sunflowers", 2))

	want := "P3  CollectionDraw  | P1 takes Sunflowers from the private collection and hangs BlueNude in the gallery (2 left)\n"
	if buf.String() != want {
		t.Errorf("got %q\nwant %q", buf.String(), want)
	}
	if len(l.Events()) != 1 {
		t.Error("text logger should also retain events")
	}
}

func TestFuncLoggerForwards(t *testing.T) {
	var got []EventType
	l := FuncLogger(func(e GameEvent) { got = append(got, e.Type) })
	l.Log(NewPullAlarmEvent(4, 1, "TheNightWatch"))
	l.Log(NewWinEvent(4, 0, "alarm pulled"))

	if len(got) != 2 || got[0] != EventPullAlarm || got[1] != EventWin {
		t.Errorf("unexpected forwarded events %v", got)
	}
	if l.Events() != nil {
		t.Error("func logger should not retain events")
	}
}

func TestFormatAll(t *testing.T) {
	out := FormatAll([]GameEvent{
		NewDealEvent([2][2]string{{"A", "B"}, {"C", "D"}}, "E", []string{"F", "G"}),
		NewStalemateEvent(16, 16),
	})
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "P1 [A, B] P2 [C, D] gallery [E] collection [F, G]") {
		t.Errorf("deal line missing layout: %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "P16 Stalemate") {
		t.Errorf("stalemate line: %q", lines[1])
	}
}
