package log

// EventType enumerates all observable game events.
type EventType int

const (
	EventDeal EventType = iota
	EventTurn
	EventPullAlarm
	EventGallerySwap
	EventCollectionDraw
	EventCollectionEmpty
	EventWin
	EventStalemate
)

func (e EventType) String() string {
	switch e {
	case EventDeal:
		return "Deal"
	case EventTurn:
		return "Turn"
	case EventPullAlarm:
		return "PullAlarm"
	case EventGallerySwap:
		return "GallerySwap"
	case EventCollectionDraw:
		return "CollectionDraw"
	case EventCollectionEmpty:
		return "CollectionEmpty"
	case EventWin:
		return "Win"
	case EventStalemate:
		return "Stalemate"
	default:
		return "Unknown"
	}
}

// GameEvent represents a single observable event in a game.
type GameEvent struct {
	Seq     int       // monotonic sequence number
	Ply     int       // which ply (1-based, 0 for the deal)
	Player  int       // acting player (0 or 1)
	Type    EventType // event type
	Card    string    // card name (if applicable)
	Details string    // human-readable detail string
}
