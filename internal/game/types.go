package game

// --- Enums ---

type Artist int

const (
	Monet Artist = iota
	DaVinci
	VanGogh
	Picasso
	Rembrandt
)

func (a Artist) String() string {
	switch a {
	case Monet:
		return "Monet"
	case DaVinci:
		return "DaVinci"
	case VanGogh:
		return "VanGogh"
	case Picasso:
		return "Picasso"
	case Rembrandt:
		return "Rembrandt"
	default:
		return "Unknown"
	}
}

// Player identifies one of the two seats. PlayerOne always moves first.
type Player int

const (
	PlayerOne Player = iota
	PlayerTwo
)

// Next returns the other player.
func (p Player) Next() Player {
	if p == PlayerOne {
		return PlayerTwo
	}
	return PlayerOne
}

func (p Player) String() string {
	if p == PlayerOne {
		return "P1"
	}
	return "P2"
}

// EndReason records why a game stopped.
type EndReason int

const (
	EndNone EndReason = iota
	EndPullAlarm
	EndCollectionExhausted
	EndPlyCap // only set by Match.Run; the state machine never declares it
)

func (r EndReason) String() string {
	switch r {
	case EndPullAlarm:
		return "alarm pulled"
	case EndCollectionExhausted:
		return "private collection exhausted"
	case EndPlyCap:
		return "ply limit reached"
	default:
		return "in progress"
	}
}
