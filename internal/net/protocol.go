package net

// Message types for the JSON protocol over TCP. Every message is one JSON
// object followed by a newline.

// --- Server → Client messages ---

// ServerMessage is the envelope for all server-to-client messages.
type ServerMessage struct {
	Type string `json:"type"`

	// For "progress"
	Progress *ProgressView `json:"progress,omitempty"`

	// For "event"
	Event *EventView `json:"event,omitempty"`

	// For "state"
	State *StateView `json:"state,omitempty"`

	// For "results"
	Results *ResultsView `json:"results,omitempty"`

	// For "game_over"
	Outcome *OutcomeView `json:"outcome,omitempty"`

	// For "error"
	Error string `json:"error,omitempty"`
}

const (
	MsgProgress = "progress"
	MsgEvent    = "event"
	MsgState    = "state"
	MsgResults  = "results"
	MsgGameOver = "game_over"
	MsgError    = "error"
)

// EventView is a simplified game event for the client.
type EventView struct {
	Ply     int    `json:"ply"`
	Player  int    `json:"player"`
	Type    string `json:"type"`
	Card    string `json:"card,omitempty"`
	Details string `json:"details"`
}

// CardView describes one card of the fixed table.
type CardView struct {
	Name        string `json:"name"`
	Artist      string `json:"artist"`
	Value       int    `json:"value"`
	Masterpiece bool   `json:"masterpiece,omitempty"`
	EarlyWork   bool   `json:"early_work,omitempty"`
	PullAlarm   bool   `json:"pull_alarm,omitempty"`
}

// ScoreView mirrors game.Score.
type ScoreView struct {
	Score               int `json:"score"`
	MasterpieceCount    int `json:"masterpiece_count"`
	MaxMasterpieceScore int `json:"max_masterpiece_score"`
	EarlyWorkCount      int `json:"early_work_count"`
	MaxEarlyWorkScore   int `json:"max_early_work_score"`
}

// HandView shows one player's two cards and their score.
type HandView struct {
	Cards []string  `json:"cards"`
	Score ScoreView `json:"score"`
}

// StateView is the table as a spectator sees it: the private collection is face-down.
type StateView struct {
	Ply             int         `json:"ply"`
	ToPlay          string      `json:"to_play"`
	Hands           [2]HandView `json:"hands"`
	Gallery         []string    `json:"gallery"`
	CollectionCount int         `json:"collection_count"`
	Over            bool        `json:"over"`
	Winner          string      `json:"winner,omitempty"`
	Reason          string      `json:"reason,omitempty"`
}

// OutcomeView summarises how one game ended.
type OutcomeView struct {
	Winner    string `json:"winner,omitempty"` // "P1" or "P2"; empty on stalemate
	Stalemate bool   `json:"stalemate"`
	Reason    string `json:"reason"`
	DecidedBy string `json:"decided_by,omitempty"`
	Plies     int    `json:"plies"`
}

// ProgressView reports how far a simulation has got.
type ProgressView struct {
	Completed int `json:"completed"`
	Total     int `json:"total"`
}

// ResultsView is the aggregate of a simulation run.
type ResultsView struct {
	RunID         string         `json:"run_id"`
	Seed          int64          `json:"seed"`
	Games         int            `json:"games"`
	PlayerOneWins int            `json:"player_one_wins"`
	PlayerTwoWins int            `json:"player_two_wins"`
	Stalemates    int            `json:"stalemates"`
	ByReason      map[string]int `json:"by_reason"`
	ByTieBreak    map[string]int `json:"by_tie_break"`
	PlyHistogram  []int          `json:"ply_histogram"`
	AveragePlies  float64        `json:"average_plies"`
	DurationMs    int64          `json:"duration_ms"`
	Summary       string         `json:"summary"`
}

// --- Client → Server messages ---

// ClientMessage is the single request a client sends after connecting.
type ClientMessage struct {
	Type string `json:"type"` // "simulate" or "play"

	Games    int   `json:"games,omitempty"`
	MaxPlies int   `json:"max_plies,omitempty"`
	Seed     int64 `json:"seed,omitempty"`
}

const (
	ReqSimulate = "simulate"
	ReqPlay     = "play"
)
