package mcp

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/uuid"

	artnet "github.com/peterkuimelis/artheist/internal/net"

	"github.com/peterkuimelis/artheist/internal/log"
)

// DefaultHistorySize is how many simulation runs a RunHistory keeps.
const DefaultHistorySize = 32

// ToolResponse is the JSON envelope returned by all MCP tools.
type ToolResponse struct {
	Events  []artnet.EventView  `json:"events,omitempty"`
	State   *artnet.StateView   `json:"state,omitempty"`
	Outcome *artnet.OutcomeView `json:"outcome,omitempty"`
	Results *artnet.ResultsView `json:"results,omitempty"`
	Cards   []artnet.CardView   `json:"cards,omitempty"`
	Deal    string              `json:"deal,omitempty"`
	Runs    []string            `json:"runs,omitempty"`
}

// RunHistory remembers the most recent simulation results by run ID.
// Oldest runs are evicted first once the limit is reached.
type RunHistory struct {
	mu    sync.Mutex
	limit int
	runs  map[uuid.UUID]*artnet.ResultsView
	order []uuid.UUID
}

func NewRunHistory(limit int) *RunHistory {
	if limit < 1 {
		limit = DefaultHistorySize
	}
	return &RunHistory{
		limit: limit,
		runs:  make(map[uuid.UUID]*artnet.ResultsView),
	}
}

// Add stores rv under its run ID.
func (h *RunHistory) Add(rv *artnet.ResultsView) error {
	id, err := uuid.Parse(rv.RunID)
	if err != nil {
		return fmt.Errorf("run id %q: %w", rv.RunID, err)
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.runs[id]; !ok {
		h.order = append(h.order, id)
	}
	h.runs[id] = rv
	for len(h.order) > h.limit {
		delete(h.runs, h.order[0])
		h.order = h.order[1:]
	}
	return nil
}

// Get looks up a run by its textual ID.
func (h *RunHistory) Get(runID string) (*artnet.ResultsView, error) {
	id, err := uuid.Parse(runID)
	if err != nil {
		return nil, fmt.Errorf("invalid run id %q: %w", runID, err)
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	rv, ok := h.runs[id]
	if !ok {
		return nil, fmt.Errorf("run %s not found", id)
	}
	return rv, nil
}

// IDs lists stored runs, oldest first.
func (h *RunHistory) IDs() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	ids := make([]string, len(h.order))
	for i, id := range h.order {
		ids[i] = id.String()
	}
	return ids
}

// eventRecorder collects a game's events as client views.
type eventRecorder struct {
	events []artnet.EventView
}

func (r *eventRecorder) Log(e log.GameEvent) {
	r.events = append(r.events, *artnet.BuildEventView(e))
}

func (r *eventRecorder) Events() []log.GameEvent { return nil }

// respondJSON marshals a ToolResponse to a JSON string.
func respondJSON(resp *ToolResponse) string {
	data, err := json.Marshal(resp)
	if err != nil {
		return fmt.Sprintf(`{"error": "marshal error: %v"}`, err)
	}
	return string(data)
}
