package sim

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/peterkuimelis/artheist/internal/game"
)

// Results collates the outcomes of a simulation run.
type Results struct {
	RunID         uuid.UUID
	Seed          int64
	Games         int
	PlayerOneWins int
	PlayerTwoWins int
	Stalemates    int
	ByReason      map[string]int // keyed by game.EndReason.String()
	ByTieBreak    map[string]int // keyed by game.TieBreak.String(), wins only
	PlyHistogram  []int          // PlyHistogram[n] counts games that lasted n plies
	Duration      time.Duration
}

func newResults(seed int64, maxPlies int) Results {
	return Results{
		RunID:        uuid.New(),
		Seed:         seed,
		ByReason:     make(map[string]int),
		ByTieBreak:   make(map[string]int),
		PlyHistogram: make([]int, maxPlies+1),
	}
}

func (r *Results) record(o game.Outcome) {
	r.Games++
	switch {
	case o.Stalemate:
		r.Stalemates++
	case o.Winner == game.PlayerOne:
		r.PlayerOneWins++
	default:
		r.PlayerTwoWins++
	}
	r.ByReason[o.Reason.String()]++
	if !o.Stalemate {
		r.ByTieBreak[o.DecidedBy.String()]++
	}
	if o.Plies < len(r.PlyHistogram) {
		r.PlyHistogram[o.Plies]++
	}
}

// Rate returns n as a fraction of all games played.
func (r Results) Rate(n int) float64 {
	if r.Games == 0 {
		return 0
	}
	return float64(n) / float64(r.Games)
}

// AveragePlies returns the mean game length.
func (r Results) AveragePlies() float64 {
	if r.Games == 0 {
		return 0
	}
	total := 0
	for plies, n := range r.PlyHistogram {
		total += plies * n
	}
	return float64(total) / float64(r.Games)
}

// String returns the one-line console summary.
func (r Results) String() string {
	return fmt.Sprintf("Player 1 wins: %d, Player 2 wins: %d, Stalemates: %d",
		r.PlayerOneWins, r.PlayerTwoWins, r.Stalemates)
}

// WriteSummary writes the full breakdown of a run.
func (r Results) WriteSummary(w io.Writer) {
	fmt.Fprintf(w, "Run %s (seed %d): %d games in %s\n", r.RunID, r.Seed, r.Games, r.Duration.Round(time.Millisecond))
	fmt.Fprintln(w, r.String())
	fmt.Fprintf(w, "  P1 %.2f%%  P2 %.2f%%  stalemate %.2f%%  avg plies %.2f\n",
		100*r.Rate(r.PlayerOneWins), 100*r.Rate(r.PlayerTwoWins), 100*r.Rate(r.Stalemates), r.AveragePlies())

	fmt.Fprintln(w, "  ended by:")
	for _, k := range sortedKeys(r.ByReason) {
		fmt.Fprintf(w, "    %-30s %d\n", k, r.ByReason[k])
	}
	fmt.Fprintln(w, "  decided by:")
	for _, k := range sortedKeys(r.ByTieBreak) {
		fmt.Fprintf(w, "    %-30s %d\n", k, r.ByTieBreak[k])
	}
	fmt.Fprintln(w, "  plies:")
	for plies, n := range r.PlyHistogram {
		if n > 0 {
			fmt.Fprintf(w, "    %2d %d\n", plies, n)
		}
	}
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
