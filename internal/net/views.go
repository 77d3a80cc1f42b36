package net

import (
	"github.com/peterkuimelis/artheist/internal/game"
	"github.com/peterkuimelis/artheist/internal/log"
	"github.com/peterkuimelis/artheist/internal/sim"
)

// BuildStateView creates a spectator's view of the table.
func BuildStateView(gs *game.GameState) *StateView {
	sv := &StateView{
		Ply:             gs.Ply,
		ToPlay:          gs.ToPlay.String(),
		Gallery:         cardNames(gs.Gallery),
		CollectionCount: len(gs.Collection),
		Over:            gs.Over || gs.Reason == game.EndPlyCap,
	}
	for p := 0; p < 2; p++ {
		hand := gs.Hands[p]
		sv.Hands[p] = HandView{
			Cards: cardNames(hand[:]),
			Score: BuildScoreView(hand.CalculateScore()),
		}
	}
	if sv.Over {
		sv.Reason = gs.Reason.String()
	}
	if gs.Over {
		sv.Winner = gs.Winner.String()
	}
	return sv
}

// BuildScoreView converts a game.Score.
func BuildScoreView(s game.Score) ScoreView {
	return ScoreView{
		Score:               s.Score,
		MasterpieceCount:    s.MasterpieceCount,
		MaxMasterpieceScore: s.MaxMasterpieceScore,
		EarlyWorkCount:      s.EarlyWorkCount,
		MaxEarlyWorkScore:   s.MaxEarlyWorkScore,
	}
}

func BuildOutcomeView(o game.Outcome) *OutcomeView {
	ov := &OutcomeView{
		Stalemate: o.Stalemate,
		Reason:    o.Reason.String(),
		Plies:     o.Plies,
	}
	if !o.Stalemate {
		ov.Winner = o.Winner.String()
		ov.DecidedBy = o.DecidedBy.String()
	}
	return ov
}

func BuildResultsView(r sim.Results) *ResultsView {
	return &ResultsView{
		RunID:         r.RunID.String(),
		Seed:          r.Seed,
		Games:         r.Games,
		PlayerOneWins: r.PlayerOneWins,
		PlayerTwoWins: r.PlayerTwoWins,
		Stalemates:    r.Stalemates,
		ByReason:      r.ByReason,
		ByTieBreak:    r.ByTieBreak,
		PlyHistogram:  r.PlyHistogram,
		AveragePlies:  r.AveragePlies(),
		DurationMs:    r.Duration.Milliseconds(),
		Summary:       r.String(),
	}
}

func BuildEventView(e log.GameEvent) *EventView {
	return &EventView{
		Ply:     e.Ply,
		Player:  e.Player,
		Type:    e.Type.String(),
		Card:    e.Card,
		Details: e.Details,
	}
}

// CardTable lists the nine cards in table order.
func CardTable() []CardView {
	all := game.AllCards()
	views := make([]CardView, 0, len(all))
	for _, c := range all {
		views = append(views, CardView{
			Name:        c.String(),
			Artist:      c.Artist().String(),
			Value:       c.Value(),
			Masterpiece: c.IsMasterpiece(),
			EarlyWork:   c.IsEarlyWork(),
			PullAlarm:   c.IsPullAlarm(),
		})
	}
	return views
}

func cardNames(cards []game.Card) []string {
	names := make([]string, len(cards))
	for i, c := range cards {
		names[i] = c.String()
	}
	return names
}
