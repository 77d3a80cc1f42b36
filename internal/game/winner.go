package game

import (
	"errors"
	"fmt"
)

// ErrImpossibleTie is matched by *ImpossibleTieError.
var ErrImpossibleTie = errors.New("impossible tie")

// ImpossibleTieError is returned when two scores agree on every tie-break.
// Nine distinct cards can never produce it; seeing one means a rules bug.
type ImpossibleTieError struct {
	PlayerOne Score
	PlayerTwo Score
	State     string // full state dump, empty when comparing bare scores
}

func (e *ImpossibleTieError) Error() string {
	msg := fmt.Sprintf("impossible tie: P1 %+v vs P2 %+v", e.PlayerOne, e.PlayerTwo)
	if e.State != "" {
		msg += "\n" + e.State
	}
	return msg
}

func (e *ImpossibleTieError) Is(target error) bool {
	return target == ErrImpossibleTie
}

// TieBreak names a level of the winner cascade.
type TieBreak int

const (
	TieBreakScore TieBreak = iota
	TieBreakMasterpieceCount
	TieBreakEarlyWorkCount
	TieBreakMaxMasterpiece
	TieBreakMaxEarlyWork
)

func (t TieBreak) String() string {
	switch t {
	case TieBreakScore:
		return "score"
	case TieBreakMasterpieceCount:
		return "masterpiece count"
	case TieBreakEarlyWorkCount:
		return "fewer early works"
	case TieBreakMaxMasterpiece:
		return "best masterpiece"
	case TieBreakMaxEarlyWork:
		return "best early work"
	default:
		return "unknown"
	}
}

// tieBreaker compares two scores: positive favours a, negative favours b, zero is a tie.
type tieBreaker struct {
	level   TieBreak
	compare func(a, b Score) int
}

// cascade is applied in order; the first non-zero comparison decides.
var cascade = []tieBreaker{
	{TieBreakScore, func(a, b Score) int { return a.Score - b.Score }},
	{TieBreakMasterpieceCount, func(a, b Score) int { return a.MasterpieceCount - b.MasterpieceCount }},
	// Early works are a penalty: fewer wins.
	{TieBreakEarlyWorkCount, func(a, b Score) int { return b.EarlyWorkCount - a.EarlyWorkCount }},
	{TieBreakMaxMasterpiece, func(a, b Score) int { return a.MaxMasterpieceScore - b.MaxMasterpieceScore }},
	{TieBreakMaxEarlyWork, func(a, b Score) int { return a.MaxEarlyWorkScore - b.MaxEarlyWorkScore }},
}

// CompareScores runs the cascade for player one's score a against player two's score b.
// It returns the winner and the level that decided it.
func CompareScores(a, b Score) (Player, TieBreak, error) {
	for _, tb := range cascade {
		switch d := tb.compare(a, b); {
		case d > 0:
			return PlayerOne, tb.level, nil
		case d < 0:
			return PlayerTwo, tb.level, nil
		}
	}
	return PlayerOne, 0, &ImpossibleTieError{PlayerOne: a, PlayerTwo: b}
}

// CalculateWinner scores both hands and resolves the winner.
func (gs *GameState) CalculateWinner() (Player, error) {
	winner, _, err := gs.resolveWinner()
	return winner, err
}

func (gs *GameState) resolveWinner() (Player, TieBreak, error) {
	winner, level, err := CompareScores(gs.Hands[PlayerOne].CalculateScore(), gs.Hands[PlayerTwo].CalculateScore())
	if err != nil {
		var tie *ImpossibleTieError
		if errors.As(err, &tie) {
			tie.State = gs.String()
		}
		return winner, level, err
	}
	return winner, level, nil
}
