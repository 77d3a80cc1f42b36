package game

import "fmt"

// SameArtistBonus is added when both cards in a hand share an artist.
const SameArtistBonus = 2

// Hand is the ordered pair of cards held by one player.
type Hand [2]Card

func (h Hand) String() string {
	return fmt.Sprintf("[%s, %s]", h[0], h[1])
}

// HasPullAlarm reports whether either card can trigger the alarm.
func (h Hand) HasPullAlarm() bool {
	return h[0].IsPullAlarm() || h[1].IsPullAlarm()
}

// Score is a derived snapshot of a hand's scoring statistics.
type Score struct {
	Score               int
	MasterpieceCount    int
	MaxMasterpieceScore int // 0 when MasterpieceCount is 0
	EarlyWorkCount      int
	MaxEarlyWorkScore   int // 0 when EarlyWorkCount is 0
}

// CalculateScore computes the hand's score and tie-break statistics.
func (h Hand) CalculateScore() Score {
	a, b := h[0], h[1]
	s := Score{Score: a.Value() + b.Value()}
	if a.Artist() == b.Artist() {
		s.Score += SameArtistBonus
	}
	for _, c := range h {
		if c.IsMasterpiece() {
			s.MasterpieceCount++
			s.MaxMasterpieceScore = max(s.MaxMasterpieceScore, c.Value())
		}
		if c.IsEarlyWork() {
			s.EarlyWorkCount++
			s.MaxEarlyWorkScore = max(s.MaxEarlyWorkScore, c.Value())
		}
	}
	return s
}
