package game

import "testing"

func TestCalculateScore(t *testing.T) {
	tests := []struct {
		name string
		hand Hand
		want Score
	}{
		{
			name: "different artists",
			hand: Hand{MonaLisa, WaterLilies},
			want: Score{Score: 8, MasterpieceCount: 1, MaxMasterpieceScore: 4},
		},
		{
			name: "same artist bonus",
			hand: Hand{WaterLilies, Haystacks},
			want: Score{Score: 8},
		},
		{
			name: "two masterpieces",
			hand: Hand{Guernica, TheNightWatch},
			want: Score{Score: 5, MasterpieceCount: 2, MaxMasterpieceScore: 3},
		},
		{
			name: "masterpiece and early work of one artist",
			hand: Hand{Sunflowers, ThePotatoEaters},
			want: Score{Score: 6, MasterpieceCount: 1, MaxMasterpieceScore: 2, EarlyWorkCount: 1, MaxEarlyWorkScore: 2},
		},
		{
			name: "two early works",
			hand: Hand{BlueNude, ThePotatoEaters},
			want: Score{Score: 5, EarlyWorkCount: 2, MaxEarlyWorkScore: 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.hand.CalculateScore(); got != tt.want {
				t.Errorf("CalculateScore(%s) = %+v, want %+v", tt.hand, got, tt.want)
			}
		})
	}
}

// TestScoreProperties checks every ordered pair of distinct cards.
func TestScoreProperties(t *testing.T) {
	for _, a := range AllCards() {
		for _, b := range AllCards() {
			if a == b {
				continue
			}
			s := Hand{a, b}.CalculateScore()

			if swapped := (Hand{b, a}).CalculateScore(); swapped != s {
				t.Errorf("%s/%s: score not symmetric: %+v vs %+v", a, b, s, swapped)
			}

			base := a.Value() + b.Value()
			if a.Artist() == b.Artist() {
				if s.Score != base+SameArtistBonus {
					t.Errorf("%s/%s: same artist score = %d, want %d", a, b, s.Score, base+SameArtistBonus)
				}
			} else if s.Score != base {
				t.Errorf("%s/%s: score = %d, want %d", a, b, s.Score, base)
			}

			if s.MasterpieceCount < 0 || s.MasterpieceCount > 2 {
				t.Errorf("%s/%s: masterpiece count %d out of range", a, b, s.MasterpieceCount)
			}
			if s.EarlyWorkCount < 0 || s.EarlyWorkCount > 2 {
				t.Errorf("%s/%s: early work count %d out of range", a, b, s.EarlyWorkCount)
			}
			if (s.MaxMasterpieceScore == 0) != (s.MasterpieceCount == 0) {
				t.Errorf("%s/%s: max masterpiece %d with count %d", a, b, s.MaxMasterpieceScore, s.MasterpieceCount)
			}
			if (s.MaxEarlyWorkScore == 0) != (s.EarlyWorkCount == 0) {
				t.Errorf("%s/%s: max early work %d with count %d", a, b, s.MaxEarlyWorkScore, s.EarlyWorkCount)
			}
		}
	}
}

func TestHandHasPullAlarm(t *testing.T) {
	if (Hand{WaterLilies, MonaLisa}).HasPullAlarm() {
		t.Error("WaterLilies/MonaLisa should not hold an alarm card")
	}
	if !(Hand{WaterLilies, Sunflowers}).HasPullAlarm() {
		t.Error("Sunflowers should be an alarm card")
	}
}
