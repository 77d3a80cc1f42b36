package game

import (
	"math/rand"
	"time"
)

// Rand is the source of every random decision in a game.
// *math/rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	Intn(n int) int
	Shuffle(n int, swap func(i, j int))
}

// NewRand returns a seeded generator. Seed 0 uses the current time.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// chance reports true with probability p.
func chance(rng Rand, p float64) bool {
	return rng.Float64() < p
}
