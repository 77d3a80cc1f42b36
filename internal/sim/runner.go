// Package sim runs many independent random games and tallies the outcomes.
package sim

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/peterkuimelis/artheist/internal/game"
)

// Progress reports how many games have finished.
type Progress struct {
	Completed int
	Total     int
}

func (p Progress) String() string {
	return fmt.Sprintf("Game %d", p.Completed)
}

// Run plays cfg.Games games across a worker pool. Game i draws all of its
// randomness from a generator seeded with gameSeed(seed, i), so a non-zero
// seed gives the same Results whatever the worker count. Any game error is
// fatal: the run is cancelled and the error returned.
func Run(ctx context.Context, cfg Config, progress func(Progress)) (Results, error) {
	if err := cfg.Validate(); err != nil {
		return Results{}, fmt.Errorf("invalid config: %w", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	start := time.Now()

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		errOnce sync.Once
		runErr  error
	)
	fail := func(err error) {
		errOnce.Do(func() {
			runErr = err
			cancel()
		})
	}

	workerCount := min(cfg.workerCount(), cfg.Games)
	jobs := make(chan int, workerCount)
	output := make(chan game.Outcome, 1024)

	workers := &sync.WaitGroup{}
	workers.Add(workerCount)
	for i := 0; i < workerCount; i++ {
		go func() {
			defer workers.Done()
			for gameIndex := range jobs {
				outcome, err := game.RunMatch(runCtx, game.MatchConfig{
					Rand:     rand.New(rand.NewSource(gameSeed(seed, gameIndex))),
					MaxPlies: cfg.MaxPlies,
				})
				if err != nil {
					fail(fmt.Errorf("game %d: %w", gameIndex, err))
					continue
				}
				output <- outcome
			}
		}()
	}

	go func() {
		defer close(jobs)
		for i := 0; i < cfg.Games; i++ {
			select {
			case jobs <- i:
			case <-runCtx.Done():
				return
			}
		}
	}()

	go func() {
		workers.Wait()
		close(output)
	}()

	results := newResults(seed, cfg.MaxPlies)
	for outcome := range output {
		results.record(outcome)
		if progress != nil && cfg.ProgressEvery > 0 && results.Games%cfg.ProgressEvery == 0 {
			progress(Progress{Completed: results.Games, Total: cfg.Games})
		}
	}
	results.Duration = time.Since(start)

	if err := ctx.Err(); err != nil {
		return results, err
	}
	if runErr != nil {
		return results, runErr
	}
	return results, nil
}

// PlayOne plays a single game with the given seed and logger.
func PlayOne(ctx context.Context, cfg game.MatchConfig, seed int64) (*game.Match, game.Outcome, error) {
	if cfg.Rand == nil {
		cfg.Rand = game.NewRand(seed)
	}
	m := game.NewMatch(cfg)
	outcome, err := m.Run(ctx)
	return m, outcome, err
}

// gameSeed mixes the base seed with the game index for distinct, reproducible streams.
func gameSeed(baseSeed int64, gameIndex int) int64 {
	x := uint64(baseSeed) + uint64(gameIndex) + 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}
