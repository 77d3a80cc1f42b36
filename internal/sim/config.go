package sim

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/peterkuimelis/artheist/internal/game"
)

const (
	DefaultGames         = 1_000_000
	DefaultProgressEvery = 100_000
)

// Config holds the configuration for a simulation run.
type Config struct {
	Games         int   `yaml:"games" env:"ARTHEIST_GAMES"`
	MaxPlies      int   `yaml:"max_plies" env:"ARTHEIST_MAX_PLIES"`
	Seed          int64 `yaml:"seed" env:"ARTHEIST_SEED"`                     // 0 seeds from the clock
	Workers       int   `yaml:"workers" env:"ARTHEIST_WORKERS"`               // 0 uses runtime.NumCPU
	ProgressEvery int   `yaml:"progress_every" env:"ARTHEIST_PROGRESS_EVERY"` // 0 disables progress reports
}

// DefaultConfig is a million games capped at 16 plies.
func DefaultConfig() Config {
	return Config{
		Games:         DefaultGames,
		MaxPlies:      game.DefaultMaxPlies,
		Workers:       runtime.NumCPU(),
		ProgressEvery: DefaultProgressEvery,
	}
}

// LoadConfig layers a YAML file (if path is non-empty) and ARTHEIST_* environment
// variables over the defaults. Flags are applied by the caller afterwards.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, err
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config YAML: %w", err)
		}
	}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

func (cfg Config) Validate() error {
	if cfg.Games < 1 {
		return errors.New("games must be at least 1")
	}
	if cfg.MaxPlies < 1 {
		return errors.New("max plies must be at least 1")
	}
	if cfg.Workers < 0 {
		return errors.New("workers cannot be negative")
	}
	if cfg.ProgressEvery < 0 {
		return errors.New("progress interval cannot be negative")
	}
	return nil
}

// WithOverrides returns cfg with every non-zero argument replacing its field.
// Remote requests use it to adjust a server's base configuration.
func (cfg Config) WithOverrides(games, maxPlies int, seed int64) Config {
	if games != 0 {
		cfg.Games = games
	}
	if maxPlies != 0 {
		cfg.MaxPlies = maxPlies
	}
	if seed != 0 {
		cfg.Seed = seed
	}
	return cfg
}

func (cfg Config) workerCount() int {
	if cfg.Workers > 0 {
		return cfg.Workers
	}
	return runtime.NumCPU()
}
