package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/peterkuimelis/artheist/internal/game"
	"github.com/peterkuimelis/artheist/internal/log"
	artnet "github.com/peterkuimelis/artheist/internal/net"
	"github.com/peterkuimelis/artheist/internal/sim"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	switch cmd {
	case "simulate":
		runSimulate(os.Args[2:])
	case "play":
		runPlay(os.Args[2:])
	case "host":
		runHost(os.Args[2:])
	case "watch":
		runWatch(os.Args[2:])
	default:
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  artheist simulate [--config FILE] [--games N] [--plies N] [--seed S] [--workers N] [--progress N] [-v]")
	fmt.Println("  artheist play [--seed S] [--plies N] [--deals FILE --deal N]")
	fmt.Println("  artheist host [--config FILE] [--port P]")
	fmt.Println("  artheist watch [--addr ADDR] [--games N] [--plies N] [--seed S] [--play]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  simulate  Play many random games and print the win/stalemate counts")
	fmt.Println("  play      Play one game and print every move")
	fmt.Println("  host      Serve simulations and games to watchers over TCP")
	fmt.Println("  watch     Ask a host for a simulation or a game and print the stream")
	fmt.Println()
	fmt.Println("Environment: ARTHEIST_GAMES, ARTHEIST_MAX_PLIES, ARTHEIST_SEED, ARTHEIST_WORKERS, ARTHEIST_PROGRESS_EVERY")
}

func runSimulate(args []string) {
	fs := flag.NewFlagSet("simulate", flag.ExitOnError)
	configFile := fs.String("config", "", "path to simulation config YAML")
	games := fs.Int("games", sim.DefaultGames, "number of games to play")
	plies := fs.Int("plies", game.DefaultMaxPlies, "stalemate after this many plies")
	seed := fs.Int64("seed", 0, "base seed (0 seeds from the clock)")
	workers := fs.Int("workers", 0, "worker goroutines (0 = one per CPU)")
	progress := fs.Int("progress", sim.DefaultProgressEvery, "print progress every N games (0 disables)")
	verbose := fs.Bool("v", false, "print the full breakdown after the summary")
	fs.Parse(args)

	cfg, err := sim.LoadConfig(*configFile)
	if err != nil {
		fatal(err)
	}

	// Flags given on the command line win over the file and environment.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "games":
			cfg.Games = *games
		case "plies":
			cfg.MaxPlies = *plies
		case "seed":
			cfg.Seed = *seed
		case "workers":
			cfg.Workers = *workers
		case "progress":
			cfg.ProgressEvery = *progress
		}
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	res, err := sim.Run(ctx, cfg, func(p sim.Progress) {
		fmt.Println(p)
	})
	if err != nil {
		fatal(err)
	}

	fmt.Println(res)
	if *verbose {
		res.WriteSummary(os.Stdout)
	}
}

func runPlay(args []string) {
	fs := flag.NewFlagSet("play", flag.ExitOnError)
	seed := fs.Int64("seed", 0, "seed for the deal and every decision (0 seeds from the clock)")
	plies := fs.Int("plies", game.DefaultMaxPlies, "stalemate after this many plies")
	dealsFile := fs.String("deals", "deals.yaml", "path to deals YAML file")
	deal := fs.Int("deal", 0, "deal number to use from the deals file (0 shuffles)")
	fs.Parse(args)

	cfg := game.MatchConfig{
		Logger:   log.NewTextLogger(os.Stdout),
		MaxPlies: *plies,
	}
	if *deal != 0 {
		name, deck, err := game.DealByNumber(*dealsFile, *deal)
		if err != nil {
			fatal(err)
		}
		fmt.Printf("Deal: %s\n", name)
		cfg.Deck = &deck
	}

	m, outcome, err := sim.PlayOne(context.Background(), cfg, *seed)
	if err != nil {
		fatal(err)
	}

	fmt.Println()
	fmt.Println(m.State)
	fmt.Println(outcome)
}

func runHost(args []string) {
	fs := flag.NewFlagSet("host", flag.ExitOnError)
	configFile := fs.String("config", "", "path to simulation config YAML")
	port := fs.String("port", "9000", "TCP port to listen on")
	fs.Parse(args)

	cfg, err := sim.LoadConfig(*configFile)
	if err != nil {
		fatal(err)
	}
	if err := cfg.Validate(); err != nil {
		fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	srv := &artnet.Server{
		Port:   *port,
		Config: cfg,
	}
	if err := srv.Run(ctx); err != nil {
		fatal(err)
	}
}

func runWatch(args []string) {
	fs := flag.NewFlagSet("watch", flag.ExitOnError)
	addr := fs.String("addr", "localhost:9000", "host address to connect to")
	games := fs.Int("games", 0, "number of games (0 uses the host's setting)")
	plies := fs.Int("plies", 0, "ply cap (0 uses the host's setting)")
	seed := fs.Int64("seed", 0, "base seed (0 seeds from the clock)")
	play := fs.Bool("play", false, "watch a single game instead of a simulation")
	fs.Parse(args)

	req := artnet.ClientMessage{
		Type:     artnet.ReqSimulate,
		Games:    *games,
		MaxPlies: *plies,
		Seed:     *seed,
	}
	if *play {
		req.Type = artnet.ReqPlay
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := artnet.Connect(ctx, *addr, req, os.Stdout); err != nil {
		fatal(err)
	}
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
