package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/server"

	artmcp "github.com/peterkuimelis/artheist/internal/mcp"
	"github.com/peterkuimelis/artheist/internal/sim"
)

func main() {
	configFile := flag.String("config", "", "path to simulation config YAML")
	deals := flag.String("deals", "deals.yaml", "path to deals YAML file")
	flag.Parse()

	cfg, err := sim.LoadConfig(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	// Tool calls block the stdio session, so default to runs that finish quickly.
	if *configFile == "" && os.Getenv("ARTHEIST_GAMES") == "" {
		cfg.Games = 100_000
	}

	artmcp.SetConfig(cfg)
	artmcp.SetDealsFile(*deals)

	s := server.NewMCPServer("artheist", "1.0.0")
	artmcp.RegisterTools(s)

	if err := server.ServeStdio(s); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
