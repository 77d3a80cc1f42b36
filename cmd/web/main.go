package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/peterkuimelis/artheist/internal/sim"
	"github.com/peterkuimelis/artheist/internal/web"
)

func main() {
	port := flag.Int("port", 8080, "HTTP port to listen on")
	configFile := flag.String("config", "", "path to simulation config YAML")
	dealsFile := flag.String("deals", "deals.yaml", "path to deals YAML file")
	flag.Parse()

	cfg, err := sim.LoadConfig(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	srv, err := web.NewServer(*dealsFile, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	addr := fmt.Sprintf(":%d", *port)
	log.Printf("artheist API listening on http://localhost:%d", *port)
	if err := srv.ListenAndServe(addr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
