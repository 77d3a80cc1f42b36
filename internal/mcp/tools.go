package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	artnet "github.com/peterkuimelis/artheist/internal/net"

	"github.com/peterkuimelis/artheist/internal/game"
	"github.com/peterkuimelis/artheist/internal/sim"
)

// history holds the runs started through the simulate tool (one per stdio process).
var history = NewRunHistory(DefaultHistorySize)

// baseConfig is the simulation configuration tool arguments override, set by main.
var baseConfig = sim.DefaultConfig()

// dealsFile is the path to the deals YAML file, set by main.
var dealsFile string

// SetConfig sets the base simulation configuration.
func SetConfig(cfg sim.Config) {
	baseConfig = cfg
}

// SetDealsFile sets the path to the deals YAML file.
func SetDealsFile(path string) {
	dealsFile = path
}

// RegisterTools adds all simulation tools to the MCP server.
func RegisterTools(s *server.MCPServer) {
	s.AddTool(simulateTool(), handleSimulate)
	s.AddTool(getRunTool(), handleGetRun)
	s.AddTool(playGameTool(), handlePlayGame)
	s.AddTool(cardTableTool(), handleCardTable)
}

// --- Tool definitions ---

func simulateTool() mcp.Tool {
	return mcp.NewTool("simulate",
		mcp.WithDescription("Run a Monte Carlo simulation of the art heist card game and return win, loss and stalemate counts. "+
			"The result is remembered under its run_id for get_run."),
		mcp.WithNumber("games", mcp.Description("Number of games to play (default from the server config)")),
		mcp.WithNumber("max_plies", mcp.Description("Stalemate after this many plies (default 16)")),
		mcp.WithNumber("seed", mcp.Description("Base seed; the same seed reproduces the same counts. 0 seeds from the clock")),
	)
}

func getRunTool() mcp.Tool {
	return mcp.NewTool("get_run",
		mcp.WithDescription("Fetch the results of an earlier simulate call. Read-only."),
		mcp.WithString("run_id", mcp.Required(), mcp.Description("run_id returned by simulate")),
	)
}

func playGameTool() mcp.Tool {
	return mcp.NewTool("play_game",
		mcp.WithDescription("Play one game and return every event, the final table and the outcome."),
		mcp.WithNumber("seed", mcp.Description("Seed for the deal and every random decision. 0 seeds from the clock")),
		mcp.WithNumber("max_plies", mcp.Description("Stalemate after this many plies (default 16)")),
		mcp.WithNumber("deal", mcp.Description("1-indexed fixed deal from the deals file instead of a shuffled deck")),
	)
}

func cardTableTool() mcp.Tool {
	return mcp.NewTool("card_table",
		mcp.WithDescription("List the nine cards with their artist, value and flags. Read-only."),
	)
}

// --- Tool handlers ---

func handleSimulate(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	games := request.GetInt("games", 0)
	maxPlies := request.GetInt("max_plies", 0)
	seed := int64(request.GetInt("seed", 0))

	if games < 0 {
		return mcp.NewToolResultError("games must be >= 1"), nil
	}
	if maxPlies < 0 {
		return mcp.NewToolResultError("max_plies must be >= 1"), nil
	}

	cfg := baseConfig.WithOverrides(games, maxPlies, seed)
	res, err := sim.Run(ctx, cfg, nil)
	if err != nil {
		return mcp.NewToolResultErrorf("Simulation failed: %v", err), nil
	}

	rv := artnet.BuildResultsView(res)
	if err := history.Add(rv); err != nil {
		return mcp.NewToolResultErrorf("Failed to store run: %v", err), nil
	}

	return mcp.NewToolResultText(respondJSON(&ToolResponse{Results: rv})), nil
}

func handleGetRun(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	runID := request.GetString("run_id", "")
	if runID == "" {
		return mcp.NewToolResultError("run_id is required"), nil
	}

	rv, err := history.Get(runID)
	if err != nil {
		return mcp.NewToolResultErrorf("%v. Known runs: %v", err, history.IDs()), nil
	}

	return mcp.NewToolResultText(respondJSON(&ToolResponse{Results: rv})), nil
}

func handlePlayGame(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	seed := int64(request.GetInt("seed", 0))
	maxPlies := request.GetInt("max_plies", 0)
	dealNumber := request.GetInt("deal", 0)

	if maxPlies < 0 {
		return mcp.NewToolResultError("max_plies must be >= 1"), nil
	}

	recorder := &eventRecorder{}
	cfg := game.MatchConfig{Logger: recorder, MaxPlies: maxPlies}

	resp := &ToolResponse{}
	if dealNumber != 0 {
		name, deck, err := game.DealByNumber(dealsFile, dealNumber)
		if err != nil {
			return mcp.NewToolResultErrorf("Failed to load deal: %v", err), nil
		}
		cfg.Deck = &deck
		resp.Deal = name
	}

	m, outcome, err := sim.PlayOne(ctx, cfg, seed)
	if err != nil {
		return mcp.NewToolResultErrorf("Game failed: %v", err), nil
	}

	resp.Events = recorder.events
	resp.State = artnet.BuildStateView(m.State)
	resp.Outcome = artnet.BuildOutcomeView(outcome)

	return mcp.NewToolResultText(respondJSON(resp)), nil
}

func handleCardTable(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(respondJSON(&ToolResponse{Cards: artnet.CardTable()})), nil
}

