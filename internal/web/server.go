package web

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"strconv"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	artlog "github.com/peterkuimelis/artheist/internal/log"
	artnet "github.com/peterkuimelis/artheist/internal/net"

	"github.com/peterkuimelis/artheist/internal/game"
	"github.com/peterkuimelis/artheist/internal/sim"
)

// CardInfo is the JSON representation of a card for the /api/cards endpoint.
type CardInfo struct {
	artnet.CardView
	Description string `json:"description"`
}

// PlayResponse is the body of /api/play.
type PlayResponse struct {
	Deal    string              `json:"deal,omitempty"`
	Events  []artnet.EventView  `json:"events"`
	State   *artnet.StateView   `json:"state"`
	Outcome *artnet.OutcomeView `json:"outcome"`
}

// Server is the artheist HTTP API.
type Server struct {
	dealsFile string
	feed      *artnet.Server
	mux       *http.ServeMux
}

// NewServer creates a new web server. Requests override fields of cfg.
func NewServer(dealsFile string, cfg sim.Config) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	s := &Server{
		dealsFile: dealsFile,
		feed:      &artnet.Server{Config: cfg},
		mux:       http.NewServeMux(),
	}
	s.setupRoutes()
	return s, nil
}

func (s *Server) setupRoutes() {
	s.mux.HandleFunc("GET /api/cards", s.handleCards)
	s.mux.HandleFunc("GET /api/deals", s.handleDeals)
	s.mux.HandleFunc("GET /api/simulate", s.handleSimulate)
	s.mux.HandleFunc("GET /api/play", s.handlePlay)

	// WebSocket feed
	s.mux.HandleFunc("GET /ws", s.handleWebSocket)
}

// ServeHTTP lets the server be mounted directly or wrapped by httptest.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) handleCards(w http.ResponseWriter, r *http.Request) {
	table := artnet.CardTable()
	all := game.AllCards()
	cards := make([]CardInfo, len(table))
	for i, cv := range table {
		cards[i] = CardInfo{CardView: cv, Description: all[i].Describe()}
	}
	writeJSON(w, http.StatusOK, cards)
}

func (s *Server) handleDeals(w http.ResponseWriter, r *http.Request) {
	deals, err := loadDeals(s.dealsFile)
	if err != nil {
		log.Printf("Load deals: %v", err)
		http.Error(w, "could not read deals file", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, deals)
}

func (s *Server) handleSimulate(w http.ResponseWriter, r *http.Request) {
	games, err := intParam(r, "games")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	maxPlies, err := intParam(r, "max_plies")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	seed, err := intParam(r, "seed")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	cfg := s.feed.Config.WithOverrides(games, maxPlies, int64(seed))
	if err := cfg.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	res, err := sim.Run(r.Context(), cfg, nil)
	if err != nil {
		log.Printf("Simulate: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, artnet.BuildResultsView(res))
}

func (s *Server) handlePlay(w http.ResponseWriter, r *http.Request) {
	seed, err := intParam(r, "seed")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	maxPlies, err := intParam(r, "max_plies")
	if err != nil || maxPlies < 0 {
		http.Error(w, "max_plies must be a non-negative integer", http.StatusBadRequest)
		return
	}
	dealNumber, err := intParam(r, "deal")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var resp PlayResponse
	cfg := game.MatchConfig{MaxPlies: maxPlies}
	if dealNumber != 0 {
		name, deck, err := game.DealByNumber(s.dealsFile, dealNumber)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		cfg.Deck = &deck
		resp.Deal = name
	}

	resp.Events = []artnet.EventView{}
	cfg.Logger = artlog.FuncLogger(func(e artlog.GameEvent) {
		resp.Events = append(resp.Events, *artnet.BuildEventView(e))
	})

	m, outcome, err := sim.PlayOne(r.Context(), cfg, int64(seed))
	if err != nil {
		log.Printf("Play: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	resp.State = artnet.BuildStateView(m.State)
	resp.Outcome = artnet.BuildOutcomeView(outcome)
	writeJSON(w, http.StatusOK, resp)
}

// handleWebSocket reads one artnet.ClientMessage from the browser and relays
// the feed's replies. With ?addr=host:port the request goes to a remote
// `artheist host`; otherwise it is served in-process.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	wsConn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		InsecureSkipVerify: true, // Allow connections from any origin
	})
	if err != nil {
		log.Printf("WebSocket accept error: %v", err)
		return
	}
	defer wsConn.CloseNow()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	var req artnet.ClientMessage
	if err := wsjson.Read(ctx, wsConn, &req); err != nil {
		wsConn.Close(websocket.StatusPolicyViolation, "expected request message")
		return
	}

	feedConn, err := s.openFeed(ctx, r.URL.Query().Get("addr"))
	if err != nil {
		wsjson.Write(ctx, wsConn, artnet.ServerMessage{Type: artnet.MsgError, Error: err.Error()})
		wsConn.Close(websocket.StatusNormalClosure, "connection failed")
		return
	}
	defer feedConn.Close()

	if err := json.NewEncoder(feedConn).Encode(req); err != nil {
		log.Printf("Feed write request: %v", err)
		return
	}

	// Browser going away cancels the feed.
	go func() {
		for {
			if _, _, err := wsConn.Read(ctx); err != nil {
				cancel()
				return
			}
		}
	}()

	// Feed → WebSocket
	dec := json.NewDecoder(feedConn)
	for {
		var msg json.RawMessage
		if err := dec.Decode(&msg); err != nil {
			if !errors.Is(err, io.EOF) && ctx.Err() == nil {
				log.Printf("Feed read error: %v", err)
			}
			break
		}
		if err := wsConn.Write(ctx, websocket.MessageText, msg); err != nil {
			log.Printf("WebSocket write error: %v", err)
			return
		}
	}

	wsConn.Close(websocket.StatusNormalClosure, "feed ended")
}

// openFeed dials a remote feed, or runs the in-process one over a pipe.
func (s *Server) openFeed(ctx context.Context, addr string) (net.Conn, error) {
	if addr != "" {
		var d net.Dialer
		conn, err := d.DialContext(ctx, "tcp", addr)
		if err != nil {
			return nil, fmt.Errorf("could not connect to feed at %s: %w", addr, err)
		}
		return conn, nil
	}

	clientConn, serverConn := net.Pipe()
	go func() {
		defer serverConn.Close()
		if err := s.feed.Handle(ctx, serverConn); err != nil && ctx.Err() == nil {
			log.Printf("Feed: %v", err)
		}
	}()
	return clientConn, nil
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, s.mux)
}

func intParam(r *http.Request, name string) (int, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer", name)
	}
	return n, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
