package net

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"sync"

	"github.com/peterkuimelis/artheist/internal/game"
	"github.com/peterkuimelis/artheist/internal/log"
	"github.com/peterkuimelis/artheist/internal/sim"
)

// Server streams simulations and single games to TCP watchers.
type Server struct {
	Port   string
	Config sim.Config // base configuration; request fields override it
}

// Run listens on s.Port and serves watchers until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", ":"+s.Port)
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	fmt.Printf("Waiting for watchers on port %s...\n", s.Port)
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln, one goroutine per watcher. It closes ln on return.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	defer ln.Close()
	stop := context.AfterFunc(ctx, func() { ln.Close() })
	defer stop()

	var wg sync.WaitGroup
	defer wg.Wait()

	for {
		conn, err := ln.Accept()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("accept: %w", err)
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer conn.Close()
			if err := s.Handle(ctx, conn); err != nil && !errors.Is(err, io.EOF) {
				fmt.Printf("Watcher %s: %v\n", conn.RemoteAddr(), err)
			}
		}()
	}
}

// Handle reads one request from conn and streams the response.
func (s *Server) Handle(ctx context.Context, conn io.ReadWriter) error {
	var req ClientMessage
	if err := json.NewDecoder(conn).Decode(&req); err != nil {
		return fmt.Errorf("read request: %w", err)
	}

	feed := newStreamWriter(conn)
	switch req.Type {
	case ReqSimulate:
		return s.simulate(ctx, feed, req)
	case ReqPlay:
		return s.play(ctx, feed, req)
	default:
		return feed.fail(fmt.Errorf("unknown request type %q", req.Type))
	}
}

func (s *Server) simulate(ctx context.Context, feed *streamWriter, req ClientMessage) error {
	cfg := s.Config.WithOverrides(req.Games, req.MaxPlies, req.Seed)

	// A watcher that hangs up stops the run.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	res, err := sim.Run(ctx, cfg, func(p sim.Progress) {
		err := feed.send(ServerMessage{
			Type:     MsgProgress,
			Progress: &ProgressView{Completed: p.Completed, Total: p.Total},
		})
		if err != nil {
			cancel()
		}
	})
	if err := feed.err(); err != nil {
		return err
	}
	if err != nil {
		return feed.fail(err)
	}
	return feed.send(ServerMessage{Type: MsgResults, Results: BuildResultsView(res)})
}

func (s *Server) play(ctx context.Context, feed *streamWriter, req ClientMessage) error {
	maxPlies := req.MaxPlies
	if maxPlies == 0 {
		maxPlies = s.Config.MaxPlies
	}
	logger := log.FuncLogger(func(e log.GameEvent) {
		_ = feed.send(ServerMessage{Type: MsgEvent, Event: BuildEventView(e)})
	})

	m, outcome, err := sim.PlayOne(ctx, game.MatchConfig{Logger: logger, MaxPlies: maxPlies}, req.Seed)
	if err != nil {
		return feed.fail(err)
	}
	if err := feed.send(ServerMessage{Type: MsgState, State: BuildStateView(m.State)}); err != nil {
		return err
	}
	return feed.send(ServerMessage{Type: MsgGameOver, Outcome: BuildOutcomeView(outcome)})
}

// streamWriter serialises messages onto one connection. The first write error sticks.
type streamWriter struct {
	mu      sync.Mutex
	enc     *json.Encoder
	sendErr error
}

func newStreamWriter(w io.Writer) *streamWriter {
	return &streamWriter{enc: json.NewEncoder(w)}
}

// send writes msg unless an earlier write failed, in which case it returns that error.
func (f *streamWriter) send(msg ServerMessage) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.sendErr != nil {
		return f.sendErr
	}
	if err := f.enc.Encode(msg); err != nil {
		f.sendErr = fmt.Errorf("send %s: %w", msg.Type, err)
	}
	return f.sendErr
}

func (f *streamWriter) err() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.sendErr
}

// fail reports err to the watcher and returns it.
func (f *streamWriter) fail(err error) error {
	_ = f.send(ServerMessage{Type: MsgError, Error: err.Error()})
	return err
}
