package net

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"strings"
)

// Client renders a server's message stream as text.
type Client struct {
	conn io.Reader
	out  io.Writer
}

// Connect dials addr, sends req and renders the reply stream to out until
// the server finishes.
func Connect(ctx context.Context, addr string, req ClientMessage, out io.Writer) error {
	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer conn.Close()

	stop := context.AfterFunc(ctx, func() { conn.Close() })
	defer stop()

	if err := json.NewEncoder(conn).Encode(req); err != nil {
		return fmt.Errorf("send %s: %w", req.Type, err)
	}

	return NewClient(conn, out).Watch()
}

// NewClient renders messages read from conn to out.
func NewClient(conn io.Reader, out io.Writer) *Client {
	return &Client{conn: conn, out: out}
}

// Watch reads server messages until a results, game_over or error message.
func (c *Client) Watch() error {
	dec := json.NewDecoder(c.conn)

	for {
		var msg ServerMessage
		if err := dec.Decode(&msg); err != nil {
			if errors.Is(err, io.EOF) {
				return errors.New("server closed the connection")
			}
			return fmt.Errorf("read message: %w", err)
		}

		switch msg.Type {
		case MsgProgress:
			if msg.Progress != nil {
				fmt.Fprintf(c.out, "Game %d\n", msg.Progress.Completed)
			}

		case MsgEvent:
			c.renderEvent(msg.Event)

		case MsgState:
			c.renderState(msg.State)

		case MsgResults:
			c.renderResults(msg.Results)
			return nil

		case MsgGameOver:
			c.renderGameOver(msg.Outcome)
			return nil

		case MsgError:
			return fmt.Errorf("server: %s", msg.Error)
		}
	}
}

func (c *Client) renderEvent(ev *EventView) {
	if ev == nil {
		return
	}
	// Format like the TextLogger
	kind := ev.Type
	for len(kind) < 16 {
		kind += " "
	}
	fmt.Fprintf(c.out, "P%-2d %s| %s\n", ev.Ply, kind, ev.Details)
}

func (c *Client) renderState(sv *StateView) {
	if sv == nil {
		return
	}

	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, "╔══════════════════════════════════════════════════════╗")
	for p, hand := range sv.Hands {
		fmt.Fprintf(c.out, "║  P%d: %-40s score %d\n", p+1, strings.Join(hand.Cards, ", "), hand.Score.Score)
	}
	fmt.Fprintln(c.out, "║──────────────────────────────────────────────────────")
	fmt.Fprintf(c.out, "║  Gallery:    %s\n", strings.Join(sv.Gallery, ", "))
	fmt.Fprintf(c.out, "║  Collection: %d face-down\n", sv.CollectionCount)
	fmt.Fprintln(c.out, "╚══════════════════════════════════════════════════════╝")
	fmt.Fprintf(c.out, "Ply %d | %s to play\n", sv.Ply, sv.ToPlay)
}

func (c *Client) renderGameOver(ov *OutcomeView) {
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, "═══════════════════════════════════")
	fmt.Fprintln(c.out, "          GAME OVER")
	fmt.Fprintln(c.out, "═══════════════════════════════════")
	if ov != nil {
		if ov.Stalemate {
			fmt.Fprintf(c.out, "Stalemate after %d plies\n", ov.Plies)
		} else {
			fmt.Fprintf(c.out, "%s wins after %d plies (%s, decided by %s)\n", ov.Winner, ov.Plies, ov.Reason, ov.DecidedBy)
		}
	}
	fmt.Fprintln(c.out, "═══════════════════════════════════")
}

func (c *Client) renderResults(rv *ResultsView) {
	if rv == nil {
		return
	}
	fmt.Fprintf(c.out, "Run %s (seed %d): %d games in %dms\n", rv.RunID, rv.Seed, rv.Games, rv.DurationMs)
	fmt.Fprintln(c.out, rv.Summary)
	fmt.Fprintf(c.out, "  avg plies %.2f\n", rv.AveragePlies)
}
