// Package uci contains a driver for using the engine under the Universal Chess
// Interface protocol, restricted to six commands: uci, isready, ucinewgame, position, go
// and quit.
//
// See: http://wbec-ridderkerk.nl/html/UCIProtocol.html
package uci

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/herohde/copperfish/pkg/board/fen"
	"github.com/herohde/copperfish/pkg/engine"
	"github.com/seekerror/logw"
)

// ProtocolName is the first line a front end reads from stdin to select this protocol.
const ProtocolName = "uci"

// Driver implements the UCI command loop for a single Engine. Activated on "uci".
type Driver struct {
	e   *engine.Engine
	out chan<- string

	lastPosition string // last "position" line seen, empty if none yet

	quit   chan struct{}
	closed atomic.Bool
}

// NewDriver starts the driver's processing goroutine, reading UCI lines from in and
// writing protocol output lines to the returned channel. The driver closes the output
// channel and its Closed() channel when in is closed or "quit" is received.
func NewDriver(ctx context.Context, e *engine.Engine, in <-chan string) (*Driver, <-chan string) {
	out := make(chan string, 100)
	d := &Driver{
		e:    e,
		out:  out,
		quit: make(chan struct{}),
	}
	go d.process(ctx, in)

	return d, out
}

// Close requests the driver to stop. Idempotent.
func (d *Driver) Close() {
	if d.closed.CompareAndSwap(false, true) {
		close(d.quit)
	}
}

// Closed returns a channel that is closed once the driver has stopped.
func (d *Driver) Closed() <-chan struct{} {
	return d.quit
}

func (d *Driver) process(ctx context.Context, in <-chan string) {
	defer d.Close()
	defer close(d.out)

	logw.Infof(ctx, "UCI protocol initialized")

	d.out <- fmt.Sprintf("id name %v", d.e.Name())
	d.out <- fmt.Sprintf("id author %v", d.e.Author())
	d.out <- "uciok"

	for line := range in {
		if d.dispatch(ctx, line) {
			return
		}
	}
	logw.Infof(ctx, "Input stream closed. Exiting")
}

// dispatch handles a single input line. It returns true iff the driver should stop.
func (d *Driver) dispatch(ctx context.Context, line string) bool {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return false // blank line: the front end is deliberately permissive
	}

	cmd, args := strings.ToLower(parts[0]), parts[1:]

	switch cmd {
	case "uci":
		// Already greeted unconditionally at startup; repeat is harmless to ignore.

	case "isready":
		d.out <- "readyok"

	case "ucinewgame":
		d.e.NewGame(ctx)
		d.lastPosition = ""

	case "position":
		d.handlePosition(ctx, line, args)

	case "go":
		d.handleGo(ctx)

	case "quit":
		return true

	default:
		// Malformed or unrecognized command: ignore silently, but keep a debug trail for
		// operators.
		logw.Debugf(ctx, "Ignoring unrecognized command %q", line)
	}
	return false
}

func (d *Driver) handlePosition(ctx context.Context, line string, args []string) {
	if d.lastPosition != "" && strings.HasPrefix(line, d.lastPosition) {
		// Continuation of the same game: apply only the newly appended moves.
		rest := strings.TrimSpace(strings.TrimPrefix(line, d.lastPosition))
		d.applyMoves(ctx, strings.Fields(rest))
		d.lastPosition = line
		return
	}

	position := fen.Initial
	rest := args
	switch {
	case len(args) >= 1 && args[0] == "fen":
		if len(args) < 7 {
			logw.Debugf(ctx, "Malformed position fen command: %q", line)
			return
		}
		position = strings.Join(args[1:7], " ")
		rest = args[7:]
	case len(args) >= 1 && args[0] == "startpos":
		rest = args[1:]
	case len(args) >= 1:
		logw.Debugf(ctx, "Malformed position command: %q", line)
		return
	}

	if err := d.e.Reset(ctx, position); err != nil {
		logw.Debugf(ctx, "Invalid position %q: %v", line, err)
		return
	}

	moves := rest
	if len(moves) > 0 && moves[0] == "moves" {
		moves = moves[1:]
	}
	d.applyMoves(ctx, moves)
	d.lastPosition = line
}

// applyMoves plays each UCI move in order, skipping any that fail to parse or apply: a bad
// move is skipped without advancing the side to move for that one move, but subsequent
// moves in the list are still attempted against the position as it stood before it.
func (d *Driver) applyMoves(ctx context.Context, moves []string) {
	for _, mv := range moves {
		if err := d.e.Move(ctx, mv); err != nil {
			logw.Debugf(ctx, "Skipping invalid move %q: %v", mv, err)
		}
	}
}

func (d *Driver) handleGo(ctx context.Context) {
	mv, ok := d.e.Think(ctx, func(info string) {
		d.out <- info
	})
	if !ok {
		d.out <- "info string No legal moves found"
		return
	}
	d.out <- fmt.Sprintf("bestmove %v", mv)
}
