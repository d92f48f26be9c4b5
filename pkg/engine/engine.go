// Package engine wires the board, evaluator, search and transposition table into a single
// stateful object suitable for driving from a protocol front end (see pkg/engine/uci).
package engine

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/herohde/copperfish/pkg/board"
	"github.com/herohde/copperfish/pkg/board/fen"
	"github.com/herohde/copperfish/pkg/search"
	"github.com/herohde/copperfish/pkg/search/searchctl"
	"github.com/seekerror/build"
	"github.com/seekerror/logw"
)

var version = build.NewVersion(0, 1, 0)

// Options are engine creation options.
type Options struct {
	// Hash is the transposition table size in MB. If zero, the engine runs without a
	// transposition table.
	Hash uint
	// MaxTime bounds how long Think searches before returning its best move so far.
	MaxTime time.Duration
}

func (o Options) String() string {
	return fmt.Sprintf("{hash=%vMB, maxTime=%v}", o.Hash, o.MaxTime)
}

// Engine encapsulates game state, the zobrist table, the transposition table and search
// driver selection. Think spawns a supervisor/worker goroutine pair and joins it before
// returning; outside of Think the engine itself is only ever touched by the single
// goroutine driving the protocol front end.
type Engine struct {
	name, author string

	factory search.TranspositionTableFactory
	driver  search.Driver
	opts    Options

	mu sync.Mutex
	zt *board.ZobristTable
	tt search.TranspositionTable
	b  *board.Board
}

// Option is an engine creation option.
type Option func(*Engine)

// WithTable configures the engine to use the given transposition table factory instead
// of the default lock-free table.
func WithTable(factory search.TranspositionTableFactory) Option {
	return func(e *Engine) {
		e.factory = factory
	}
}

// WithOptions sets the default runtime options.
func WithOptions(opts Options) Option {
	return func(e *Engine) {
		e.opts = opts
	}
}

// WithDriver overrides the default aspiration-window search driver, e.g. with
// search.MTDF.
func WithDriver(driver search.Driver) Option {
	return func(e *Engine) {
		e.driver = driver
	}
}

// New creates an engine and resets it to the standard starting position. The zobrist and
// transposition tables are (re)created by NewGame and persist until the next NewGame.
func New(ctx context.Context, name, author string, opts ...Option) *Engine {
	e := &Engine{
		name:    name,
		author:  author,
		factory: search.NewTranspositionTable,
		driver:  search.Aspiration,
		opts:    Options{Hash: 32, MaxTime: 2990 * time.Millisecond},
	}
	for _, fn := range opts {
		fn(e)
	}

	e.NewGame(ctx)

	logw.Infof(ctx, "Initialized engine: %v, options=%v", e.Name(), e.opts)
	return e
}

// Name returns the engine name and version, suitable for the UCI "id name" response.
func (e *Engine) Name() string {
	return fmt.Sprintf("%v %v", e.name, version)
}

// Author returns the author, suitable for the UCI "id author" response.
func (e *Engine) Author() string {
	return e.author
}

// NewGame recreates the zobrist table and transposition table and resets the board to
// the standard starting position: TT and killer state must not survive into an unrelated
// game. The zobrist table is also rebuilt from a fresh seed so hash collisions are not
// reproducible across games sharing a process.
func (e *Engine) NewGame(ctx context.Context) {
	e.mu.Lock()
	defer e.mu.Unlock()

	logw.Infof(ctx, "New game, options=%v", e.opts)

	e.zt = board.NewZobristTable(time.Now().UnixNano())
	e.tt = e.newTableLocked(ctx)
	_ = e.resetLocked(fen.Initial)
}

// Reset sets the board to the given FEN position without touching the zobrist or
// transposition tables: a UCI "position" command does not imply "ucinewgame".
func (e *Engine) Reset(ctx context.Context, position string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	err := e.resetLocked(position)
	logw.Debugf(ctx, "Reset %v: %v", position, e.b)
	return err
}

func (e *Engine) resetLocked(position string) error {
	pos, turn, noprogress, fullmoves, err := fen.Decode(position)
	if err != nil {
		return err
	}

	e.b = board.NewBoard(e.zt, pos, turn, noprogress, fullmoves)
	return nil
}

func (e *Engine) newTableLocked(ctx context.Context) search.TranspositionTable {
	if e.opts.Hash == 0 {
		return search.NoTranspositionTable{}
	}
	return e.factory(ctx, uint64(e.opts.Hash)<<20)
}

// Position returns the current position in FEN notation.
func (e *Engine) Position() string {
	e.mu.Lock()
	defer e.mu.Unlock()

	return fen.Encode(e.b.Position(), e.b.Turn(), e.b.NoProgress(), e.b.FullMoves())
}

// Move applies a single move, given in pure algebraic coordinate notation (e.g. "e2e4",
// "e7e8q"), to the current position. An unparseable or illegal move is reported to the
// caller rather than applied; the UCI front end skips a bad move inside a "position ...
// moves" list and goes on with the rest of the list.
func (e *Engine) Move(ctx context.Context, move string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	candidate, err := board.ParseMove(move)
	if err != nil {
		return fmt.Errorf("invalid move %q: %w", move, err)
	}

	turn := e.b.Turn()
	for _, m := range e.b.Position().PseudoLegalMoves(turn) {
		if !candidate.Equals(m) {
			continue
		}
		if !e.b.PushMove(m) {
			return fmt.Errorf("illegal move: %v", m)
		}
		logw.Debugf(ctx, "Move %v: %v", m, e.b)
		return nil
	}
	return fmt.Errorf("invalid move: %v", candidate)
}

// Think runs the time-bounded search on a forked copy of the current board and returns
// the best move found. sink, if non-nil, receives one UCI "info" line per completed
// iteration. The second return is false iff the position has no legal moves (checkmate or
// stalemate): the caller should then emit no "bestmove" line, only "info string No legal
// moves found".
func (e *Engine) Think(ctx context.Context, sink func(string)) (board.Move, bool) {
	e.mu.Lock()
	b := e.b.Fork()
	tt := e.tt
	driver := e.driver
	maxTime := e.opts.MaxTime
	e.mu.Unlock()

	if len(b.Position().LegalMoves(b.Turn())) == 0 {
		logw.Infof(ctx, "Think: no legal moves in %v", b)
		return board.Move{}, false
	}

	sup := searchctl.Supervisor{TT: tt, Driver: driver}
	mv := sup.Think(ctx, b, maxTime, sink)
	return mv, true
}
