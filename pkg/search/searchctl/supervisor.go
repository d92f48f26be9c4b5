// Package searchctl supervises a search worker against a wall-clock deadline.
package searchctl

import (
	"context"
	"sync"
	"time"

	"github.com/herohde/copperfish/pkg/board"
	"github.com/herohde/copperfish/pkg/search"
	"github.com/seekerror/logw"
	"go.uber.org/atomic"
)

const pollInterval = 10 * time.Millisecond

// Supervisor runs iterative deepening on a worker goroutine and enforces a wall-clock
// deadline on it, polling in small increments rather than blocking on a single timer so
// that the stop signal lands promptly regardless of what the worker is doing.
type Supervisor struct {
	TT search.TranspositionTable
	// Driver is the per-depth search driver; defaults to search.Aspiration.
	Driver search.Driver
}

// Think searches b for at most maxTime and returns the best move found. sink, if
// non-nil, receives UCI "info" lines as iterations complete. Exactly two goroutines are
// active for the duration of the call: this one (the supervisor) and the worker running
// the iterative deepening loop.
func (s Supervisor) Think(ctx context.Context, b *board.Board, maxTime time.Duration, sink func(string)) board.Move {
	driver := s.Driver
	if driver == nil {
		driver = search.Aspiration
	}

	stop := atomic.NewBool(false)

	var mu sync.Mutex
	var best board.Move

	done := make(chan struct{})
	go func() {
		defer close(done)
		mv, _ := search.Iterative(b, 1, s.TT, stop, driver, sink)
		mu.Lock()
		best = mv
		mu.Unlock()
	}()

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()
	timeout := time.After(maxTime)

loop:
	for {
		select {
		case <-done:
			break loop
		case <-timeout:
			break loop
		case <-ticker.C:
		}
	}

	// Idempotent: the worker may have already stopped itself on mate detection.
	stop.Store(true)
	<-done // never read best until the worker has observed stop and returned.

	mu.Lock()
	defer mu.Unlock()

	if best.IsZero() {
		if entry, ok := s.TT.Read(b.Hash()); ok {
			logw.Debugf(ctx, "Think: no completed iteration, falling back to TT bestmove %v", entry.Best)
			return entry.Best
		}
	}
	return best
}
