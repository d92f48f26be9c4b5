package search

import (
	"github.com/herohde/copperfish/pkg/board"
	"go.uber.org/atomic"
)

// MTDF searches depth plies via MTD(f): a sequence of zero-width re-searches that
// converge lower and upper bounds around guess, relying entirely on the transposition
// table to make each re-search cheap. The root best move is read back from the table
// once the bounds converge.
func MTDF(b *board.Board, depth int, guess board.Score, tt TranspositionTable, killers *KillerTable, stop *atomic.Bool) (board.Move, board.Score) {
	maximizing := b.Turn() == board.White

	g := guess
	lower, upper := board.BlackMate, board.WhiteMate

	for lower < upper {
		if stop.Load() {
			break
		}

		beta := g
		if lower+1 > beta {
			beta = lower + 1
		}

		_, g = AlphaBeta(b, depth, beta-1, beta, maximizing, tt, killers, stop)
		if g < beta {
			upper = g
		} else {
			lower = g
		}
	}

	var best board.Move
	if entry, ok := tt.Read(b.Hash()); ok {
		best = entry.Best
	}
	return best, g
}
