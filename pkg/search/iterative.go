package search

import (
	"fmt"

	"github.com/herohde/copperfish/pkg/board"
	"go.uber.org/atomic"
)

// Iterative runs driver at increasing depths, 2 plies at a time up to board.MaxDepth,
// feeding each iteration's score forward as the next iteration's guess and seeding a
// fresh killer table per iteration. An iteration that is abandoned mid-search because
// stop fired is never published: the last fully completed iteration's move and score
// are returned. If sink is non-nil, it receives a UCI "info" line per completed
// iteration.
func Iterative(b *board.Board, startDepth int, tt TranspositionTable, stop *atomic.Bool, driver Driver, sink func(string)) (board.Move, board.Score) {
	var best board.Move
	var bestScore board.Score
	guess := board.ZeroScore

	for depth := startDepth; depth <= board.MaxDepth; depth += 2 {
		if stop.Load() {
			break
		}

		killers := &KillerTable{}
		mv, score := driver(b, depth, guess, tt, killers, stop)

		if stop.Load() {
			break // partial iteration: do not publish
		}

		best, bestScore = mv, score
		guess = score

		if sink != nil {
			sink(infoLine(depth, score))
		}

		if score.IsMate() {
			stop.Store(true)
			break
		}
	}

	return best, bestScore
}

func infoLine(depth int, score board.Score) string {
	if score.IsMate() {
		return fmt.Sprintf("info depth %v score mate %v", depth, mateDistance(score))
	}
	return fmt.Sprintf("info depth %v score cp %v", depth, int(score))
}

// mateDistance converts a mate score into the UCI "mate N" move count: positive N means
// White delivers mate, negative means Black does (see board.Score's mate-distance
// adjustment, which decrements this count by one plies closer to the root per ply).
func mateDistance(score board.Score) int {
	abs := score
	if abs < 0 {
		abs = -abs
	}
	plies := int(board.WhiteMate - abs)
	moves := (plies + 1) / 2
	if score < 0 {
		return -moves
	}
	return moves
}
