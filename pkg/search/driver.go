package search

import (
	"github.com/herohde/copperfish/pkg/board"
	"go.uber.org/atomic"
)

// initialWindow is the starting half-width of the aspiration window around the previous
// iteration's score, in centipawns.
const initialWindow = board.Score(25)

// Driver runs one alpha-beta pass at a fixed depth, starting from a prior score guess,
// and returns the best root move and its score. Aspiration and MTDF both implement it.
type Driver func(b *board.Board, depth int, guess board.Score, tt TranspositionTable, killers *KillerTable, stop *atomic.Bool) (board.Move, board.Score)

// Aspiration searches depth plies using a narrow window around guess, widening and
// re-searching on fail-low or fail-high until a score lands inside the window or a
// forced mate is found.
func Aspiration(b *board.Board, depth int, guess board.Score, tt TranspositionTable, killers *KillerTable, stop *atomic.Bool) (board.Move, board.Score) {
	maximizing := b.Turn() == board.White

	window := initialWindow
	alpha := maxScore(guess-window, board.BlackMate)
	beta := minScore(guess+window, board.WhiteMate)

	var mv board.Move
	var score board.Score
	for {
		if stop.Load() {
			break
		}

		*killers = KillerTable{}
		mv, score = AlphaBeta(b, depth, alpha, beta, maximizing, tt, killers, stop)
		if score.IsMate() {
			break
		}

		switch {
		case score <= alpha:
			beta = alpha
			alpha = maxScore(score-window, board.BlackMate)
		case score >= beta:
			beta = minScore(score+window, board.WhiteMate)
		default:
			return mv, score
		}
		window += window / 2
	}
	return mv, score
}

func maxScore(a, b board.Score) board.Score {
	if a > b {
		return a
	}
	return b
}

func minScore(a, b board.Score) board.Score {
	if a < b {
		return a
	}
	return b
}
