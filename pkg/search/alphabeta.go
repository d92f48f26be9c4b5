package search

import (
	"github.com/herohde/copperfish/pkg/board"
	"github.com/herohde/copperfish/pkg/eval"
	"go.uber.org/atomic"
)

// AlphaBeta is a fail-soft minimax search expressed directly in White-perspective score
// units: it maximizes iff the side to move is White. The window [alpha, beta] is always
// White-relative, unlike the more common negamax formulation. Callers own the killer
// table and transposition table; AlphaBeta only ever updates them, never resets them.
func AlphaBeta(b *board.Board, depth int, alpha, beta board.Score, maximizing bool, tt TranspositionTable, killers *KillerTable, stop *atomic.Bool) (board.Move, board.Score) {
	switch b.Result().Reason {
	case board.Repetition3, board.Repetition5, board.NoProgress, board.InsufficientMaterial:
		return board.Move{}, board.ZeroScore
	}

	hash := b.Hash()

	var ttMove board.Move
	if entry, ok := tt.Read(hash); ok {
		ttMove = entry.Best
		if entry.Depth >= depth {
			switch {
			case entry.Bound == Exact:
				return entry.Best, entry.Value
			case entry.Bound == Lower && entry.Value >= beta:
				return entry.Best, entry.Value
			case entry.Bound == Upper && entry.Value <= alpha:
				return entry.Best, entry.Value
			}
		}
	}

	turn := b.Turn()
	moves := b.Position().LegalMoves(turn)
	if len(moves) == 0 {
		result := b.AdjudicateNoLegalMoves()
		if result.Reason == board.Checkmate {
			if maximizing {
				return board.Move{}, board.BlackMate
			}
			return board.Move{}, board.WhiteMate
		}
		return board.Move{}, board.ZeroScore
	}

	if depth == 0 {
		score := eval.Evaluate(b.Position())
		tt.Write(hash, Exact, 0, score, board.Move{})
		return board.Move{}, score
	}

	ordered := OrderMoves(moves, ttMove, killers[depth])

	alpha0, beta0 := alpha, beta
	var best board.Move
	var completed bool

	if maximizing {
		best, alpha, completed = searchMax(b, depth, alpha, beta, ordered, tt, killers, stop)
	} else {
		best, beta, completed = searchMin(b, depth, alpha, beta, ordered, tt, killers, stop)
	}

	value := alpha
	if !maximizing {
		value = beta
	}

	if !completed {
		// Cancelled mid-search: value is a partial, non-converged bound over however many
		// children were examined. Do not let it poison the table for future searches.
		return best, value
	}

	bound := Exact
	switch {
	case value <= alpha0:
		bound = Upper
	case value >= beta0:
		bound = Lower
	}
	tt.Write(hash, bound, depth, value, best)

	return best, value
}

// searchMax returns the best move and score for a maximizing node, plus whether the loop ran
// to completion (a cutoff or move-list exhaustion) rather than being cut short by stop. A
// false completed means maxEval is a partial, non-converged bound and must not be trusted as
// an Exact/Lower/Upper entry.
func searchMax(b *board.Board, depth int, alpha, beta board.Score, ordered *board.MoveList, tt TranspositionTable, killers *KillerTable, stop *atomic.Bool) (board.Move, board.Score, bool) {
	maxEval := -board.Inf
	var best board.Move

	for {
		m, ok := ordered.Next()
		if !ok {
			break
		}
		if stop.Load() {
			return best, maxEval, false
		}
		if !b.PushMove(m) {
			continue
		}
		_, score := AlphaBeta(b, depth-1, alpha, beta, false, tt, killers, stop)
		b.PopMove()

		if score > board.WhiteMate-board.Score(board.MaxDepth) {
			score--
		}
		if score < board.BlackMate+board.Score(board.MaxDepth) {
			score++
		}
		if score > maxEval {
			maxEval = score
			best = m
		}
		if maxEval > alpha {
			alpha = maxEval
		}
		if maxEval >= beta {
			killers.Update(depth, m)
			break
		}
	}

	return best, maxEval, true
}

// searchMin is the minimizing-node counterpart to searchMax; see its doc comment for the
// meaning of the trailing completed bool.
func searchMin(b *board.Board, depth int, alpha, beta board.Score, ordered *board.MoveList, tt TranspositionTable, killers *KillerTable, stop *atomic.Bool) (board.Move, board.Score, bool) {
	minEval := board.Inf
	var best board.Move

	for {
		m, ok := ordered.Next()
		if !ok {
			break
		}
		if stop.Load() {
			return best, minEval, false
		}
		if !b.PushMove(m) {
			continue
		}
		_, score := AlphaBeta(b, depth-1, alpha, beta, true, tt, killers, stop)
		b.PopMove()

		if score > board.WhiteMate-board.Score(board.MaxDepth) {
			score--
		}
		if score < board.BlackMate+board.Score(board.MaxDepth) {
			score++
		}
		if score < minEval {
			minEval = score
			best = m
		}
		if minEval < beta {
			beta = minEval
		}
		if minEval <= alpha {
			killers.Update(depth, m)
			break
		}
	}

	return best, minEval, true
}
