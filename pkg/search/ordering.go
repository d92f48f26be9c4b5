package search

import (
	"github.com/herohde/copperfish/pkg/board"
	"github.com/herohde/copperfish/pkg/eval"
)

const (
	ttMovePriority     board.MovePriority = 200
	killerMovePriority board.MovePriority = 100
)

// mvvLva[victim][attacker] scores captures: most valuable victim, least valuable
// attacker first. King victim is unreachable (a legal position is never left with the
// king capturable) and scores 0 defensively.
var mvvLva = [6][6]board.MovePriority{
	{0, 0, 0, 0, 0, 0},
	{50, 51, 52, 53, 54, 55}, // victim Queen
	{40, 41, 42, 43, 44, 45}, // victim Rook
	{30, 31, 32, 33, 34, 35}, // victim Bishop
	{20, 21, 22, 23, 24, 25}, // victim Knight
	{10, 11, 12, 13, 14, 15}, // victim Pawn
}

// bonusCenter scores quiet moves by how close their destination square is to the center,
// indexed by eval.SquareIndex.
var bonusCenter = [64]board.MovePriority{
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 1, 1, 1, 1, 1, 1, 0,
	0, 1, 2, 2, 2, 2, 1, 0,
	0, 1, 2, 3, 3, 2, 1, 0,
	0, 1, 2, 3, 3, 2, 1, 0,
	0, 1, 2, 2, 2, 2, 1, 0,
	0, 1, 1, 1, 1, 1, 1, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
}

func pieceIndex(p board.Piece) int {
	switch p {
	case board.King:
		return 0
	case board.Queen:
		return 1
	case board.Rook:
		return 2
	case board.Bishop:
		return 3
	case board.Knight:
		return 4
	default:
		return 5 // Pawn
	}
}

// priority scores a single move for ordering: TT move first, then killers, then
// captures by MVV-LVA, then quiet moves by center preference, castling last.
func priority(ttMove board.Move, killers [2]board.Move) board.MovePriorityFn {
	return func(m board.Move) board.MovePriority {
		switch {
		case !ttMove.IsZero() && ttMove.Equals(m):
			return ttMovePriority
		case !killers[0].IsZero() && killers[0].Equals(m):
			return killerMovePriority
		case !killers[1].IsZero() && killers[1].Equals(m):
			return killerMovePriority
		}

		switch m.Type {
		case board.Capture, board.EnPassant:
			return mvvLva[pieceIndex(m.Capture)][pieceIndex(m.Piece)]
		case board.CapturePromotion:
			return mvvLva[pieceIndex(m.Capture)][pieceIndex(board.Pawn)]
		case board.Promotion:
			return 10
		case board.QueenSideCastle, board.KingSideCastle:
			return 0
		default:
			return bonusCenter[eval.SquareIndex(m.To)]
		}
	}
}

// OrderMoves returns moves as a priority queue, highest priority first: the TT move (if
// present among them), then killers for this depth, then captures by MVV-LVA, then
// quiet moves by center proximity.
func OrderMoves(moves []board.Move, ttMove board.Move, killers [2]board.Move) *board.MoveList {
	return board.NewMoveList(moves, priority(ttMove, killers))
}
