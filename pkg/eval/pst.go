package eval

import "github.com/herohde/copperfish/pkg/board"

// Material values in centipawns. The King has no material value: its safety is captured
// entirely through the piece-square tables below.
const (
	PawnValue   board.Score = 100
	KnightValue board.Score = 270
	BishopValue board.Score = 300
	RookValue   board.Score = 500
	QueenValue  board.Score = 900
	KingValue   board.Score = 0
)

// Piece-square tables, defined for White and indexed by SquareIndex (a8=0 .. h1=63, rank
// then file). A Black piece looks up the same table at the vertically-mirrored index (see
// flip, below).
var (
	pawnPST = [64]board.Score{
		0, 0, 0, 0, 0, 0, 0, 0,
		5, 10, 15, 20, 20, 15, 10, 5,
		4, 8, 12, 16, 16, 12, 8, 4,
		3, 6, 9, 12, 12, 9, 6, 3,
		2, 4, 6, 8, 8, 6, 4, 2,
		1, 2, 3, -10, -10, 3, 2, 1,
		0, 0, 0, -40, -40, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
	}

	knightPST = [64]board.Score{
		-10, -10, -10, -10, -10, -10, -10, -10,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-10, 0, 5, 5, 5, 5, 0, -10,
		-10, 0, 5, 10, 10, 5, 0, -10,
		-10, 0, 5, 10, 10, 5, 0, -10,
		-10, 0, 5, 5, 5, 5, 0, -10,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-30, -10, -10, -10, -10, -30, -10, -10,
	}

	bishopPST = [64]board.Score{
		-10, -10, -10, -10, -10, -10, -10, -10,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-10, 0, 5, 5, 5, 5, 0, -10,
		-10, 0, 5, 10, 10, 5, 0, -10,
		-10, 0, 5, 10, 10, 5, 0, -10,
		-10, 0, 5, 5, 5, 5, 0, -10,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-10, -20, -10, -10, -20, -10, -10, -10,
	}

	kingPST = [64]board.Score{
		-40, -40, -40, -40, -40, -40, -40, -40,
		-40, -40, -40, -40, -40, -40, -40, -40,
		-40, -40, -40, -40, -40, -40, -40, -40,
		-40, -40, -40, -40, -40, -40, -40, -40,
		-40, -40, -40, -40, -40, -40, -40, -40,
		-40, -40, -40, -40, -40, -40, -40, -40,
		-20, -20, -20, -20, -20, -20, -20, -20,
		0, 20, 40, -20, 0, -20, 40, 20,
	}

	// kingPSTEndgame rewards an active, centralized king once material has thinned out.
	kingPSTEndgame = [64]board.Score{
		0, 10, 20, 30, 30, 20, 10, 0,
		10, 20, 30, 40, 40, 30, 20, 10,
		20, 30, 40, 50, 50, 40, 30, 20,
		30, 40, 50, 60, 60, 50, 40, 30,
		30, 40, 50, 60, 60, 50, 40, 30,
		20, 30, 40, 50, 50, 40, 30, 20,
		10, 20, 30, 40, 40, 30, 20, 10,
		0, 10, 20, 30, 30, 20, 10, 0,
	}
)

// SquareIndex maps a Square onto the 0..63 PST index defined for White: rank 8 first,
// file a through h within each rank, so a8=0 and h1=63. This is the standard orientation
// the tables above are written in, independent of the board package's own bitboard
// indexing (board.Square has file H=0..A=7 and rank 1=0..8=7 for bitboard shifts).
func SquareIndex(sq board.Square) int {
	file := int(board.FileA - sq.File())
	rank := int(sq.Rank())
	return (7-rank)*8 + file
}

// flip mirrors a White-oriented PST index vertically (swap ranks, keep file) to look up
// the same table for a Black piece.
func flip(i int) int {
	return (7-i/8)*8 + i%8
}

// pstValue returns the piece-square bonus for a piece of the given color at sq.
func pstValue(c board.Color, p board.Piece, sq board.Square, endgame bool) board.Score {
	idx := SquareIndex(sq)
	if c == board.Black {
		idx = flip(idx)
	}

	switch p {
	case board.Pawn:
		return pawnPST[idx]
	case board.Knight:
		return knightPST[idx]
	case board.Bishop:
		return bishopPST[idx]
	case board.King:
		if endgame {
			return kingPSTEndgame[idx]
		}
		return kingPST[idx]
	default:
		return 0
	}
}

func nominalValue(p board.Piece) board.Score {
	switch p {
	case board.Pawn:
		return PawnValue
	case board.Knight:
		return KnightValue
	case board.Bishop:
		return BishopValue
	case board.Rook:
		return RookValue
	case board.Queen:
		return QueenValue
	default:
		return KingValue
	}
}
