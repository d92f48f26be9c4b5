// Package eval contains static position evaluation.
package eval

import "github.com/herohde/copperfish/pkg/board"

// endgameMaterialThreshold is the summed non-pawn, non-king material (both sides)
// at or below which the endgame king PST replaces the middlegame one. The exact value
// is a tuning parameter; only its monotonicity matters.
const endgameMaterialThreshold = 2000

const (
	rookOpenFileBonus     board.Score = 15
	rookSemiOpenFileBonus board.Score = 10
	rookSeventhRankBonus  board.Score = 20
)

// Evaluate returns the position score in centipawns from White's perspective: positive
// favors White. It is the sum of material, piece-square tables and rook file/rank
// bonuses. Pure function of position state: no RNG, no clock.
func Evaluate(pos *board.Position) board.Score {
	endgame := IsEndgame(pos)

	var white, black board.Score
	for sq := board.ZeroSquare; sq < board.NumSquares; sq++ {
		c, p, ok := pos.Square(sq)
		if !ok {
			continue
		}

		value := nominalValue(p)
		switch p {
		case board.Pawn, board.Knight, board.Bishop, board.King:
			value += pstValue(c, p, sq, endgame)
		}

		if c == board.White {
			white += value
		} else {
			black += value
		}
	}

	white += rookBonus(pos, board.White)
	black += rookBonus(pos, board.Black)

	return white - black
}

// rookBonus awards open/semi-open file and 7th-rank bonuses for the given color's rooks.
func rookBonus(pos *board.Position, c board.Color) board.Score {
	var score board.Score

	for sq := board.ZeroSquare; sq < board.NumSquares; sq++ {
		color, p, ok := pos.Square(sq)
		if !ok || p != board.Rook || color != c {
			continue
		}

		friendly, enemy := pawnsOnFile(pos, sq.File(), c)
		switch {
		case !friendly && !enemy:
			score += rookOpenFileBonus
		case !friendly && enemy:
			score += rookSemiOpenFileBonus
		}

		seventh := board.Rank7
		if c == board.Black {
			seventh = board.Rank2
		}
		if sq.Rank() == seventh {
			score += rookSeventhRankBonus
		}
	}

	return score
}

func pawnsOnFile(pos *board.Position, f board.File, c board.Color) (friendly, enemy bool) {
	for r := board.ZeroRank; r < board.NumRanks; r++ {
		color, p, ok := pos.Square(board.NewSquare(f, r))
		if !ok || p != board.Pawn {
			continue
		}
		if color == c {
			friendly = true
		} else {
			enemy = true
		}
	}
	return friendly, enemy
}

// IsEndgame reports whether summed non-pawn, non-king material for both sides is at or
// below endgameMaterialThreshold, selecting the center-seeking king PST.
func IsEndgame(pos *board.Position) bool {
	var material board.Score
	for sq := board.ZeroSquare; sq < board.NumSquares; sq++ {
		_, p, ok := pos.Square(sq)
		if !ok {
			continue
		}
		switch p {
		case board.Knight, board.Bishop, board.Rook, board.Queen:
			material += nominalValue(p)
		}
	}
	return material <= endgameMaterialThreshold
}
