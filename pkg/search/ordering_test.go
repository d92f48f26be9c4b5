package search_test

import (
	"testing"

	"github.com/herohde/copperfish/pkg/board"
	"github.com/herohde/copperfish/pkg/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drain(ml *board.MoveList) []board.Move {
	var out []board.Move
	for {
		m, ok := ml.Next()
		if !ok {
			return out
		}
		out = append(out, m)
	}
}

func TestOrderMovesTTMoveFirst(t *testing.T) {
	tt := board.Move{From: board.D2, To: board.D4}
	moves := []board.Move{
		{Type: board.Capture, From: board.E4, To: board.D5, Piece: board.Pawn, Capture: board.Queen},
		tt,
		{From: board.G1, To: board.F3, Piece: board.Knight},
	}

	ordered := drain(search.OrderMoves(moves, tt, [2]board.Move{}))
	require.NotEmpty(t, ordered)
	assert.True(t, tt.Equals(ordered[0]))
}

func TestOrderMovesCapturesBeforeQuiet(t *testing.T) {
	capture := board.Move{Type: board.Capture, From: board.E4, To: board.D5, Piece: board.Pawn, Capture: board.Pawn}
	quiet := board.Move{From: board.G1, To: board.F3, Piece: board.Knight}

	ordered := drain(search.OrderMoves([]board.Move{quiet, capture}, board.Move{}, [2]board.Move{}))
	require.Len(t, ordered, 2)
	assert.True(t, capture.Equals(ordered[0]))
}

func TestOrderMovesKillerBeforeOtherQuiet(t *testing.T) {
	killer := board.Move{From: board.G1, To: board.H3, Piece: board.Knight}
	other := board.Move{From: board.B1, To: board.C3, Piece: board.Knight}

	ordered := drain(search.OrderMoves([]board.Move{other, killer}, board.Move{}, [2]board.Move{killer}))
	require.Len(t, ordered, 2)
	assert.True(t, killer.Equals(ordered[0]))
}

func TestOrderMovesMVVLVAOrdersHighestValueVictimFirst(t *testing.T) {
	takesPawn := board.Move{Type: board.Capture, From: board.E4, To: board.D5, Piece: board.Pawn, Capture: board.Pawn}
	takesQueen := board.Move{Type: board.Capture, From: board.E4, To: board.D5, Piece: board.Pawn, Capture: board.Queen}

	ordered := drain(search.OrderMoves([]board.Move{takesPawn, takesQueen}, board.Move{}, [2]board.Move{}))
	require.Len(t, ordered, 2)
	assert.True(t, takesQueen.Equals(ordered[0]))
}
