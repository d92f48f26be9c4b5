package search_test

import (
	"context"
	"testing"

	"github.com/herohde/copperfish/pkg/board"
	"github.com/herohde/copperfish/pkg/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/atomic"
)

func TestMTDFFindsMate(t *testing.T) {
	b := newBoard(t, "k7/8/1K6/8/8/8/8/7Q w - - 0 1")

	tt := search.NewTranspositionTable(context.Background(), 1<<20)
	killers := &search.KillerTable{}
	stop := atomic.NewBool(false)

	mv, score := search.MTDF(b, 3, board.ZeroScore, tt, killers, stop)
	require.False(t, mv.IsZero())
	assert.True(t, score.IsMate())
}

func TestMTDFAgreesWithAspiration(t *testing.T) {
	b := newBoard(t, "k7/8/1K6/8/8/8/8/7Q w - - 0 1")

	ttA := search.NewTranspositionTable(context.Background(), 1<<20)
	stop := atomic.NewBool(false)
	_, scoreA := search.Aspiration(b, 3, board.ZeroScore, ttA, &search.KillerTable{}, stop)

	ttB := search.NewTranspositionTable(context.Background(), 1<<20)
	_, scoreB := search.MTDF(b, 3, board.ZeroScore, ttB, &search.KillerTable{}, stop)

	assert.Equal(t, scoreA, scoreB)
}
