package search_test

import (
	"context"
	"testing"

	"github.com/herohde/copperfish/pkg/board/fen"
	"github.com/herohde/copperfish/pkg/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/atomic"
)

func TestIterativeStopsOnMateAndPublishesResult(t *testing.T) {
	b := newBoard(t, "k7/8/1K6/8/8/8/8/7Q w - - 0 1")

	tt := search.NewTranspositionTable(context.Background(), 1<<20)
	stop := atomic.NewBool(false)

	var lines []string
	mv, score := search.Iterative(b, 1, tt, stop, search.Aspiration, func(s string) {
		lines = append(lines, s)
	})

	require.False(t, mv.IsZero())
	assert.True(t, score.IsMate())
	assert.NotEmpty(t, lines)
	assert.True(t, stop.Load())
}

func TestIterativeNeverPublishesAbandonedIteration(t *testing.T) {
	b := newBoard(t, fen.Initial)

	tt := search.NewTranspositionTable(context.Background(), 1<<20)
	stop := atomic.NewBool(true) // already stopped: no iteration may complete

	mv, score := search.Iterative(b, 1, tt, stop, search.Aspiration, nil)
	assert.True(t, mv.IsZero())
	assert.Zero(t, score)
}
