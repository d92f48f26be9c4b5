package search_test

import (
	"testing"

	"github.com/herohde/copperfish/pkg/board"
	"github.com/herohde/copperfish/pkg/search"
	"github.com/stretchr/testify/assert"
)

func TestKillerTableUpdate(t *testing.T) {
	var k search.KillerTable

	m1 := board.Move{From: board.E2, To: board.E4}
	m2 := board.Move{From: board.D2, To: board.D4}

	k.Update(3, m1)
	assert.Equal(t, m1, k[3][0])
	assert.True(t, k[3][1].IsZero())

	k.Update(3, m2)
	assert.Equal(t, m2, k[3][0])
	assert.Equal(t, m1, k[3][1])
}

func TestKillerTableOutOfRangeIgnored(t *testing.T) {
	var k search.KillerTable
	k.Update(-1, board.Move{From: board.E2, To: board.E4})
	k.Update(board.MaxDepth, board.Move{From: board.E2, To: board.E4})
	assert.Equal(t, search.KillerTable{}, k)
}
