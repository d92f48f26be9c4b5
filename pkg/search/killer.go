package search

import "github.com/herohde/copperfish/pkg/board"

// KillerTable holds, per remaining-depth slot, the two most recent quiet or capture
// moves that caused a cutoff at that depth. Indexed by remaining depth rather than ply
// from the root, so a fresh table is needed for each iterative-deepening pass.
type KillerTable [board.MaxDepth][2]board.Move

// Update records m as the newest killer at the given depth, shifting the previous
// newest into the second slot. Depths outside range are ignored.
func (k *KillerTable) Update(depth int, m board.Move) {
	if depth < 0 || depth >= board.MaxDepth {
		return
	}
	k[depth][1] = k[depth][0]
	k[depth][0] = m
}
