// Package carve turns a complete, solved grid into a puzzle: it picks
// cells to empty while preserving a unique solution, and can carve an
// entire difficulty ladder at once with a guaranteed subset property.
package carve

import (
	"fmt"
	"math/rand"

	"github.com/bits-and-blooms/bitset"
)

// CellValuesRemover removes clues from a solved grid down to a target
// difficulty, or down an entire tier ladder at once. Grounded on
// internal/sudoku/dp.CarveGivensWithSubset, with the removed/kept
// position bookkeeping moved onto a bitset.BitSet (from the retrieved
// pflow-xyz/go-pflow stack) instead of a plain slice.
type CellValuesRemover struct {
	solved []int
	tiers  *TierConfig
	rng    *rand.Rand
}

// NewCellValuesRemover returns a remover for a complete 81-value grid.
// solved must have no zero entries.
func NewCellValuesRemover(solved []int, tiers *TierConfig, seed int64) (*CellValuesRemover, error) {
	if len(solved) != 81 {
		return nil, fmt.Errorf("carve: expected 81 values, got %d", len(solved))
	}
	for _, v := range solved {
		if v == 0 {
			return nil, fmt.Errorf("carve: solved grid has an empty cell")
		}
	}
	values := make([]int, 81)
	copy(values, solved)
	return &CellValuesRemover{
		solved: values,
		tiers:  tiers,
		rng:    rand.New(rand.NewSource(seed)),
	}, nil
}

// Remove returns a single difficulty's puzzle. It carves the whole
// ladder with RemoveAll and keeps only the requested tier.
func (r *CellValuesRemover) Remove(difficulty Difficulty) ([]int, error) {
	all, err := r.RemoveAll()
	if err != nil {
		return nil, err
	}
	puzzle, ok := all[difficulty]
	if !ok {
		return nil, fmt.Errorf("carve: unknown difficulty %q", difficulty)
	}
	return puzzle, nil
}

// RemoveAll carves every configured tier from one pass: it empties
// cells down to the hardest tier's target while a unique solution
// survives, tracking the removed-position set in a bitset.BitSet, then
// restores cells (clearing their bit) in reverse removal order for
// each easier tier in turn, reading each tier's puzzle straight off
// the bitset's membership rather than off the removal-order slice.
// This guarantees Evil ⊂ Expert ⊂ Hard ⊂ Medium ⊂ Easy (every harder
// tier's givens are a subset of every easier tier's).
func (r *CellValuesRemover) RemoveAll() (map[Difficulty][]int, error) {
	puzzle := make([]int, 81)
	copy(puzzle, r.solved)

	positions := r.rng.Perm(81)

	removed := bitset.New(81)
	var removalOrder []int

	hardest := r.tiers.Hardest()
	for _, pos := range positions {
		if removed.Count() >= uint(hardest.MaxRemoved) {
			break
		}
		old := puzzle[pos]
		puzzle[pos] = 0
		if hasUniqueSolution(puzzle) {
			removalOrder = append(removalOrder, pos)
			removed.Set(uint(pos))
		} else {
			puzzle[pos] = old
		}
	}
	if removed.Count() < uint(hardest.MinRemoved) {
		return nil, fmt.Errorf("carve: only removed %d/%d cells for tier %s without losing uniqueness",
			removed.Count(), hardest.MinRemoved, hardest.Name)
	}

	result := make(map[Difficulty][]int, len(r.tiers.Tiers))
	result[hardest.Name] = puzzleFromRemoved(r.solved, removed)

	for _, tier := range r.tiers.Tiers {
		if tier.Name == hardest.Name {
			continue
		}
		for i := len(removalOrder) - 1; i >= 0 && removed.Count() > uint(tier.MaxRemoved); i-- {
			removed.Clear(uint(removalOrder[i]))
		}
		result[tier.Name] = puzzleFromRemoved(r.solved, removed)
	}
	return result, nil
}

// puzzleFromRemoved reads a tier's puzzle values straight off a
// membership bitset: a set bit means the cell is still emptied, a
// clear bit means the solved digit is a given.
func puzzleFromRemoved(solved []int, removed *bitset.BitSet) []int {
	puzzle := make([]int, 81)
	for pos := 0; pos < 81; pos++ {
		if removed.Test(uint(pos)) {
			continue
		}
		puzzle[pos] = solved[pos]
	}
	return puzzle
}

// GivenCount returns how many nonzero cells a puzzle has.
func GivenCount(puzzle []int) int {
	count := 0
	for _, v := range puzzle {
		if v != 0 {
			count++
		}
	}
	return count
}
