package carve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sudoku-engine/internal/engine"
)

func solvedGrid(t *testing.T) []int {
	t.Helper()
	grid, err := engine.NewGenerator(1).Generate()
	require.NoError(t, err)
	return grid.Values()
}

func TestRemoveAllGuaranteesSubsetProperty(t *testing.T) {
	solved := solvedGrid(t)
	remover, err := NewCellValuesRemover(solved, DefaultTiers(), 10)
	require.NoError(t, err)

	puzzles, err := remover.RemoveAll()
	require.NoError(t, err)
	require.Len(t, puzzles, 5)

	order := []Difficulty{Evil, Expert, Hard, Medium, Easy}
	for i := 1; i < len(order); i++ {
		harder := puzzles[order[i-1]]
		easier := puzzles[order[i]]
		for pos, v := range harder {
			if v != 0 {
				assert.NotZero(t, easier[pos], "every harder given must remain a given in easier tiers")
			}
		}
	}
}

func TestRemoveAllEachTierHasUniqueSolution(t *testing.T) {
	solved := solvedGrid(t)
	remover, err := NewCellValuesRemover(solved, DefaultTiers(), 11)
	require.NoError(t, err)

	puzzles, err := remover.RemoveAll()
	require.NoError(t, err)

	for name, puzzle := range puzzles {
		assert.True(t, hasUniqueSolution(puzzle), "%s puzzle must retain a unique solution", name)
	}
}

func TestNewCellValuesRemoverRejectsIncompleteGrid(t *testing.T) {
	values := make([]int, 81)
	_, err := NewCellValuesRemover(values, DefaultTiers(), 1)
	require.Error(t, err)
}

func TestNewCellValuesRemoverRejectsWrongLength(t *testing.T) {
	_, err := NewCellValuesRemover(make([]int, 10), DefaultTiers(), 1)
	require.Error(t, err)
}

func TestGivenCount(t *testing.T) {
	puzzle := make([]int, 81)
	puzzle[0] = 5
	puzzle[1] = 3
	assert.Equal(t, 2, GivenCount(puzzle))
}
