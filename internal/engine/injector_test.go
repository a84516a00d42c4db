package engine

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInjectorGuessAssignsAndRecordsHistory(t *testing.T) {
	grid := NewCellGrid()
	inj := NewInjector(rand.New(rand.NewSource(1)))

	err := inj.Guess(grid)
	require.NoError(t, err)

	assert.Equal(t, 1, inj.Guesses())
	assert.Equal(t, 1, inj.Depth())
	require.Len(t, inj.History, 1)
	assert.Equal(t, "new", inj.History[0].Kind)

	cell := grid.CellAt(inj.History[0].Position)
	assert.NotZero(t, cell.Value())
}

func TestInjectorBacktrackRestoresState(t *testing.T) {
	grid := NewCellGrid()
	inj := NewInjector(rand.New(rand.NewSource(1)))

	require.NoError(t, inj.Guess(grid))
	pos := inj.History[0].Position
	firstGuess := grid.CellAt(pos).Value()

	require.NoError(t, inj.Backtrack(grid))
	assert.Equal(t, 1, inj.Depth(), "a fresh untried candidate keeps the frame on the stack")

	secondGuess := grid.CellAt(pos).Value()
	assert.NotEqual(t, 0, secondGuess)
	assert.NotEqual(t, firstGuess, secondGuess, "backtrack must try a different digit, not repeat the last guess")
}

func TestInjectorBacktrackExhaustsToUnsolvable(t *testing.T) {
	grid := NewCellGrid()
	// The cell the injector guesses first (clockwise box order starts
	// at (0,0)) has only one candidate, so the first backtrack finds
	// nothing left to retry and the stack empties.
	grid.Cell(0, 0).SetCandidates(NewCandidates([]int{1}))

	inj := NewInjector(rand.New(rand.NewSource(1)))
	require.NoError(t, inj.Guess(grid))
	err := inj.Backtrack(grid)
	require.ErrorIs(t, err, ErrUnsolvable)
	assert.Equal(t, 0, inj.Depth())
}
