package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratorProducesCompleteValidGrid(t *testing.T) {
	grid, err := NewGenerator(123).Generate()
	require.NoError(t, err)
	require.True(t, grid.IsComplete())

	for i := 0; i < 9; i++ {
		assert.True(t, grid.Row(i).IsValidGroup())
		assert.True(t, grid.Col(i).IsValidGroup())
		assert.True(t, grid.Box(i).IsValidGroup())
	}
}

func TestGeneratorIsDeterministicForSameSeed(t *testing.T) {
	a, err := NewGenerator(555).Generate()
	require.NoError(t, err)
	b, err := NewGenerator(555).Generate()
	require.NoError(t, err)
	assert.Equal(t, a.Values(), b.Values())
}

func TestGeneratorDiffersAcrossSeeds(t *testing.T) {
	a, err := NewGenerator(1).Generate()
	require.NoError(t, err)
	b, err := NewGenerator(2).Generate()
	require.NoError(t, err)
	assert.NotEqual(t, a.Values(), b.Values())
}
