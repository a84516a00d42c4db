package validate

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func emptyGrid() []int {
	return make([]int, 81)
}

func TestStrictAcceptsEmptyGrid(t *testing.T) {
	assert.NoError(t, Strict(emptyGrid()))
}

func TestStrictRejectsWrongLength(t *testing.T) {
	err := Strict(make([]int, 80))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrStructure))
}

func TestStrictRejectsOutOfRangeValue(t *testing.T) {
	values := emptyGrid()
	values[0] = 10
	err := Strict(values)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrStructure))
}

func TestStrictRejectsRowConflict(t *testing.T) {
	values := emptyGrid()
	values[0] = 5
	values[1] = 5
	err := Strict(values)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConflict))
}

func TestFindConflictsDetectsRowColumnAndBox(t *testing.T) {
	values := emptyGrid()
	values[0] = 7  // row 0, col 0, box 0
	values[9] = 7  // row 1, col 0 -> column conflict
	values[10] = 7 // row 1, col 1 -> box conflict with cell 0, row conflict with cell 9

	conflicts := FindConflicts(values)

	var units []string
	for _, c := range conflicts {
		units = append(units, c.Unit)
	}
	assert.Contains(t, units, "row")
	assert.Contains(t, units, "column")
	assert.Contains(t, units, "box")
}

func TestLenientReportsAllConflictsWithoutStopping(t *testing.T) {
	values := emptyGrid()
	values[0], values[1] = 3, 3   // row conflict
	values[18], values[27] = 4, 4 // column conflict, different rows/boxes

	report, err := Lenient(values)
	require.NoError(t, err)
	assert.False(t, report.Valid)
	assert.GreaterOrEqual(t, len(report.Conflicts), 2)
}

func TestLenientValidForConflictFreeGrid(t *testing.T) {
	values := emptyGrid()
	values[0] = 1
	values[1] = 2

	report, err := Lenient(values)
	require.NoError(t, err)
	assert.True(t, report.Valid)
	assert.Empty(t, report.Conflicts)
}
