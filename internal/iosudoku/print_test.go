package iosudoku

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrintProducesNineLinesPlusRules(t *testing.T) {
	values := make([]int, 81)
	values[0] = 5

	var buf strings.Builder
	Print(&buf, values, nil)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	// 9 grid rows plus 2 divider rules between box rows.
	assert.Len(t, lines, 11)
}

func TestPrintDistinguishesGivensFromSolved(t *testing.T) {
	original := make([]int, 81)
	original[0] = 5

	solved := make([]int, 81)
	solved[0] = 5
	solved[1] = 3

	var buf strings.Builder
	Print(&buf, solved, original)
	assert.NotEmpty(t, buf.String())
}
