// Package validate checks raw 81-value grids for structural and rule
// conflicts, independent of internal/engine's live candidate-tracking
// model. It exists so callers (CSV import, HTTP submission, the carve
// package's own inputs) can sanity-check a grid before ever building a
// CellGrid out of it.
package validate

import (
	"fmt"
)

// Conflict identifies two cells that share a value in a unit where
// that is forbidden. Mirrors internal/sudoku/dp.Conflict's shape.
type Conflict struct {
	Cell1 int    `json:"cell1"`
	Cell2 int    `json:"cell2"`
	Value int    `json:"value"`
	Unit  string `json:"unit"` // "row", "column", or "box"
}

// Report is the lenient-mode result: Valid is false whenever Conflicts
// is non-empty, but callers get the full list instead of a single error.
type Report struct {
	Valid     bool       `json:"valid"`
	Conflicts []Conflict `json:"conflicts,omitempty"`
}

// Strict validates grid structure, value range, and conflicts in one
// pass, returning the first problem found as an error. Mirrors
// sudokupy's GridData._validate with raises_error=True: structure
// first, then range, then conflicts.
func Strict(values []int) error {
	if err := validateStructure(values); err != nil {
		return err
	}
	if err := validateRange(values); err != nil {
		return err
	}
	conflicts := FindConflicts(values)
	if len(conflicts) > 0 {
		c := conflicts[0]
		return fmt.Errorf("%w: duplicate %d in %s (cells %d and %d)", ErrConflict, c.Value, c.Unit, c.Cell1, c.Cell2)
	}
	return nil
}

// Lenient runs the same checks as Strict, but collects every conflict
// into a Report instead of short-circuiting on the first one, so a
// conflict only flips the Valid flag. Structure and range problems are
// still returned as an error, exactly as Strict returns them.
func Lenient(values []int) (*Report, error) {
	if err := validateStructure(values); err != nil {
		return nil, err
	}
	if err := validateRange(values); err != nil {
		return nil, err
	}
	conflicts := FindConflicts(values)
	return &Report{
		Valid:     len(conflicts) == 0,
		Conflicts: conflicts,
	}, nil
}

func validateStructure(values []int) error {
	if len(values) != 81 {
		return fmt.Errorf("%w: grid must have 81 cells, got %d", ErrStructure, len(values))
	}
	return nil
}

func validateRange(values []int) error {
	for i, v := range values {
		if v < 0 || v > 9 {
			return fmt.Errorf("%w: cell %d has value %d, want 0..9", ErrStructure, i, v)
		}
	}
	return nil
}

// FindConflicts returns every duplicate-value pair across rows,
// columns, and boxes. Zero cells (empty) never conflict. Grounded on
// dp.FindConflicts, generalized from its row/column/box triple-loop
// into one pass over precomputed unit groupings.
func FindConflicts(values []int) []Conflict {
	var conflicts []Conflict
	seen := make(map[[3]int]bool)

	record := func(unit string, cells []int) {
		positions := make(map[int][]int)
		for _, idx := range cells {
			v := values[idx]
			if v == 0 {
				continue
			}
			positions[v] = append(positions[v], idx)
		}
		for val, idxs := range positions {
			for i := 0; i < len(idxs); i++ {
				for j := i + 1; j < len(idxs); j++ {
					key := [3]int{idxs[i], idxs[j], val}
					if seen[key] {
						continue
					}
					seen[key] = true
					conflicts = append(conflicts, Conflict{Cell1: idxs[i], Cell2: idxs[j], Value: val, Unit: unit})
				}
			}
		}
	}

	for row := 0; row < 9; row++ {
		cells := make([]int, 9)
		for col := 0; col < 9; col++ {
			cells[col] = row*9 + col
		}
		record("row", cells)
	}
	for col := 0; col < 9; col++ {
		cells := make([]int, 9)
		for row := 0; row < 9; row++ {
			cells[row] = row*9 + col
		}
		record("column", cells)
	}
	for box := 0; box < 9; box++ {
		boxRow, boxCol := (box/3)*3, (box%3)*3
		cells := make([]int, 0, 9)
		for r := boxRow; r < boxRow+3; r++ {
			for c := boxCol; c < boxCol+3; c++ {
				cells = append(cells, r*9+c)
			}
		}
		record("box", cells)
	}
	return conflicts
}
