package engine

import "errors"

// Sentinel errors for the engine's taxonomy. Wrap with fmt.Errorf's
// %w so callers can still errors.Is against these.
var (
	// ErrInvalidInput marks a malformed argument (out-of-range digit,
	// wrong-length slice, nil grid).
	ErrInvalidInput = errors.New("engine: invalid input")

	// ErrInvalidGroup marks a row/column/box/rectangle view that does
	// not have the shape the caller assumed (wrong rowCount/colCount).
	ErrInvalidGroup = errors.New("engine: invalid group")

	// ErrConflict marks a grid that violates Sudoku's placement rule:
	// the same digit twice in a row, column, or box.
	ErrConflict = errors.New("engine: conflicting grid")

	// ErrUnsolvable marks a grid the injector exhausted every
	// backtracking branch on without finding a solution.
	ErrUnsolvable = errors.New("engine: puzzle has no solution")

	// ErrPermanentCell marks an attempt to overwrite a puzzle given.
	ErrPermanentCell = errors.New("engine: cell is permanent")
)
