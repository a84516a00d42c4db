package engine

// LineBoxDeducer implements the pointing/claiming strategy: when a
// candidate within one row or column is confined to a single box
// segment (the 3 cells of that line inside one box), the candidate
// can be removed from the rest of that box outside the line.
type LineBoxDeducer struct{}

// NewLineBoxDeducer returns a LineBoxDeducer.
func NewLineBoxDeducer() *LineBoxDeducer { return &LineBoxDeducer{} }

// DeduceRow runs the strategy against row.
func (d *LineBoxDeducer) DeduceRow(grid *CellGrid, row int) *TransactionSet {
	line := grid.Row(row).Cells()
	return d.deduce(grid, line, true, row)
}

// DeduceCol runs the strategy against col.
func (d *LineBoxDeducer) DeduceCol(grid *CellGrid, col int) *TransactionSet {
	line := grid.Col(col).Cells()
	return d.deduce(grid, line, false, col)
}

func (d *LineBoxDeducer) deduce(grid *CellGrid, line []*Cell, isRow bool, lineIndex int) *TransactionSet {
	ts := NewTransactionSet()

	// segment 0 = cells 0-2, segment 1 = cells 3-5, segment 2 = cells 6-8.
	segCandidates := [3]map[int]bool{{}, {}, {}}
	for i, cell := range line {
		seg := i / 3
		for _, cand := range cell.Candidates().ToSlice() {
			segCandidates[seg][cand] = true
		}
	}

	for digit := 1; digit <= 9; digit++ {
		count := 0
		segIdx := -1
		for s := 0; s < 3; s++ {
			if segCandidates[s][digit] {
				count++
				segIdx = s
			}
		}
		if count != 1 {
			continue
		}
		boxTopLeft := segIdx * 3
		var box *View
		if isRow {
			box = grid.Box(grid.Cell(lineIndex, boxTopLeft).Box())
		} else {
			box = grid.Box(grid.Cell(boxTopLeft, lineIndex).Box())
		}
		for _, cell := range box.Cells() {
			if isRow && cell.Row() == lineIndex {
				continue
			}
			if !isRow && cell.Col() == lineIndex {
				continue
			}
			if cell.Candidates().Has(digit) {
				ts.Add(cell.Position(), digit)
			}
		}
	}
	return ts
}
