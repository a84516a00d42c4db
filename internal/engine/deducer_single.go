package engine

// SingleCandidateDeducer implements the "naked single" strategy: a
// cell left with exactly one candidate must hold that digit, so the
// digit can be removed from every cell that shares its row, column, or
// box.
type SingleCandidateDeducer struct{}

// NewSingleCandidateDeducer returns a SingleCandidateDeducer.
func NewSingleCandidateDeducer() *SingleCandidateDeducer { return &SingleCandidateDeducer{} }

// Deduce scans one unit view for single-candidate cells and schedules
// removal of that candidate from their row/column/box peers in grid.
func (d *SingleCandidateDeducer) Deduce(grid *CellGrid, view *View) *TransactionSet {
	ts := NewTransactionSet()
	seen := map[Position]bool{}

	for _, cell := range view.Cells() {
		if cell.Value() != 0 {
			continue
		}
		digit, ok := cell.Candidates().Only()
		if !ok {
			continue
		}
		if seen[cell.Position()] {
			continue
		}
		seen[cell.Position()] = true
		d.deduceAdjacent(grid, cell, digit, ts)
	}
	return ts
}

func (d *SingleCandidateDeducer) deduceAdjacent(grid *CellGrid, cell *Cell, digit int, ts *TransactionSet) {
	self := cell.Position()
	for _, peer := range grid.Row(cell.Row()).Cells() {
		if peer.Position() != self && peer.Candidates().Has(digit) {
			ts.Add(peer.Position(), digit)
		}
	}
	for _, peer := range grid.Col(cell.Col()).Cells() {
		if peer.Position() != self && peer.Candidates().Has(digit) {
			ts.Add(peer.Position(), digit)
		}
	}
	for _, peer := range grid.Box(cell.Box()).Cells() {
		if peer.Position() != self && peer.Candidates().Has(digit) {
			ts.Add(peer.Position(), digit)
		}
	}
}
