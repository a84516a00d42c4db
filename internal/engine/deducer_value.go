package engine

// ValueDeducer removes candidates made impossible by values already
// placed in a unit: a filled cell no longer needs any candidates of
// its own, and an empty cell can't carry a digit some peer in the unit
// already holds.
type ValueDeducer struct{}

// NewValueDeducer returns a ValueDeducer.
func NewValueDeducer() *ValueDeducer { return &ValueDeducer{} }

// Deduce scans one unit view (row, column, or box) and returns the
// candidate removals it implies.
func (d *ValueDeducer) Deduce(view *View) *TransactionSet {
	ts := NewTransactionSet()

	values := map[int]bool{}
	for _, c := range view.Cells() {
		if c.Value() != 0 {
			values[c.Value()] = true
		}
	}

	for _, c := range view.Cells() {
		cands := c.Candidates()
		if cands.IsEmpty() {
			continue
		}
		if c.Value() != 0 {
			ts.Add(c.Position(), cands.ToSlice()...)
			continue
		}
		var remove []int
		for _, d := range cands.ToSlice() {
			if values[d] {
				remove = append(remove, d)
			}
		}
		if len(remove) > 0 {
			ts.Add(c.Position(), remove...)
		}
	}
	return ts
}
