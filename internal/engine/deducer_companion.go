package engine

// CompanionDeducer implements the naked-subset family (naked pairs,
// triples, quads): when N cells in a unit share, between them, exactly
// N candidate digits, those digits can be removed from every other
// cell in the unit.
type CompanionDeducer struct{}

// NewCompanionDeducer returns a CompanionDeducer.
func NewCompanionDeducer() *CompanionDeducer { return &CompanionDeducer{} }

// Deduce scans view for naked subsets up to size maxCompanionCount
// (the original Python default is 3; the engine defaults to 4 to also
// catch naked quads, the widest subset that can still matter on a 9x9
// board). It stops growing subset size as soon as any level produces
// a transaction.
func (d *CompanionDeducer) Deduce(view *View, maxCompanionCount int) *TransactionSet {
	ts := NewTransactionSet()

	var unsolved []*Cell
	for _, c := range view.Cells() {
		if c.Value() == 0 && !c.Candidates().IsEmpty() {
			unsolved = append(unsolved, c)
		}
	}

	maxLevel := maxCompanionCount
	if len(unsolved) < maxLevel {
		maxLevel = len(unsolved)
	}

	for size := 2; size <= maxLevel; size++ {
		found := false
		forEachCombination(unsolved, size, func(group []*Cell) {
			var union Candidates
			for _, c := range group {
				if c.Candidates().Count() > size {
					return
				}
				union = union.Union(c.Candidates())
			}
			if union.Count() != size {
				return
			}
			for _, cell := range unsolved {
				if containsCell(group, cell) {
					continue
				}
				var remove []int
				for _, digit := range cell.Candidates().ToSlice() {
					if union.Has(digit) {
						remove = append(remove, digit)
					}
				}
				if len(remove) > 0 {
					ts.Add(cell.Position(), remove...)
					found = true
				}
			}
		})
		if found {
			break
		}
	}
	return ts
}

func containsCell(group []*Cell, cell *Cell) bool {
	for _, c := range group {
		if c == cell {
			return true
		}
	}
	return false
}

// forEachCombination invokes fn with every size-length combination of
// cells, without allocating the full combination list up front.
func forEachCombination(cells []*Cell, size int, fn func(group []*Cell)) {
	if size <= 0 || size > len(cells) {
		return
	}
	combo := make([]*Cell, size)
	var recurse func(start, depth int)
	recurse = func(start, depth int) {
		if depth == size {
			group := make([]*Cell, size)
			copy(group, combo)
			fn(group)
			return
		}
		for i := start; i <= len(cells)-(size-depth); i++ {
			combo[depth] = cells[i]
			recurse(i+1, depth+1)
		}
	}
	recurse(0, 0)
}
