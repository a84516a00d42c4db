package engine

// VertexCoupleDeducer implements the X-wing/swordfish/jellyfish family:
// when a candidate digit is confined to the same N columns across N
// rows (or the same N rows across N columns), the digit can be removed
// from every other cell in those columns (or rows).
type VertexCoupleDeducer struct{}

// NewVertexCoupleDeducer returns a VertexCoupleDeducer.
func NewVertexCoupleDeducer() *VertexCoupleDeducer { return &VertexCoupleDeducer{} }

// DeduceRows scans by row (eliminating down columns). maxVertexPairs
// bounds the couple size searched (2 = X-wing, 3 = swordfish, 4 =
// jellyfish).
func (d *VertexCoupleDeducer) DeduceRows(grid *CellGrid, maxVertexPairs int) *TransactionSet {
	return d.deduce(grid, true, maxVertexPairs)
}

// DeduceCols scans by column (eliminating across rows).
func (d *VertexCoupleDeducer) DeduceCols(grid *CellGrid, maxVertexPairs int) *TransactionSet {
	return d.deduce(grid, false, maxVertexPairs)
}

func (d *VertexCoupleDeducer) deduce(grid *CellGrid, byRow bool, maxVertexPairs int) *TransactionSet {
	ts := NewTransactionSet()

	for digit := 1; digit <= 9; digit++ {
		// lineSpots[i] = the perpendicular indices where digit is a
		// candidate within line i (row i if byRow, else column i).
		var lineSpots [9][]int
		for i := 0; i < 9; i++ {
			var line *View
			if byRow {
				line = grid.Row(i)
			} else {
				line = grid.Col(i)
			}
			for j, c := range line.Cells() {
				if c.Value() == 0 && c.Candidates().Has(digit) {
					lineSpots[i] = append(lineSpots[i], j)
				}
			}
		}

		var candidateLines []int
		for i := 0; i < 9; i++ {
			n := len(lineSpots[i])
			if n >= 2 && n <= maxVertexPairs {
				candidateLines = append(candidateLines, i)
			}
		}

		for size := 2; size <= maxVertexPairs; size++ {
			found := false
			forEachIntCombination(candidateLines, size, func(lines []int) {
				spotSet := map[int]bool{}
				for _, li := range lines {
					for _, s := range lineSpots[li] {
						spotSet[s] = true
					}
				}
				if len(spotSet) != size {
					return
				}
				lineSet := map[int]bool{}
				for _, li := range lines {
					lineSet[li] = true
				}
				for spot := range spotSet {
					for perp := 0; perp < 9; perp++ {
						if lineSet[perp] {
							continue
						}
						var cell *Cell
						if byRow {
							cell = grid.Cell(perp, spot)
						} else {
							cell = grid.Cell(spot, perp)
						}
						if cell.Value() == 0 && cell.Candidates().Has(digit) {
							ts.Add(cell.Position(), digit)
							found = true
						}
					}
				}
			})
			if found {
				break
			}
		}
	}
	return ts
}

func forEachIntCombination(items []int, size int, fn func(group []int)) {
	if size <= 0 || size > len(items) {
		return
	}
	combo := make([]int, size)
	var recurse func(start, depth int)
	recurse = func(start, depth int) {
		if depth == size {
			group := make([]int, size)
			copy(group, combo)
			fn(group)
			return
		}
		for i := start; i <= len(items)-(size-depth); i++ {
			combo[depth] = items[i]
			recurse(i+1, depth+1)
		}
	}
	recurse(0, 0)
}
