package engine

import "math/rand"

// newRand returns an explicitly-owned random source seeded
// deterministically. The engine never reaches for the ambient
// math/rand global functions — every caller that needs randomness
// (Generator, package-level Solve) owns its *rand.Rand so the same
// seed always reproduces the same puzzle or solve path.
func newRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// Generator produces complete, valid 9x9 Sudoku grids. It seeds the
// three diagonal boxes (which never share a row, column, or box with
// one another) with independent random permutations of 1-9, then
// delegates the rest of the fill to the Solver/Injector pipeline —
// grounded on sudokupy/generator.py's _generate_diagonal_boxes, with
// real chronological backtracking instead of that iteration's
// unconditional forward guessing.
type Generator struct {
	rng    *rand.Rand
	Solver *Solver
}

// NewGenerator returns a Generator seeded deterministically from seed.
func NewGenerator(seed int64) *Generator {
	return &Generator{
		rng:    newRand(seed),
		Solver: NewSolver(),
	}
}

// Generate returns a newly filled, complete, valid grid.
func (g *Generator) Generate() (*CellGrid, error) {
	grid := NewCellGrid()
	g.seedDiagonalBoxes(grid)

	inj := NewInjector(g.rng)
	return g.Solver.Solve(grid, inj)
}

// seedDiagonalBoxes assigns an independently shuffled 1-9 permutation
// to boxes (0,0), (1,1), and (2,2). These three boxes share no row,
// column, or box with each other, so any permutation is conflict-free
// without touching the Deducer at all.
func (g *Generator) seedDiagonalBoxes(grid *CellGrid) {
	for i := 0; i < 3; i++ {
		box := grid.Box(i * 3 + i)
		digits := g.shuffledDigits()
		for j, cell := range box.Cells() {
			cell.value = digits[j]
			cell.candidates = NewCandidates([]int{digits[j]})
		}
	}
}

func (g *Generator) shuffledDigits() []int {
	digits := []int{1, 2, 3, 4, 5, 6, 7, 8, 9}
	g.rng.Shuffle(len(digits), func(i, j int) {
		digits[i], digits[j] = digits[j], digits[i]
	})
	return digits
}
