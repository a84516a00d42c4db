package engine

import "fmt"

// maxGuesses bounds the backtracking search as a circuit breaker
// against pathological or malformed input; a real 9x9 puzzle is never
// remotely close to this many guesses.
const maxGuesses = 200000

// Solver drives the deduce/resolve/inject loop to completion: repeated
// constraint propagation, forced single-candidate resolution, and —
// when propagation stalls on an incomplete grid — a guess from the
// Injector, backtracking on contradiction.
type Solver struct {
	Deducer *Deducer
}

// NewSolver returns a Solver using a default Deducer configuration.
func NewSolver() *Solver {
	return &Solver{Deducer: NewDeducer()}
}

// Solve runs the loop against grid in place and returns it once
// complete. inj supplies the guesses; pass a freshly constructed
// Injector per solve so its history reflects only this run.
func (s *Solver) Solve(grid *CellGrid, inj *Injector) (*CellGrid, error) {
	for {
		if hasContradiction(grid) {
			if err := inj.Backtrack(grid); err != nil {
				return nil, err
			}
			continue
		}

		progressed := s.propagateOnce(grid)
		if grid.IsComplete() {
			if hasContradiction(grid) {
				if err := inj.Backtrack(grid); err != nil {
					return nil, err
				}
				continue
			}
			return grid, nil
		}
		if progressed {
			continue
		}

		if inj.Guesses() >= maxGuesses {
			return nil, fmt.Errorf("%w: exceeded %d guesses", ErrUnsolvable, maxGuesses)
		}
		if err := inj.Guess(grid); err != nil {
			if err := inj.Backtrack(grid); err != nil {
				return nil, err
			}
		}
	}
}

// propagateOnce runs one deduction pass, commits it, and resolves any
// single-candidate cells it produced (cascading their elimination
// through the cells adjacent to each). Returns whether anything
// changed.
func (s *Solver) propagateOnce(grid *CellGrid) bool {
	ts := s.Deducer.Deduce(grid)
	affected := Eliminate(grid, ts)
	progressed := len(affected) > 0

	resolved := s.resolveSingles(grid)
	return progressed || resolved
}

// resolveSingles assigns a value to every empty cell left with exactly
// one candidate, then re-propagates around each newly-filled cell,
// cascading until no more singles remain. Mirrors the original
// generator's resolve/resolve_adjacent cascade.
func (s *Solver) resolveSingles(grid *CellGrid) bool {
	resolvedAny := false
	for {
		var cell *Cell
		for _, c := range grid.EmptyCells() {
			if digit, ok := c.Candidates().Only(); ok {
				cell = c
				cell.value = digit
				break
			}
		}
		if cell == nil {
			return resolvedAny
		}
		resolvedAny = true
		ts := s.Deducer.DeduceAdjacent(grid, cell.Row(), cell.Col())
		Eliminate(grid, ts)
	}
}

// hasContradiction reports whether grid is in a state no completion
// can fix: an empty cell with no remaining candidates, a unit with a
// duplicate value, or a unit where some digit has nowhere left to go.
func hasContradiction(grid *CellGrid) bool {
	for _, c := range grid.EmptyCells() {
		if c.Candidates().IsEmpty() {
			return true
		}
	}
	for i := 0; i < 9; i++ {
		for _, view := range []*View{grid.Row(i), grid.Col(i), grid.Box(i)} {
			if !view.IsValidGroup() {
				return true
			}
			if unitStranded(view) {
				return true
			}
		}
	}
	return false
}

func unitStranded(view *View) bool {
	have := map[int]bool{}
	candidateHomes := map[int]int{}
	for _, c := range view.Cells() {
		if c.Value() != 0 {
			have[c.Value()] = true
			continue
		}
		for _, d := range c.Candidates().ToSlice() {
			candidateHomes[d]++
		}
	}
	for digit := 1; digit <= 9; digit++ {
		if have[digit] {
			continue
		}
		if candidateHomes[digit] == 0 {
			return true
		}
	}
	return false
}

// Solve is a package-level convenience that builds a default Solver
// and Injector seeded from seed, and solves grid in place.
func Solve(grid *CellGrid, seed int64) (*CellGrid, error) {
	return NewSolver().Solve(grid, NewInjector(newRand(seed)))
}
