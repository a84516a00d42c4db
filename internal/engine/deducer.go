package engine

// Strategy names one of the five fixed deduction techniques the
// façade stages. Fits the enumeration spec §9 calls for: "the five
// strategies fit naturally as a fixed enumeration; enabled-state and
// optional integer parameter live in a small lookup table keyed by
// that enum."
type Strategy int

const (
	StrategyValue Strategy = iota
	StrategySingleCandidate
	StrategyLineBox
	StrategyCompanion
	StrategyVertex
)

// strategyConfig is one row of the façade's per-strategy lookup
// table: whether the stage runs at all, and its optional integer
// parameter (only Companion and Vertex use one).
type strategyConfig struct {
	enabled bool
	max     int
}

// Deducer is the staged deduction pipeline façade: it runs the five
// strategies against a grid in order of cost, skipping every later
// stage once an earlier one has already scheduled eliminations for
// this pass. Mirrors the phase-based FindNextMove staging in
// internal/sudoku/human/solver.go, generalized to five fixed
// strategies instead of the full hint-technique ladder.
type Deducer struct {
	value     *ValueDeducer
	single    *SingleCandidateDeducer
	lineBox   *LineBoxDeducer
	vertex    *VertexCoupleDeducer
	companion *CompanionDeducer

	config map[Strategy]*strategyConfig
}

// NewDeducer returns a Deducer with every strategy enabled and the
// default subset/couple bounds (naked quads, jellyfish).
func NewDeducer() *Deducer {
	return &Deducer{
		value:     NewValueDeducer(),
		single:    NewSingleCandidateDeducer(),
		lineBox:   NewLineBoxDeducer(),
		vertex:    NewVertexCoupleDeducer(),
		companion: NewCompanionDeducer(),
		config: map[Strategy]*strategyConfig{
			StrategyValue:           {enabled: true},
			StrategySingleCandidate: {enabled: true},
			StrategyLineBox:         {enabled: true},
			StrategyCompanion:       {enabled: true, max: 4},
			StrategyVertex:          {enabled: true, max: 4},
		},
	}
}

// Enable turns a strategy on. max sets its optional integer parameter
// (naked-subset size for Companion, couple size for Vertex) when > 0;
// passing 0 leaves the strategy's existing parameter untouched. Value,
// SingleCandidate, and LineBox ignore max. Mirrors spec §6's library
// surface: `Deducer(grid)` with per-strategy `enable(strategy, max=None)`.
func (d *Deducer) Enable(s Strategy, max int) {
	cfg := d.config[s]
	cfg.enabled = true
	if max > 0 {
		cfg.max = max
	}
}

// Disable turns a strategy off; the pipeline skips it entirely.
func (d *Deducer) Disable(s Strategy) {
	d.config[s].enabled = false
}

// Enabled reports whether a strategy currently runs.
func (d *Deducer) Enabled(s Strategy) bool {
	return d.config[s].enabled
}

// Deduce runs one full pass over grid and returns the transactions the
// first productive enabled stage scheduled (possibly none, if the
// grid admits no further elimination or every stage is disabled).
func (d *Deducer) Deduce(grid *CellGrid) *TransactionSet {
	if d.Enabled(StrategyValue) {
		if ts := d.runValue(grid); ts.Len() > 0 {
			return ts
		}
	}
	if d.Enabled(StrategySingleCandidate) {
		if ts := d.runSingle(grid); ts.Len() > 0 {
			return ts
		}
	}
	if d.Enabled(StrategyLineBox) {
		if ts := d.runLineBox(grid); ts.Len() > 0 {
			return ts
		}
	}
	if d.Enabled(StrategyVertex) {
		if ts := d.runVertex(grid); ts.Len() > 0 {
			return ts
		}
	}
	if d.Enabled(StrategyCompanion) {
		return d.runCompanion(grid)
	}
	return NewTransactionSet()
}

// DeduceAdjacent restricts a deduction pass to the row, column, and box
// touching one cell — the engine's equivalent of the Python original's
// Board.deduce_cell, used after a single placement instead of
// re-scanning the whole grid. Ignores the enabled-state table: value
// and single-candidate propagation must always run here since callers
// rely on it to resolve cascades after a forced assignment.
func (d *Deducer) DeduceAdjacent(grid *CellGrid, row, col int) *TransactionSet {
	ts := NewTransactionSet()
	ts.Extend(d.value.Deduce(grid.Row(row)))
	ts.Extend(d.value.Deduce(grid.Col(col)))
	ts.Extend(d.value.Deduce(grid.Box(grid.Cell(row, col).Box())))
	ts.Extend(d.single.Deduce(grid, grid.Row(row)))
	ts.Extend(d.single.Deduce(grid, grid.Col(col)))
	ts.Extend(d.single.Deduce(grid, grid.Box(grid.Cell(row, col).Box())))
	return ts
}

// IsSolvable reports whether grid is still worth pursuing: it returns
// false iff some cell has value 0 and an empty candidate set — the
// Deducer façade operation spec §4.9 names.
func (d *Deducer) IsSolvable(grid *CellGrid) bool {
	for _, c := range grid.EmptyCells() {
		if c.Candidates().IsEmpty() {
			return false
		}
	}
	return true
}

// Eliminate commits a TransactionSet's pending removals to grid.
func Eliminate(grid *CellGrid, ts *TransactionSet) []Position {
	var affected []Position
	for _, t := range ts.Transactions() {
		cell := grid.CellAt(t.Position())
		if cell.RemoveCandidates(NewCandidates(t.Candidates())) {
			affected = append(affected, t.Position())
		}
	}
	return affected
}

func (d *Deducer) runValue(grid *CellGrid) *TransactionSet {
	ts := NewTransactionSet()
	for i := 0; i < 9; i++ {
		ts.Extend(d.value.Deduce(grid.Row(i)))
		ts.Extend(d.value.Deduce(grid.Col(i)))
		ts.Extend(d.value.Deduce(grid.Box(i)))
	}
	return ts
}

func (d *Deducer) runSingle(grid *CellGrid) *TransactionSet {
	ts := NewTransactionSet()
	for i := 0; i < 9; i++ {
		ts.Extend(d.single.Deduce(grid, grid.Row(i)))
		ts.Extend(d.single.Deduce(grid, grid.Col(i)))
		ts.Extend(d.single.Deduce(grid, grid.Box(i)))
	}
	return ts
}

func (d *Deducer) runLineBox(grid *CellGrid) *TransactionSet {
	ts := NewTransactionSet()
	for i := 0; i < 9; i++ {
		ts.Extend(d.lineBox.DeduceRow(grid, i))
		ts.Extend(d.lineBox.DeduceCol(grid, i))
	}
	return ts
}

func (d *Deducer) runVertex(grid *CellGrid) *TransactionSet {
	ts := NewTransactionSet()
	maxPairs := d.config[StrategyVertex].max
	ts.Extend(d.vertex.DeduceRows(grid, maxPairs))
	ts.Extend(d.vertex.DeduceCols(grid, maxPairs))
	return ts
}

func (d *Deducer) runCompanion(grid *CellGrid) *TransactionSet {
	ts := NewTransactionSet()
	maxCount := d.config[StrategyCompanion].max
	for i := 0; i < 9; i++ {
		ts.Extend(d.companion.Deduce(grid.Row(i), maxCount))
		ts.Extend(d.companion.Deduce(grid.Col(i), maxCount))
		ts.Extend(d.companion.Deduce(grid.Box(i), maxCount))
	}
	return ts
}
