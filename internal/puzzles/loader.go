// Package puzzles manages a bank of pre-generated puzzles and the
// daily rotation that picks one for "today". Generalized to source
// puzzles from internal/engine.Generator + internal/carve instead of a
// DP-only precomputed bank, and to use carve.Difficulty's tier names.
package puzzles

import (
	"encoding/json"
	"fmt"
	"hash/fnv"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"sudoku-engine/internal/carve"
	"sudoku-engine/internal/engine"
	"sudoku-engine/pkg/constants"
)

// CompactPuzzle stores a puzzle in minimal format.
type CompactPuzzle struct {
	S string           `json:"s"` // solution as TotalCells-char string
	G map[string][]int `json:"g"` // givens: difficulty key -> cell indices
}

// PuzzleFile is the top-level structure for the JSON bank file.
type PuzzleFile struct {
	Version int             `json:"version"`
	Count   int             `json:"count"`
	Puzzles []CompactPuzzle `json:"puzzles"`
}

// Loader manages pre-generated puzzles and falls back to generating a
// fresh one when the bank doesn't have an entry.
type Loader struct {
	puzzles []CompactPuzzle
	tiers   *carve.TierConfig
	mu      sync.RWMutex
}

var (
	globalLoader *Loader
	loadOnce     sync.Once
	loadErr      error
)

// Load reads puzzles from the JSON bank file.
func Load(path string) (*Loader, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read puzzle file: %w", err)
	}

	var file PuzzleFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse puzzle file: %w", err)
	}

	return &Loader{puzzles: file.Puzzles, tiers: carve.DefaultTiers()}, nil
}

// LoadGlobal loads puzzles into the global loader (singleton).
func LoadGlobal(path string) error {
	loadOnce.Do(func() {
		globalLoader, loadErr = Load(path)
	})
	return loadErr
}

// Global returns the global loader instance.
func Global() *Loader {
	return globalLoader
}

// SetGlobal sets the global loader instance (for testing).
func SetGlobal(l *Loader) {
	globalLoader = l
}

// NewLoaderFromPuzzles creates a loader from puzzle data (for testing).
func NewLoaderFromPuzzles(puzzles []CompactPuzzle) *Loader {
	return &Loader{puzzles: puzzles, tiers: carve.DefaultTiers()}
}

// Count returns the number of puzzles in the bank.
func (l *Loader) Count() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.puzzles)
}

// GetPuzzle returns a bank puzzle by index and difficulty key.
func (l *Loader) GetPuzzle(index int, difficulty string) (givens []int, solution []int, err error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if index < 0 || index >= len(l.puzzles) {
		return nil, nil, fmt.Errorf("puzzle index %d out of range (0-%d)", index, len(l.puzzles)-1)
	}

	puzzle := l.puzzles[index]

	solution = make([]int, constants.TotalCells)
	for i, c := range puzzle.S {
		solution[i] = int(c - '0')
	}

	key, ok := constants.DifficultyKeys[difficulty]
	if !ok {
		return nil, nil, fmt.Errorf("unknown difficulty: %s", difficulty)
	}

	indices, ok := puzzle.G[key]
	if !ok {
		return nil, nil, fmt.Errorf("difficulty %s not found in puzzle", difficulty)
	}

	givens = make([]int, constants.TotalCells)
	for _, idx := range indices {
		givens[idx] = solution[idx]
	}

	return givens, solution, nil
}

// GetPuzzleBySeed hashes seed to a bank index; if the bank is empty it
// generates a fresh puzzle instead via internal/engine + internal/carve.
func (l *Loader) GetPuzzleBySeed(seed string, difficulty string) (givens []int, solution []int, puzzleIndex int, err error) {
	l.mu.RLock()
	count := len(l.puzzles)
	l.mu.RUnlock()

	if count == 0 {
		givens, solution, err = GenerateOnDemand(hashSeed(seed), carve.Difficulty(difficulty))
		return givens, solution, -1, err
	}

	h := fnv.New64a()
	h.Write([]byte(seed))
	puzzleIndex = int(h.Sum64() % uint64(count)) //nolint:gosec // count is bounded by slice length

	givens, solution, err = l.GetPuzzle(puzzleIndex, difficulty)
	return
}

// GetDailyPuzzle returns the puzzle for a given UTC date.
func (l *Loader) GetDailyPuzzle(date time.Time, difficulty string) (givens []int, solution []int, puzzleIndex int, err error) {
	dateStr := date.UTC().Format(constants.DateFormat)
	seed := "daily:" + dateStr
	return l.GetPuzzleBySeed(seed, difficulty)
}

// GetTodayPuzzle returns the puzzle for today (UTC).
func (l *Loader) GetTodayPuzzle(difficulty string) (givens []int, solution []int, puzzleIndex int, err error) {
	return l.GetDailyPuzzle(time.Now(), difficulty)
}

// GenerateOnDemand builds a fresh solved grid with the given seed and
// carves it down to difficulty, used whenever the bank can't serve a
// seed (an empty bank, or a bank lookup that returns an error).
func GenerateOnDemand(seed int64, difficulty carve.Difficulty) (givens []int, solution []int, err error) {
	grid, err := engine.NewGenerator(seed).Generate()
	if err != nil {
		return nil, nil, fmt.Errorf("puzzles: generating grid: %w", err)
	}
	solution = grid.Values()

	remover, err := carve.NewCellValuesRemover(solution, carve.DefaultTiers(), seed)
	if err != nil {
		return nil, nil, fmt.Errorf("puzzles: preparing remover: %w", err)
	}
	givens, err = remover.Remove(difficulty)
	if err != nil {
		return nil, nil, fmt.Errorf("puzzles: carving %s: %w", difficulty, err)
	}
	log.Debug().Int64("seed", seed).Str("difficulty", string(difficulty)).Int("givens", carve.GivenCount(givens)).Msg("generated puzzle on demand")
	return givens, solution, nil
}

func hashSeed(seed string) int64 {
	h := fnv.New64a()
	h.Write([]byte(seed))
	return int64(h.Sum64())
}
