package constants

import "time"

// Grid constants
const (
	GridSize   = 9
	BoxSize    = 3
	TotalCells = 81
	MinGivens  = 17
)

// Solver limits
const (
	MaxSolverSteps     = 500
	SolutionCountLimit = 2
)

// Session
const (
	SessionTokenExpiry = 24 * time.Hour
)

// Difficulties. Tuning for each tier's emptied-cell range lives in
// internal/carve/tiers.yaml, not here; these names are the stable
// vocabulary shared across internal/core, internal/puzzles, and the
// HTTP layer.
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
	DifficultyExpert = "expert"
	DifficultyEvil   = "evil"
)

// DifficultyKeys maps full difficulty names to the single-letter keys
// used in the compact puzzle bank format.
var DifficultyKeys = map[string]string{
	DifficultyEasy:   "e",
	DifficultyMedium: "m",
	DifficultyHard:   "h",
	DifficultyExpert: "x",
	DifficultyEvil:   "v",
}

// API version
const APIVersion = "0.1.0"

// Default ports
const DefaultPort = "8080"

// Date format
const DateFormat = "2006-01-02"
