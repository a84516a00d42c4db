// Package core holds the shapes shared across transport and storage
// boundaries: puzzles, scores, and the sessions that connect them.
package core

import (
	"time"

	"github.com/google/uuid"

	"sudoku-engine/internal/carve"
)

// Difficulty names a puzzle's clue-removal tier. Kept distinct from
// carve.Difficulty so API payloads don't leak the carving package's
// internals, though the values line up one-to-one.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
	DifficultyExpert Difficulty = "expert"
	DifficultyEvil   Difficulty = "evil"
)

// ToCarve maps an API-facing Difficulty onto the carve package's tier name.
func (d Difficulty) ToCarve() carve.Difficulty {
	return carve.Difficulty(d)
}

// NewID returns a fresh random identifier for any of the types below.
// Grounded on smilemakc/mbflow and pflow-xyz/go-pflow, both of which
// use google/uuid for entity IDs rather than hand-rolled strings.
func NewID() string {
	return uuid.NewString()
}

// User identifies a device-bound player. Accounts are optional; most
// play happens anonymously keyed on DeviceID.
type User struct {
	ID          string    `json:"id"`
	DeviceID    string    `json:"device_id"`
	DisplayName *string   `json:"display_name,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Daily names the puzzle seed assigned to a calendar date, so every
// player solving "today's puzzle" gets the same grid.
type Daily struct {
	DateUTC   string    `json:"date_utc"`
	Seed      string    `json:"seed"`
	CreatedAt time.Time `json:"created_at"`
}

// Puzzle bundles one generated solution with its per-difficulty
// givens, as produced by internal/engine.Generator + internal/carve.
type Puzzle struct {
	ID                 string               `json:"id"`
	Seed               string               `json:"seed"`
	Solution           []int                `json:"solution"`
	GivensByDifficulty map[Difficulty][]int `json:"givens_by_difficulty"`
	CreatedAt          time.Time            `json:"created_at"`
}

// Score records one completed (or abandoned) solving attempt.
type Score struct {
	ID         string     `json:"id"`
	UserID     *string    `json:"user_id,omitempty"`
	DeviceID   string     `json:"device_id"`
	PuzzleID   string     `json:"puzzle_id"`
	Difficulty Difficulty `json:"difficulty"`
	TimeMs     int        `json:"time_ms"`
	Mistakes   int        `json:"mistakes"`
	GuessCount int        `json:"guess_count"`
	Validated  bool       `json:"validated"`
	CreatedAt  time.Time  `json:"created_at"`
}

// Result is a shareable, optionally public view of a Score.
type Result struct {
	ID        string    `json:"id"`
	ScoreID   string    `json:"score_id"`
	Public    bool      `json:"public"`
	CreatedAt time.Time `json:"created_at"`
}
