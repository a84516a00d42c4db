// Package http wires the engine, carve, validate, and puzzles packages
// into a gin HTTP API: puzzle generation, candidate solving,
// in-progress and custom-puzzle validation, and session tracking.
// Rewired onto internal/engine + internal/carve instead of the
// original DP/human-hint solver split.
package http

import (
	"hash/fnv"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"sudoku-engine/internal/carve"
	"sudoku-engine/internal/core"
	"sudoku-engine/internal/engine"
	"sudoku-engine/internal/puzzles"
	"sudoku-engine/internal/validate"
	"sudoku-engine/pkg/config"
	"sudoku-engine/pkg/constants"
)

var (
	cfg          *config.Config
	bodyValidate = validator.New()
)

func RegisterRoutes(r *gin.Engine, c *config.Config) {
	cfg = c

	r.Use(requestLogger())
	r.GET("/health", healthHandler)

	api := r.Group("/api")
	{
		api.GET("/daily", dailyHandler)
		api.GET("/puzzle/:seed", puzzleHandler)
		api.POST("/session/start", sessionStartHandler)
		api.POST("/solve", solveHandler)
		api.POST("/validate", validateBoardHandler)
		api.POST("/custom/validate", customValidateHandler)
	}
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("duration", time.Since(start)).
			Msg("request")
	}
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"version": constants.APIVersion,
	})
}

func todayUTC() string {
	return time.Now().UTC().Format(constants.DateFormat)
}

func dailyHandler(c *gin.Context) {
	dateUTC := todayUTC()
	seed := "D" + dateUTC

	var puzzleIndex int
	if loader := puzzles.Global(); loader != nil {
		_, _, puzzleIndex, _ = loader.GetDailyPuzzle(time.Now(), string(core.DifficultyMedium))
	}

	c.JSON(http.StatusOK, gin.H{
		"date_utc":     dateUTC,
		"seed":         seed,
		"puzzle_index": puzzleIndex,
	})
}

func isKnownDifficulty(d core.Difficulty) bool {
	switch d {
	case core.DifficultyEasy, core.DifficultyMedium, core.DifficultyHard, core.DifficultyExpert, core.DifficultyEvil:
		return true
	default:
		return false
	}
}

func puzzleHandler(c *gin.Context) {
	seed := c.Param("seed")
	difficulty := core.Difficulty(c.DefaultQuery("d", string(core.DifficultyMedium)))

	if !isKnownDifficulty(difficulty) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_difficulty"})
		return
	}

	givens, _, puzzleIndex, err := resolvePuzzle(seed, difficulty)
	if err != nil {
		log.Error().Err(err).Str("seed", seed).Msg("failed to resolve puzzle")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to produce puzzle"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"puzzle_id":    seed + "-" + string(difficulty),
		"seed":         seed,
		"difficulty":   difficulty,
		"givens":       givens,
		"puzzle_index": puzzleIndex,
	})
}

// resolvePuzzle looks up seed in the loaded bank, falling back to
// generating fresh via internal/engine + internal/carve.
func resolvePuzzle(seed string, difficulty core.Difficulty) (givens []int, solution []int, puzzleIndex int, err error) {
	if loader := puzzles.Global(); loader != nil {
		givens, solution, puzzleIndex, err = loader.GetPuzzleBySeed(seed, string(difficulty))
		if err == nil {
			return givens, solution, puzzleIndex, nil
		}
	}
	givens, solution, err = puzzles.GenerateOnDemand(hashSeed(seed), difficulty.ToCarve())
	return givens, solution, -1, err
}

func hashSeed(seed string) int64 {
	h := fnv.New64a()
	h.Write([]byte(seed))
	return int64(h.Sum64())
}

type sessionStartRequest struct {
	Seed       string `json:"seed" binding:"required" validate:"required"`
	Difficulty string `json:"difficulty" binding:"required" validate:"required"`
	DeviceID   string `json:"device_id" binding:"required" validate:"required"`
}

func sessionStartHandler(c *gin.Context) {
	var req sessionStartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := bodyValidate.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	difficulty := core.Difficulty(req.Difficulty)
	if !isKnownDifficulty(difficulty) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_difficulty"})
		return
	}

	puzzleID := req.Seed + "-" + req.Difficulty
	session := newSessionToken(req.DeviceID, puzzleID, req.Seed, req.Difficulty, constants.SessionTokenExpiry)

	token, err := createToken(cfg.JWTSecret, session)
	if err != nil {
		log.Error().Err(err).Msg("failed to create session token")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":      token,
		"puzzle_id":  puzzleID,
		"started_at": time.Unix(session.StartedAt, 0).UTC().Format(time.RFC3339),
	})
}

type solveRequest struct {
	Token string `json:"token" binding:"required"`
	Board []int  `json:"board" binding:"required"`
}

// solveHandler runs the constraint-propagation + backtracking solver
// to completion and returns the final grid.
func solveHandler(c *gin.Context) {
	var req solveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := verifyToken(cfg.JWTSecret, req.Token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token: " + err.Error()})
		return
	}

	if len(req.Board) != constants.TotalCells {
		c.JSON(http.StatusBadRequest, gin.H{"error": "board must have 81 cells"})
		return
	}

	if err := validate.Strict(req.Board); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	grid, err := engine.NewCellGridFromValues(req.Board)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	solved, err := engine.Solve(grid, hashSeed(session.Seed))
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"solved": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"solved": true,
		"board":  solved.Values(),
	})
}

type validateBoardRequest struct {
	Token string `json:"token" binding:"required"`
	Board []int  `json:"board" binding:"required"`
}

// validateBoardHandler checks the in-progress board for rule
// conflicts and, if clean, whether it can still be completed.
func validateBoardHandler(c *gin.Context) {
	var req validateBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := verifyToken(cfg.JWTSecret, req.Token); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token: " + err.Error()})
		return
	}

	if len(req.Board) != constants.TotalCells {
		c.JSON(http.StatusBadRequest, gin.H{"error": "board must have 81 cells"})
		return
	}

	report, err := validate.Lenient(req.Board)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !report.Valid {
		c.JSON(http.StatusOK, gin.H{
			"valid":     false,
			"reason":    "conflicts",
			"message":   "there are conflicting numbers in the puzzle",
			"conflicts": report.Conflicts,
		})
		return
	}

	grid, err := engine.NewCellGridFromValues(req.Board)
	if err == nil {
		_, err = engine.Solve(grid, 0)
	}
	if err != nil {
		c.JSON(http.StatusOK, gin.H{
			"valid":   false,
			"reason":  "unsolvable",
			"message": "the puzzle cannot be solved from this state",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"valid":   true,
		"message": "all entries are correct so far",
	})
}

type customValidateRequest struct {
	Givens   []int  `json:"givens" binding:"required"`
	DeviceID string `json:"device_id" binding:"required" validate:"required"`
}

// customValidateHandler checks a user-submitted puzzle for structural
// validity and a unique solution before it's accepted for play.
func customValidateHandler(c *gin.Context) {
	var req customValidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := bodyValidate.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if len(req.Givens) != constants.TotalCells {
		c.JSON(http.StatusBadRequest, gin.H{"error": "givens must have 81 cells"})
		return
	}

	if carve.GivenCount(req.Givens) < constants.MinGivens {
		c.JSON(http.StatusOK, gin.H{"valid": false, "reason": "need at least 17 givens"})
		return
	}

	if err := validate.Strict(req.Givens); err != nil {
		c.JSON(http.StatusOK, gin.H{"valid": false, "reason": err.Error()})
		return
	}

	if !carve.HasUniqueSolution(req.Givens) {
		c.JSON(http.StatusOK, gin.H{"valid": true, "unique": false, "reason": "puzzle does not have exactly one solution"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"valid":     true,
		"unique":    true,
		"puzzle_id": "custom-" + uuid.NewString(),
	})
}
