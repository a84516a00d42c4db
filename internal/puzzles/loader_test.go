package puzzles

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test fixture: minimal valid puzzle data, difficulty keys per
// pkg/constants.DifficultyKeys (e/m/h/x/v).
const validPuzzleJSON = `{
	"version": 1,
	"count": 2,
	"puzzles": [
		{
			"s": "157924638362158974498736512531279486926483157784615293273561849619847325845392761",
			"g": {
				"e": [0,1,2,3,4,5,6,7,8,9,10,11,12,13,14,15,16,17,18,19,20,21,22,23,24,25,26,27,28,29,30,31,32,33,34,35,36,37,38,39],
				"m": [0,1,2,3,4,5,6,7,8,9,10,11,12,13,14,15,16,17,27,28,29,30,31,32,33,34,35],
				"h": [0,1,2,3,4,5,6,7,8,9,10,11,12,13,14,15,16,17,27,28,29,30],
				"x": [0,1,2,3,4,5,6,7,8,9,10,11,12,13,14,15,16,17],
				"v": [0,1,2,3,4,5,6,7,8,9,10,11,12,13,14,15]
			}
		},
		{
			"s": "234978561978651432651342978492563817367814295815729346546297183789135624123486759",
			"g": {
				"e": [0,1,2,3,4,5,6,7,8,9,10,11,12,13,14,15,16,17,18,19,20,21,22,23,24,25,26,27,28,29,30,31,32,33,34,35,36,37,38,39],
				"m": [0,1,2,3,4,5,6,7,8,9,10,11,12,13,14,15,16,17,27,28,29,30,31,32,33,34,35],
				"h": [0,1,2,3,4,5,6,7,8,9,10,11,12,13,14,15,16,17,27,28,29,30],
				"x": [0,1,2,3,4,5,6,7,8,9,10,11,12,13,14,15,16,17],
				"v": [0,1,2,3,4,5,6,7,8,9,10,11,12,13,14,15]
			}
		}
	]
}`

func createTempPuzzleFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test_puzzles.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadValidFile(t *testing.T) {
	path := createTempPuzzleFile(t, validPuzzleJSON)
	loader, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, loader.Count())
}

func TestLoadNonExistentFile(t *testing.T) {
	_, err := Load("/nonexistent/path/puzzles.json")
	assert.Error(t, err)
}

func TestLoadMalformedJSON(t *testing.T) {
	path := createTempPuzzleFile(t, "{ this is not valid json }")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadEmptyPuzzleArray(t *testing.T) {
	path := createTempPuzzleFile(t, `{"version": 1, "count": 0, "puzzles": []}`)
	loader, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 0, loader.Count())
}

func TestGetPuzzleValidIndex(t *testing.T) {
	path := createTempPuzzleFile(t, validPuzzleJSON)
	loader, err := Load(path)
	require.NoError(t, err)

	givens, solution, err := loader.GetPuzzle(0, "easy")
	require.NoError(t, err)
	assert.Len(t, givens, 81)
	assert.Len(t, solution, 81)
}

func TestGetPuzzleAllDifficulties(t *testing.T) {
	path := createTempPuzzleFile(t, validPuzzleJSON)
	loader, err := Load(path)
	require.NoError(t, err)

	for _, diff := range []string{"easy", "medium", "hard", "expert", "evil"} {
		t.Run(diff, func(t *testing.T) {
			givens, solution, err := loader.GetPuzzle(0, diff)
			require.NoError(t, err)
			assert.Len(t, givens, 81)
			assert.Len(t, solution, 81)
			for i, g := range givens {
				if g != 0 {
					assert.Equal(t, solution[i], g)
				}
			}
		})
	}
}

func TestGetPuzzleIndexOutOfBounds(t *testing.T) {
	path := createTempPuzzleFile(t, validPuzzleJSON)
	loader, err := Load(path)
	require.NoError(t, err)

	_, _, err = loader.GetPuzzle(100, "easy")
	assert.Error(t, err)
}

func TestGetPuzzleUnknownDifficulty(t *testing.T) {
	path := createTempPuzzleFile(t, validPuzzleJSON)
	loader, err := Load(path)
	require.NoError(t, err)

	_, _, err = loader.GetPuzzle(0, "nightmare")
	assert.Error(t, err)
}

func TestGetPuzzleHarderDifficultyHasFewerGivens(t *testing.T) {
	path := createTempPuzzleFile(t, validPuzzleJSON)
	loader, err := Load(path)
	require.NoError(t, err)

	count := func(givens []int) int {
		n := 0
		for _, g := range givens {
			if g != 0 {
				n++
			}
		}
		return n
	}

	easy, _, _ := loader.GetPuzzle(0, "easy")
	hard, _, _ := loader.GetPuzzle(0, "hard")
	evil, _, _ := loader.GetPuzzle(0, "evil")

	assert.Greater(t, count(easy), count(hard))
	assert.Greater(t, count(hard), count(evil))
}

func TestGetPuzzleBySeedDeterminism(t *testing.T) {
	path := createTempPuzzleFile(t, validPuzzleJSON)
	loader, err := Load(path)
	require.NoError(t, err)

	givens1, solution1, idx1, err := loader.GetPuzzleBySeed("test-seed", "easy")
	require.NoError(t, err)
	givens2, solution2, idx2, err := loader.GetPuzzleBySeed("test-seed", "easy")
	require.NoError(t, err)

	assert.Equal(t, idx1, idx2)
	assert.Equal(t, givens1, givens2)
	assert.Equal(t, solution1, solution2)
}

func TestGetPuzzleBySeedFallsBackToGenerationWhenBankEmpty(t *testing.T) {
	loader := NewLoaderFromPuzzles(nil)

	givens, solution, idx, err := loader.GetPuzzleBySeed("anything", "easy")
	require.NoError(t, err)
	assert.Equal(t, -1, idx)
	assert.Len(t, givens, 81)
	assert.Len(t, solution, 81)
}

func TestGetDailyPuzzleConsistency(t *testing.T) {
	path := createTempPuzzleFile(t, validPuzzleJSON)
	loader, err := Load(path)
	require.NoError(t, err)

	date := time.Date(2024, 12, 25, 0, 0, 0, 0, time.UTC)
	_, _, idx1, err := loader.GetDailyPuzzle(date, "easy")
	require.NoError(t, err)
	_, _, idx2, err := loader.GetDailyPuzzle(date, "easy")
	require.NoError(t, err)
	assert.Equal(t, idx1, idx2)
}

func TestGetDailyPuzzleTimeZoneNormalization(t *testing.T) {
	path := createTempPuzzleFile(t, validPuzzleJSON)
	loader, err := Load(path)
	require.NoError(t, err)

	utcDate := time.Date(2024, 12, 25, 12, 0, 0, 0, time.UTC)
	pstLoc, _ := time.LoadLocation("America/Los_Angeles")
	pstDate := time.Date(2024, 12, 25, 4, 0, 0, 0, pstLoc)

	_, _, idx1, err := loader.GetDailyPuzzle(utcDate, "easy")
	require.NoError(t, err)
	_, _, idx2, err := loader.GetDailyPuzzle(pstDate, "easy")
	require.NoError(t, err)
	assert.Equal(t, idx1, idx2)
}

func TestGetTodayPuzzleReturnsValidPuzzle(t *testing.T) {
	path := createTempPuzzleFile(t, validPuzzleJSON)
	loader, err := Load(path)
	require.NoError(t, err)

	givens, solution, idx, err := loader.GetTodayPuzzle("easy")
	require.NoError(t, err)
	assert.Len(t, givens, 81)
	assert.Len(t, solution, 81)
	assert.GreaterOrEqual(t, idx, 0)
}

func TestSetGlobal(t *testing.T) {
	original := Global()
	defer SetGlobal(original)

	testLoader := NewLoaderFromPuzzles([]CompactPuzzle{
		{S: "123456789234567891345678912456789123567891234678912345789123456891234567912345678", G: map[string][]int{"e": {0}}},
	})
	SetGlobal(testLoader)

	assert.Same(t, testLoader, Global())
	assert.Equal(t, 1, Global().Count())
}

func TestGenerateOnDemandProducesValidSubset(t *testing.T) {
	givens, solution, err := GenerateOnDemand(42, "easy")
	require.NoError(t, err)
	assert.Len(t, solution, 81)
	for i, g := range givens {
		if g != 0 {
			assert.Equal(t, solution[i], g)
		}
	}
}
