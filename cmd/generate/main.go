package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"sudoku-engine/internal/carve"
	"sudoku-engine/internal/engine"
	"sudoku-engine/internal/puzzles"
)

func main() {
	count := flag.Int("n", 10000, "Number of puzzles to generate")
	output := flag.String("o", "puzzles.json", "Output file path")
	workers := flag.Int("w", 0, "Number of worker goroutines (default: num CPUs)")
	startSeed := flag.Int64("seed", 1, "Starting seed value")
	tiersFile := flag.String("tiers", "", "Path to a tier config YAML file (default: built-in tiers)")
	flag.Parse()

	if *workers <= 0 {
		*workers = runtime.NumCPU()
	}

	tiers := carve.DefaultTiers()
	if *tiersFile != "" {
		loaded, err := carve.LoadTiers(*tiersFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading tier config: %v\n", err)
			os.Exit(1)
		}
		tiers = loaded
	}

	fmt.Printf("Generating %d puzzles with %d workers...\n", *count, *workers)
	start := time.Now()

	bank := make([]puzzles.CompactPuzzle, *count)
	var generated int64
	var failed int64

	work := make(chan int, *count)
	for i := 0; i < *count; i++ {
		work <- i
	}
	close(work)

	done := make(chan bool)
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				g := atomic.LoadInt64(&generated)
				elapsed := time.Since(start)
				rate := float64(g) / elapsed.Seconds()
				remaining := float64(*count-int(g)) / rate
				fmt.Printf("  Progress: %d/%d (%.1f/sec, ~%.0fs remaining)\n", g, *count, rate, remaining)
			case <-done:
				return
			}
		}
	}()

	var wg sync.WaitGroup
	for w := 0; w < *workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range work {
				seed := *startSeed + int64(idx)
				puzzle, err := generatePuzzle(seed, tiers)
				if err != nil {
					atomic.AddInt64(&failed, 1)
					continue
				}
				bank[idx] = puzzle
				atomic.AddInt64(&generated, 1)
			}
		}()
	}

	wg.Wait()
	done <- true

	elapsed := time.Since(start)
	fmt.Printf("Generated %d puzzles in %v (%.1f puzzles/sec), %d failed\n",
		atomic.LoadInt64(&generated), elapsed, float64(generated)/elapsed.Seconds(), atomic.LoadInt64(&failed))

	fmt.Printf("Writing to %s...\n", *output)

	file := puzzles.PuzzleFile{
		Version: 1,
		Count:   len(bank),
		Puzzles: bank,
	}

	data, err := json.Marshal(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error marshaling JSON: %v\n", err)
		os.Exit(1)
	}

	if err := os.WriteFile(*output, data, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing file: %v\n", err)
		os.Exit(1)
	}

	info, _ := os.Stat(*output)
	sizeMB := float64(info.Size()) / 1024 / 1024
	fmt.Printf("Done! File size: %.2f MB\n", sizeMB)
}

var diffKeys = map[carve.Difficulty]string{
	carve.Easy:   "e",
	carve.Medium: "m",
	carve.Hard:   "h",
	carve.Expert: "x",
	carve.Evil:   "v",
}

// generatePuzzle seeds a complete grid via internal/engine.Generator,
// then carves it down to every difficulty tier at once so easier
// tiers stay a superset of harder ones (internal/carve.RemoveAll).
func generatePuzzle(seed int64, tiers *carve.TierConfig) (puzzles.CompactPuzzle, error) {
	grid, err := engine.NewGenerator(seed).Generate()
	if err != nil {
		return puzzles.CompactPuzzle{}, fmt.Errorf("generating grid: %w", err)
	}
	solution := grid.Values()

	solStr := make([]byte, len(solution))
	for i, v := range solution {
		solStr[i] = byte('0' + v)
	}

	remover, err := carve.NewCellValuesRemover(solution, tiers, seed)
	if err != nil {
		return puzzles.CompactPuzzle{}, fmt.Errorf("preparing remover: %w", err)
	}

	byTier, err := remover.RemoveAll()
	if err != nil {
		return puzzles.CompactPuzzle{}, fmt.Errorf("carving tiers: %w", err)
	}

	givens := make(map[string][]int, len(byTier))
	for diff, puzzle := range byTier {
		var indices []int
		for i, v := range puzzle {
			if v != 0 {
				indices = append(indices, i)
			}
		}
		givens[diffKeys[diff]] = indices
	}

	return puzzles.CompactPuzzle{S: string(solStr), G: givens}, nil
}
