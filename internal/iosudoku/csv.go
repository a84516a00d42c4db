// Package iosudoku handles getting a grid in and out of the program:
// CSV files on disk, a terminal folder browser in place of a file
// picker dialog, and a colorized terminal renderer. Grounded on
// sudokupy's file.py, translated from its tkinter dialog and bare
// open()/readlines() calls into os/encoding-csv idioms.
package iosudoku

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// ReadCSV loads an 81-value grid from a CSV file shaped as 9 rows of
// 9 comma-separated digits (0 for blank). Mirrors File.read_csv /
// _get_csv_data.
func ReadCSV(path string) ([]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("iosudoku: opening %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = 9
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("iosudoku: reading %s: %w", path, err)
	}
	if len(records) != 9 {
		return nil, fmt.Errorf("iosudoku: %s has %d rows, want 9", path, len(records))
	}

	values := make([]int, 81)
	for row, record := range records {
		for col, field := range record {
			n, err := strconv.Atoi(field)
			if err != nil {
				return nil, fmt.Errorf("iosudoku: %s row %d col %d: %w", path, row, col, err)
			}
			values[row*9+col] = n
		}
	}
	return values, nil
}

// WriteCSV writes an 81-value grid as 9 comma-separated rows. Mirrors
// File.to_csv / _make_csv_lines.
func WriteCSV(path string, values []int) error {
	if len(values) != 81 {
		return fmt.Errorf("iosudoku: expected 81 values, got %d", len(values))
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("iosudoku: creating directory for %s: %w", path, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("iosudoku: creating %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	for row := 0; row < 9; row++ {
		record := make([]string, 9)
		for col := 0; col < 9; col++ {
			record[col] = strconv.Itoa(values[row*9+col])
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("iosudoku: writing row %d of %s: %w", row, path, err)
		}
	}
	w.Flush()
	return w.Error()
}
