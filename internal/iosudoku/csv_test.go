package iosudoku

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteThenReadCSVRoundTrips(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "puzzle.csv")

	values := make([]int, 81)
	values[0] = 5
	values[80] = 9

	require.NoError(t, WriteCSV(path, values))

	got, err := ReadCSV(path)
	require.NoError(t, err)
	assert.Equal(t, values, got)
}

func TestWriteCSVRejectsWrongLength(t *testing.T) {
	err := WriteCSV(filepath.Join(t.TempDir(), "bad.csv"), make([]int, 10))
	assert.Error(t, err)
}

func TestReadCSVRejectsMissingFile(t *testing.T) {
	_, err := ReadCSV(filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}

func TestReadCSVRejectsWrongRowCount(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "short.csv")
	content := "1,0,0,0,0,0,0,0,0\n0,0,0,0,0,0,0,0,0\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	_, err := ReadCSV(path)
	assert.Error(t, err)
}
