package iosudoku

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// Browser remembers a working folder and resolves filenames against
// it, the way sudokupy's File tracked self._folder. Terminal-driven
// in place of the original's tkinter filedialog: PickCSV lists the
// folder's *.csv entries and reads a numeric choice from the given
// reader instead of popping a GUI dialog.
type Browser struct {
	folder string
}

// NewBrowser returns a Browser rooted at folder. An empty folder
// defaults to "boards", mirroring File.get_folder's fallback.
func NewBrowser(folder string) *Browser {
	if folder == "" {
		folder = "boards"
	}
	return &Browser{folder: folder}
}

// Folder returns the browser's current working directory.
func (b *Browser) Folder() string {
	return b.folder
}

// SetFolder changes the working directory for subsequent Path/PickCSV
// calls.
func (b *Browser) SetFolder(folder string) {
	if folder == "" {
		folder = "boards"
	}
	b.folder = folder
}

// Path resolves filename against the browser's folder.
func (b *Browser) Path(filename string) string {
	if filepath.IsAbs(filename) {
		return filename
	}
	return filepath.Join(b.folder, filename)
}

// ListCSV returns the *.csv filenames directly inside the folder,
// sorted alphabetically.
func (b *Browser) ListCSV() ([]string, error) {
	entries, err := os.ReadDir(b.folder)
	if err != nil {
		return nil, fmt.Errorf("iosudoku: listing %s: %w", b.folder, err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || strings.ToLower(filepath.Ext(e.Name())) != ".csv" {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}

// PickCSV prints the folder's CSV files as a numbered menu to out and
// reads the user's numeric choice from in, returning the resolved
// path. Stands in for sudokupy's _FileDialog.askopenfilename.
func PickCSV(b *Browser, in io.Reader, out io.Writer) (string, error) {
	names, err := b.ListCSV()
	if err != nil {
		return "", err
	}
	if len(names) == 0 {
		return "", fmt.Errorf("iosudoku: no CSV files found in %s", b.folder)
	}

	for i, name := range names {
		fmt.Fprintf(out, "%2d) %s\n", i+1, name)
	}
	fmt.Fprint(out, "choose a file: ")

	scanner := bufio.NewScanner(in)
	if !scanner.Scan() {
		return "", fmt.Errorf("iosudoku: no input given")
	}
	choice, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
	if err != nil || choice < 1 || choice > len(names) {
		return "", fmt.Errorf("iosudoku: invalid choice %q", scanner.Text())
	}
	return b.Path(names[choice-1]), nil
}
