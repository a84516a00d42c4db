package iosudoku

import (
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

var (
	givenColor = color.New(color.FgWhite, color.Bold)
	solvedColor = color.New(color.FgCyan)
	emptyColor  = color.New(color.FgHiBlack)
)

// Print renders an 81-value grid to out with box-dividing rules and
// colorized digits: givens (cells also nonzero in original, or all
// cells when original is nil) print bold white, solver-filled cells
// print cyan, and blanks print a dim placeholder dot. original may be
// nil, in which case every nonzero cell is treated as a given.
func Print(out io.Writer, values []int, original []int) {
	for row := 0; row < 9; row++ {
		if row > 0 && row%3 == 0 {
			color.New(color.FgHiBlack).Fprintln(out, strings.Repeat("-", 21))
		}
		var line strings.Builder
		for col := 0; col < 9; col++ {
			if col > 0 && col%3 == 0 {
				line.WriteString("| ")
			}
			idx := row*9 + col
			v := values[idx]
			switch {
			case v == 0:
				line.WriteString(emptyColor.Sprint("."))
			case original != nil && original[idx] != 0:
				line.WriteString(givenColor.Sprint(strconv.Itoa(v)))
			case original != nil:
				line.WriteString(solvedColor.Sprint(strconv.Itoa(v)))
			default:
				line.WriteString(givenColor.Sprint(strconv.Itoa(v)))
			}
			line.WriteString(" ")
		}
		io.WriteString(out, line.String()+"\n")
	}
}
