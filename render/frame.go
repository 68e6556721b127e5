package render

import (
	"strings"
)

// Frame is a rows x columns glyph grid
// Each row is its own slice so concurrent writers can own a row without sharing memory
type Frame struct {
	rows  [][]rune
	width int
}

// NewFrame allocates a frame with every row pre-sized
// Non-positive dimensions produce an empty frame
func NewFrame(width, height int) *Frame {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}

	// Optimization: single backing array, rows are disjoint windows into it
	cells := make([]rune, width*height)
	rows := make([][]rune, height)
	for j := range rows {
		rows[j] = cells[j*width : (j+1)*width : (j+1)*width]
	}
	return &Frame{rows: rows, width: width}
}

// Width returns the column count
func (f *Frame) Width() int {
	return f.width
}

// Height returns the row count
func (f *Frame) Height() int {
	return len(f.rows)
}

// Row returns row j for in-place writes
func (f *Frame) Row(j int) []rune {
	return f.rows[j]
}

// At returns the glyph at row j, column i
func (f *Frame) At(j, i int) rune {
	return f.rows[j][i]
}

// Set writes the glyph at row j, column i
func (f *Frame) Set(j, i int, r rune) {
	f.rows[j][i] = r
}

// String concatenates all rows with no delimiter, relying on terminal wrap at width
func (f *Frame) String() string {
	var b strings.Builder
	b.Grow(f.width * len(f.rows))
	for _, row := range f.rows {
		for _, r := range row {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Lines returns each row as a string
func (f *Frame) Lines() []string {
	lines := make([]string, len(f.rows))
	for j, row := range f.rows {
		lines[j] = string(row)
	}
	return lines
}

// Diff returns the first cell where f and other differ in raster order
// Mismatched dimensions report (-1, -1, true)
func (f *Frame) Diff(other *Frame) (row, col int, differs bool) {
	if f.Width() != other.Width() || f.Height() != other.Height() {
		return -1, -1, true
	}
	for j, r := range f.rows {
		o := other.rows[j]
		for i := range r {
			if r[i] != o[i] {
				return j, i, true
			}
		}
	}
	return 0, 0, false
}

// Equal reports whether both frames hold the same grid
func (f *Frame) Equal(other *Frame) bool {
	_, _, differs := f.Diff(other)
	return !differs
}
