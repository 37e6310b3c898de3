package grid

import "strings"

// Blank is the empty cell glyph.
const Blank = ' '

// Frame is one rendered animation frame: a fixed number of rows, all of equal width.
type Frame []string

// String joins the rows with newlines, the form committed to a display surface.
func (f Frame) String() string {
	return strings.Join(f, "\n")
}

// Width returns the column count of the first row.
func (f Frame) Width() int {
	if len(f) == 0 {
		return 0
	}
	return len(f[0])
}

// Grid is a mutable character canvas used while building a single frame.
type Grid struct {
	Rows, Cols int
	Cells      [][]byte
}

func New(rows, cols int) *Grid {
	g := &Grid{
		Rows:  rows,
		Cols:  cols,
		Cells: make([][]byte, rows),
	}
	for i := range g.Cells {
		g.Cells[i] = make([]byte, cols)
		for j := range g.Cells[i] {
			g.Cells[i][j] = Blank
		}
	}
	return g
}

// Set writes a glyph; out-of-range coordinates are ignored.
func (g *Grid) Set(row, col int, c byte) {
	if row < 0 || col < 0 || row >= g.Rows || col >= g.Cols {
		return
	}
	g.Cells[row][col] = c
}

func (g *Grid) At(row, col int) byte {
	if row < 0 || col < 0 || row >= g.Rows || col >= g.Cols {
		return Blank
	}
	return g.Cells[row][col]
}

// Frame snapshots the grid into immutable rows.
func (g *Grid) Frame() Frame {
	f := make(Frame, g.Rows)
	for i, row := range g.Cells {
		f[i] = string(row)
	}
	return f
}

// Pad right-pads s with blanks to exactly width columns, truncating longer input.
func Pad(s string, width int) string {
	if len(s) >= width {
		return s[:width]
	}
	return s + strings.Repeat(" ", width-len(s))
}

// Empty returns a frame of blank rows.
func Empty(rows, cols int) Frame {
	f := make(Frame, rows)
	blank := strings.Repeat(" ", cols)
	for i := range f {
		f[i] = blank
	}
	return f
}

// Glyph picks palette[i] after clamping i into range.
func Glyph(palette string, i int) byte {
	if i < 0 {
		i = 0
	}
	if i >= len(palette) {
		i = len(palette) - 1
	}
	return palette[i]
}

// Smoothstep eases t in [0,1] with 3t^2 - 2t^3.
func Smoothstep(t float64) float64 {
	return t * t * (3 - 2*t)
}
