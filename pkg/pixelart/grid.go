// Package pixelart holds palette grids: rectangular pixel art where every
// cell is either background ('.') or a color index digit ('0'-'9').
//
// A Grid is an immutable value. Window, PadLeft and FlipH return new grids
// and never touch the receiver, so a catalog face can be shared between
// renders without copying.
//
// Malformed art (ragged rows, unknown palette characters) is a programming
// error and New panics on it.
package pixelart

import "fmt"

// Background marks a transparent cell.
const Background = '.'

// Grid is a rectangular palette grid, rows top to bottom.
type Grid struct {
	rows []string
}

// New builds a Grid from rows of palette cells. It panics if the rows are
// not all the same length or contain anything other than '.' and '0'-'9'.
func New(rows ...string) Grid {
	if len(rows) == 0 {
		return Grid{}
	}
	w := len(rows[0])
	for y, row := range rows {
		if len(row) != w {
			panic(fmt.Sprintf("pixelart: row %d has %d cells, want %d", y, len(row), w))
		}
		for x := 0; x < len(row); x++ {
			if !IsCell(row[x]) {
				panic(fmt.Sprintf("pixelart: row %d col %d: invalid palette cell %q", y, x, row[x]))
			}
		}
	}
	return Grid{rows: append([]string(nil), rows...)}
}

// IsCell reports whether c is a valid palette cell.
func IsCell(c byte) bool {
	return c == Background || (c >= '0' && c <= '9')
}

// IsBackground reports whether c is the background cell.
func IsBackground(c byte) bool {
	return c == Background
}

// ColorIndex returns the palette index of a pixel cell. It panics on
// background or invalid cells.
func ColorIndex(c byte) int {
	if c < '0' || c > '9' {
		panic(fmt.Sprintf("pixelart: %q is not a pixel cell", c))
	}
	return int(c - '0')
}

// Height returns the number of rows.
func (g Grid) Height() int {
	return len(g.rows)
}

// Width returns the number of cells per row.
func (g Grid) Width() int {
	if len(g.rows) == 0 {
		return 0
	}
	return len(g.rows[0])
}

// Empty reports whether the grid has no rows.
func (g Grid) Empty() bool {
	return len(g.rows) == 0
}

// Row returns row y.
func (g Grid) Row(y int) string {
	return g.rows[y]
}

// Rows returns a copy of all rows.
func (g Grid) Rows() []string {
	return append([]string(nil), g.rows...)
}

// At returns the cell at column x of row y.
func (g Grid) At(x, y int) byte {
	return g.rows[y][x]
}

// Window returns rows [start, end) clamped to the grid. A window that is
// empty after clamping yields an empty Grid.
func (g Grid) Window(start, end int) Grid {
	start = max(start, 0)
	end = min(end, g.Height())
	if start >= end {
		return Grid{}
	}
	return Grid{rows: append([]string(nil), g.rows[start:end]...)}
}

// PadLeft prepends n background cells to every row.
func (g Grid) PadLeft(n int) Grid {
	if n <= 0 {
		return g
	}
	pad := make([]byte, n)
	for i := range pad {
		pad[i] = Background
	}
	out := make([]string, len(g.rows))
	for y, row := range g.rows {
		out[y] = string(pad) + row
	}
	return Grid{rows: out}
}

// FlipH mirrors the grid left to right.
func (g Grid) FlipH() Grid {
	out := make([]string, len(g.rows))
	for y, row := range g.rows {
		b := []byte(row)
		for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
			b[i], b[j] = b[j], b[i]
		}
		out[y] = string(b)
	}
	return Grid{rows: out}
}

// LeadingBackground counts background cells at the start of row y, up to
// the first pixel.
func (g Grid) LeadingBackground(y int) int {
	row := g.rows[y]
	n := 0
	for n < len(row) && row[n] == Background {
		n++
	}
	return n
}

// String joins the rows with newlines.
func (g Grid) String() string {
	var b []byte
	for y, row := range g.rows {
		if y > 0 {
			b = append(b, '\n')
		}
		b = append(b, row...)
	}
	return string(b)
}
