// Package render draws a computed layout: palette cells become ANSI colored
// pairs of spaces and the message is poured, rune by rune, into the
// columns the art leaves free.
//
// Left draws the face on the left with text flowing to the right edge of
// the terminal. Right draws the face on the right with text filling the
// background cells left of the first pixel on each row. Text that does not
// fit is spilled below the face.
package render

import (
	"io"
	"strconv"
	"strings"

	"github.com/wesen/techo/pkg/cellwidth"
	"github.com/wesen/techo/pkg/layout"
	"github.com/wesen/techo/pkg/message"
	"github.com/wesen/techo/pkg/pixelart"
)

// Reset clears all SGR attributes.
const Reset = "\x1b[0m"

// Color bases: palette index n is drawn with SGR base+n.
const (
	BaseNormal = 40
	BaseBright = 100
)

// cellText is the two columns drawn for every palette cell.
const cellText = "  "

// Write draws l with the renderer matching its alignment.
func Write(w io.Writer, l layout.Layout, colorBase int) error {
	if l.Align == layout.AlignLeft {
		return Left(w, l, colorBase)
	}
	return Right(w, l, colorBase)
}

// Left draws the art flush left and flows the message to its right, up to
// the terminal width. Only writer errors are returned.
func Left(w io.Writer, l layout.Layout, colorBase int) error {
	bw := &rowWriter{w: w}
	pal := newPalette(colorBase)
	q := message.NewQueue(l.Message)
	artCols := 2 * l.Art.Width()

	bw.WriteString(Reset)
	for y := 0; y < l.Art.Height(); y++ {
		row := l.Art.Row(y)
		for i := 0; i < len(row); i++ {
			bw.WriteString(pal.sgr(row[i]))
			bw.WriteString(cellText)
		}
		bw.WriteString(Reset)
		if y >= l.StartRow && !q.Empty() {
			fillRow(bw, q, artCols, l.TermW)
		}
		bw.endRow()
	}
	spill(bw, q)
	return bw.err
}

// fillRow writes queued runes from column x up to width and pads the rest
// of the row with spaces. A wide rune that would cross the edge stays
// queued for the next row.
func fillRow(bw *rowWriter, q *message.Queue, x, width int) {
	for x < width {
		r, ok := q.Peek()
		if !ok {
			break
		}
		if cellwidth.IsWide(r) && x+1 >= width {
			break
		}
		q.Pop()
		if r == '\n' {
			break
		}
		bw.WriteRune(r)
		x += cellwidth.Columns(r)
	}
	if x < width {
		bw.WriteString(strings.Repeat(" ", width-x))
	}
}

// Right draws the (already margined) art and places the message in the
// background cells before the first pixel of each row, one wide rune or up
// to two narrow runes per cell. Only writer errors are returned.
func Right(w io.Writer, l layout.Layout, colorBase int) error {
	bw := &rowWriter{w: w}
	pal := newPalette(colorBase)
	q := message.NewQueue(l.Message)

	bw.WriteString(Reset)
	for y := 0; y < l.Art.Height(); y++ {
		row := l.Art.Row(y)
		permitted := y >= l.StartRow
		for i := 0; i < len(row); i++ {
			c := row[i]
			if !pixelart.IsBackground(c) {
				permitted = false
			}
			bw.WriteString(pal.sgr(c))
			if !permitted || q.Empty() {
				bw.WriteString(cellText)
				continue
			}
			permitted = fillCell(bw, q)
		}
		bw.WriteString(Reset)
		bw.endRow()
	}
	spill(bw, q)
	return bw.err
}

// fillCell writes one two-column cell of text from a non-empty queue and
// reports whether more text may follow on this row.
func fillCell(bw *rowWriter, q *message.Queue) bool {
	r, _ := q.Pop()
	if r == '\n' {
		bw.WriteString(cellText)
		return false
	}
	bw.WriteRune(r)
	if cellwidth.IsWide(r) {
		return true
	}

	next, ok := q.Peek()
	switch {
	case !ok || cellwidth.IsWide(next):
		bw.WriteByte(' ')
	case next == '\n':
		q.Pop()
		bw.WriteByte(' ')
		return false
	default:
		q.Pop()
		bw.WriteRune(next)
	}
	return true
}

// spill writes whatever the art had no room for, then a blank line.
func spill(bw *rowWriter, q *message.Queue) {
	if q.Empty() {
		return
	}
	bw.WriteString(q.Drain())
	bw.WriteString("\n\n")
	bw.flush()
}

// rowWriter collects one output row and hands it to w in a single Write,
// so a concurrent style reset can only land between rows. The first write
// error sticks and later rows are dropped.
type rowWriter struct {
	strings.Builder
	w   io.Writer
	err error
}

func (bw *rowWriter) endRow() {
	bw.WriteByte('\n')
	bw.flush()
}

func (bw *rowWriter) flush() {
	if bw.err == nil && bw.Len() > 0 {
		_, bw.err = io.WriteString(bw.w, bw.String())
	}
	bw.Reset()
}

// palette caches the SGR sequence of every palette index.
type palette [10]string

func newPalette(base int) *palette {
	var p palette
	for i := range p {
		p[i] = "\x1b[" + strconv.Itoa(base+i) + "m"
	}
	return &p
}

func (p *palette) sgr(c byte) string {
	if pixelart.IsBackground(c) {
		return Reset
	}
	return p[pixelart.ColorIndex(c)]
}
