// Package layout decides where a face and its message go on the screen:
// which rows of the art are shown, how far the art is pushed right, and on
// which art row the message starts.
//
// Everything here is pure computation over the terminal width and the
// message shape. Nothing is written to the terminal.
package layout

import (
	"errors"
	"fmt"

	"github.com/wesen/techo/pkg/message"
	"github.com/wesen/techo/pkg/pixelart"
)

// ErrTerminalTooNarrow is returned when the art leaves no column for text.
var ErrTerminalTooNarrow = errors.New("too narrow screen")

// Align is the side of the screen the face sits on.
type Align int

const (
	// AlignRight puts the face on the right and the message on its left.
	AlignRight Align = iota
	// AlignLeft mirrors the face onto the left and flows the message to its right.
	AlignLeft
)

// String returns "right" or "left".
func (a Align) String() string {
	if a == AlignLeft {
		return "left"
	}
	return "right"
}

// Params are the inputs that do not come from the art or the message.
type Params struct {
	// Width is the terminal width in columns, sampled once.
	Width int
	// Align places the face.
	Align Align
	// ShowWhole keeps every art row even for short messages.
	ShowWhole bool
}

// Layout holds the computed placement for one render.
type Layout struct {
	TermW int
	Align Align

	// Art is the grid to draw: windowed, then padded (right) or flipped (left).
	Art pixelart.Grid
	// WindowStart and WindowEnd are the rows of the source art kept in Art.
	WindowStart, WindowEnd int
	// Margin is the number of background cells prepended to each row.
	Margin int
	// StartRow is the first row of Art that may carry message text.
	StartRow int

	// Message is the normalized text and Lines its line count.
	Message string
	Lines   int
}

// New computes the layout of msg next to art. msg is normalized first.
// It returns ErrTerminalTooNarrow when the art is at least as wide as the
// terminal.
func New(art pixelart.Grid, msg string, p Params) (Layout, error) {
	msg = message.Normalize(msg)
	lines := message.Lines(msg)

	start, end := WindowRange(art.Height(), lines, p.ShowWhole)
	grid := art.Window(start, end)

	margin, err := Margin(art.Width(), p.Width)
	if err != nil {
		return Layout{}, fmt.Errorf("%d columns for %d-cell art: %w", p.Width, art.Width(), err)
	}

	l := Layout{
		TermW:       p.Width,
		Align:       p.Align,
		WindowStart: max(start, 0),
		WindowEnd:   min(end, art.Height()),
		Message:     msg,
		Lines:       lines,
	}
	if p.Align == AlignLeft {
		l.Art = grid.FlipH()
	} else {
		l.Margin = margin
		l.Art = grid.PadLeft(margin)
	}
	l.StartRow = ResolveStartRow(l.Art, lines, message.Terminated(msg), p.Align)
	return l, nil
}

// TextColumns returns the number of columns right of the art in a left
// aligned layout.
func (l Layout) TextColumns() int {
	return max(l.TermW-2*l.Art.Width(), 0)
}
