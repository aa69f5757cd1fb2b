// Package techo wires the command line to the layout and renderer.
package techo

import (
	"errors"
	"fmt"
	"io"

	"charm.land/lipgloss/v2"
	"fortio.org/log"

	"github.com/wesen/techo/internal/cli"
	"github.com/wesen/techo/internal/faces"
	"github.com/wesen/techo/pkg/cellwidth"
	"github.com/wesen/techo/pkg/layout"
	"github.com/wesen/techo/pkg/render"
)

var warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)

// Env is the process surroundings Run talks to.
type Env struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	// Width is the terminal width in columns.
	Width int
}

// Run draws the selected face with its message. A terminal too narrow for
// the face is reported on Stderr and is not an error.
func Run(o cli.Options, env Env) error {
	face, err := faces.Get(o.Face)
	if err != nil {
		return err
	}
	msg, err := cli.ReadMessage(o, env.Stdin)
	if err != nil {
		return err
	}

	l, err := layout.New(face.Art, msg, layout.Params{
		Width:     env.Width,
		Align:     o.Align,
		ShowWhole: o.ShowWhole,
	})
	if errors.Is(err, layout.ErrTerminalTooNarrow) {
		log.Debugf("layout: %v", err)
		lipgloss.Fprintln(env.Stderr, warnStyle.Render("warning:"), "too narrow screen")
		return nil
	}
	if err != nil {
		return err
	}
	log.Debugf("layout: face=%s width=%d align=%s rows=[%d,%d) margin=%d start=%d lines=%d columns=%d",
		face.Name, l.TermW, l.Align, l.WindowStart, l.WindowEnd, l.Margin, l.StartRow, l.Lines, cellwidth.StringColumns(l.Message))
	log.Debugf("art:\n%s", l.Art)

	if err := render.Write(env.Stdout, l, o.ColorBase()); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}
