package cli

import (
	"fmt"
	"io"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/wesen/techo/internal/faces"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	flagStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	dimStyle   = lipgloss.NewStyle().Faint(true)
)

// Usage writes the help text. Colors are dropped when w is not a terminal.
func Usage(w io.Writer, prog, version string) {
	last := faces.Len() - 1
	rows := [][2]string{
		{fmt.Sprintf("-0 ~ -%d", last), "change face (default: -0)"},
		{"-q", "output no message (show face only)"},
		{"-b", "color brightness change"},
		{"-d", "reduce the face to the rows around the message"},
		{"-l", "position face to the left"},
		{"-r", "position face to the right (default)"},
		{"-f text-file", "read message from text-file"},
		{"-v", "log layout decisions"},
		{"--", "end of command line options"},
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n\n", titleStyle.Render(prog+" --- Teto's echo"), dimStyle.Render("version "+version))
	fmt.Fprintf(&b, "usage: %s [-0~%d|-q|-b|-d|-l|-r|-f text-file] [--] [message ... ]\n\n", prog, last)
	for _, r := range rows {
		fmt.Fprintf(&b, "  %s %s %s\n", flagStyle.Render(fmt.Sprintf("%-12s", r[0])), dimStyle.Render("..."), r[1])
	}
	b.WriteString("\nfaces:\n")
	for i, f := range faces.All() {
		fmt.Fprintf(&b, "  %s %-10s %s\n", flagStyle.Render(fmt.Sprintf("-%d", i)), f.Name, dimStyle.Render(f.Description))
	}
	lipgloss.Fprint(w, b.String())
}
