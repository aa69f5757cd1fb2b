// Package console owns the process terminal: its width, platform setup and
// restoring the default text style when techo stops drawing.
package console

import (
	"os"
	"strconv"
	"strings"

	"fortio.org/safecast"
	"golang.org/x/term"
)

// DefaultWidth is used when neither COLUMNS nor the terminal reports a width.
const DefaultWidth = 80

// Width returns the column count for output written to out. A positive
// integer in $COLUMNS wins over the terminal size.
func Width(out *os.File) int {
	return width(os.Getenv("COLUMNS"), func() (int, error) {
		cols, _, err := term.GetSize(safecast.MustConvert[int](out.Fd()))
		return cols, err
	})
}

func width(columns string, size func() (int, error)) int {
	if n, err := strconv.Atoi(strings.TrimSpace(columns)); err == nil && n > 0 {
		return n
	}
	if cols, err := size(); err == nil && cols > 0 {
		return cols
	}
	return DefaultWidth
}
