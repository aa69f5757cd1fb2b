package layout

import "github.com/wesen/techo/pkg/pixelart"

// minWindow is the fewest art rows shown for a short message.
const minWindow = 6

// WindowRange returns the rows [start, end) of an art grid of the given
// height to show next to a message of the given line count. The range is
// not clamped; see SelectWindow.
func WindowRange(height, lines int, showWhole bool) (start, end int) {
	switch {
	case showWhole:
		return 0, height
	case lines < minWindow:
		start = height/2 - minWindow/2 + 2
		return start, start + minWindow
	case lines+2 < height:
		start = height/2 - lines/2 + 1
		return start, start + lines + 1
	default:
		return 0, height
	}
}

// SelectWindow returns the part of g to draw, clamped to g's rows.
func SelectWindow(g pixelart.Grid, lines int, showWhole bool) pixelart.Grid {
	start, end := WindowRange(g.Height(), lines, showWhole)
	return g.Window(start, end)
}

// Margin returns the number of background cells that right-align art of
// artWidth cells (two columns each) on a terminal of termWidth columns.
func Margin(artWidth, termWidth int) (int, error) {
	free := termWidth - 2*artWidth
	if free <= 0 {
		return 0, ErrTerminalTooNarrow
	}
	return free / 2, nil
}
