package layout

import "github.com/wesen/techo/pkg/pixelart"

// FitStartRow scans g from the bottom up, adding each row's leading
// background cells to a running total, and returns the first row at which
// the total exceeds chars. It returns 0 if no row does. chars counts the
// newline ending each line of the message.
func FitStartRow(g pixelart.Grid, chars int) int {
	n := 0
	for y := g.Height() - 1; y >= 0; y-- {
		n += g.LeadingBackground(y)
		if chars < n {
			return y
		}
	}
	return 0
}

// CenterStartRow returns the row that centers lines of text on height rows,
// rounding half up and never going above row 0.
func CenterStartRow(height, lines int) int {
	twice := height - lines + 1
	if twice < 0 {
		return 0
	}
	return twice / 2
}

// ResolveStartRow picks the earlier of the fit row (right alignment) or
// the bottom-anchored row (left alignment) and the centered row.
func ResolveStartRow(g pixelart.Grid, lines, chars int, a Align) int {
	var fit int
	if a == AlignLeft {
		fit = g.Height() - lines
	} else {
		fit = FitStartRow(g, chars)
	}
	return max(min(fit, CenterStartRow(g.Height(), lines)), 0)
}
