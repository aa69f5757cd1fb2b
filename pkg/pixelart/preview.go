package pixelart

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// Palette maps palette indices to styles. Cells whose index has no entry,
// and background cells, are drawn unstyled.
type Palette map[int]lipgloss.Style

// Preview renders the grid as styled text, two columns per cell.
//
// Consecutive cells with the same palette entry are merged into runs and
// rendered with a single Style.Render call per run, which keeps the escape
// overhead proportional to the number of color changes rather than cells.
//
// Rows are joined with "\n". An empty grid returns "".
func (g Grid) Preview(p Palette) string {
	if g.Empty() || g.Width() == 0 {
		return ""
	}

	lines := make([]string, g.Height())
	for y, row := range g.rows {
		var sb strings.Builder

		runStart := 0
		runKey := cellKey(row[0])

		for x := 1; x <= len(row); x++ {
			// Sentinel key at the end flushes the last run.
			cur := -2
			if x < len(row) {
				cur = cellKey(row[x])
			}
			if cur == runKey {
				continue
			}
			chunk := strings.Repeat("  ", x-runStart)
			if s, ok := p[runKey]; ok && runKey >= 0 {
				sb.WriteString(s.Render(chunk))
			} else {
				sb.WriteString(chunk)
			}
			runStart = x
			runKey = cur
		}
		lines[y] = sb.String()
	}
	return strings.Join(lines, "\n")
}

// cellKey is the palette index of c, or -1 for background.
func cellKey(c byte) int {
	if IsBackground(c) {
		return -1
	}
	return ColorIndex(c)
}
