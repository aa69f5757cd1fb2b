package techo

import (
	"fmt"
	"io"
	"strconv"

	"charm.land/lipgloss/v2"

	"github.com/wesen/techo/internal/faces"
	"github.com/wesen/techo/pkg/pixelart"
)

const galleryGap = 2

var (
	labelStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	descStyle  = lipgloss.NewStyle().Faint(true)
)

// PreviewPalette maps the eight basic palette indices to lipgloss
// background colors, shifted to the bright half when bright is set.
func PreviewPalette(bright bool) pixelart.Palette {
	shift := 0
	if bright {
		shift = 8
	}
	p := make(pixelart.Palette, 8)
	for i := 0; i < 8; i++ {
		p[i] = lipgloss.NewStyle().Background(lipgloss.Color(strconv.Itoa(i + shift)))
	}
	return p
}

// Gallery writes every face with its flag, name and description, as many
// per line as fit in width.
func Gallery(w io.Writer, width int, bright bool) error {
	pal := PreviewPalette(bright)
	all := faces.All()

	perRow := 1
	if len(all) > 0 {
		cell := 2*all[0].Art.Width() + galleryGap
		perRow = max(1, (width+galleryGap)/cell)
	}

	var blocks []string
	for start := 0; start < len(all); start += perRow {
		end := min(start+perRow, len(all))
		var cols []string
		for i := start; i < end; i++ {
			f := all[i]
			label := labelStyle.Render(fmt.Sprintf("-%d %s", i, f.Name))
			col := lipgloss.JoinVertical(lipgloss.Left, label, descStyle.Render(f.Description), f.Art.Preview(pal))
			if i < end-1 {
				col = lipgloss.NewStyle().PaddingRight(galleryGap).Render(col)
			}
			cols = append(cols, col)
		}
		blocks = append(blocks, lipgloss.JoinHorizontal(lipgloss.Top, cols...))
	}
	_, err := lipgloss.Fprintln(w, lipgloss.JoinVertical(lipgloss.Left, blocks...))
	return err
}
