package pixelart

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
)

func testGrid() Grid {
	return New(
		"..12",
		".3..",
		"4...",
	)
}

func TestNew(t *testing.T) {
	g := testGrid()
	if g.Width() != 4 || g.Height() != 3 {
		t.Fatalf("expected 4x3, got %dx%d", g.Width(), g.Height())
	}
	if g.Row(1) != ".3.." {
		t.Fatalf("row 1: expected .3.., got %q", g.Row(1))
	}
	if g.At(3, 0) != '2' {
		t.Fatalf("cell (3,0): expected '2', got %q", g.At(3, 0))
	}
}

func TestNewEmpty(t *testing.T) {
	g := New()
	if !g.Empty() || g.Width() != 0 || g.Height() != 0 {
		t.Fatalf("expected empty grid, got %dx%d", g.Width(), g.Height())
	}
}

func TestNewPanicsOnRaggedRows(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for ragged rows")
		}
	}()
	New("...", "..")
}

func TestNewPanicsOnInvalidCell(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for invalid palette cell")
		}
	}()
	New("..x")
}

func TestNewCopiesRows(t *testing.T) {
	rows := []string{"..", "11"}
	g := New(rows...)
	rows[0] = "22"
	if g.Row(0) != ".." {
		t.Fatalf("grid aliased caller slice: row 0 = %q", g.Row(0))
	}
}

func TestWindow(t *testing.T) {
	g := testGrid()
	tests := []struct {
		start, end int
		want       []string
	}{
		{0, 3, []string{"..12", ".3..", "4..."}},
		{1, 2, []string{".3.."}},
		{-5, 1, []string{"..12"}},
		{2, 99, []string{"4..."}},
		{2, 2, nil},
		{3, 1, nil},
		{10, 20, nil},
	}
	for _, tc := range tests {
		got := g.Window(tc.start, tc.end).Rows()
		if strings.Join(got, "|") != strings.Join(tc.want, "|") {
			t.Errorf("Window(%d, %d) = %v, want %v", tc.start, tc.end, got, tc.want)
		}
	}
}

func TestPadLeft(t *testing.T) {
	g := testGrid()
	p := g.PadLeft(2)
	if p.Width() != 6 {
		t.Fatalf("expected width 6, got %d", p.Width())
	}
	if p.Row(0) != "....12" || p.Row(2) != "..4..." {
		t.Fatalf("unexpected padding: %v", p.Rows())
	}
	if g.Width() != 4 {
		t.Fatal("PadLeft modified the receiver")
	}
	if g.PadLeft(0).Row(0) != g.Row(0) {
		t.Fatal("PadLeft(0) should be identity")
	}
}

func TestFlipH(t *testing.T) {
	g := testGrid()
	f := g.FlipH()
	want := []string{"21..", "..3.", "...4"}
	for y, row := range want {
		if f.Row(y) != row {
			t.Errorf("row %d: expected %q, got %q", y, row, f.Row(y))
		}
	}
	if g.Row(0) != "..12" {
		t.Fatal("FlipH modified the receiver")
	}
	if f.FlipH().String() != g.String() {
		t.Fatal("double flip should be identity")
	}
}

func TestLeadingBackground(t *testing.T) {
	g := New("....", "..1.", "1...")
	for y, want := range []int{4, 2, 0} {
		if got := g.LeadingBackground(y); got != want {
			t.Errorf("LeadingBackground(%d) = %d, want %d", y, got, want)
		}
	}
}

func TestColorIndex(t *testing.T) {
	if ColorIndex('0') != 0 || ColorIndex('7') != 7 || ColorIndex('9') != 9 {
		t.Fatal("unexpected color index")
	}
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for background cell")
		}
	}()
	ColorIndex(Background)
}

func TestPreviewLineCount(t *testing.T) {
	out := testGrid().Preview(Palette{})
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	// No styles: every cell is two plain spaces.
	for i, l := range lines {
		if l != "        " {
			t.Errorf("line %d: expected 8 spaces, got %q", i, l)
		}
	}
}

func TestPreviewEmpty(t *testing.T) {
	if out := New().Preview(Palette{}); out != "" {
		t.Fatalf("expected empty preview, got %q", out)
	}
}

func TestPreviewMergesRuns(t *testing.T) {
	p := Palette{
		1: lipgloss.NewStyle().Background(lipgloss.Color("#ff0000")),
		2: lipgloss.NewStyle().Background(lipgloss.Color("#0000ff")),
	}
	uniform := New("11111111").Preview(p)
	alternating := New("12121212").Preview(p)
	if len(uniform) >= len(alternating) {
		t.Errorf("uniform preview (%d bytes) should be shorter than alternating (%d bytes)",
			len(uniform), len(alternating))
	}
}
