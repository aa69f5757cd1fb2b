// Package cellwidth classifies runes by how many terminal columns they
// occupy, following the East Asian Width property.
//
// Ambiguous characters count as wide. Terminals configured for CJK locales
// draw them double-width, and laying text out as if they were narrow would
// push glyphs past the right edge of the screen.
package cellwidth

import "golang.org/x/text/width"

// Class is the column class of a rune.
type Class int

const (
	// Narrow runes take one column.
	Narrow Class = iota
	// Wide runes take two columns.
	Wide
)

// String returns "narrow" or "wide".
func (c Class) String() string {
	if c == Wide {
		return "wide"
	}
	return "narrow"
}

// Classify returns Wide for East Asian Fullwidth, Wide and Ambiguous runes
// and Narrow for everything else, including invalid code points.
func Classify(r rune) Class {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianFullwidth, width.EastAsianWide, width.EastAsianAmbiguous:
		return Wide
	default:
		return Narrow
	}
}

// IsWide reports whether r occupies two columns.
func IsWide(r rune) bool {
	return Classify(r) == Wide
}

// Columns returns the number of columns r occupies: 1 or 2.
func Columns(r rune) int {
	if IsWide(r) {
		return 2
	}
	return 1
}

// StringColumns returns the total width of s in columns.
func StringColumns(s string) int {
	n := 0
	for _, r := range s {
		n += Columns(r)
	}
	return n
}
