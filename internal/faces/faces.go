// Package faces is the fixed catalog of pixel-art faces techo can draw.
package faces

import (
	"fmt"

	"github.com/wesen/techo/pkg/pixelart"
)

// Face is one catalog entry.
type Face struct {
	Name        string
	Description string
	Art         pixelart.Grid
}

// Len returns the number of faces.
func Len() int {
	return len(catalog)
}

// Get returns face i. It returns an error for an index outside the catalog.
func Get(i int) (Face, error) {
	if i < 0 || i >= len(catalog) {
		return Face{}, fmt.Errorf("face %d out of range 0-%d", i, len(catalog)-1)
	}
	return catalog[i], nil
}

// All returns every face in flag order.
func All() []Face {
	return append([]Face(nil), catalog...)
}

// Default is the face used without a face flag.
func Default() Face {
	return catalog[0]
}
