// techo-faces previews every face in the catalog with lipgloss styling,
// labelled with the flag that selects it.
//
// Run: go run ./cmd/techo-faces/ -b
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/wesen/techo/internal/console"
	"github.com/wesen/techo/internal/techo"
)

func main() {
	bright := flag.Bool("b", false, "use bright colors")
	flag.Parse()

	console.Setup()
	if err := techo.Gallery(os.Stdout, console.Width(os.Stdout), *bright); err != nil {
		fmt.Fprintf(os.Stderr, "techo-faces: %v\n", err)
		os.Exit(1)
	}
}
