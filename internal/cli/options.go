// Package cli turns techo's command line into Options and fetches the
// message from argv, a file or stdin.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/wesen/techo/internal/faces"
	"github.com/wesen/techo/pkg/layout"
	"github.com/wesen/techo/pkg/render"
)

// ErrHelp is returned by Parse when -h or -help was given.
var ErrHelp = flag.ErrHelp

// Options is a parsed command line.
type Options struct {
	Face      int
	Quiet     bool
	Bright    bool
	ShowWhole bool
	Align     layout.Align
	File      string
	Verbose   bool
	// Args are the message words after the options.
	Args []string
}

// ColorBase returns the SGR base for the palette.
func (o Options) ColorBase() int {
	if o.Bright {
		return render.BaseBright
	}
	return render.BaseNormal
}

// Parse reads args (without the program name). Usage and flag errors go to
// stderr. It returns ErrHelp for -h.
func Parse(prog, version string, args []string, stderr io.Writer) (Options, error) {
	o := Options{ShowWhole: true, Align: layout.AlignRight}

	fs := flag.NewFlagSet(prog, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { Usage(stderr, prog, version) }

	for i := 0; i < faces.Len(); i++ {
		fs.BoolFunc(strconv.Itoa(i), "face "+strconv.Itoa(i), func(string) error {
			o.Face = i
			return nil
		})
	}
	fs.BoolVar(&o.Quiet, "q", false, "output no message (show face only)")
	fs.BoolVar(&o.Bright, "b", false, "use bright colors")
	fs.BoolFunc("d", "show only the rows around the message", func(string) error {
		o.ShowWhole = false
		return nil
	})
	fs.BoolFunc("l", "put the face on the left", func(string) error {
		o.Align = layout.AlignLeft
		return nil
	})
	fs.BoolFunc("r", "put the face on the right", func(string) error {
		o.Align = layout.AlignRight
		return nil
	})
	fs.StringVar(&o.File, "f", "", "read the message from `text-file`")
	fs.BoolVar(&o.Verbose, "v", false, "log layout decisions to stderr")

	if err := fs.Parse(args); err != nil {
		return Options{}, err
	}
	o.Args = fs.Args()
	return o, nil
}

// ReadMessage returns the raw message selected by o: nothing when quiet,
// else the file, else the arguments joined by spaces, else all of stdin.
func ReadMessage(o Options, stdin io.Reader) (string, error) {
	switch {
	case o.Quiet:
		return "", nil
	case o.File != "":
		b, err := os.ReadFile(o.File)
		if err != nil {
			return "", fmt.Errorf("read message: %w", err)
		}
		return string(b), nil
	case len(o.Args) > 0:
		return strings.Join(o.Args, " "), nil
	case stdin == nil:
		return "", errors.New("read message: no input")
	default:
		b, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read message from stdin: %w", err)
		}
		return string(b), nil
	}
}
