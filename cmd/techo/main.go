// techo draws a pixel-art face in the terminal and writes a message into
// the blank space beside it.
//
// Run: go run ./cmd/techo/ -l "hello"
package main

import (
	"errors"
	"fmt"
	"os"

	"fortio.org/log"

	"github.com/wesen/techo/internal/cli"
	"github.com/wesen/techo/internal/console"
	"github.com/wesen/techo/internal/techo"
)

var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	console.Setup()

	o, err := cli.Parse("techo", version, os.Args[1:], os.Stderr)
	if errors.Is(err, cli.ErrHelp) {
		return 0
	}
	if err != nil {
		return 2
	}
	if o.Verbose {
		log.SetLogLevel(log.Debug)
	}

	guard := console.NewGuard(os.Stdout)
	stop := guard.CloseOnInterrupt(func(s os.Signal) {
		log.Debugf("caught %v, restored style", s)
		os.Exit(0)
	})
	defer stop()

	err = techo.Run(o, techo.Env{
		Stdin:  os.Stdin,
		Stdout: guard,
		Stderr: os.Stderr,
		Width:  console.Width(os.Stdout),
	})
	if cerr := guard.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "techo: %v\n", err)
		return 1
	}
	return 0
}
