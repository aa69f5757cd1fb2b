//go:build !windows

package console

// Setup prepares the console for ANSI output. Unix terminals need nothing.
func Setup() {}
