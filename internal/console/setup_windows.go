//go:build windows

package console

import (
	"os"

	"golang.org/x/sys/windows"
)

const utf8CodePage = 65001

// Setup turns on virtual terminal processing for stdout and stderr so SGR
// sequences are interpreted, and switches the console to UTF-8 so wide
// characters survive the trip.
func Setup() {
	enableVirtualTerminalProcessing()
	_ = windows.SetConsoleOutputCP(utf8CodePage)
	_ = windows.SetConsoleCP(utf8CodePage)
}

func enableVirtualTerminalProcessing() {
	handles := []windows.Handle{
		windows.Handle(os.Stdout.Fd()),
		windows.Handle(os.Stderr.Fd()),
	}
	for _, h := range handles {
		if h == windows.InvalidHandle {
			continue
		}
		// not a console (redirected); nothing to enable
		var mode uint32
		if err := windows.GetConsoleMode(h, &mode); err != nil {
			continue
		}
		mode |= windows.ENABLE_PROCESSED_OUTPUT | windows.ENABLE_WRAP_AT_EOL_OUTPUT | windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING
		_ = windows.SetConsoleMode(h, mode)
	}
}
