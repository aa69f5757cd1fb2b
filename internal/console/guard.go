package console

import (
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"
)

// ResetStyle clears every SGR attribute.
const ResetStyle = "\x1b[0m"

// Guard wraps the terminal writer for the duration of a render. Close
// writes ResetStyle once if anything was drawn, whether it is called after
// a normal render or from an interrupt handler. Writes are serialized so
// the reset never lands inside another write.
type Guard struct {
	mu     sync.Mutex
	w      io.Writer
	dirty  bool
	closed bool
	once   sync.Once
	err    error
}

// NewGuard guards w.
func NewGuard(w io.Writer) *Guard {
	return &Guard{w: w}
}

// Write forwards p to the terminal. After Close it fails with os.ErrClosed.
func (g *Guard) Write(p []byte) (int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.closed {
		return 0, os.ErrClosed
	}
	if len(p) > 0 {
		g.dirty = true
	}
	return g.w.Write(p)
}

// Close restores the default style. It is safe to call more than once and
// from several goroutines; only the first call writes.
func (g *Guard) Close() error {
	g.once.Do(func() {
		g.mu.Lock()
		defer g.mu.Unlock()
		g.closed = true
		if g.dirty {
			_, g.err = io.WriteString(g.w, ResetStyle)
		}
	})
	return g.err
}

// CloseOnInterrupt closes g and calls exit when SIGINT or SIGTERM arrives.
// The returned stop unregisters the handler and ends its goroutine; call it
// once rendering is done.
func (g *Guard) CloseOnInterrupt(exit func(os.Signal)) (stop func()) {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	stopWatch, _ := g.watch(sig, exit)
	return func() {
		signal.Stop(sig)
		stopWatch()
	}
}

// watch runs the close-and-exit handler for signals read from sig until
// stop is called. done is closed when the handler goroutine returns.
func (g *Guard) watch(sig <-chan os.Signal, exit func(os.Signal)) (stop func(), done <-chan struct{}) {
	quit := make(chan struct{})
	finished := make(chan struct{})
	go func() {
		defer close(finished)
		select {
		case s := <-sig:
			_ = g.Close()
			exit(s)
		case <-quit:
		}
	}()
	var once sync.Once
	return func() { once.Do(func() { close(quit) }) }, finished
}
