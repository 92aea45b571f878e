package terminal

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
)

// Escape sequences for emergency restoration when the screen object is
// unavailable (crash paths). tcell normally handles all of this in Fini.
var (
	csiCursorShow    = []byte("\x1b[?25h")
	csiAltScreenExit = []byte("\x1b[?1049l")
	csiSGR0          = []byte("\x1b[0m")
	csiAutoWrapOn    = []byte("\x1b[?7h")
)

// EmergencyReset attempts to restore the terminal to a sane state. Call this
// from panic recovery when Close cannot run normally.
func EmergencyReset(w io.Writer) {
	w.Write(csiCursorShow)
	w.Write(csiAltScreenExit)
	w.Write(csiSGR0)
	w.Write(csiAutoWrapOn)

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}
}

// HandleCrash is the unified panic handler: it resets the terminal first so
// the stack trace is readable, then exits.
func HandleCrash(r any) {
	if r == nil {
		return
	}

	EmergencyReset(os.Stdout)

	// \r\n for raw-mode compatibility: the terminal may still be raw if the
	// reset sequences were only partially applied.
	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mINSPEC CRASHED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Stderr.Sync()

	os.Exit(1)
}

// Go runs fn in a goroutine with panic recovery. Use instead of the go
// keyword so a crash in a background task still restores the terminal.
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
