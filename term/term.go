// Package term provides the terminal output sink: buffered escape
// sequence emission, cursor origin anchoring, and synchronized update
// framing.
package term

import (
	"bufio"
	"fmt"
	"io"
	"os"

	xterm "golang.org/x/term"
)

// Escape sequences emitted during rendering. A terminal that does not
// understand the synchronized-update pair treats it as harmless no-op
// text, degrading to non-atomic but still correct output.
const (
	escSaveCursor    = "\x1b7" // DECSC
	escRestoreCursor = "\x1b8" // DECRC

	// Synchronized output (DEC private mode 2026). Tells the terminal
	// to buffer writes and flush atomically, preventing tearing.
	escSyncBegin = "\x1b[?2026h"
	escSyncEnd   = "\x1b[?2026l"
)

// cursorDown returns the escape moving the cursor down n rows, or ""
// if n <= 0.
func cursorDown(n int) string {
	if n <= 0 {
		return ""
	}
	return fmt.Sprintf("\x1b[%dB", n)
}

// cursorForward returns the escape moving the cursor right n columns,
// or "" if n <= 0.
func cursorForward(n int) string {
	if n <= 0 {
		return ""
	}
	return fmt.Sprintf("\x1b[%dC", n)
}

// Terminal wraps a writable stream with cursor positioning relative to
// a saved origin. It performs no locking: exactly one goroutine may
// write at a time.
type Terminal struct {
	out io.Writer
	w   *bufio.Writer
}

// New creates a Terminal over the given stream and saves the current
// cursor position as the origin for all subsequent MoveTo calls.
func New(out io.Writer) *Terminal {
	t := &Terminal{
		out: out,
		w:   bufio.NewWriter(out),
	}
	t.WriteString(escSaveCursor)
	_ = t.Flush()
	return t
}

// WriteString appends text to the output buffer.
func (t *Terminal) WriteString(s string) {
	_, _ = t.w.WriteString(s)
}

// MoveTo positions the cursor at (x, y) relative to the saved origin.
func (t *Terminal) MoveTo(x, y int) {
	t.WriteString(escRestoreCursor)
	t.WriteString(cursorDown(y))
	t.WriteString(cursorForward(x))
}

// RestoreOrigin moves the cursor back to the saved origin and flushes.
func (t *Terminal) RestoreOrigin() error {
	t.WriteString(escRestoreCursor)
	return t.Flush()
}

// BeginSync emits the begin-synchronized-update control sequence.
func (t *Terminal) BeginSync() {
	t.WriteString(escSyncBegin)
}

// EndSync emits the end-synchronized-update control sequence.
func (t *Terminal) EndSync() {
	t.WriteString(escSyncEnd)
}

// Flush writes all buffered output to the underlying stream.
func (t *Terminal) Flush() error {
	return t.w.Flush()
}

// Size reports the dimensions of the controlling terminal. Falls back
// to 80x24 when stdout is not a terminal.
func Size() (width, height int) {
	w, h, err := xterm.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 || h <= 0 {
		return 80, 24
	}
	return w, h
}

// IsTerminal reports whether the writer is backed by a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return xterm.IsTerminal(int(f.Fd()))
}
