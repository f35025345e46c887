// Package terminal wraps the few raw terminal operations the game needs.
package terminal

import (
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// ANSI sequences used when taking over and handing back the terminal
const (
	seqCursorHide    = "\x1b[?25l"
	seqCursorShow    = "\x1b[?25h"
	seqAltScreenOn   = "\x1b[?1049h"
	seqAltScreenOff  = "\x1b[?1049l"
	seqClear         = "\x1b[2J"
	seqHome          = "\x1b[H"
	seqResetStyle    = "\x1b[0m"
	seqAutoWrapOn    = "\x1b[?7h"
	seqAutoWrapOff   = "\x1b[?7l"
	seqCursorToStart = "\r"
)

// GetSize returns the current terminal width and height.
// Falls back to defaults if the size cannot be determined.
func GetSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// IsTerminal reports whether both stdin and stdout are attached to a terminal.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// Raw is a terminal switched into raw mode on the alternate screen.
type Raw struct {
	fd    int
	out   io.Writer
	saved *term.State
}

// EnterRaw puts stdin into raw mode and switches out to the alternate screen.
func EnterRaw(out io.Writer) (*Raw, error) {
	fd := int(os.Stdin.Fd())
	saved, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}
	if err := enterScreen(out); err != nil {
		return nil, errors.Join(err, term.Restore(fd, saved))
	}
	return &Raw{fd: fd, out: out, saved: saved}, nil
}

// Home moves the cursor to the top-left corner.
func (r *Raw) Home() error {
	if _, err := io.WriteString(r.out, seqHome); err != nil {
		return fmt.Errorf("cursor home: %w", err)
	}
	return nil
}

// Restore leaves the alternate screen and restores the saved terminal mode.
// The mode is restored even when the screen sequences cannot be written.
func (r *Raw) Restore() error {
	return errors.Join(leaveScreen(r.out), term.Restore(r.fd, r.saved))
}

func enterScreen(w io.Writer) error {
	if _, err := io.WriteString(w, seqAltScreenOn+seqCursorHide+seqAutoWrapOff+seqClear+seqHome); err != nil {
		return fmt.Errorf("enter alternate screen: %w", err)
	}
	return nil
}

func leaveScreen(w io.Writer) error {
	if _, err := io.WriteString(w, seqResetStyle+seqAutoWrapOn+seqCursorShow+seqAltScreenOff); err != nil {
		return fmt.Errorf("leave alternate screen: %w", err)
	}
	return nil
}

// EmergencyReset writes the sequences that hand a sane terminal back to the shell.
// Raw mode itself can only be undone by whoever holds the saved state.
func EmergencyReset(w io.Writer) {
	io.WriteString(w, seqResetStyle+seqAutoWrapOn+seqCursorShow+seqAltScreenOff+seqCursorToStart)

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}
}
