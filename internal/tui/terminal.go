package tui

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// ANSI escape sequences
const (
	ClearScreen  = "\033[2J"
	ClearLine    = "\033[K"
	ClearToEnd   = "\033[J"
	CursorHome   = "\033[H"
	CursorHide   = "\033[?25l"
	CursorShow   = "\033[?25h"
	AltScreenOn  = "\033[?1049h"
	AltScreenOff = "\033[?1049l"

	Reset = "\033[0m"
	Bold  = "\033[1m"
	Dim   = "\033[2m"

	FgGreen       = "\033[32m"
	FgYellow      = "\033[33m"
	FgCyan        = "\033[36m"
	FgBrightBlack = "\033[90m"
	FgBrightGreen = "\033[92m"

	Bell = "\a"
)

// Terminal is the screen the visualizer owns: keys come from stdin, frames
// go to out on the alternate screen.
type Terminal struct {
	in    *os.File
	out   io.Writer
	saved *term.State
}

// NewTerminal creates a Terminal that reads from stdin and writes to out.
func NewTerminal(out io.Writer) *Terminal {
	return &Terminal{in: os.Stdin, out: out}
}

// IsTerminal reports whether stdin is attached to a terminal.
func (t *Terminal) IsTerminal() bool {
	return term.IsTerminal(int(t.in.Fd()))
}

// EnterRaw switches stdin to raw mode so single key presses arrive without
// line buffering or echo.
func (t *Terminal) EnterRaw() error {
	if t.saved != nil {
		return fmt.Errorf("terminal already in raw mode")
	}
	saved, err := term.MakeRaw(int(t.in.Fd()))
	if err != nil {
		return fmt.Errorf("failed to enter raw mode: %w", err)
	}
	t.saved = saved
	return nil
}

// ExitRaw restores the mode saved by EnterRaw. It does nothing when the
// terminal is not raw.
func (t *Terminal) ExitRaw() error {
	if t.saved == nil {
		return nil
	}
	if err := term.Restore(int(t.in.Fd()), t.saved); err != nil {
		return fmt.Errorf("failed to restore terminal: %w", err)
	}
	t.saved = nil
	return nil
}

// Size returns the current terminal width and height.
func (t *Terminal) Size() (width, height int, err error) {
	width, height, err = term.GetSize(int(t.in.Fd()))
	if err != nil {
		return 0, 0, fmt.Errorf("failed to get terminal size: %w", err)
	}
	return width, height, nil
}

// Read reads raw key bytes from stdin.
func (t *Terminal) Read(p []byte) (n int, err error) {
	return t.in.Read(p)
}

// Open switches to a cleared alternate screen with the cursor hidden.
func (t *Terminal) Open() {
	fmt.Fprint(t.out, AltScreenOn+CursorHide+ClearScreen+CursorHome)
}

// Close undoes Open, leaving the shell's screen as it was.
func (t *Terminal) Close() {
	fmt.Fprint(t.out, Reset+CursorShow+AltScreenOff)
}

// Frame redraws the screen from the top with body, erasing anything left
// below it by a taller previous frame.
func (t *Terminal) Frame(body string) {
	fmt.Fprint(t.out, CursorHome+body+ClearToEnd)
}
