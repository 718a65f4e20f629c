// Package terminal wraps the few terminal capabilities the presenter needs.
package terminal

import (
	"os"
	"strconv"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// Escape sequences understood by common terminal emulators.
const (
	// ClearScreen homes the cursor and clears the visible screen, keeping scrollback.
	ClearScreen = "\x1b[H\x1b[2J"
	// CursorBar selects a steady bar cursor (DECSCUSR 6).
	CursorBar = "\x1b[6 q"
	// CursorBlock selects a steady block cursor (DECSCUSR 2).
	CursorBlock = "\x1b[2 q"
)

// DefaultWidth is used when the width cannot be determined.
const DefaultWidth = 80

// Width returns the number of columns of the terminal attached to f.
// COLUMNS takes precedence, as with most command line tools.
func Width(f *os.File) int {
	if cols, err := strconv.Atoi(os.Getenv("COLUMNS")); err == nil && cols > 0 {
		return cols
	}
	if f != nil {
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
			return w
		}
	}
	return DefaultWidth
}

// IsTerminal reports whether f is an interactive terminal (including Cygwin/MSYS ptys).
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
