// Package terminal is the library's terminal/display backend.
//
// Failures are reported as *Error values carrying the failed operation and
// file descriptor. They are foreign to the unified error model and get
// converted at the library boundary.
package terminal

import (
	"errors"
	"fmt"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// ErrNotTerminal is returned when fd does not refer to a terminal.
var ErrNotTerminal = errors.New("not a terminal")

// Error describes a failed terminal operation.
type Error struct {
	Op  string
	Fd  int
	Err error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}

	return fmt.Sprintf("terminal %s (fd %d): %v", e.Op, e.Fd, e.Err)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}

	return e.Err
}

// IsTerminal reports whether fd refers to a terminal, including Cygwin/MSYS ptys.
func IsTerminal(fd int) bool {
	u := uintptr(fd)

	return isatty.IsTerminal(u) || isatty.IsCygwinTerminal(u)
}

// Size returns the visible width and height of the terminal behind fd.
func Size(fd int) (width, height int, err error) {
	if !IsTerminal(fd) {
		return 0, 0, &Error{Op: "size", Fd: fd, Err: ErrNotTerminal}
	}

	width, height, err = term.GetSize(fd)
	if err != nil {
		return 0, 0, &Error{Op: "size", Fd: fd, Err: err}
	}

	return width, height, nil
}

// MakeRaw puts the terminal into raw mode. The returned function restores
// the previous state.
func MakeRaw(fd int) (restore func() error, err error) {
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, &Error{Op: "make raw", Fd: fd, Err: err}
	}

	return func() error {
		if err := term.Restore(fd, state); err != nil {
			return &Error{Op: "restore", Fd: fd, Err: err}
		}

		return nil
	}, nil
}

// ReadPassword reads a line from the terminal without echo.
func ReadPassword(fd int) ([]byte, error) {
	b, err := term.ReadPassword(fd)
	if err != nil {
		return nil, &Error{Op: "read password", Fd: fd, Err: err}
	}

	return b, nil
}
