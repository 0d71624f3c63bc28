package error

import (
	"errors"
	"io/fs"
	"net"
	"os"
	"syscall"

	"github.com/next-trace/path-error/terminal"
)

// Foreign is the allow-list of external error origins that convert into an
// Error: the I/O subsystem and the terminal backend. Add a type to the union
// to recognise a new origin; the conversion rule stays the same.
type Foreign interface {
	*fs.PathError | *os.LinkError | *os.SyscallError |
		*net.OpError | *net.DNSError | *net.AddrError |
		syscall.Errno |
		*terminal.Error
	error
}

// From converts a foreign error into an Error of kind Other.
// The description is the foreign error's own text and err is kept as the cause.
func From[E Foreign](err E) *Error {
	return Wrap(err)
}

// Wrap applies the conversion rule to a value held as a plain error.
// If cause is nil, an opaque cause is created.
// It preserves the original cause for errors.Is / errors.As via Unwrap().
func Wrap(cause error) *Error {
	if cause == nil {
		cause = errors.New("unknown")
	}

	e := New(Other, cause.Error())
	e.cause = cause

	return e
}

// Ensure converts any error to *Error.
//
// Behavior:
//   - nil input => nil output
//   - if err is or wraps an *Error => that *Error is returned as-is (same pointer)
//   - otherwise it is converted with Wrap (kind Other, cause preserved)
func Ensure(err error) *Error {
	if err == nil {
		return nil
	}

	var e *Error

	if errors.As(err, &e) {
		return e
	}

	return Wrap(err)
}
