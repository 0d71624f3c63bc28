// Package error provides the unified error value returned across the library boundary.
//
// It defines a single concrete type Error that carries an immutable Kind, an
// eagerly rendered description and, for converted foreign failures, the
// original cause exposed through Unwrap.
package error

import (
	"fmt"
	"io"

	"github.com/next-trace/path-error/contract"
)

// Error is the canonical error type of the library.
//
// Fields:
//   - Kind:        closed classification (Timeout, Internal, ...)
//   - Description: human-readable text rendered at construction time
//   - Cause:       the foreign error this value was converted from, if any
type Error struct {
	kind        Kind
	description string
	cause       error
}

// compile-time guarantee that *Error implements contract.Error
var _ contract.Error = (*Error)(nil)

// compile-time guarantee that Debug and Display renderings share one path
var _ fmt.Formatter = (*Error)(nil)

// ------ standard error interface

// Error renders "Code: <kind>, Description: <description>". The cause is never printed.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}

	return "Code: " + e.kind.String() + ", Description: " + e.description
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}

	return e.cause
}

// Format renders the same text for every verb; %q quotes it.
func (e *Error) Format(s fmt.State, verb rune) {
	if verb == 'q' {
		fmt.Fprintf(s, "%q", e.Error())
		return
	}

	_, _ = io.WriteString(s, e.Error())
}

// ------ getters

// Kind returns the classification. A nil receiver reports Internal.
func (e *Error) Kind() Kind {
	if e == nil {
		return Internal
	}

	return e.kind
}

// Code returns the classification name, e.g. "Timeout".
func (e *Error) Code() string { return e.Kind().String() }

func (e *Error) Description() string {
	if e == nil {
		return ""
	}

	return e.description
}

// Cause returns the converted foreign error, or nil for directly raised failures.
func (e *Error) Cause() error { return e.Unwrap() }

// ------ core constructors

// New creates an Error with the given kind and description and no cause.
// An empty description is replaced by the kind's default text.
func New(kind Kind, description string) *Error {
	if description == "" {
		description = kind.defaultDescription()
	}

	return &Error{kind: kind, description: description}
}
