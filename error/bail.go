package error

import "fmt"

// Bail raises a classified failure from inside the library.
// The template is rendered immediately; the result never carries a cause.
func Bail(kind Kind, format string, args ...any) *Error {
	return New(kind, fmt.Sprintf(format, args...))
}

// BailWith raises a classified failure whose description is rendered from d.
func BailWith(kind Kind, d fmt.Stringer) *Error {
	if d == nil {
		return New(kind, "")
	}

	return New(kind, d.String())
}

// Require returns nil when ok holds. Otherwise it calls describe and returns
// the classified failure, so the description is only built on the failing path:
//
//	if err := apiError.Require(seq < max, apiError.PacketCounterOverflow, func() string {
//		return fmt.Sprintf("sequence %d exceeds %d", seq, max)
//	}); err != nil {
//		return 0, err
//	}
func Require(ok bool, kind Kind, describe func() string) error {
	if ok {
		return nil
	}

	return Lazy(kind, describe)()
}

// Requiref is Require with a format template. Arguments are evaluated by the
// caller as usual, but formatting only happens when ok is false.
func Requiref(ok bool, kind Kind, format string, args ...any) error {
	if ok {
		return nil
	}

	return Bail(kind, format, args...)
}

// Lazy prepares a failure whose description is rendered each time the
// returned function is called.
func Lazy(kind Kind, describe func() string) func() *Error {
	return func() *Error {
		if describe == nil {
			return New(kind, "")
		}

		return New(kind, describe())
	}
}
