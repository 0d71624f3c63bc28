package error

import "errors"

// maxChain bounds Chain so that a cyclic Unwrap implementation cannot loop forever.
const maxChain = 64

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if !errors.As(err, &e) {
		return 0, false
	}

	return e.Kind(), true
}

// IsKind reports whether err's chain holds an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}

// Chain flattens err and everything reachable through Unwrap, outermost first.
// Joined errors (Unwrap() []error) are visited breadth-first.
func Chain(err error) []error {
	var out []error

	queue := []error{err}
	for len(queue) > 0 && len(out) < maxChain {
		current := queue[0]
		queue = queue[1:]

		if current == nil {
			continue
		}

		out = append(out, current)
		queue = append(queue, unwrapAll(current)...)
	}

	return out
}

// Root returns the innermost error along the single-cause Unwrap path.
func Root(err error) error {
	for i := 0; i < maxChain; i++ {
		next := errors.Unwrap(err)
		if next == nil {
			return err
		}

		err = next
	}

	return err
}

func unwrapAll(err error) []error {
	switch unwrapped := err.(type) {
	case interface{ Unwrap() []error }:
		return unwrapped.Unwrap()
	case interface{ Unwrap() error }:
		if next := unwrapped.Unwrap(); next != nil {
			return []error{next}
		}
	}

	return nil
}
