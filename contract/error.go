// Package contract exposes the minimal error interface used by other packages.
//
// Implementations must keep Error() free of cause text and support
// errors.Unwrap so the original failure stays reachable programmatically.
package contract

// Error is the minimal, stable surface that other packages can depend on.
//
// Implementations must:
//   - Return the classification name from Code() (e.g. "Timeout").
//   - Return the stored description verbatim from Description().
//   - Support errors.Unwrap via Unwrap(); nil when the failure was raised
//     directly rather than converted from a foreign error.
//
// The interface intentionally contains only getters and Unwrap.
type Error interface {
	error
	Code() string
	Description() string
	Unwrap() error
}
