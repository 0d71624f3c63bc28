// Package error provides the unified error value returned across the library boundary.
//
// Every fallible operation returns (T, error) where the error is an *Error.
// The package exposes a single concrete type Error that implements
// contract.Error and integrates with the standard library's errors helpers
// (Is/As) via Unwrap.
//
// Key characteristics:
//   - Closed, equality-compared Kind: PacketCounterOverflow, Timeout, Other, Internal
//   - Description rendered once, at construction time
//   - Optional cause, present only for converted foreign errors
//   - One rendering for Display and Debug: "Code: <kind>, Description: <description>"
//
// Direct failures are raised with New, Bail and BailWith; Require, Requiref
// and Lazy defer rendering until the failure path is taken. Foreign errors
// from the I/O subsystem and the terminal backend convert with From (or Wrap
// and Ensure for values held as plain error), always to kind Other.
package error
