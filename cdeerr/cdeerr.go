// Copyright © 2024 Packsmith Contributors
// Use is governed by a BSD-style license found in the LICENSE file.

// Package cdeerr defines the typed error kinds the collision detection
// engine reports: InvalidInput, InvariantViolation, and
// UnsupportedConfiguration. Collision queries never fail -- only
// construction and mutating operations return errors.
package cdeerr

import "fmt"

// Kind classifies a reported error.
type Kind int

const (
	// InvalidInput covers non-finite coordinates, degenerate polygons,
	// out-of-range quality indices, and empty pole lists. Always reported
	// synchronously, before any partial mutation.
	InvalidInput Kind = iota
	// InvariantViolation covers an internal check failing (e.g. an HPG
	// cell reporting Affected without its proximity strengthening).
	InvariantViolation
	// UnsupportedConfiguration covers designs this module deliberately
	// does not implement, such as a dynamic hazard with Exterior
	// presence -- fail fast rather than compute an incorrect answer.
	UnsupportedConfiguration
)

// String renders the Kind for error messages and logs.
func (k Kind) String() string {
	switch k {
	case InvalidInput:
		return "InvalidInput"
	case InvariantViolation:
		return "InvariantViolation"
	case UnsupportedConfiguration:
		return "UnsupportedConfiguration"
	default:
		return "Unknown"
	}
}

// Error wraps an underlying cause with the operation that failed and its
// Kind, following the Go 1.13+ error-wrapping idiom so callers can
// errors.Is/errors.As against the cause via Unwrap, and read the Kind of a
// (possibly wrapped) *Error with KindOf below.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("cde: %s: %s: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("cde: %s: %s", e.Op, e.Kind)
}

// Unwrap exposes the wrapped cause for errors.Is/errors.As.
func (e *Error) Unwrap() error { return e.Err }

// New builds an Error for op failing with the given kind and cause.
func New(kind Kind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

// Newf builds an Error for op failing with the given kind, formatting a
// message as the cause.
func Newf(kind Kind, op, format string, args ...any) *Error {
	return &Error{Kind: kind, Op: op, Err: fmt.Errorf(format, args...)}
}

// KindOf returns the Kind of err if it is (or wraps) a *Error, and false
// otherwise.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if ok := asError(err, &e); ok {
		return e.Kind, true
	}
	return 0, false
}

// asError is a tiny local errors.As to avoid importing errors just for this.
func asError(err error, target **Error) bool {
	for err != nil {
		if e, ok := err.(*Error); ok {
			*target = e
			return true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}
