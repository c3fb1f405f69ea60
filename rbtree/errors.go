// SPDX-License-Identifier: MIT
// Package: lvldict/rbtree
//
// errors.go — sentinel errors and the Status taxonomy.
//
// Error policy:
//   • Only sentinel variables are exposed; branch with errors.Is.
//   • Public methods attach the offending key with errors.Wrapf.
//   • Contract violations wrap ErrUnknown and carry the assertion-failure
//     marker (errors.HasAssertionFailure), so they classify as
//     StatusUnknownError and are distinguishable from user errors.

package rbtree

import (
	"github.com/cockroachdb/errors"
)

var (
	// ErrOutOfBounds indicates an enumeration argument outside its domain
	// (for example an unknown TraversalMode).
	ErrOutOfBounds = errors.New("rbtree: argument out of bounds")

	// ErrNotFound indicates the requested key is absent.
	ErrNotFound = errors.New("rbtree: key not found")

	// ErrWrongKey indicates Insert was called with a key that is already present.
	ErrWrongKey = errors.New("rbtree: key already exists")

	// ErrUnknown marks internal contract violations. It is never expected
	// from a correct tree.
	ErrUnknown = errors.New("rbtree: internal contract violation")

	// ErrInvariant is returned by Validate when a red-black invariant is broken.
	ErrInvariant = errors.New("rbtree: invariant violated")
)

// Status is the status-code view of an operation result.
type Status uint8

const (
	// StatusOK reports success.
	StatusOK Status = iota
	// StatusOutOfBounds corresponds to ErrOutOfBounds.
	StatusOutOfBounds
	// StatusNotFound corresponds to ErrNotFound.
	StatusNotFound
	// StatusWrongKey corresponds to ErrWrongKey.
	StatusWrongKey
	// StatusUnknownError covers ErrUnknown, ErrInvariant and any foreign error.
	StatusUnknownError
)

// String returns the canonical upper-case status name.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "OK"
	case StatusOutOfBounds:
		return "OUT_OF_BOUNDS"
	case StatusNotFound:
		return "NOT_FOUND"
	case StatusWrongKey:
		return "WRONG_KEY"
	default:
		return "UNKNOWN_ERROR"
	}
}

// StatusOf classifies err. A nil error is StatusOK; errors that match none
// of the package sentinels are StatusUnknownError.
func StatusOf(err error) Status {
	switch {
	case err == nil:
		return StatusOK
	case errors.Is(err, ErrOutOfBounds):
		return StatusOutOfBounds
	case errors.Is(err, ErrNotFound):
		return StatusNotFound
	case errors.Is(err, ErrWrongKey):
		return StatusWrongKey
	default:
		return StatusUnknownError
	}
}

// contractViolation builds an assertion failure wrapping ErrUnknown.
func contractViolation(format string, args ...interface{}) error {
	return errors.WithAssertionFailure(errors.Wrapf(ErrUnknown, format, args...))
}
