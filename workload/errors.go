// SPDX-License-Identifier: MIT
// Package: lvldict/workload
//
// errors.go — sentinel errors for the workload package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers use errors.Is.
//   • Generators wrap sentinels with the method name via workloadErrorf.
//   • Option constructors panic on meaningless values; generators never do.

package workload

import (
	"github.com/cockroachdb/errors"
)

// ErrBadSize indicates a negative length or a key range too small to hold
// the requested number of distinct keys.
var ErrBadSize = errors.New("workload: invalid size")

// ErrNeedRandSource indicates a stochastic generator was called without
// WithSeed or WithRand.
var ErrNeedRandSource = errors.New("workload: rng is required")

// Method tokens used as error context.
const (
	MethodSorted       = "Sorted"
	MethodReversed     = "Reversed"
	MethodZigZag       = "ZigZag"
	MethodShuffled     = "Shuffled"
	MethodRandomUnique = "RandomUnique"
	MethodChurn        = "Churn"
)

// workloadErrorf wraps sentinel with "<method>: <message>" context.
func workloadErrorf(sentinel error, method, format string, args ...interface{}) error {
	return errors.Wrapf(sentinel, "%s: "+format, append([]interface{}{method}, args...)...)
}
