// SPDX-License-Identifier: MIT
// Package: lvldict/workload
//
// validators.go — shared precondition checks.

package workload

// validateSize rejects negative lengths.
func validateSize(method string, n int) error {
	if n < 0 {
		return workloadErrorf(ErrBadSize, method, "n must be ≥ 0, got %d", n)
	}

	return nil
}

// validateRand rejects stochastic calls without an RNG.
func validateRand(method string, cfg config) error {
	if cfg.rng == nil {
		return workloadErrorf(ErrNeedRandSource, method, "use WithSeed or WithRand")
	}

	return nil
}
