// SPDX-License-Identifier: MIT
// Package: lvldict/workload
//
// sequences.go — deterministic and seeded key sequences.

package workload

// Sorted returns n ascending keys: offset, offset+stride, ….
// Complexity: O(n) time, O(n) space.
func Sorted(n int, opts ...Option) ([]int, error) {
	if err := validateSize(MethodSorted, n); err != nil {
		return nil, err
	}

	cfg := newConfig(opts...)
	keys := make([]int, n)
	for i := range keys {
		keys[i] = cfg.key(i)
	}

	return keys, nil
}

// Reversed returns the keys of Sorted in descending order.
// Complexity: O(n) time, O(n) space.
func Reversed(n int, opts ...Option) ([]int, error) {
	if err := validateSize(MethodReversed, n); err != nil {
		return nil, err
	}

	cfg := newConfig(opts...)
	keys := make([]int, n)
	for i := range keys {
		keys[i] = cfg.key(n - 1 - i)
	}

	return keys, nil
}

// ZigZag returns the keys of Sorted taken alternately from the low and
// high ends: k0, k(n-1), k1, k(n-2), …. Both rotation directions fire.
// Complexity: O(n) time, O(n) space.
func ZigZag(n int, opts ...Option) ([]int, error) {
	if err := validateSize(MethodZigZag, n); err != nil {
		return nil, err
	}

	cfg := newConfig(opts...)
	keys := make([]int, 0, n)
	for lo, hi := 0, n-1; lo <= hi; lo, hi = lo+1, hi-1 {
		keys = append(keys, cfg.key(lo))
		if lo != hi {
			keys = append(keys, cfg.key(hi))
		}
	}

	return keys, nil
}

// Shuffled returns a seeded permutation of Sorted(n). Requires an RNG.
// Complexity: O(n) time, O(n) space.
func Shuffled(n int, opts ...Option) ([]int, error) {
	if err := validateSize(MethodShuffled, n); err != nil {
		return nil, err
	}
	cfg := newConfig(opts...)
	if err := validateRand(MethodShuffled, cfg); err != nil {
		return nil, err
	}

	keys := make([]int, n)
	for i := range keys {
		keys[i] = cfg.key(i)
	}
	cfg.rng.Shuffle(n, func(i, j int) { keys[i], keys[j] = keys[j], keys[i] })

	return keys, nil
}

// RandomUnique returns n distinct indices drawn from [0, limit), mapped
// through offset/stride, in draw order. Requires an RNG and limit ≥ n.
// Complexity: O(n) expected time, O(n) space.
func RandomUnique(n, limit int, opts ...Option) ([]int, error) {
	if err := validateSize(MethodRandomUnique, n); err != nil {
		return nil, err
	}
	if limit < n {
		return nil, workloadErrorf(ErrBadSize, MethodRandomUnique, "limit %d < n %d", limit, n)
	}
	cfg := newConfig(opts...)
	if err := validateRand(MethodRandomUnique, cfg); err != nil {
		return nil, err
	}

	seen := make(map[int]struct{}, n)
	keys := make([]int, 0, n)
	for len(keys) < n {
		i := cfg.rng.Intn(limit)
		if _, dup := seen[i]; dup {
			continue
		}
		seen[i] = struct{}{}
		keys = append(keys, cfg.key(i))
	}

	return keys, nil
}
