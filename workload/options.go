// SPDX-License-Identifier: MIT
// Package: lvldict/workload
//
// options.go — functional options and resolved configuration.
//
// Deterministic defaults:
//   • rng    = nil (deterministic generators only, unless seeded)
//   • offset = 0
//   • stride = 1

package workload

import (
	"math/rand"
)

// Option customizes a generator call.
type Option func(*config)

// config aggregates all knobs; generators receive it by value.
type config struct {
	rng    *rand.Rand
	offset int
	stride int
}

const (
	defaultOffset = 0
	defaultStride = 1
)

func newConfig(opts ...Option) config {
	cfg := config{offset: defaultOffset, stride: defaultStride}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// key maps a 0-based index into the configured key space.
func (c config) key(i int) int {
	return c.offset + i*c.stride
}

// WithSeed creates a seeded RNG so stochastic generators are reproducible.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand shares an explicit RNG across calls. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("workload: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}

// WithOffset shifts every generated key by off.
func WithOffset(off int) Option {
	return func(c *config) { c.offset = off }
}

// WithStride spaces consecutive keys step apart. Panics if step < 1.
func WithStride(step int) Option {
	if step < 1 {
		panic("workload: WithStride(step<1)")
	}
	return func(c *config) { c.stride = step }
}
