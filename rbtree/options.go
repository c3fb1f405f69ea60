// SPDX-License-Identifier: MIT
// Package: lvldict/rbtree
//
// options.go — functional options for New/NewFunc.
//
// Contract:
//   • Options apply in order; later options override earlier ones.
//   • Option constructors panic on meaningless input; tree methods never do.

package rbtree

// Option configures a Tree before creation.
type Option func(*config)

// config holds the knobs resolved from Options.
type config struct {
	capacity int   // initial arena capacity
	hooks    Hooks // observation callbacks
}

func newConfig(opts ...Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithCapacity pre-sizes the node arena for n entries. A Tree never holds
// more than MaxSlots entries regardless of n.
// Panics if n < 0.
func WithCapacity(n int) Option {
	if n < 0 {
		panic("rbtree: WithCapacity(n<0)")
	}
	return func(c *config) { c.capacity = n }
}

// WithHooks installs observation callbacks for fixup cases and rotations.
func WithHooks(h Hooks) Option {
	return func(c *config) { c.hooks = h }
}
