// SPDX-License-Identifier: MIT
// Package: lvldict/rbtree
//
// clone.go — deep copies.
//
// Contract:
//   • A clone owns its own arena; mutating either tree never affects the other.
//   • Comparator and Hooks are shared by reference, as installed.

package rbtree

import "slices"

// Clone returns an independent copy with the same entries, shape, colors,
// comparator and hooks. Keys and values are copied by assignment.
// Complexity: O(len(arena)).
func (t *Tree[K, V]) Clone() *Tree[K, V] {
	c := t.CloneEmpty()
	c.nodes = slices.Clone(t.nodes)
	c.free = slices.Clone(t.free)
	c.root = t.root
	c.size = t.size

	return c
}

// CloneEmpty returns an empty Tree with the same comparator and hooks.
// Complexity: O(1).
func (t *Tree[K, V]) CloneEmpty() *Tree[K, V] {
	return &Tree[K, V]{
		root:    none,
		limit:   t.limit,
		compare: t.compare,
		hooks:   t.hooks,
	}
}
