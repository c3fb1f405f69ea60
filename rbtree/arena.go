// SPDX-License-Identifier: MIT
// Package: lvldict/rbtree
//
// arena.go — node store with a free list.
//
// Invariants:
//   • A slot is either reachable from root or listed in free, never both.
//   • Released slots are zeroed so K/V values do not outlive their node.
//   • Pointers returned by at() are valid only until the next alloc().

package rbtree

// alloc places a fresh node in a recycled slot when one is available,
// otherwise appends to the arena.
func (t *Tree[K, V]) alloc(key K, value V, c Color, parent ref) ref {
	n := node[K, V]{key: key, value: value, color: c, parent: parent, left: none, right: none}

	if last := len(t.free) - 1; last >= 0 {
		r := t.free[last]
		t.free = t.free[:last]
		t.nodes[r] = n
		return r
	}

	t.nodes = append(t.nodes, n)

	return ref(len(t.nodes) - 1)
}

// full reports whether alloc has no free slot and no index left.
func (t *Tree[K, V]) full() bool {
	return len(t.free) == 0 && len(t.nodes) >= t.limit
}

// release zeroes the slot and pushes it on the free list.
func (t *Tree[K, V]) release(r ref) {
	t.nodes[r] = node[K, V]{parent: none, left: none, right: none}
	t.free = append(t.free, r)
}

// at returns the arena slot for r. r must not be none.
func (t *Tree[K, V]) at(r ref) *node[K, V] {
	return &t.nodes[r]
}

// colorOf treats absent positions as black.
func (t *Tree[K, V]) colorOf(r ref) Color {
	if r == none {
		return Black
	}

	return t.nodes[r].color
}

func (t *Tree[K, V]) isRed(r ref) bool { return t.colorOf(r) == Red }

func (t *Tree[K, V]) setColor(r ref, c Color) {
	if r != none {
		t.nodes[r].color = c
	}
}

// swapColors exchanges the colors of two present nodes.
func (t *Tree[K, V]) swapColors(a, b ref) {
	t.nodes[a].color, t.nodes[b].color = t.nodes[b].color, t.nodes[a].color
}

// Len returns the number of live entries.
// Complexity: O(1).
func (t *Tree[K, V]) Len() int { return t.size }

// Clear drops every entry and resets the arena, keeping its capacity.
// Complexity: O(len(arena)) to zero the slots.
func (t *Tree[K, V]) Clear() {
	clear(t.nodes)
	t.nodes = t.nodes[:0]
	t.free = t.free[:0]
	t.root = none
	t.size = 0
}
