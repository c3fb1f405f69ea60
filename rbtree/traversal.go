// SPDX-License-Identifier: MIT
// Package: lvldict/rbtree
//
// traversal.go — snapshot traversals, the ascending iterator and shape metrics.
//
// Determinism:
//   - Every traversal depends only on the tree shape, so repeated calls
//     without intervening mutation return identical slices.

package rbtree

import (
	"iter"

	"github.com/cockroachdb/errors"
)

// Traversal returns every entry in the order selected by mode.
// An empty tree yields an empty, non-nil slice.
//
// Errors:
//   - ErrOutOfBounds: mode is not LevelOrder, InOrder or PreOrder.
//
// Complexity: O(n) time, O(n) space.
func (t *Tree[K, V]) Traversal(mode TraversalMode) ([]Entry[K, V], error) {
	out := make([]Entry[K, V], 0, t.size)

	switch mode {
	case LevelOrder:
		t.levelOrder(func(r ref) { out = append(out, t.entryOf(r)) })
	case InOrder:
		for k, v := range t.All() {
			out = append(out, Entry[K, V]{Key: k, Value: v})
		}
	case PreOrder:
		t.preOrder(func(r ref) { out = append(out, t.entryOf(r)) })
	default:
		return nil, errors.Wrapf(ErrOutOfBounds, "Traversal(%s)", mode)
	}

	return out, nil
}

// Keys returns the keys in ascending order.
// Complexity: O(n).
func (t *Tree[K, V]) Keys() []K {
	keys := make([]K, 0, t.size)
	for k := range t.All() {
		keys = append(keys, k)
	}

	return keys
}

// All iterates entries in ascending key order. Mutating the tree while
// iterating is not supported.
func (t *Tree[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		stack := make([]ref, 0, 2*t.BlackHeight()+1)
		cur := t.root
		for cur != none || len(stack) > 0 {
			for cur != none {
				stack = append(stack, cur)
				cur = t.at(cur).left
			}

			cur = stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			n := t.at(cur)
			if !yield(n.key, n.value) {
				return
			}

			cur = n.right
		}
	}
}

// levelOrder visits nodes breadth-first, left child before right.
func (t *Tree[K, V]) levelOrder(visit func(ref)) {
	if t.root == none {
		return
	}

	queue := make([]ref, 0, t.size)
	queue = append(queue, t.root)
	for head := 0; head < len(queue); head++ {
		r := queue[head]
		visit(r)
		if l := t.at(r).left; l != none {
			queue = append(queue, l)
		}
		if rr := t.at(r).right; rr != none {
			queue = append(queue, rr)
		}
	}
}

// preOrder visits a node, then its left subtree, then its right subtree.
func (t *Tree[K, V]) preOrder(visit func(ref)) {
	if t.root == none {
		return
	}

	stack := []ref{t.root}
	for len(stack) > 0 {
		r := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		visit(r)
		// Push right first so left is visited first.
		if rr := t.at(r).right; rr != none {
			stack = append(stack, rr)
		}
		if l := t.at(r).left; l != none {
			stack = append(stack, l)
		}
	}
}

func (t *Tree[K, V]) entryOf(r ref) Entry[K, V] {
	n := t.at(r)
	return Entry[K, V]{Key: n.key, Value: n.value}
}

// Height returns the number of nodes on the longest root-to-leaf path
// (0 for an empty tree). A valid tree satisfies Height ≤ 2·log2(n+1).
// Complexity: O(n).
func (t *Tree[K, V]) Height() int {
	if t.root == none {
		return 0
	}

	height := 0
	level := []ref{t.root}
	for len(level) > 0 {
		height++
		next := level[:0:0]
		for _, r := range level {
			if l := t.at(r).left; l != none {
				next = append(next, l)
			}
			if rr := t.at(r).right; rr != none {
				next = append(next, rr)
			}
		}
		level = next
	}

	return height
}

// BlackHeight counts black nodes on the leftmost root-to-leaf path. In a
// valid tree every such path has the same count.
// Complexity: O(log n).
func (t *Tree[K, V]) BlackHeight() int {
	bh := 0
	for r := t.root; r != none; r = t.at(r).left {
		if t.at(r).color == Black {
			bh++
		}
	}

	return bh
}
