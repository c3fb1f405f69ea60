// SPDX-License-Identifier: MIT
// Package: lvldict/rbtree
//
// locate.go — read-only descents: exact lookup, insertion point, uncle,
// sibling, successor and subtree extremes. None of these mutate the tree;
// "not found" is reported as none and consumed by the callers' branching.

package rbtree

// find returns the node holding key, or none.
// Complexity: O(log n).
func (t *Tree[K, V]) find(key K) ref {
	cur := t.root
	for cur != none {
		n := t.at(cur)
		switch c := t.compare(key, n.key); {
		case c < 0:
			cur = n.left
		case c > 0:
			cur = n.right
		default:
			return cur
		}
	}

	return none
}

// findParent returns the would-be parent of key. When key is already
// present the walk stops at the matching node and present is true, so the
// caller can reject the duplicate instead of descending forever.
// Complexity: O(log n).
func (t *Tree[K, V]) findParent(key K) (parent ref, present bool) {
	parent = none
	cur := t.root
	for cur != none {
		parent = cur
		n := t.at(cur)
		switch c := t.compare(key, n.key); {
		case c < 0:
			cur = n.left
		case c > 0:
			cur = n.right
		default:
			return cur, true
		}
	}

	return parent, false
}

// findUncle returns the other child of r's grandparent, or none when r has
// no parent or no grandparent.
func (t *Tree[K, V]) findUncle(r ref) ref {
	if r == none {
		return none
	}
	p := t.at(r).parent
	if p == none {
		return none
	}
	g := t.at(p).parent
	if g == none {
		return none
	}
	if t.at(g).left == p {
		return t.at(g).right
	}

	return t.at(g).left
}

// siblingOf returns the other child of parent. left reports which side the
// deficient position is on; it is needed because that position may be empty.
func (t *Tree[K, V]) siblingOf(parent ref, left bool) ref {
	if left {
		return t.at(parent).right
	}

	return t.at(parent).left
}

// isLeftChild reports whether r hangs on its parent's left link.
func (t *Tree[K, V]) isLeftChild(r ref) bool {
	p := t.at(r).parent
	return p != none && t.at(p).left == r
}

// successor returns the minimum of r's right subtree, or none when r has
// no right child.
func (t *Tree[K, V]) successor(r ref) ref {
	right := t.at(r).right
	if right == none {
		return none
	}

	return t.minimum(right)
}

// minimum returns the leftmost node of the subtree rooted at r.
func (t *Tree[K, V]) minimum(r ref) ref {
	if r == none {
		return none
	}
	for t.at(r).left != none {
		r = t.at(r).left
	}

	return r
}

// maximum returns the rightmost node of the subtree rooted at r.
func (t *Tree[K, V]) maximum(r ref) ref {
	if r == none {
		return none
	}
	for t.at(r).right != none {
		r = t.at(r).right
	}

	return r
}

// Exist reports whether key is present.
// Complexity: O(log n).
func (t *Tree[K, V]) Exist(key K) bool {
	return t.find(key) != none
}

// Get returns the value stored under key.
// Complexity: O(log n).
func (t *Tree[K, V]) Get(key K) (V, bool) {
	r := t.find(key)
	if r == none {
		var zero V
		return zero, false
	}

	return t.at(r).value, true
}

// ColorOf reports the color of the node holding key. Intended for
// diagnostics and tests; colors are an implementation detail.
func (t *Tree[K, V]) ColorOf(key K) (Color, bool) {
	r := t.find(key)
	if r == none {
		return Black, false
	}

	return t.at(r).color, true
}

// Min returns the entry with the smallest key.
// Complexity: O(log n).
func (t *Tree[K, V]) Min() (Entry[K, V], bool) {
	return t.entryAt(t.minimum(t.root))
}

// Max returns the entry with the largest key.
// Complexity: O(log n).
func (t *Tree[K, V]) Max() (Entry[K, V], bool) {
	return t.entryAt(t.maximum(t.root))
}

func (t *Tree[K, V]) entryAt(r ref) (Entry[K, V], bool) {
	if r == none {
		return Entry[K, V]{}, false
	}
	n := t.at(r)

	return Entry[K, V]{Key: n.key, Value: n.value}, true
}
