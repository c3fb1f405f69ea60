// SPDX-License-Identifier: MIT
// Package: lvldict/rbtree
//
// insert.go — Insert, Put and the insertion fixup.
//
// The fixup is a loop over classifyInsert: only InsertRecolor moves the
// cursor (two levels up); every rotation case ends the loop with all
// invariants restored.

package rbtree

import (
	"github.com/cockroachdb/errors"
)

// Insert adds key with value. The new node starts red (black when the tree
// is empty) and the fixup repaints/rotates along the path to the root.
//
// Errors:
//   - ErrWrongKey: key is already present; the tree is unchanged.
//   - ErrUnknown: the arena is full (tree unchanged), or an internal
//     contract violation during the fixup, after which the tree may be
//     half-repaired and must be discarded.
//
// Complexity: O(log n) time, O(1) amortized space.
func (t *Tree[K, V]) Insert(key K, value V) error {
	if t.full() {
		return errors.Wrapf(ErrUnknown, "Insert(%v): arena holds %d nodes", key, t.limit)
	}
	if t.root == none {
		t.root = t.alloc(key, value, Black, none)
		t.size++
		t.hooks.insertCase(InsertRoot)
		return nil
	}

	parent, present := t.findParent(key)
	if present {
		return errors.Wrapf(ErrWrongKey, "Insert(%v)", key)
	}

	x := t.alloc(key, value, Red, parent)
	if t.compare(key, t.at(parent).key) < 0 {
		t.at(parent).left = x
	} else {
		t.at(parent).right = x
	}
	t.size++

	return t.insertFixup(x)
}

// Put inserts key or overwrites the value of an existing key.
// replaced is true when an existing value was overwritten.
// Complexity: O(log n).
func (t *Tree[K, V]) Put(key K, value V) (replaced bool, err error) {
	if r := t.find(key); r != none {
		t.at(r).value = value
		return true, nil
	}

	return false, t.Insert(key, value)
}

// classifyInsert inspects x, its parent, uncle and grandparent and names
// the repair step that applies.
func (t *Tree[K, V]) classifyInsert(x ref) (InsertCase, error) {
	p := t.at(x).parent
	if p == none {
		return InsertRoot, nil
	}
	if !t.isRed(p) {
		return InsertBlackParent, nil
	}

	g := t.at(p).parent
	if g == none {
		return 0, contractViolation("red parent %d is the root", p)
	}
	if t.isRed(t.findUncle(x)) {
		return InsertRecolor, nil
	}

	parentLeft := t.at(g).left == p
	nodeLeft := t.at(p).left == x
	switch {
	case parentLeft && nodeLeft:
		return InsertLeftLeft, nil
	case parentLeft:
		return InsertLeftRight, nil
	case nodeLeft:
		return InsertRightLeft, nil
	default:
		return InsertRightRight, nil
	}
}

// insertFixup restores the invariants after x was attached as a red leaf.
func (t *Tree[K, V]) insertFixup(x ref) error {
	for {
		c, err := t.classifyInsert(x)
		if err != nil {
			return err
		}
		t.hooks.insertCase(c)

		switch c {
		case InsertRoot:
			t.at(x).color = Black
			return nil

		case InsertBlackParent:
			return nil

		case InsertRecolor:
			p := t.at(x).parent
			g := t.at(p).parent
			t.setColor(p, Black)
			t.setColor(t.findUncle(x), Black)
			if g != t.root {
				t.setColor(g, Red)
			}
			x = g

		case InsertLeftLeft:
			return t.leftLeftRotation(t.at(t.at(x).parent).parent)

		case InsertRightRight:
			return t.rightRightRotation(t.at(t.at(x).parent).parent)

		case InsertLeftRight:
			p := t.at(x).parent
			g := t.at(p).parent
			if err = t.rotateLeft(p); err != nil {
				return err
			}
			return t.leftLeftRotation(g)

		case InsertRightLeft:
			p := t.at(x).parent
			g := t.at(p).parent
			if err = t.rotateRight(p); err != nil {
				return err
			}
			return t.rightRightRotation(g)

		default:
			return contractViolation("unhandled insert case %s", c)
		}
	}
}
