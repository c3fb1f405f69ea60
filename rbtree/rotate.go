// SPDX-License-Identifier: MIT
// Package: lvldict/rbtree
//
// rotate.go — single rotations and the color-swapping compound rotations
// used by both fixups. Rotations never change colors on their own.

package rbtree

// rotateLeft promotes x's right child y into x's position.
//
//	    P                P
//	    |                |
//	    x                y
//	   / \              / \
//	  A   y     →      x   C
//	     / \          / \
//	    B   C        A   B
//
// Returns a contract violation when x has no right child.
func (t *Tree[K, V]) rotateLeft(x ref) error {
	y := t.at(x).right
	if y == none {
		return contractViolation("rotateLeft at node %d without right child", x)
	}

	b := t.at(y).left
	t.at(x).right = b
	if b != none {
		t.at(b).parent = x
	}

	t.replaceChild(t.at(x).parent, x, y)

	t.at(y).left = x
	t.at(x).parent = y
	t.hooks.rotate(RotateLeft)

	return nil
}

// rotateRight promotes y's left child x into y's position.
//
//	      P            P
//	      |            |
//	      y            x
//	     / \          / \
//	    x   C   →    A   y
//	   / \              / \
//	  A   B            B   C
//
// Returns a contract violation when y has no left child.
func (t *Tree[K, V]) rotateRight(y ref) error {
	x := t.at(y).left
	if x == none {
		return contractViolation("rotateRight at node %d without left child", y)
	}

	b := t.at(x).right
	t.at(y).left = b
	if b != none {
		t.at(b).parent = y
	}

	t.replaceChild(t.at(y).parent, y, x)

	t.at(x).right = y
	t.at(y).parent = x
	t.hooks.rotate(RotateRight)

	return nil
}

// replaceChild hangs repl where old used to be under parent (or at the
// root when parent is none) and updates repl's back-reference.
// repl may be none.
func (t *Tree[K, V]) replaceChild(parent, old, repl ref) {
	switch {
	case parent == none:
		t.root = repl
	case t.at(parent).left == old:
		t.at(parent).left = repl
	default:
		t.at(parent).right = repl
	}

	if repl != none {
		t.at(repl).parent = parent
	}
}

// leftLeftRotation right-rotates g and swaps the colors of g and its
// former left child, which is g's new parent.
func (t *Tree[K, V]) leftLeftRotation(g ref) error {
	pivot := t.at(g).left
	if err := t.rotateRight(g); err != nil {
		return err
	}
	t.swapColors(g, pivot)

	return nil
}

// rightRightRotation left-rotates g and swaps the colors of g and its
// former right child, which is g's new parent.
func (t *Tree[K, V]) rightRightRotation(g ref) error {
	pivot := t.at(g).right
	if err := t.rotateLeft(g); err != nil {
		return err
	}
	t.swapColors(g, pivot)

	return nil
}
