// SPDX-License-Identifier: MIT
// Package: lvldict/rbtree
//
// remove.go — Remove and the double-black fixup.
//
// Removal always detaches a node with at most one child: a two-child target
// takes its in-order successor's key/value and the successor is detached
// instead. When a black node leaves, the position it vacated is
// "double-black" and deleteFixup repairs it. The position may be empty, so
// the fixup is driven by (parent, side) rather than by a node.

package rbtree

import (
	"github.com/cockroachdb/errors"
)

// Remove deletes key.
//
// Errors:
//   - ErrNotFound: key is absent; the tree is unchanged.
//   - ErrUnknown: internal contract violation; the tree may be
//     half-repaired and must be discarded.
//
// Complexity: O(log n) time, O(1) space.
func (t *Tree[K, V]) Remove(key K) error {
	z := t.find(key)
	if z == none {
		return errors.Wrapf(ErrNotFound, "Remove(%v)", key)
	}

	return t.removeNode(z)
}

// removeNode reduces z to the ≤1-child shape, detaches it and repairs.
func (t *Tree[K, V]) removeNode(z ref) error {
	if t.at(z).left != none && t.at(z).right != none {
		s := t.successor(z)
		t.at(z).key = t.at(s).key
		t.at(z).value = t.at(s).value
		z = s
	}

	n := t.at(z)
	parent, zColor := n.parent, n.color
	child := n.left
	if child == none {
		child = n.right
	}

	// Record the side before unlinking; the slot may become empty.
	left := parent != none && t.at(parent).left == z

	t.replaceChild(parent, z, child)
	t.release(z)
	t.size--

	if zColor == Red {
		return nil
	}

	if child != none && t.isRed(child) {
		t.at(child).color = Black
		t.hooks.deleteCase(DeletePromoteRedChild)
		return nil
	}

	if parent == none {
		// The black root left; child (if any) is the new root.
		t.setColor(t.root, Black)
		t.hooks.deleteCase(DeleteReachedRoot)
		return nil
	}

	return t.deleteFixup(parent, left)
}

// classifyDelete names the repair step for a double-black position on the
// given side of parent. Both nephews are inspected independently.
func (t *Tree[K, V]) classifyDelete(parent ref, left bool) (DeleteCase, error) {
	s := t.siblingOf(parent, left)
	if s == none {
		return 0, contractViolation("double-black under %d has no sibling", parent)
	}
	if t.isRed(s) {
		return DeleteRedSibling, nil
	}

	// The sibling sits on the opposite side of the deficient position.
	siblingRight := left
	var near, far ref
	if siblingRight {
		near, far = t.at(s).left, t.at(s).right
	} else {
		near, far = t.at(s).right, t.at(s).left
	}

	switch {
	case t.isRed(far) && siblingRight:
		return DeleteRightRight, nil
	case t.isRed(far):
		return DeleteLeftLeft, nil
	case t.isRed(near) && siblingRight:
		return DeleteRightLeft, nil
	case t.isRed(near):
		return DeleteLeftRight, nil
	case t.isRed(parent):
		return DeleteRecolorAbsorb, nil
	default:
		return DeleteRecolorPropagate, nil
	}
}

// deleteFixup resolves a double-black position on the given side of parent.
// Only DeleteRedSibling (same position, new sibling) and
// DeleteRecolorPropagate (one level up) continue the loop.
func (t *Tree[K, V]) deleteFixup(parent ref, left bool) error {
	for {
		c, err := t.classifyDelete(parent, left)
		if err != nil {
			return err
		}
		t.hooks.deleteCase(c)

		s := t.siblingOf(parent, left)

		switch c {
		case DeleteRedSibling:
			if left {
				err = t.rotateLeft(parent)
			} else {
				err = t.rotateRight(parent)
			}
			if err != nil {
				return err
			}
			t.swapColors(parent, s)

		case DeleteRecolorAbsorb:
			t.at(s).color = Red
			t.at(parent).color = Black
			return nil

		case DeleteRecolorPropagate:
			t.at(s).color = Red
			x := parent
			parent = t.at(x).parent
			if parent == none {
				t.hooks.deleteCase(DeleteReachedRoot)
				return nil
			}
			left = t.at(parent).left == x

		case DeleteRightLeft:
			if err = t.rotateRight(s); err != nil {
				return err
			}
			t.swapColors(s, t.at(s).parent)
			return t.farNephewRotation(parent, true)

		case DeleteLeftRight:
			if err = t.rotateLeft(s); err != nil {
				return err
			}
			t.swapColors(s, t.at(s).parent)
			return t.farNephewRotation(parent, false)

		case DeleteRightRight:
			return t.farNephewRotation(parent, true)

		case DeleteLeftLeft:
			return t.farNephewRotation(parent, false)

		default:
			return contractViolation("unhandled delete case %s", c)
		}
	}
}

// farNephewRotation finishes a black-sibling case whose far nephew is red:
// rotate parent toward the deficient side, give the sibling the parent's
// old color and paint parent and far nephew black.
func (t *Tree[K, V]) farNephewRotation(parent ref, siblingRight bool) error {
	s := t.siblingOf(parent, siblingRight)
	var far ref
	var err error
	if siblingRight {
		far = t.at(s).right
		err = t.rotateLeft(parent)
	} else {
		far = t.at(s).left
		err = t.rotateRight(parent)
	}
	if err != nil {
		return err
	}

	t.at(s).color = t.at(parent).color
	t.at(parent).color = Black
	t.setColor(far, Black)

	return nil
}
