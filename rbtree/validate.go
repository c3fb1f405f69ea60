// SPDX-License-Identifier: MIT
// Package: lvldict/rbtree
//
// validate.go — full invariant audit, independent of traversal order.

package rbtree

import (
	"github.com/cockroachdb/errors"
)

// Validate checks BST ordering, parent back-references, the red-red rule,
// black-height uniformity, root color and the size counter.
//
// Errors:
//   - ErrInvariant wrapped with the first violation found.
//
// Complexity: O(n) time, O(height) stack.
func (t *Tree[K, V]) Validate() error {
	if t.root == none {
		if t.size != 0 {
			return errors.Wrapf(ErrInvariant, "empty tree reports size %d", t.size)
		}
		return nil
	}

	if t.at(t.root).parent != none {
		return errors.Wrapf(ErrInvariant, "root %d has parent %d", t.root, t.at(t.root).parent)
	}
	if t.at(t.root).color != Black {
		return errors.Wrap(ErrInvariant, "root is red")
	}

	count := 0
	if _, err := t.validateSubtree(t.root, none, none, &count); err != nil {
		return err
	}
	if count != t.size {
		return errors.Wrapf(ErrInvariant, "size %d but %d reachable nodes", t.size, count)
	}

	return nil
}

// validateSubtree returns the black-height of r's subtree. lo and hi are the
// nearest ancestors bounding r's key from below and above (none = unbounded).
func (t *Tree[K, V]) validateSubtree(r, lo, hi ref, count *int) (int, error) {
	if r == none {
		return 1, nil
	}
	*count++

	n := t.at(r)
	if lo != none && t.compare(n.key, t.at(lo).key) <= 0 {
		return 0, errors.Wrapf(ErrInvariant, "key %v not greater than ancestor %v", n.key, t.at(lo).key)
	}
	if hi != none && t.compare(n.key, t.at(hi).key) >= 0 {
		return 0, errors.Wrapf(ErrInvariant, "key %v not less than ancestor %v", n.key, t.at(hi).key)
	}

	for _, c := range [2]ref{n.left, n.right} {
		if c == none {
			continue
		}
		if t.at(c).parent != r {
			return 0, errors.Wrapf(ErrInvariant, "node %v: child %v has stale parent link", n.key, t.at(c).key)
		}
		if n.color == Red && t.at(c).color == Red {
			return 0, errors.Wrapf(ErrInvariant, "red node %v has red child %v", n.key, t.at(c).key)
		}
	}

	lh, err := t.validateSubtree(n.left, lo, r, count)
	if err != nil {
		return 0, err
	}
	rh, err := t.validateSubtree(n.right, r, hi, count)
	if err != nil {
		return 0, err
	}
	if lh != rh {
		return 0, errors.Wrapf(ErrInvariant, "node %v: black-height %d on the left, %d on the right", n.key, lh, rh)
	}

	if n.color == Black {
		lh++
	}

	return lh, nil
}
