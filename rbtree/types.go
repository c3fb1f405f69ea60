// SPDX-License-Identifier: MIT
// Package: lvldict/rbtree
//
// types.go — Color, node arena layout, Tree, fixup case tags and hooks.

package rbtree

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Color is the red/black tag of a node. Absent positions count as Black.
type Color uint8

const (
	// Red marks a node that does not contribute to black-height.
	Red Color = iota
	// Black marks a node that contributes one unit of black-height.
	Black
)

// String returns "red" or "black".
func (c Color) String() string {
	if c == Red {
		return "red"
	}

	return "black"
}

// ref is an index into Tree.nodes; none marks an absent link.
type ref int32

const none ref = -1

// MaxSlots is the largest number of live nodes a Tree can hold; arena
// indices are int32.
const MaxSlots = math.MaxInt32

// node is one arena slot. parent is a back-reference used only for upward
// walks during fixups.
type node[K any, V any] struct {
	key    K
	value  V
	color  Color
	parent ref
	left   ref
	right  ref
}

// Entry is a key/value pair produced by traversals and Min/Max.
type Entry[K any, V any] struct {
	Key   K
	Value V
}

// TraversalMode selects the visiting order of Traversal.
type TraversalMode int

const (
	// LevelOrder visits nodes breadth-first from the root, left before right.
	LevelOrder TraversalMode = iota
	// InOrder visits nodes in ascending key order.
	InOrder
	// PreOrder visits a node before its left and right subtrees.
	PreOrder
)

// String returns the mode name.
func (m TraversalMode) String() string {
	switch m {
	case LevelOrder:
		return "LEVEL_ORDER"
	case InOrder:
		return "IN_ORDER"
	case PreOrder:
		return "PRE_ORDER"
	default:
		return "UNKNOWN_MODE"
	}
}

// Direction names a rotation.
type Direction uint8

const (
	// RotateLeft promotes a node's right child.
	RotateLeft Direction = iota
	// RotateRight promotes a node's left child.
	RotateRight
)

// String returns "left" or "right".
func (d Direction) String() string {
	if d == RotateLeft {
		return "left"
	}

	return "right"
}

// InsertCase tags the shape found by one step of the insertion fixup.
type InsertCase uint8

const (
	// InsertRoot: the current node is the root; it is painted black.
	InsertRoot InsertCase = iota
	// InsertBlackParent: the parent is black; nothing to repair.
	InsertBlackParent
	// InsertRecolor: parent and uncle are red; the violation moves to the grandparent.
	InsertRecolor
	// InsertLeftLeft: parent and node are left children; right-rotate the grandparent.
	InsertLeftLeft
	// InsertRightRight: parent and node are right children; left-rotate the grandparent.
	InsertRightRight
	// InsertLeftRight: parent is a left child, node a right child.
	InsertLeftRight
	// InsertRightLeft: parent is a right child, node a left child.
	InsertRightLeft
)

var insertCaseNames = [...]string{
	InsertRoot:        "root",
	InsertBlackParent: "black-parent",
	InsertRecolor:     "recolor",
	InsertLeftLeft:    "left-left",
	InsertRightRight:  "right-right",
	InsertLeftRight:   "left-right",
	InsertRightLeft:   "right-left",
}

// String returns a short kebab-case case name.
func (c InsertCase) String() string {
	if int(c) < len(insertCaseNames) {
		return insertCaseNames[c]
	}

	return "unknown"
}

// DeleteCase tags the shape found by one step of the deletion fixup.
//
// The four rotation cases are named after the sibling side followed by the
// side of the red nephew that gets rotated up: DeleteRightLeft means the
// sibling is a right child and only its left (near) child is red.
type DeleteCase uint8

const (
	// DeletePromoteRedChild: a black node was replaced by its red child,
	// which is painted black.
	DeletePromoteRedChild DeleteCase = iota
	// DeleteReachedRoot: the deficiency reached the root and is absorbed.
	DeleteReachedRoot
	// DeleteRedSibling: rotate the red sibling above the parent and retry.
	DeleteRedSibling
	// DeleteRecolorPropagate: black sibling, black nephews, black parent.
	DeleteRecolorPropagate
	// DeleteRecolorAbsorb: black sibling, black nephews, red parent.
	DeleteRecolorAbsorb
	// DeleteLeftLeft: left sibling with a red left (far) nephew.
	DeleteLeftLeft
	// DeleteRightRight: right sibling with a red right (far) nephew.
	DeleteRightRight
	// DeleteLeftRight: left sibling whose only red child is the right (near) nephew.
	DeleteLeftRight
	// DeleteRightLeft: right sibling whose only red child is the left (near) nephew.
	DeleteRightLeft
)

var deleteCaseNames = [...]string{
	DeletePromoteRedChild:  "promote-red-child",
	DeleteReachedRoot:      "reached-root",
	DeleteRedSibling:       "red-sibling",
	DeleteRecolorPropagate: "recolor-propagate",
	DeleteRecolorAbsorb:    "recolor-absorb",
	DeleteLeftLeft:         "left-left",
	DeleteRightRight:       "right-right",
	DeleteLeftRight:        "left-right",
	DeleteRightLeft:        "right-left",
}

// String returns a short kebab-case case name.
func (c DeleteCase) String() string {
	if int(c) < len(deleteCaseNames) {
		return deleteCaseNames[c]
	}

	return "unknown"
}

// Hooks observe the internal repair steps. Nil callbacks are skipped.
// Callbacks must not touch the Tree they observe.
type Hooks struct {
	// OnInsertCase fires once per insertion fixup step.
	OnInsertCase func(InsertCase)
	// OnDeleteCase fires once per deletion fixup step.
	OnDeleteCase func(DeleteCase)
	// OnRotate fires after every single rotation.
	OnRotate func(Direction)
}

func (h Hooks) insertCase(c InsertCase) {
	if h.OnInsertCase != nil {
		h.OnInsertCase(c)
	}
}

func (h Hooks) deleteCase(c DeleteCase) {
	if h.OnDeleteCase != nil {
		h.OnDeleteCase(c)
	}
}

func (h Hooks) rotate(d Direction) {
	if h.OnRotate != nil {
		h.OnRotate(d)
	}
}

// Tree is an ordered dictionary backed by a red-black tree.
//
// nodes is the arena; free lists recycled slots; root is none when empty.
// compare returns <0, 0, >0 like cmp.Compare. limit caps len(nodes) at
// MaxSlots.
//
// Copying a Tree value shares its arena; use Clone for an independent copy.
type Tree[K any, V any] struct {
	nodes   []node[K, V]
	free    []ref
	root    ref
	size    int
	limit   int
	compare func(a, b K) int
	hooks   Hooks
}

// New creates an empty Tree ordered by the natural order of K.
// Complexity: O(capacity) for the optional arena pre-allocation.
func New[K constraints.Ordered, V any](opts ...Option) *Tree[K, V] {
	return NewFunc[K, V](orderedCompare[K], opts...)
}

// NewFunc creates an empty Tree ordered by compare, which must define a
// strict weak ordering and return 0 only for equal keys.
// Panics if compare is nil.
func NewFunc[K any, V any](compare func(a, b K) int, opts ...Option) *Tree[K, V] {
	if compare == nil {
		panic("rbtree: NewFunc(nil compare)")
	}

	cfg := newConfig(opts...)

	return &Tree[K, V]{
		nodes:   make([]node[K, V], 0, cfg.capacity),
		root:    none,
		limit:   MaxSlots,
		compare: compare,
		hooks:   cfg.hooks,
	}
}

// orderedCompare is the default comparator for ordered key types.
func orderedCompare[K constraints.Ordered](a, b K) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
