// Package rbtree provides a generic, arena-backed red-black tree that serves
// as an ordered key-value dictionary with O(log n) insert, delete and lookup.
//
// The tree keeps five invariants after every public operation:
//
//   - BST ordering: left subtree keys < node key < right subtree keys.
//   - No red node has a red parent.
//   - Every path from a node to an absent leaf position crosses the same
//     number of black nodes (uniform black-height).
//   - The root, when present, is black.
//   - Len() equals the number of nodes reachable from the root.
//
// Storage model:
//
//	nodes []node   — contiguous arena; links are int32 indices, not pointers
//	free  []ref    — slots released by Remove, reused by the next Insert
//
// Parent links are plain indices, so there are no ownership cycles and a
// removed node's slot is zeroed and recycled instead of being left for the
// collector to untangle.
//
// Fixup dispatch:
//
// Both repair procedures classify the local shape first and then act on the
// tag, which keeps every case observable through Hooks:
//
//	InsertRoot, InsertBlackParent, InsertRecolor,
//	InsertLeftLeft, InsertRightRight, InsertLeftRight, InsertRightLeft
//
//	DeletePromoteRedChild, DeleteReachedRoot, DeleteRedSibling,
//	DeleteRecolorPropagate, DeleteRecolorAbsorb,
//	DeleteLeftLeft, DeleteRightRight, DeleteLeftRight, DeleteRightLeft
//
// Core Methods:
//
//	Insert(k, v) error                  // O(log n); ErrWrongKey on duplicate
//	Put(k, v) (replaced bool, err error) // O(log n); insert or overwrite
//	Remove(k) error                     // O(log n); ErrNotFound on miss
//	Exist(k) bool                       // O(log n)
//	Get(k) (V, bool)                    // O(log n)
//	Min(), Max() (Entry, bool)          // O(log n)
//	Traversal(mode) ([]Entry, error)    // O(n); LevelOrder, InOrder, PreOrder
//	All() iter.Seq2[K, V]               // ascending, O(1) per step amortized
//	Len(), Height(), BlackHeight()      // O(1), O(n), O(log n)
//	Validate() error                    // O(n) invariant audit
//	Clone()                             // O(n) deep copy
//	Clear()                             // O(len(arena))
//
// Errors:
//
//	ErrOutOfBounds - unknown traversal mode.
//	ErrNotFound    - Remove of an absent key.
//	ErrWrongKey    - Insert of a key that is already present.
//	ErrUnknown     - internal contract violation (rotation without a child),
//	                 or an arena already holding MaxSlots nodes. After a
//	                 contract violation from Insert or Remove the tree may be
//	                 half-repaired and must be discarded.
//	ErrInvariant   - Validate found a broken invariant.
//
// StatusOf maps any of the above onto the Status enumeration for callers
// that prefer status codes.
//
// Concurrency:
//
// A Tree is not safe for concurrent use. Serialize every call (for example
// with one sync.Mutex around the Tree) when sharing it between goroutines.
package rbtree
