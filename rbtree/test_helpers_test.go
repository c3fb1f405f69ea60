// SPDX-License-Identifier: MIT
// Package rbtree_test contains shared fixtures for the rbtree tests.
//
// Purpose:
//   - Load literal (key, value) scenarios in a single call.
//   - Record fixup cases through Hooks so tests can assert which repair ran.

package rbtree_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvldict/rbtree"
)

// pair is a literal (key, value) fixture entry.
type pair struct {
	K int
	V int
}

// caseRecorder collects every hook invocation in firing order.
type caseRecorder struct {
	inserts   []rbtree.InsertCase
	deletes   []rbtree.DeleteCase
	rotations []rbtree.Direction
}

// hooks returns Hooks that append into the recorder.
func (r *caseRecorder) hooks() rbtree.Hooks {
	return rbtree.Hooks{
		OnInsertCase: func(c rbtree.InsertCase) { r.inserts = append(r.inserts, c) },
		OnDeleteCase: func(c rbtree.DeleteCase) { r.deletes = append(r.deletes, c) },
		OnRotate:     func(d rbtree.Direction) { r.rotations = append(r.rotations, d) },
	}
}

// reset forgets everything recorded so far.
func (r *caseRecorder) reset() {
	r.inserts, r.deletes, r.rotations = nil, nil, nil
}

// newRecordedTree returns an int→int tree wired to a fresh recorder.
func newRecordedTree() (*rbtree.Tree[int, int], *caseRecorder) {
	rec := &caseRecorder{}
	return rbtree.New[int, int](rbtree.WithHooks(rec.hooks())), rec
}

// mustLoad inserts pairs in order and fails the test on the first error.
func mustLoad(t *testing.T, tr *rbtree.Tree[int, int], pairs ...pair) {
	t.Helper()

	for _, p := range pairs {
		require.NoError(t, tr.Insert(p.K, p.V), "Insert(%d,%d)", p.K, p.V)
	}
}

// mustValid fails the test if the tree breaks any invariant.
func mustValid(t *testing.T, tr *rbtree.Tree[int, int], op string) {
	t.Helper()

	require.NoError(t, tr.Validate(), "%s: invariants", op)
}

// levelKeys returns the level-order key sequence.
func levelKeys(t *testing.T, tr *rbtree.Tree[int, int]) []int {
	t.Helper()

	entries, err := tr.Traversal(rbtree.LevelOrder)
	require.NoError(t, err, "Traversal(LevelOrder)")

	return keysOf(entries)
}

// keysOf projects entries to their keys, preserving order.
func keysOf(entries []rbtree.Entry[int, int]) []int {
	out := make([]int, len(entries))
	for i, e := range entries {
		out[i] = e.Key
	}

	return out
}
