// SPDX-License-Identifier: MIT
// Package rbtree_test verifies traversal modes, iteration and shape metrics.

package rbtree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvldict/rbtree"
)

// recolorTwice is the 7-node fixture:
//
//	        6
//	      /   \
//	     2     9
//	    /     / \
//	   1     8   15
//	            /
//	           13
var recolorTwice = []pair{{6, 10}, {2, 11}, {9, 12}, {1, 13}, {8, 14}, {15, 15}, {13, 16}}

func TestTraversal_Modes(t *testing.T) {
	tr := rbtree.New[int, int]()
	mustLoad(t, tr, recolorTwice...)

	tests := []struct {
		mode rbtree.TraversalMode
		want []int
	}{
		{rbtree.LevelOrder, []int{6, 2, 9, 1, 8, 15, 13}},
		{rbtree.InOrder, []int{1, 2, 6, 8, 9, 13, 15}},
		{rbtree.PreOrder, []int{6, 2, 1, 9, 8, 15, 13}},
	}
	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			entries, err := tr.Traversal(tt.mode)
			require.NoError(t, err)
			assert.Equal(t, tt.want, keysOf(entries))
		})
	}
}

func TestTraversal_EmptyTree(t *testing.T) {
	tr := rbtree.New[int, int]()
	for _, mode := range []rbtree.TraversalMode{rbtree.LevelOrder, rbtree.InOrder, rbtree.PreOrder} {
		entries, err := tr.Traversal(mode)
		require.NoError(t, err, mode.String())
		assert.NotNil(t, entries, mode.String())
		assert.Empty(t, entries, mode.String())
	}
	assert.Equal(t, 0, tr.Height())
	assert.Equal(t, 0, tr.BlackHeight())
}

func TestTraversal_UnknownMode(t *testing.T) {
	tr := rbtree.New[int, int]()
	mustLoad(t, tr, pair{1, 1})

	entries, err := tr.Traversal(rbtree.TraversalMode(42))
	assert.Nil(t, entries)
	assert.ErrorIs(t, err, rbtree.ErrOutOfBounds)
	assert.Equal(t, rbtree.StatusOutOfBounds, rbtree.StatusOf(err))
	assert.Equal(t, "UNKNOWN_MODE", rbtree.TraversalMode(42).String())
}

func TestTraversal_IdempotentReads(t *testing.T) {
	tr := rbtree.New[int, int]()
	mustLoad(t, tr, recolorTwice...)

	first, err := tr.Traversal(rbtree.LevelOrder)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		again, err := tr.Traversal(rbtree.LevelOrder)
		require.NoError(t, err)
		assert.Equal(t, first, again)
		assert.True(t, tr.Exist(13))
	}
}

func TestAll_AscendingAndEarlyStop(t *testing.T) {
	tr := rbtree.New[int, int]()
	mustLoad(t, tr, recolorTwice...)

	var keys, vals []int
	for k, v := range tr.All() {
		keys = append(keys, k)
		vals = append(vals, v)
	}
	assert.Equal(t, []int{1, 2, 6, 8, 9, 13, 15}, keys)
	assert.Equal(t, []int{13, 11, 10, 14, 12, 16, 15}, vals)
	assert.Equal(t, keys, tr.Keys())

	var firstThree []int
	for k := range tr.All() {
		if len(firstThree) == 3 {
			break
		}
		firstThree = append(firstThree, k)
	}
	assert.Equal(t, []int{1, 2, 6}, firstThree)
}

func TestMinMaxGet(t *testing.T) {
	tr := rbtree.New[int, int]()
	_, ok := tr.Min()
	assert.False(t, ok)
	_, ok = tr.Max()
	assert.False(t, ok)

	mustLoad(t, tr, recolorTwice...)

	lo, ok := tr.Min()
	require.True(t, ok)
	assert.Equal(t, rbtree.Entry[int, int]{Key: 1, Value: 13}, lo)

	hi, ok := tr.Max()
	require.True(t, ok)
	assert.Equal(t, rbtree.Entry[int, int]{Key: 15, Value: 15}, hi)

	v, ok := tr.Get(8)
	require.True(t, ok)
	assert.Equal(t, 14, v)

	_, ok = tr.Get(7)
	assert.False(t, ok)
}

func TestHeightAndBlackHeight(t *testing.T) {
	tr := rbtree.New[int, int]()
	mustLoad(t, tr, recolorTwice...)

	assert.Equal(t, 4, tr.Height(), "6-9-15-13")
	assert.Equal(t, 2, tr.BlackHeight(), "6B, 2B")
}
