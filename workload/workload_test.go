package workload_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvldict/rbtree"
	"github.com/katalvlaran/lvldict/workload"
)

// TestDeterministicSequences pins the exact output of the RNG-free generators.
func TestDeterministicSequences(t *testing.T) {
	sorted, err := workload.Sorted(4, workload.WithOffset(10), workload.WithStride(5))
	require.NoError(t, err)
	assert.Equal(t, []int{10, 15, 20, 25}, sorted)

	rev, err := workload.Reversed(4)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 2, 1, 0}, rev)

	zz, err := workload.ZigZag(5)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 4, 1, 3, 2}, zz)

	zz, err = workload.ZigZag(4)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 3, 1, 2}, zz)

	empty, err := workload.Sorted(0)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

// TestBadSize verifies ErrBadSize on negative sizes and impossible ranges.
func TestBadSize(t *testing.T) {
	_, err := workload.Sorted(-1)
	assert.ErrorIs(t, err, workload.ErrBadSize)
	_, err = workload.Reversed(-1)
	assert.ErrorIs(t, err, workload.ErrBadSize)
	_, err = workload.ZigZag(-1)
	assert.ErrorIs(t, err, workload.ErrBadSize)
	_, err = workload.RandomUnique(5, 4, workload.WithSeed(1))
	assert.ErrorIs(t, err, workload.ErrBadSize)
	_, err = workload.Churn(-3, workload.WithSeed(1))
	assert.ErrorIs(t, err, workload.ErrBadSize)
}

// TestNeedRandSource verifies stochastic generators refuse to run unseeded.
func TestNeedRandSource(t *testing.T) {
	_, err := workload.Shuffled(3)
	assert.ErrorIs(t, err, workload.ErrNeedRandSource)
	_, err = workload.RandomUnique(3, 10)
	assert.ErrorIs(t, err, workload.ErrNeedRandSource)
	_, err = workload.Churn(3)
	assert.ErrorIs(t, err, workload.ErrNeedRandSource)
}

// TestOptionPanics checks option constructors reject meaningless values.
func TestOptionPanics(t *testing.T) {
	assert.Panics(t, func() { workload.WithStride(0) })
	assert.Panics(t, func() { workload.WithRand(nil) })
}

// TestShuffled_IsSeededPermutation checks reproducibility and content.
func TestShuffled_IsSeededPermutation(t *testing.T) {
	a, err := workload.Shuffled(100, workload.WithSeed(42))
	require.NoError(t, err)
	b, err := workload.Shuffled(100, workload.WithSeed(42))
	require.NoError(t, err)
	assert.Equal(t, a, b, "same seed, same permutation")

	sort.Ints(a)
	want, _ := workload.Sorted(100)
	assert.Equal(t, want, a)
}

// TestRandomUnique_Distinct checks that every draw is unique and in range.
func TestRandomUnique_Distinct(t *testing.T) {
	keys, err := workload.RandomUnique(500, 1000, workload.WithRand(rand.New(rand.NewSource(7))))
	require.NoError(t, err)
	require.Len(t, keys, 500)

	seen := make(map[int]bool, len(keys))
	for _, k := range keys {
		assert.False(t, seen[k], "duplicate %d", k)
		assert.GreaterOrEqual(t, k, 0)
		assert.Less(t, k, 1000)
		seen[k] = true
	}
}

// TestChurn_Balanced checks every key is inserted once, removed once, and
// never removed before it is live.
func TestChurn_Balanced(t *testing.T) {
	const n = 200
	ops, err := workload.Churn(n, workload.WithSeed(3))
	require.NoError(t, err)
	require.Len(t, ops, 2*n)

	live := map[int]bool{}
	inserted := map[int]int{}
	for i, op := range ops {
		switch op.Kind {
		case workload.OpInsert:
			assert.False(t, live[op.Key], "op %d: double insert %d", i, op.Key)
			live[op.Key] = true
			inserted[op.Key]++
		case workload.OpRemove:
			assert.True(t, live[op.Key], "op %d: remove of dead key %d", i, op.Key)
			delete(live, op.Key)
		}
	}
	assert.Empty(t, live)
	assert.Len(t, inserted, n)
}

// TestLoadAndReplay drives a tree through both helpers.
func TestLoadAndReplay(t *testing.T) {
	tr := rbtree.New[int, int]()
	keys, err := workload.ZigZag(64)
	require.NoError(t, err)

	double := func(k int) int { return 2 * k }
	require.NoError(t, workload.Load(tr, keys, double))
	assert.Equal(t, 64, tr.Len())
	v, ok := tr.Get(21)
	require.True(t, ok)
	assert.Equal(t, 42, v)

	// Duplicate key surfaces the tree's sentinel through the wrapper.
	err = workload.Load(tr, []int{5}, double)
	assert.ErrorIs(t, err, rbtree.ErrWrongKey)

	tr.Clear()
	ops, err := workload.Churn(64, workload.WithSeed(9))
	require.NoError(t, err)
	steps := 0
	err = workload.Replay(tr, ops, double, func(int, workload.Op) error {
		steps++
		return tr.Validate()
	})
	require.NoError(t, err)
	assert.Equal(t, len(ops), steps)
	assert.Equal(t, 0, tr.Len())
}
