// Package workload generates deterministic key sequences and operation
// streams for loading, stressing and benchmarking lvldict/rbtree.
//
// The package offers the following key components:
//
//   - Key sequences ([]int, all keys distinct):
//     – Sorted:        offset, offset+stride, …  (ascending insert worst case).
//     – Reversed:      the same keys, descending.
//     – ZigZag:        lowest, highest, second lowest, … (alternating sides).
//     – Shuffled:      a seeded permutation of Sorted.
//     – RandomUnique:  n distinct draws from [0, limit).
//   - Operation streams:
//     – Churn:         interleaved inserts and removes that keep a live set,
//     used to drive the deletion fixup through every case.
//   - Loading:
//     – Load:          inserts keys into a tree with a derived value.
//     – Replay:        applies an operation stream, with a per-step callback.
//   - Configuration (Option):
//     – WithSeed, WithRand:     RNG for Shuffled/RandomUnique/Churn.
//     – WithOffset, WithStride: shape of the key space.
//
// Guarantees:
//
//   - Same options and sizes always produce the same output.
//   - Fast-fail on meaningless option values via panics in option constructors.
//   - Runtime validation errors are sentinels (ErrBadSize, ErrNeedRandSource)
//     wrapped with the method name.
package workload
