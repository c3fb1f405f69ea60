// SPDX-License-Identifier: MIT
// Package: lvldict/workload
//
// churn.go — interleaved insert/remove operation streams.

package workload

// OpKind is the kind of a stream operation.
type OpKind uint8

const (
	// OpInsert adds Key.
	OpInsert OpKind = iota
	// OpRemove deletes Key, which is live at that point of the stream.
	OpRemove
)

// String returns "insert" or "remove".
func (k OpKind) String() string {
	if k == OpInsert {
		return "insert"
	}

	return "remove"
}

// Op is one step of a Churn stream.
type Op struct {
	Kind OpKind
	Key  int
}

// removeEvery controls the insert/remove mix: one in removeEvery draws
// removes a live key while inserts remain.
const removeEvery = 3

// Churn returns 2n operations: every key of Sorted(n) is inserted exactly
// once and removed exactly once, interleaved at random, so the live set is
// empty at the end of the stream. Requires an RNG.
// Complexity: O(n) time, O(n) space.
func Churn(n int, opts ...Option) ([]Op, error) {
	if err := validateSize(MethodChurn, n); err != nil {
		return nil, err
	}
	cfg := newConfig(opts...)
	if err := validateRand(MethodChurn, cfg); err != nil {
		return nil, err
	}

	pending := make([]int, n)
	for i := range pending {
		pending[i] = cfg.key(i)
	}
	cfg.rng.Shuffle(n, func(i, j int) { pending[i], pending[j] = pending[j], pending[i] })

	ops := make([]Op, 0, 2*n)
	live := make([]int, 0, n)
	removeAt := func(i int) {
		ops = append(ops, Op{Kind: OpRemove, Key: live[i]})
		live[i] = live[len(live)-1]
		live = live[:len(live)-1]
	}

	for len(pending) > 0 {
		if len(live) > 0 && cfg.rng.Intn(removeEvery) == 0 {
			removeAt(cfg.rng.Intn(len(live)))
			continue
		}
		k := pending[len(pending)-1]
		pending = pending[:len(pending)-1]
		ops = append(ops, Op{Kind: OpInsert, Key: k})
		live = append(live, k)
	}
	for len(live) > 0 {
		removeAt(cfg.rng.Intn(len(live)))
	}

	return ops, nil
}
