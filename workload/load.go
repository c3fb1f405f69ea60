// SPDX-License-Identifier: MIT
// Package: lvldict/workload
//
// load.go — bulk loading and stream replay against rbtree.

package workload

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/lvldict/rbtree"
)

// Load inserts every key with value(key). It stops at the first error,
// reporting the failing position.
// Complexity: O(n log n).
func Load[V any](tr *rbtree.Tree[int, V], keys []int, value func(int) V) error {
	for i, k := range keys {
		if err := tr.Insert(k, value(k)); err != nil {
			return errors.Wrapf(err, "Load: key #%d", i)
		}
	}

	return nil
}

// Replay applies ops in order. Inserted keys receive value(key). step, when
// non-nil, is called after each successful op; a non-nil return aborts.
// Complexity: O(len(ops) · log n) plus the cost of step.
func Replay[V any](tr *rbtree.Tree[int, V], ops []Op, value func(int) V, step func(int, Op) error) error {
	for i, op := range ops {
		var err error
		switch op.Kind {
		case OpInsert:
			err = tr.Insert(op.Key, value(op.Key))
		default:
			err = tr.Remove(op.Key)
		}
		if err != nil {
			return errors.Wrapf(err, "Replay: op #%d %s(%d)", i, op.Kind, op.Key)
		}
		if step != nil {
			if err = step(i, op); err != nil {
				return errors.Wrapf(err, "Replay: op #%d %s(%d)", i, op.Kind, op.Key)
			}
		}
	}

	return nil
}
