// Package lvldict is an in-memory ordered dictionary built on a red-black
// tree, with every rebalancing step exposed as a named, observable case.
//
// What is inside?
//
//	• rbtree/    — generic Tree[K, V]: Insert, Put, Remove, Exist, Get,
//	               Traversal (level/in/pre-order), All, Min/Max, Validate
//	• workload/  — deterministic key sequences and insert/remove streams
//	               for loading, replaying and benchmarking trees
//	• examples/  — runnable programs: a price-level index and a fixup tracer
//
// Why another balanced tree?
//
//   - Arena storage: nodes live in one slice, links are int32 indices,
//     freed slots are reused. No per-node allocation after warm-up.
//   - Named repair cases: each insertion and deletion fixup step is tagged
//     (InsertRecolor, DeleteRightLeft, ...) and reported through Hooks.
//   - Sentinel errors with a Status view (OK, NOT_FOUND, WRONG_KEY, ...).
//
// Quick ASCII example, keys 1..5 inserted in order:
//
//	      2B
//	     /  \
//	   1B    4B
//	        /  \
//	      3R    5R
//
//	go get github.com/katalvlaran/lvldict/rbtree
package lvldict
