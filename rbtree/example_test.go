package rbtree_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvldict/rbtree"
)

// ExampleTree demonstrates insertion, lookup and the level-order view.
func ExampleTree() {
	// 1) Create a tree keyed by int with string values:
	tr := rbtree.New[int, string]()

	// 2) Insert a monotone run; rotations keep it balanced:
	for i, name := range []string{"a", "b", "c", "d", "e"} {
		_ = tr.Insert(i+1, name)
	}

	// 3) Inspect:
	v, _ := tr.Get(4)
	fmt.Println("len:", tr.Len(), "get(4):", v, "exist(9):", tr.Exist(9))

	entries, _ := tr.Traversal(rbtree.LevelOrder)
	for _, e := range entries {
		fmt.Print(e.Key, " ")
	}
	fmt.Println()

	// Output:
	// len: 5 get(4): d exist(9): false
	// 2 1 4 3 5
}

// ExampleTree_Remove shows the double-black repair after removing a black leaf.
func ExampleTree_Remove() {
	tr := rbtree.New[int, int](rbtree.WithHooks(rbtree.Hooks{
		OnDeleteCase: func(c rbtree.DeleteCase) { fmt.Println("case:", c) },
	}))
	for _, k := range []int{30, 20, 40, 50, 35} {
		_ = tr.Insert(k, k)
	}

	_ = tr.Remove(20)
	fmt.Println(tr.Keys())

	err := tr.Remove(20)
	fmt.Println(errors.Is(err, rbtree.ErrNotFound), rbtree.StatusOf(err))

	// Output:
	// case: right-right
	// [30 35 40 50]
	// true NOT_FOUND
}

// ExampleTree_All iterates in ascending key order.
func ExampleTree_All() {
	tr := rbtree.New[string, int]()
	for _, w := range []string{"pear", "apple", "fig"} {
		_ = tr.Insert(w, len(w))
	}

	for k, v := range tr.All() {
		fmt.Println(k, v)
	}

	// Output:
	// apple 5
	// fig 3
	// pear 4
}
