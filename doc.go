// Package heap implements a generic binary heap: an array-backed complete
// binary tree that keeps its smallest element (under a pluggable ordering) at
// the top. The heap supports insertion, peek, extraction of the top element,
// and removal of arbitrary elements by value.
//
// The ordering is a three-way comparison function injected at construction,
// with the same contract as cmp.Compare: negative when a orders before b,
// zero when equal, positive when after. Supplying a reversed comparison turns
// the structure into a max-heap. Element equality (used by Remove) is the
// language's == and is independent of the ordering.
//
// Key features:
//   - Generic implementation for any comparable element type
//   - O(log n) Push and Pop, O(1) Peek and Len
//   - Natural ordering by default for ordered types, custom ordering via
//     a comparison function
//   - Removal of arbitrary elements by value with the heap property restored
//
// Basic usage:
//
//	// Create a min-heap over ints
//	h := heap.New[int]()
//
//	h.Push(5)
//	h.Push(3)
//	h.Push(8)
//
//	// Inspect the top element
//	if top, err := h.Peek(); err == nil {
//		fmt.Println(top) // 3
//	}
//
//	// Drain in order
//	for h.Len() > 0 {
//		v, _ := h.Pop()
//		fmt.Println(v)
//	}
//
//	// Max-heap via a reversed comparison
//	max := heap.NewFunc[int](func(a, b int) int { return b - a })
//
// Peek and Pop return ErrEmptyCollection when the heap holds no elements;
// callers either check Len first or handle the error.
//
// Replacing the ordering with SetCompare does not rearrange existing
// elements: on a non-empty heap the heap property is void until the heap is
// drained or cleared.
//
// The heap is not safe for concurrent use. Callers that share one across
// goroutines must serialize access externally. There are no element handles
// and no in-place priority updates; to change an element's position, remove
// it and push the replacement.
package heap
