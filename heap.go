package heap

import (
	"cmp"
	"errors"
)

// ErrEmptyCollection is returned by Peek and Pop when the heap contains no
// elements.
var ErrEmptyCollection = errors.New("heap: empty collection")

// Heap implements a binary min-heap backed by a slice. The element at index i
// has its children at 2i+1 and 2i+2 and its parent at (i-1)/2, and every
// parent compares at-or-before its children under the active comparison
// function. Supplying a reversed comparison yields a max-heap.
//
// Equality and ordering are deliberately separate: Remove matches elements
// with ==, while placement is governed solely by the comparison function.
type Heap[T comparable] struct {
	elements []T
	compare  func(a, b T) int // three-way: <0 if a before b, 0 if equal, >0 if after
}

// New creates an empty heap ordered by the natural ordering of T.
func New[T cmp.Ordered]() *Heap[T] {
	return NewFunc[T](cmp.Compare[T])
}

// NewFunc creates an empty heap ordered by the given comparison function.
// The function must describe a total order and return a negative value when
// a orders before b, zero when they order equally, and a positive value when
// a orders after b. Panics if compare is nil.
func NewFunc[T comparable](compare func(a, b T) int) *Heap[T] {
	if compare == nil {
		panic("heap: nil compare function")
	}
	return &Heap[T]{
		elements: make([]T, 0),
		compare:  compare,
	}
}

// NewFrom creates a heap containing the given elements under the natural
// ordering of T. Each element is inserted in sequence via Push, so
// construction costs O(n log n).
func NewFrom[T cmp.Ordered](elements []T) *Heap[T] {
	return NewFromFunc(elements, cmp.Compare[T])
}

// NewFromFunc creates a heap containing the given elements under the given
// comparison function. Each element is inserted in sequence via Push.
// Panics if compare is nil.
func NewFromFunc[T comparable](elements []T, compare func(a, b T) int) *Heap[T] {
	h := NewFunc[T](compare)
	for _, v := range elements {
		h.Push(v)
	}
	return h
}

// Len returns the number of elements in the heap.
func (h *Heap[T]) Len() int {
	return len(h.elements)
}

// Clear removes all elements. The heap remains valid and reusable.
func (h *Heap[T]) Clear() {
	h.elements = h.elements[:0]
}

// Compare returns the comparison function currently ordering the heap.
func (h *Heap[T]) Compare() func(a, b T) int {
	return h.compare
}

// SetCompare replaces the comparison function. It does NOT re-heapify:
// replacing the ordering on a non-empty heap leaves the existing elements
// positioned under the old ordering, so the heap property is void until the
// heap is drained or cleared. Panics if compare is nil.
func (h *Heap[T]) SetCompare(compare func(a, b T) int) {
	if compare == nil {
		panic("heap: nil compare function")
	}
	h.compare = compare
}

// Push adds v to the heap, preserving the heap property.
func (h *Heap[T]) Push(v T) {
	h.elements = append(h.elements, v)
	h.up(len(h.elements) - 1)
}

// Peek returns the top element without removing it. Returns
// ErrEmptyCollection if the heap is empty.
func (h *Heap[T]) Peek() (T, error) {
	if len(h.elements) == 0 {
		var zero T
		return zero, ErrEmptyCollection
	}
	return h.elements[0], nil
}

// Pop removes and returns the top element, preserving the heap property over
// the remaining elements. Returns ErrEmptyCollection if the heap is empty.
func (h *Heap[T]) Pop() (T, error) {
	if len(h.elements) == 0 {
		var zero T
		return zero, ErrEmptyCollection
	}

	top := h.elements[0]
	last := len(h.elements) - 1
	h.elements[0] = h.elements[last]
	h.elements = h.elements[:last]
	if len(h.elements) > 0 {
		h.down(0)
	}
	return top, nil
}

// Remove removes the first element equal to v (using ==) and restores the
// heap property. It reports whether an element was removed; a missing value
// is not an error and leaves the heap unchanged.
func (h *Heap[T]) Remove(v T) bool {
	for i, e := range h.elements {
		if e != v {
			continue
		}

		last := len(h.elements) - 1
		if i != last {
			h.swap(i, last)
			h.elements = h.elements[:last]
			// The relocated element may violate the property against
			// either its new parent or its new subtree.
			h.down(i)
			h.up(i)
		} else {
			h.elements = h.elements[:last]
		}
		return true
	}
	return false
}

// swap swaps the elements at index i and j.
func (h *Heap[T]) swap(i, j int) {
	h.elements[i], h.elements[j] = h.elements[j], h.elements[i]
}

// less reports whether the element at index i orders strictly before the
// element at index j.
func (h *Heap[T]) less(i, j int) bool {
	return h.compare(h.elements[i], h.elements[j]) < 0
}

// up moves the element at index i up until its parent no longer orders
// strictly after it.
func (h *Heap[T]) up(i int) {
	for {
		parent := (i - 1) / 2
		if parent == i || !h.less(i, parent) {
			break
		}
		h.swap(i, parent)
		i = parent
	}
}

// down moves the element at index i down, swapping with the
// strictly-smaller-ordered of its children until it is a leaf or already
// ordered at-or-before both. Equal elements never swap.
func (h *Heap[T]) down(i int) {
	for {
		smallest := i
		left := 2*i + 1
		right := 2*i + 2

		if left < len(h.elements) && h.less(left, smallest) {
			smallest = left
		}
		if right < len(h.elements) && h.less(right, smallest) {
			smallest = right
		}

		if smallest == i {
			break
		}

		h.swap(i, smallest)
		i = smallest
	}
}
