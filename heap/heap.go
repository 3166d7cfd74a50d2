// Package heap is a generic version of container/heap from the standard
// library, with the same algorithms and complexity. Push and Pop take and
// return T instead of any, so no type assertions are needed.
package heap

import "sort"

// Interface is like heap.Interface from the standard library,
// but Push and Pop use the type parameter T.
// The element at index 0 is the minimum according to Less.
type Interface[T any] interface {
	sort.Interface
	Push(x T) // add x as element Len()
	Pop() T   // remove and return element Len() - 1.
}

// Init establishes the heap invariants. It may be called whenever
// the heap invariants may have been invalidated.
// The complexity is O(n) where n = h.Len().
func Init[T any](h Interface[T]) {
	n := h.Len()
	for i := n/2 - 1; i >= 0; i-- {
		down(h, i, n)
	}
}

// Push pushes the element x onto the heap.
// The complexity is O(log n) where n = h.Len().
func Push[T any](h Interface[T], x T) {
	h.Push(x)
	up(h, h.Len()-1)
}

// Pop removes and returns the minimum element (according to Less) from the heap.
// The complexity is O(log n) where n = h.Len().
// Pop panics if the heap is empty.
func Pop[T any](h Interface[T]) T {
	n := h.Len() - 1
	if n < 0 {
		panic("pop from empty heap")
	}
	h.Swap(0, n)
	down(h, 0, n)
	return h.Pop()
}

// Fix re-establishes the heap ordering after the element at index i
// has changed its value. Changing the value of the element at index i
// and then calling Fix is equivalent to, but less expensive than,
// popping it and pushing the new value.
// The complexity is O(log n) where n = h.Len().
func Fix[T any](h Interface[T], i int) {
	if !down(h, i, h.Len()) {
		up(h, i)
	}
}

func up[T any](h Interface[T], j int) {
	for {
		i := (j - 1) / 2 // parent
		if i == j || !h.Less(j, i) {
			break
		}
		h.Swap(i, j)
		j = i
	}
}

func down[T any](h Interface[T], i0, n int) bool {
	i := i0
	for {
		j1 := 2*i + 1
		if j1 >= n || j1 < 0 { // j1 < 0 after int overflow
			break
		}
		j := j1 // left child
		if j2 := j1 + 1; j2 < n && h.Less(j2, j1) {
			j = j2 // = 2*i + 2  // right child
		}
		if !h.Less(j, i) {
			break
		}
		h.Swap(i, j)
		i = j
	}
	return i > i0
}
