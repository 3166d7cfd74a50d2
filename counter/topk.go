package counter

import (
	"go.lepak.sg/multiset/heap"
	"golang.org/x/exp/slices"
)

// bounded holds the best k entries seen so far, with the worst
// of them at the root so that it can be replaced cheaply.
type bounded[E any, N Number] struct {
	entries []Entry[E, N]
	before  func(a, b Entry[E, N]) bool
}

var _ heap.Interface[Entry[int, int]] = (*bounded[int, int])(nil)

func (b *bounded[_, _]) Len() int {
	return len(b.entries)
}

func (b *bounded[_, _]) Less(i, j int) bool {
	// yes, the order is reversed:
	// the root must be the entry that would come last
	return b.before(b.entries[j], b.entries[i])
}

func (b *bounded[_, _]) Swap(i, j int) {
	b.entries[i], b.entries[j] = b.entries[j], b.entries[i]
}

func (b *bounded[E, N]) Push(x Entry[E, N]) {
	b.entries = append(b.entries, x)
}

func (b *bounded[E, N]) Pop() Entry[E, N] {
	x := b.entries[len(b.entries)-1]
	b.entries = b.entries[:len(b.entries)-1]
	return x
}

// selectk returns the first k entries of c in the order given by before,
// in O(n log k) time. Ties that before does not break are resolved
// arbitrarily, so the result may differ from a full sort in that case.
func (c *Counter[E, N]) selectk(k int, before func(a, b Entry[E, N]) bool) []Entry[E, N] {
	if k < 0 {
		panic("k is negative")
	} else if k == 0 {
		return []Entry[E, N]{}
	} else if k >= c.Len() {
		// nothing to leave out, so a plain sort is cheaper
		out := c.entries()
		slices.SortFunc(out, before)
		return out
	}

	h := &bounded[E, N]{
		entries: make([]Entry[E, N], 0, k),
		before:  before,
	}

	for el, cnt := range c.store.All() {
		e := Entry[E, N]{
			Element: el,
			Count:   cnt,
		}

		if h.Len() < k {
			heap.Push[Entry[E, N]](h, e)
		} else if before(e, h.entries[0]) {
			h.entries[0] = e
			heap.Fix[Entry[E, N]](h, 0)
		}
	}

	// the heap pops the last entry first
	out := make([]Entry[E, N], k)
	for i := k - 1; i >= 0; i-- {
		out[i] = heap.Pop[Entry[E, N]](h)
	}

	return out
}

// KMostCommonFunc returns the k most frequent elements from the counter,
// in descending order of frequency. Elements with the same count are
// ordered by cmp, as in MostCommonFunc. The result is the same as
// MostCommonFunc(cmp)[:k] when cmp orders all elements, but only k
// entries are ever sorted.
// If k is larger than the number of elements, every element is returned.
// KMostCommonFunc panics if k is negative.
func (c *Counter[E, N]) KMostCommonFunc(k int, cmp func(a, b E) int) []Entry[E, N] {
	return c.selectk(k, mostFirst[E, N](cmp))
}

// KLeastCommonFunc returns the k least frequent elements from the counter,
// in ascending order of frequency. Elements with the same count are
// ordered by cmp.
// If k is larger than the number of elements, every element is returned.
// KLeastCommonFunc panics if k is negative.
func (c *Counter[E, N]) KLeastCommonFunc(k int, cmp func(a, b E) int) []Entry[E, N] {
	return c.selectk(k, leastFirst[E, N](cmp))
}
