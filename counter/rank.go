package counter

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// Entry represents an element-count pair.
// Entries returned by a Counter are copies, so changing the counter
// afterwards does not affect them.
type Entry[E any, N Number] struct {
	Element E
	Count   N
}

// compare returns -1, 0 or +1 depending on whether l is less than,
// equal to, or greater than r.
func compare[T constraints.Ordered](l, r T) int {
	if l < r {
		return -1
	} else if l > r {
		return 1
	}
	return 0
}

// mostFirst orders entries by descending count, then by cmp ascending.
// A nil cmp leaves ties alone.
func mostFirst[E any, N Number](cmp func(a, b E) int) func(a, b Entry[E, N]) bool {
	return func(a, b Entry[E, N]) bool {
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return cmp != nil && cmp(a.Element, b.Element) < 0
	}
}

// leastFirst orders entries by ascending count, then by cmp ascending.
func leastFirst[E any, N Number](cmp func(a, b E) int) func(a, b Entry[E, N]) bool {
	return func(a, b Entry[E, N]) bool {
		if a.Count != b.Count {
			return a.Count < b.Count
		}
		return cmp != nil && cmp(a.Element, b.Element) < 0
	}
}

func (c *Counter[E, N]) entries() []Entry[E, N] {
	out := make([]Entry[E, N], 0, c.Len())

	for el, cnt := range c.store.All() {
		out = append(out, Entry[E, N]{
			Element: el,
			Count:   cnt,
		})
	}

	return out
}

// MostCommon returns every element-count pair, most frequent first.
// If two elements have the same count, their relative order in the
// returned slice is undefined.
func (c *Counter[E, N]) MostCommon() []Entry[E, N] {
	out := c.entries()
	slices.SortStableFunc(out, mostFirst[E, N](nil))
	return out
}

// MostCommonFunc returns every element-count pair, most frequent first.
// Elements with the same count are ordered by cmp, which returns a
// negative number when a comes before b, a positive number when a
// comes after b, and zero otherwise. cmp must be a strict weak ordering,
// or the order of ties is unspecified.
func (c *Counter[E, N]) MostCommonFunc(cmp func(a, b E) int) []Entry[E, N] {
	out := c.entries()
	slices.SortFunc(out, mostFirst[E, N](cmp))
	return out
}

// MostCommonOrdered returns every element-count pair, most frequent first.
// Elements with the same count are in ascending order.
func MostCommonOrdered[E constraints.Ordered, N Number](c *Counter[E, N]) []Entry[E, N] {
	return c.MostCommonFunc(compare[E])
}

// KMostCommonOrdered returns the k most frequent elements of c.
// It gives the same result as MostCommonOrdered(c)[:k], but does not
// sort the whole counter when k is small. If k is larger than the number
// of elements in c, every element is returned.
// KMostCommonOrdered panics if k is negative.
func KMostCommonOrdered[E constraints.Ordered, N Number](c *Counter[E, N], k int) []Entry[E, N] {
	return c.KMostCommonFunc(k, compare[E])
}

// KLeastCommonOrdered returns the k least frequent elements of c,
// least frequent first. Elements with the same count are in ascending order.
// KLeastCommonOrdered panics if k is negative.
func KLeastCommonOrdered[E constraints.Ordered, N Number](c *Counter[E, N], k int) []Entry[E, N] {
	return c.KLeastCommonFunc(k, compare[E])
}
