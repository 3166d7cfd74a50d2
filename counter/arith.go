package counter

import "iter"

// change is a pending write to a store, collected while iterating
// so that the store is never modified during its own iteration.
type change[E any, N Number] struct {
	el   E
	cnt  N
	keep bool
}

// fold folds o into c using the function f, over the union of both
// counters' elements. An element missing from either side counts as zero.
// If f returns false, the element is removed from c.
func (c *Counter[E, N]) fold(o *Counter[E, N], f func(l, r N) (N, bool)) *Counter[E, N] {
	changes := make([]change[E, N], 0, c.Len()+o.Len())

	for el, l := range c.store.All() {
		if _, ok := o.store.Get(el); ok {
			// handled below
			continue
		}
		cnt, keep := f(l, 0)
		changes = append(changes, change[E, N]{el: el, cnt: cnt, keep: keep})
	}

	for el, r := range o.store.All() {
		l, _ := c.store.Get(el)
		cnt, keep := f(l, r)
		changes = append(changes, change[E, N]{el: el, cnt: cnt, keep: keep})
	}

	for _, ch := range changes {
		if ch.keep {
			c.store.Set(ch.el, ch.cnt)
		} else {
			c.store.Delete(ch.el)
		}
	}

	return c
}

// Add adds the counts of o to c, and returns c.
// Zero and negative results are kept; see Prune.
//
//	c[x] = c[x] + o[x]
func (c *Counter[E, N]) Add(o *Counter[E, N]) *Counter[E, N] {
	return c.fold(o, func(l, r N) (N, bool) {
		return l + r, true
	})
}

// Subtract subtracts the counts of o from c, and returns c.
// Only elements whose count stays above zero are kept in c:
// you cannot take away what is not there.
//
//	c[x] = c[x] - o[x], if c[x] > o[x]
func (c *Counter[E, N]) Subtract(o *Counter[E, N]) *Counter[E, N] {
	return c.fold(o, func(l, r N) (N, bool) {
		// compare first, so that unsigned counts never wrap
		if l > r {
			return l - r, true
		}
		return 0, false
	})
}

// Intersect keeps the smaller of the two counts of each element,
// and returns c. Only elements whose result is above zero are kept.
//
//	c[x] = min(c[x], o[x]), if that is > 0
func (c *Counter[E, N]) Intersect(o *Counter[E, N]) *Counter[E, N] {
	return c.fold(o, func(l, r N) (N, bool) {
		m := l
		if r < m {
			m = r
		}
		return m, m > 0
	})
}

// Union keeps the larger of the two counts of each element, and returns c.
//
//	c[x] = max(c[x], o[x])
func (c *Counter[E, N]) Union(o *Counter[E, N]) *Counter[E, N] {
	return c.fold(o, func(l, r N) (N, bool) {
		if r > l {
			return r, true
		}
		return l, true
	})
}

// AddSeq counts the elements of seq into c, and returns c.
// It is the same as Extend.
func (c *Counter[E, N]) AddSeq(seq iter.Seq[E]) *Counter[E, N] {
	c.Extend(seq)
	return c
}

// SubtractSeq counts the elements of seq, then subtracts those counts
// from c just like Subtract. It returns c.
func (c *Counter[E, N]) SubtractSeq(seq iter.Seq[E]) *Counter[E, N] {
	o := c.empty()
	o.Extend(seq)
	return c.Subtract(o)
}

// Add adds counters a and b together and returns a copy.
// The copy uses the same kind of store as a.
func Add[E any, N Number](a, b *Counter[E, N]) *Counter[E, N] {
	return a.Clone().Add(b)
}

// Subtract subtracts the counter b from a and returns a copy.
// See (*Counter).Subtract.
func Subtract[E any, N Number](a, b *Counter[E, N]) *Counter[E, N] {
	return a.Clone().Subtract(b)
}

// Intersect returns the multiset intersection of a and b as a copy.
func Intersect[E any, N Number](a, b *Counter[E, N]) *Counter[E, N] {
	return a.Clone().Intersect(b)
}

// Union returns the multiset union of a and b as a copy.
func Union[E any, N Number](a, b *Counter[E, N]) *Counter[E, N] {
	return a.Clone().Union(b)
}

// IsSubset reports whether c[x] <= o[x] for every element x of either counter.
// Missing elements count as zero, so a negative count in o makes o
// smaller than a c that does not have that element.
func (c *Counter[E, N]) IsSubset(o *Counter[E, N]) bool {
	for el, cnt := range c.store.All() {
		if cnt > o.Get(el) {
			return false
		}
	}

	for el, cnt := range o.store.All() {
		if c.Get(el) > cnt {
			return false
		}
	}

	return true
}

// IsSuperset reports whether o is a subset of c.
func (c *Counter[E, N]) IsSuperset(o *Counter[E, N]) bool {
	return o.IsSubset(c)
}

// Equal reports whether c and o have the same count for every element.
// An element with a zero count equals a missing element.
func (c *Counter[E, N]) Equal(o *Counter[E, N]) bool {
	for el, cnt := range c.store.All() {
		if cnt != o.Get(el) {
			return false
		}
	}

	for el, cnt := range o.store.All() {
		if c.Get(el) != cnt {
			return false
		}
	}

	return true
}
