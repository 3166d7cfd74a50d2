// Package counter counts occurrences of elements, combines counters
// with multiset arithmetic, and returns their k most- or least-frequent
// elements.
//
// A Counter wraps exactly one store.Store. An element that is not in
// the store has a count of zero: Get never inserts, but Update does.
// Counts are not forced to stay positive. Negative counts are allowed
// and are meaningful to IsSubset and IsSuperset, where they represent
// a deficit.
//
// A Counter is not safe for concurrent use. Since Add is associative
// and commutative, counting in several goroutines into separate
// counters and adding them together at the end is always an option.
package counter

import (
	"fmt"
	"iter"
	"strings"

	"go.lepak.sg/multiset/store"
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// Number is the set of types that can be used as counts.
// Integer overflow is not detected: counts wrap around just like
// the underlying type does.
type Number interface {
	constraints.Integer | constraints.Float
}

// Counter is a multiset of elements of type E with counts of type N.
// Use one of the constructors to make a Counter; the zero value has no store.
type Counter[E any, N Number] struct {
	store store.Store[E, N]
}

// New returns an empty Counter backed by a Go map.
func New[E comparable, N Number]() *Counter[E, N] {
	return WithCapacity[E, N](0)
}

// WithCapacity returns an empty Counter backed by a Go map sized
// for capacity distinct elements.
func WithCapacity[E comparable, N Number](capacity int) *Counter[E, N] {
	return &Counter[E, N]{
		store: store.NewBuiltin[E, N](capacity),
	}
}

// NewWithStore returns a Counter that takes ownership of s.
// Any entries already in s are kept as they are.
// This is how other hashing strategies are selected, for example:
//
//	c := counter.NewWithStore[[]byte, int](store.NewHashed[[]byte, int](store.Bytes(), 0))
func NewWithStore[E any, N Number](s store.Store[E, N]) *Counter[E, N] {
	if s == nil {
		panic("nil store")
	}
	return &Counter[E, N]{
		store: s,
	}
}

// FromSlice counts occurrences of each element of the slice.
// The count type must be given explicitly:
//
//	c := counter.FromSlice[int]([]byte("abracadabra"))
func FromSlice[N Number, S ~[]E, E comparable](slice S) *Counter[E, N] {
	c := New[E, N]()

	for _, v := range slice {
		c.add(v, 1)
	}

	return c
}

// FromSeq counts occurrences of each element yielded by seq.
func FromSeq[N Number, E comparable](seq iter.Seq[E]) *Counter[E, N] {
	c := New[E, N]()
	c.Extend(seq)
	return c
}

// Of counts its arguments.
func Of[E comparable](elts ...E) *Counter[E, int] {
	return FromSlice[int](elts)
}

// FromMap makes a Counter holding a copy of m. Counts are taken as they are,
// including zero and negative ones.
func FromMap[E comparable, N Number](m map[E]N) *Counter[E, N] {
	c := WithCapacity[E, N](len(m))

	for el, cnt := range m {
		c.store.Set(el, cnt)
	}

	return c
}

// FromPairs makes a Counter from element-count pairs.
// If an element appears more than once, its counts are summed.
func FromPairs[E comparable, N Number](seq iter.Seq2[E, N]) *Counter[E, N] {
	c := New[E, N]()
	c.ExtendPairs(seq)
	return c
}

// ToMap copies the counts in c into a new map.
func ToMap[E comparable, N Number](c *Counter[E, N]) map[E]N {
	m := make(map[E]N, c.Len())

	for el, cnt := range c.store.All() {
		m[el] = cnt
	}

	return m
}

func (c *Counter[E, N]) add(el E, n N) {
	cnt, _ := c.store.Get(el)
	c.store.Set(el, cnt+n)
}

// Get returns the count of el, which is zero if el has never been counted.
// It never inserts el.
func (c *Counter[E, N]) Get(el E) N {
	cnt, _ := c.store.Get(el)
	return cnt
}

// Update replaces the count of el with f applied to it, and returns the
// new count. If el is not in the counter, f is given zero, and el is
// inserted even if the new count is zero. For example:
//
//	c.Update("a", func(n int) int { return n + 1 })
func (c *Counter[E, N]) Update(el E, f func(N) N) N {
	cnt, _ := c.store.Get(el)
	cnt = f(cnt)
	c.store.Set(el, cnt)
	return cnt
}

// Set sets the count of el to n, inserting el if needed.
func (c *Counter[E, N]) Set(el E, n N) {
	c.store.Set(el, n)
}

// Insert adds one to the count of each of elts.
func (c *Counter[E, N]) Insert(elts ...E) {
	for _, el := range elts {
		c.add(el, 1)
	}
}

// Extend adds one to the count of each element yielded by seq.
func (c *Counter[E, N]) Extend(seq iter.Seq[E]) {
	for el := range seq {
		c.add(el, 1)
	}
}

// ExtendPairs adds each count yielded by seq to its element.
func (c *Counter[E, N]) ExtendPairs(seq iter.Seq2[E, N]) {
	for el, cnt := range seq {
		c.add(el, cnt)
	}
}

// Total sums up all counts in the counter.
func (c *Counter[_, N]) Total() N {
	var sum N

	for _, cnt := range c.store.All() {
		sum += cnt
	}

	return sum
}

// Len returns the number of distinct elements in the counter,
// including those with a zero count.
func (c *Counter[_, _]) Len() int {
	return c.store.Len()
}

// All iterates over every element and its count in store order.
func (c *Counter[E, N]) All() iter.Seq2[E, N] {
	return c.store.All()
}

// Store returns the store backing c. Changes made to the store,
// like deleting an element, are seen by c.
func (c *Counter[E, N]) Store() store.Store[E, N] {
	return c.store
}

// Unwrap hands the store backing c to the caller. c is left empty,
// with a new store of the same kind, and no longer shares anything
// with the returned store.
func (c *Counter[E, N]) Unwrap() store.Store[E, N] {
	s := c.store
	c.store = s.Empty(0)
	return s
}

// Clone returns a copy of c with the same kind of store.
func (c *Counter[E, N]) Clone() *Counter[E, N] {
	return &Counter[E, N]{
		store: c.store.Clone(),
	}
}

// empty returns a new, empty counter with the same kind of store as c.
func (c *Counter[E, N]) empty() *Counter[E, N] {
	return &Counter[E, N]{
		store: c.store.Empty(0),
	}
}

// Prune removes all elements with a zero or negative count, and returns
// how many were removed.
func (c *Counter[E, N]) Prune() int {
	var drop []E

	for el, cnt := range c.store.All() {
		if cnt <= 0 {
			drop = append(drop, el)
		}
	}

	for _, el := range drop {
		c.store.Delete(el)
	}

	return len(drop)
}

type line[N Number] struct {
	el  string
	cnt N
}

// String formats the counter like `Counter{c:3 b:2 a:1}`, most common first.
// Elements with equal counts are ordered by their formatted value.
func (c *Counter[E, N]) String() string {
	lines := make([]line[N], 0, c.Len())
	for el, cnt := range c.store.All() {
		lines = append(lines, line[N]{el: fmt.Sprint(el), cnt: cnt})
	}

	slices.SortFunc(lines, func(a, b line[N]) bool {
		if a.cnt != b.cnt {
			return a.cnt > b.cnt
		}
		return a.el < b.el
	})

	var sb strings.Builder
	sb.WriteString("Counter{")
	for i, l := range lines {
		if i > 0 {
			sb.WriteRune(' ')
		}
		fmt.Fprintf(&sb, "%s:%v", l.el, l.cnt)
	}
	sb.WriteRune('}')

	return sb.String()
}
