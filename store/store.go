// Package store provides the associative arrays that back a counter.
// A Store maps keys to values and is parameterized by a strategy that
// decides how keys are hashed and compared, and in what order
// they are iterated. The strategy never changes which value a key maps to.
//
// None of the stores in this package are safe for concurrent use.
package store

import (
	"iter"

	"golang.org/x/exp/maps"
)

// Store is a generic associative array.
//
// A Store must not be modified while it is being iterated with All,
// unless the implementation says otherwise.
type Store[K, V any] interface {
	// Get behaves like the map access `v, ok := m[k]`.
	Get(k K) (v V, ok bool)
	// Set behaves like `m[k] = v`.
	Set(k K, v V)
	// Delete behaves like `delete(m, k)`, returning whether k was present.
	Delete(k K) bool
	// Len returns the number of keys.
	Len() int
	// All iterates over every key-value pair.
	All() iter.Seq2[K, V]
	// Clear removes every key.
	Clear()
	// Clone returns a copy with the same strategy.
	Clone() Store[K, V]
	// Empty returns a new, empty store with the same strategy.
	// capacity is a hint and may be ignored.
	Empty(capacity int) Store[K, V]
}

// Builtin is a Store backed by a Go map. It is the default strategy.
// Since it is a named map type, a Builtin can be used directly as a map:
//
//	m := c.Store().(store.Builtin[string, int])
//	delete(m, "-")
type Builtin[K comparable, V any] map[K]V

var _ Store[int, int] = Builtin[int, int](nil)

// NewBuiltin makes a Builtin store sized for capacity keys.
func NewBuiltin[K comparable, V any](capacity int) Builtin[K, V] {
	if capacity < 0 {
		capacity = 0
	}
	return make(Builtin[K, V], capacity)
}

func (b Builtin[K, V]) Get(k K) (V, bool) {
	v, ok := b[k]
	return v, ok
}

func (b Builtin[K, V]) Set(k K, v V) {
	b[k] = v
}

func (b Builtin[K, _]) Delete(k K) bool {
	_, ok := b[k]
	if ok {
		delete(b, k)
	}
	return ok
}

func (b Builtin[_, _]) Len() int {
	return len(b)
}

// All iterates over the map in Go's usual unspecified order.
// Deleting keys from the map while iterating is allowed.
func (b Builtin[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for k, v := range b {
			if !yield(k, v) {
				return
			}
		}
	}
}

func (b Builtin[_, _]) Clear() {
	clear(b)
}

func (b Builtin[K, V]) Clone() Store[K, V] {
	if b == nil {
		return NewBuiltin[K, V](0)
	}
	return maps.Clone(b)
}

func (b Builtin[K, V]) Empty(capacity int) Store[K, V] {
	return NewBuiltin[K, V](capacity)
}
