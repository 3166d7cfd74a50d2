package store

import "iter"

// Linked is a Store that combines a map with a linked list,
// so that iteration happens in insertion order.
// Setting a key that is already present keeps its position.
// Deleting a key and adding it back moves it to the end.
type Linked[K comparable, V any] struct {
	m map[K]*node[K, V]

	head, tail *node[K, V]
}

var _ Store[int, int] = (*Linked[int, int])(nil)

type node[K comparable, V any] struct {
	k K
	v V

	prev, next *node[K, V]
}

// NewLinked returns a pointer to a new Linked store sized for
// capacity keys.
func NewLinked[K comparable, V any](capacity int) *Linked[K, V] {
	if capacity < 0 {
		capacity = 0
	}
	return &Linked[K, V]{
		m: make(map[K]*node[K, V], capacity),
	}
}

func (l *Linked[K, V]) unlink(n *node[K, V]) {
	if n == nil {
		panic("nil node")
	}

	if l.head == nil || l.tail == nil {
		panic("nil head or tail")
	}

	if n.prev != nil {
		n.prev.next = n.next
	} else {
		if l.head != n {
			panic("node has no previous node but it is not the head")
		}
		l.head = n.next
	}

	if n.next != nil {
		n.next.prev = n.prev
	} else {
		if l.tail != n {
			panic("node has no next node but it is not the tail")
		}
		l.tail = n.prev
	}

	n.prev, n.next = nil, nil
}

func (l *Linked[K, V]) push(n *node[K, V]) {
	if n == nil {
		panic("nil node")
	}

	if l.head == nil && l.tail == nil {
		l.head, l.tail = n, n
		return
	}

	n.prev = l.tail
	l.tail.next = n

	n.next = nil
	l.tail = n
}

func (l *Linked[K, V]) Get(k K) (v V, ok bool) {
	n, ok := l.m[k]
	if !ok {
		return
	}

	return n.v, true
}

func (l *Linked[K, V]) Set(k K, v V) {
	if n, ok := l.m[k]; ok {
		if n.k != k {
			panic("node key does not match map key")
		}
		n.v = v
		return
	}

	n := &node[K, V]{
		k: k,
		v: v,
	}
	l.m[k] = n
	l.push(n)
}

func (l *Linked[K, _]) Delete(k K) bool {
	n, ok := l.m[k]
	if !ok {
		return false
	}

	l.unlink(n)
	delete(l.m, k)

	return true
}

// Len is a constant-time operation.
func (l *Linked[_, _]) Len() int {
	return len(l.m)
}

// All iterates in insertion order. The key currently being visited
// may be deleted during iteration; other modifications give
// undefined results.
//
// All panics if the list contains a cycle, which can only
// happen if the store itself is broken.
func (l *Linked[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if l.head == nil {
			return
		}

		hare := l.head.next

		for n := l.head; n != nil; {
			if n == hare {
				// bug in the store, not in the caller
				panic("cycle detected, iteration will not end")
			}

			// read ahead so that yield may delete n
			next := n.next

			if !yield(n.k, n.v) {
				return
			}

			if hare != nil && hare.next != nil {
				hare = hare.next.next
			} else {
				// hare has reached the end, iteration will too
				hare = nil
			}

			n = next
		}
	}
}

func (l *Linked[K, V]) Clear() {
	l.m = make(map[K]*node[K, V])
	l.head, l.tail = nil, nil
}

// Clone keeps the insertion order of l.
func (l *Linked[K, V]) Clone() Store[K, V] {
	lcopy := NewLinked[K, V](l.Len())

	for k, v := range l.All() {
		lcopy.Set(k, v)
	}

	return lcopy
}

func (l *Linked[K, V]) Empty(capacity int) Store[K, V] {
	return NewLinked[K, V](capacity)
}
