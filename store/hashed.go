package store

import "iter"

// Hashed is a Store that buckets keys by a Hasher instead of
// relying on Go's built-in map hashing. K does not have to be
// comparable, so slices (such as []byte) can be used as keys,
// as long as the Hasher is consistent: Equal(a, b) must imply
// Hash(a) == Hash(b).
//
// Keys are stored as given. If K is a reference type, the caller
// must not modify a key after it has been added.
type Hashed[K, V any] struct {
	hasher  Hasher[K]
	buckets map[uint64][]slot[K, V]
	n       int
}

var _ Store[[]byte, int] = (*Hashed[[]byte, int])(nil)

type slot[K, V any] struct {
	k K
	v V
}

// NewHashed returns a pointer to a new Hashed store that uses hasher.
// It panics if hasher is nil.
func NewHashed[K, V any](hasher Hasher[K], capacity int) *Hashed[K, V] {
	if hasher == nil {
		panic("nil hasher")
	}
	if capacity < 0 {
		capacity = 0
	}
	return &Hashed[K, V]{
		hasher:  hasher,
		buckets: make(map[uint64][]slot[K, V], capacity),
	}
}

// Hasher returns the strategy used by h.
func (h *Hashed[K, _]) Hasher() Hasher[K] {
	return h.hasher
}

// find returns the bucket hash and the index of k in its bucket, or -1.
func (h *Hashed[K, V]) find(k K) (uint64, int) {
	sum := h.hasher.Hash(k)
	for i, s := range h.buckets[sum] {
		if h.hasher.Equal(s.k, k) {
			return sum, i
		}
	}
	return sum, -1
}

func (h *Hashed[K, V]) Get(k K) (v V, ok bool) {
	sum, i := h.find(k)
	if i == -1 {
		return
	}
	return h.buckets[sum][i].v, true
}

func (h *Hashed[K, V]) Set(k K, v V) {
	sum, i := h.find(k)
	if i != -1 {
		h.buckets[sum][i].v = v
		return
	}

	h.buckets[sum] = append(h.buckets[sum], slot[K, V]{k: k, v: v})
	h.n++
}

func (h *Hashed[K, V]) Delete(k K) bool {
	sum, i := h.find(k)
	if i == -1 {
		return false
	}

	b := h.buckets[sum]
	if len(b) == 1 {
		delete(h.buckets, sum)
	} else {
		// order in the bucket doesn't matter.
		// the zero slot stops the truncated tail from keeping K and V alive
		b[i], b[len(b)-1] = b[len(b)-1], slot[K, V]{}
		h.buckets[sum] = b[:len(b)-1]
	}
	h.n--

	return true
}

func (h *Hashed[_, _]) Len() int {
	return h.n
}

// All iterates in an unspecified order.
func (h *Hashed[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, b := range h.buckets {
			for _, s := range b {
				if !yield(s.k, s.v) {
					return
				}
			}
		}
	}
}

func (h *Hashed[K, V]) Clear() {
	h.buckets = make(map[uint64][]slot[K, V])
	h.n = 0
}

func (h *Hashed[K, V]) Clone() Store[K, V] {
	hcopy := &Hashed[K, V]{
		hasher:  h.hasher,
		buckets: make(map[uint64][]slot[K, V], len(h.buckets)),
		n:       h.n,
	}

	for sum, b := range h.buckets {
		bcopy := make([]slot[K, V], len(b))
		copy(bcopy, b)
		hcopy.buckets[sum] = bcopy
	}

	return hcopy
}

func (h *Hashed[K, V]) Empty(capacity int) Store[K, V] {
	return NewHashed[K, V](h.hasher, capacity)
}
