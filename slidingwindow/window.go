// Package slidingwindow counts only the most recent observations of a stream.
package slidingwindow

import (
	"reflect"

	"go.lepak.sg/multiset/counter"
)

// Window is a sliding window-based counter.
// The main interaction with Window is through its Observe method,
// which records one observation of a value.
// Window has a size, which limits how many observations are kept:
// if the size is 10, then the 11th observation will replace
// the 1st observation from the Window.
//
// Window is not safe for concurrent use. If you want to share it
// across multiple goroutines, it must be protected by a mutex.
//
// Values are kept alive by the window until they are evicted, so
// dynamically allocated strings may stay around for longer than desired.
type Window[E any, N counter.Number] struct {
	window   []E
	head     int
	lifetime int
	current  *counter.Counter[E, N]
	evict    func(E)
}

// New creates a new sliding window-based counter with the given size.
//
// If onEvict is not nil, then when the last occurrence of a previously
// observed value is evicted from the window, onEvict will be called with the
// evicted value. onEvict will run in the same goroutine that called Observe,
// so consider doing any long-running work in another goroutine.
//
// The cardinalityHint is your guess of how many distinct values will ever be
// seen by the Window. If you are not sure, pass 0 and New will guess for
// you. This hint is used to size the counter's map.
func New[E comparable, N counter.Number](
	size int, cardinalityHint int, onEvict func(E),
) *Window[E, N] {
	if cardinalityHint == 0 {
		var zeroE E
		cardinalityHint = guessCardinalityHint(zeroE)
	}

	return NewWithCounter(size, counter.WithCapacity[E, N](cardinalityHint), onEvict)
}

// NewWithCounter is like New, but counts into c, which must be empty.
// Use it to count elements that need a custom store.
func NewWithCounter[E any, N counter.Number](
	size int, c *counter.Counter[E, N], onEvict func(E),
) *Window[E, N] {
	if size < 1 {
		panic("invalid size")
	}
	if c.Len() != 0 {
		panic("counter not empty")
	}

	return &Window[E, N]{
		window:  make([]E, size),
		current: c,
		evict:   onEvict,
	}
}

func guessCardinalityHint(T any) int {
	var sz uintptr
	const maxSize = ^uintptr(0)

	rt := reflect.TypeOf(T)
	if rt == nil {
		// interface type, anything goes
		return 4096
	}

	switch rt.Kind() {
	// T is comparable, which excludes some possibilities
	case reflect.Struct:
		// try and exclude padding
		for i := 0; i < rt.NumField(); i++ {
			ft := rt.Field(i).Type
			if ft.Kind() == reflect.String {
				sz = maxSize
				break
			}
			sz += ft.Size()
		}
	case reflect.String:
		// basically infinite cardinality
		sz = maxSize
	default:
		sz = rt.Size()
	}

	switch {
	case sz <= 4:
		return 256
	case sz <= 8:
		return 1024
	case sz <= 16:
		return 2048
	default:
		return 4096
	}
}

// Get returns the value's count, which may be 0, but never larger than the
// window size.
func (w *Window[E, N]) Get(value E) N {
	return w.current.Get(value)
}

// Counts returns a copy of the counts of every value in the window.
// Only values with a positive count are present.
func (w *Window[E, N]) Counts() *counter.Counter[E, N] {
	return w.current.Clone()
}

// Lifetime returns the lifetime count of observations.
func (w *Window[_, _]) Lifetime() int {
	return w.lifetime
}

// Len returns how many observations are in the window right now.
func (w *Window[_, _]) Len() int {
	if w.lifetime < len(w.window) {
		return w.lifetime
	}
	return len(w.window)
}

// Observe makes an observation of a value.
func (w *Window[E, N]) Observe(value E) {
	size := len(w.window)

	needEvict := w.lifetime >= size
	if needEvict {
		evictee := w.window[w.head]
		count := w.current.Get(evictee)

		// compare before subtracting, so that unsigned counts never wrap
		if count > 1 {
			w.current.Set(evictee, count-1)
		} else if count == 1 {
			w.current.Store().Delete(evictee)
			if w.evict != nil {
				w.evict(evictee)
			}
		} else {
			// this implies that either evictee wasn't in current
			// or evictee was not removed from current when it hit 0 previously
			// which are both bad
			panic("evictee count was 0")
		}
	}

	w.window[w.head] = value
	w.lifetime += 1
	w.head += 1
	if w.head >= size {
		w.head = 0
	}
	w.current.Insert(value)
}
