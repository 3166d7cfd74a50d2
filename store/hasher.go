package store

import (
	"bytes"

	"github.com/cespare/xxhash/v2"
	metro "github.com/dgryski/go-metro"
)

// Hasher is a hashing strategy for a Hashed store.
// Equal(a, b) must imply Hash(a) == Hash(b).
type Hasher[K any] interface {
	Hash(k K) uint64
	Equal(a, b K) bool
}

// HasherFunc adapts a pair of functions into a Hasher.
type HasherFunc[K any] struct {
	HashFunc  func(K) uint64
	EqualFunc func(a, b K) bool
}

func (f HasherFunc[K]) Hash(k K) uint64 {
	return f.HashFunc(k)
}

func (f HasherFunc[K]) Equal(a, b K) bool {
	return f.EqualFunc(a, b)
}

type xxStrings struct{}

func (xxStrings) Hash(s string) uint64   { return xxhash.Sum64String(s) }
func (xxStrings) Equal(a, b string) bool { return a == b }

type xxBytes struct{}

func (xxBytes) Hash(b []byte) uint64   { return xxhash.Sum64(b) }
func (xxBytes) Equal(a, b []byte) bool { return bytes.Equal(a, b) }

// Strings hashes strings with xxHash64.
func Strings() Hasher[string] {
	return xxStrings{}
}

// Bytes hashes byte slices with xxHash64. A nil slice and an empty
// slice are the same key.
func Bytes() Hasher[[]byte] {
	return xxBytes{}
}

type metroStrings struct {
	seed uint64
}

func (m metroStrings) Hash(s string) uint64 { return metro.Hash64([]byte(s), m.seed) }
func (metroStrings) Equal(a, b string) bool { return a == b }

type metroBytes struct {
	seed uint64
}

func (m metroBytes) Hash(b []byte) uint64 { return metro.Hash64(b, m.seed) }
func (metroBytes) Equal(a, b []byte) bool { return bytes.Equal(a, b) }

// SeededStrings hashes strings with MetroHash64 using seed.
// Different seeds give unrelated bucket layouts, which is useful
// when keys come from an untrusted source.
func SeededStrings(seed uint64) Hasher[string] {
	return metroStrings{seed: seed}
}

// SeededBytes is like SeededStrings, but for byte slices.
func SeededBytes(seed uint64) Hasher[[]byte] {
	return metroBytes{seed: seed}
}
