package store

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// strategies lists every string-keyed store for conformance testing.
var strategies = []struct {
	name string
	new  func(capacity int) Store[string, int]
}{
	{
		name: "builtin",
		new:  func(c int) Store[string, int] { return NewBuiltin[string, int](c) },
	},
	{
		name: "linked",
		new:  func(c int) Store[string, int] { return NewLinked[string, int](c) },
	},
	{
		name: "hashed/xxhash",
		new:  func(c int) Store[string, int] { return NewHashed[string, int](Strings(), c) },
	},
	{
		name: "hashed/metro",
		new:  func(c int) Store[string, int] { return NewHashed[string, int](SeededStrings(42), c) },
	},
	{
		// every key collides, so the bucket code does all the work
		name: "hashed/collide",
		new: func(c int) Store[string, int] {
			return NewHashed[string, int](HasherFunc[string]{
				HashFunc:  func(string) uint64 { return 7 },
				EqualFunc: func(a, b string) bool { return a == b },
			}, c)
		},
	},
}

func collect(s Store[string, int]) map[string]int {
	out := make(map[string]int, s.Len())
	for k, v := range s.All() {
		out[k] = v
	}
	return out
}

func TestStore(t *testing.T) {
	for _, st := range strategies {
		t.Run(st.name, func(t *testing.T) {
			s := st.new(4)
			assert.Equal(t, 0, s.Len())

			v, ok := s.Get("a")
			assert.False(t, ok)
			assert.Equal(t, 0, v)

			s.Set("a", 1)
			s.Set("b", 2)
			s.Set("c", 0)
			s.Set("a", 3)

			assert.Equal(t, 3, s.Len())
			assert.Equal(t, map[string]int{"a": 3, "b": 2, "c": 0}, collect(s))

			v, ok = s.Get("c")
			assert.True(t, ok, "zero values are still present")
			assert.Equal(t, 0, v)

			assert.True(t, s.Delete("b"))
			assert.False(t, s.Delete("b"))
			assert.False(t, s.Delete("z"))
			assert.Equal(t, 2, s.Len())
			assert.Equal(t, map[string]int{"a": 3, "c": 0}, collect(s))

			cp := s.Clone()
			cp.Set("d", 4)
			cp.Delete("a")
			assert.Equal(t, map[string]int{"a": 3, "c": 0}, collect(s), "clone is independent")
			assert.Equal(t, map[string]int{"c": 0, "d": 4}, collect(cp))

			e := s.Empty(10)
			assert.Equal(t, 0, e.Len())
			assert.IsType(t, s, e, "same strategy")

			s.Clear()
			assert.Equal(t, 0, s.Len())
			assert.Empty(t, collect(s))

			s.Set("a", 1)
			assert.Equal(t, map[string]int{"a": 1}, collect(s), "usable after Clear")
		})
	}
}

func TestStore_AllStop(t *testing.T) {
	for _, st := range strategies {
		t.Run(st.name, func(t *testing.T) {
			s := st.new(0)
			s.Set("a", 1)
			s.Set("b", 2)
			s.Set("c", 3)

			times := 0
			for range s.All() {
				times++
				break
			}
			assert.Equal(t, 1, times)
		})
	}
}

func TestStore_NegativeCapacity(t *testing.T) {
	for _, st := range strategies {
		t.Run(st.name, func(t *testing.T) {
			s := st.new(-1)
			s.Set("a", 1)
			assert.Equal(t, 1, s.Len())
		})
	}
}

func TestBuiltin_AsMap(t *testing.T) {
	var s Store[rune, int] = NewBuiltin[rune, int](0)
	for _, r := range "aa-bb-cc" {
		v, _ := s.Get(r)
		s.Set(r, v+1)
	}

	m := s.(Builtin[rune, int])
	delete(m, '-')

	assert.Equal(t, 3, s.Len())
	_, ok := s.Get('-')
	assert.False(t, ok)
}

func TestBuiltin_DeleteWhileIterating(t *testing.T) {
	s := NewBuiltin[int, int](0)
	for i := 0; i < 100; i++ {
		s.Set(i, i)
	}

	for k, v := range s.All() {
		if v%2 == 1 {
			s.Delete(k)
		}
	}

	assert.Equal(t, 50, s.Len())
}

func TestBuiltin_CloneNil(t *testing.T) {
	var b Builtin[string, int]
	cp := b.Clone()
	cp.Set("a", 1)
	assert.Equal(t, 1, cp.Len())
}

func keys[V any](s Store[string, V]) []string {
	var ks []string
	for k := range s.All() {
		ks = append(ks, k)
	}
	return ks
}

func TestLinked_Order(t *testing.T) {
	l := NewLinked[string, int](0)
	l.Set("one", 1)
	l.Set("two", 2)
	l.Set("three", 3)
	l.Set("one", 11)

	assert.Equal(t, []string{"one", "two", "three"}, keys[int](l), "update keeps position")

	l.Delete("one")
	l.Set("one", 1)
	assert.Equal(t, []string{"two", "three", "one"}, keys[int](l), "re-add goes to the back")

	assert.Equal(t, []string{"two", "three", "one"}, keys(l.Clone()), "clone keeps order")

	l.Delete("three")
	assert.Equal(t, []string{"two", "one"}, keys[int](l))
	l.Delete("one")
	l.Delete("two")
	assert.Empty(t, keys[int](l))
	assert.Nil(t, l.head)
	assert.Nil(t, l.tail)
}

func TestLinked_DeleteWhileIterating(t *testing.T) {
	l := NewLinked[string, int](0)
	for i, k := range []string{"a", "b", "c", "d", "e"} {
		l.Set(k, i)
	}

	var seen []string
	for k, v := range l.All() {
		seen = append(seen, k)
		if v%2 == 0 {
			l.Delete(k)
		}
	}

	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, seen)
	assert.Equal(t, []string{"b", "d"}, keys[int](l))
}

// makeCyclic inserts n elements to an empty store
// and links the head and tail together:
//
//	  head─┐                    tail─┐
//	     [ 1 <-> 2 <-> 3 <-> ... <-> n ]
//	       ↑                         ↑
//	       └─────────────────────────┘
//
// Any test iterating over a cyclic store
// must have an iteration limit, otherwise if
// the test fails, it will run until it times out!
func makeCyclic(t *testing.T, n int) *Linked[int, struct{}] {
	l := NewLinked[int, struct{}](n)

	for i := 1; i <= n; i++ {
		l.Set(i, struct{}{})
	}

	require.Equal(t, 1, l.head.k)
	require.Equal(t, n, l.tail.k)
	require.Nil(t, l.tail.next)
	require.Nil(t, l.head.prev)

	l.tail.next = l.head
	l.head.prev = l.tail

	return l
}

func TestLinked_CyclicPanic(t *testing.T) {
	tests := []struct {
		n   int
		max int
	}{
		{n: 1, max: 1},
		{n: 3, max: 10},
		{n: 100, max: 100},
	}

	for _, tt := range tests {
		l := makeCyclic(t, tt.n)

		visit := 0
		assert.Panics(t, func() {
			for k := range l.All() {
				visit++
				require.LessOrEqual(t, visit, tt.max, "too many visits")
				t.Logf("at %d", k)
			}
		})
	}
}

func TestHashed_ByteKeys(t *testing.T) {
	for _, h := range []Hasher[[]byte]{Bytes(), SeededBytes(0), SeededBytes(99)} {
		s := NewHashed[[]byte, int](h, 0)

		for _, w := range []string{"go", "gopher", "go", "", "gopher", "go"} {
			v, _ := s.Get([]byte(w))
			s.Set([]byte(w), v+1)
		}

		got := make(map[string]int)
		for k, v := range s.All() {
			got[string(k)] = v
		}

		assert.Equal(t, map[string]int{"go": 3, "gopher": 2, "": 1}, got)

		v, ok := s.Get(nil)
		assert.True(t, ok, "nil and empty are the same key")
		assert.Equal(t, 1, v)
	}
}

func TestHashed_Collisions(t *testing.T) {
	s := NewHashed[int, string](HasherFunc[int]{
		HashFunc:  func(k int) uint64 { return uint64(k % 3) },
		EqualFunc: func(a, b int) bool { return a == b },
	}, 0)

	for i := 0; i < 30; i++ {
		s.Set(i, "x")
	}
	require.Equal(t, 30, s.Len())
	assert.Len(t, s.buckets, 3)

	for i := 0; i < 30; i += 2 {
		require.True(t, s.Delete(i))
	}

	var ks []int
	for k := range s.All() {
		ks = append(ks, k)
	}
	sort.Ints(ks)

	assert.Equal(t, []int{1, 3, 5, 7, 9, 11, 13, 15, 17, 19, 21, 23, 25, 27, 29}, ks)
	assert.Equal(t, 15, s.Len())
}

func TestHashed_NilHasher(t *testing.T) {
	assert.PanicsWithValue(t, "nil hasher", func() {
		_ = NewHashed[string, int](nil, 0)
	})
}

func TestHashers(t *testing.T) {
	assert.Equal(t, uint64(0xef46db3751d8e999), Strings().Hash(""), "xxh64 of empty input")
	assert.Equal(t, Strings().Hash("gopher"), Bytes().Hash([]byte("gopher")))

	assert.Equal(t, SeededStrings(1).Hash("gopher"), SeededBytes(1).Hash([]byte("gopher")))
	assert.Equal(t, SeededStrings(1).Hash("gopher"), SeededStrings(1).Hash("gopher"))
	assert.NotEqual(t, SeededStrings(1).Hash("gopher"), SeededStrings(2).Hash("gopher"))

	assert.True(t, Bytes().Equal(nil, []byte{}))
	assert.False(t, Strings().Equal("a", "b"))
}
