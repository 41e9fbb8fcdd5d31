package hashmap_test

import (
	"fmt"
	"maps"
	"testing"

	"github.com/bywbilly/DS2014/collection"
	"github.com/bywbilly/DS2014/hashmap"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMap(t *testing.T) {
	tests := []struct {
		name string
		m    func() *hashmap.Map[string, int]
	}{
		{
			name: "xxhash",
			m:    func() *hashmap.Map[string, int] { return hashmap.New[string, int](hashmap.String) },
		},
		{
			name: "maphash",
			m:    hashmap.NewComparable[string, int],
		},
		{
			name: "colliding hasher",
			m: func() *hashmap.Map[string, int] {
				return hashmap.New[string, int](func(string) uint64 { return 7 })
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := tt.m()
			want := make(map[string]int)
			for i := 0; i < 500; i++ {
				k := fmt.Sprintf("key-%d", i%300)
				m.Put(k, i)
				want[k] = i
			}
			assert.Equal(t, len(want), m.Len())
			assert.Equal(t, want, maps.Collect(m.All()))

			v, err := m.Get("key-10")
			require.NoError(t, err)
			assert.Equal(t, 310, v)

			require.NoError(t, m.Remove("key-10"))
			assert.False(t, m.ContainsKey("key-10"))
			_, err = m.Get("key-10")
			assert.True(t, errors.Is(err, collection.ErrNotFound))
			assert.True(t, errors.Is(m.Remove("key-10"), collection.ErrNotFound))

			_, ok := m.Lookup("key-11")
			assert.True(t, ok)
			assert.True(t, m.ContainsValue(499, func(a, b int) bool { return a == b }))
			assert.False(t, m.ContainsValue(-1, func(a, b int) bool { return a == b }))

			m.Clear()
			assert.True(t, m.Empty())
			assert.False(t, m.ContainsKey("key-11"))
		})
	}
}

func TestMap_Iterator(t *testing.T) {
	m := hashmap.New[int, string](hashmap.Integer[int])
	for i := 0; i < 100; i++ {
		m.Put(i, fmt.Sprint(i))
	}

	it := m.Iterator()
	assert.True(t, errors.Is(it.Remove(), collection.ErrNoCurrentElement))

	seen := make(map[int]bool)
	for it.HasNext() {
		e, err := it.Next()
		require.NoError(t, err)
		require.False(t, seen[e.Key])
		seen[e.Key] = true
		if e.Key%2 == 1 {
			require.NoError(t, it.Remove())
		}
	}
	assert.Len(t, seen, 100)
	assert.Equal(t, 50, m.Len())
	for k := range m.All() {
		assert.Equal(t, 0, k%2)
	}

	_, err := it.Next()
	assert.True(t, errors.Is(err, collection.ErrEndOfIteration))

	it = m.Iterator()
	m.Put(1000, "x")
	_, err = it.Next()
	assert.True(t, errors.Is(err, collection.ErrConcurrentModification))
}

func TestMap_Clone(t *testing.T) {
	m := hashmap.New[string, int](hashmap.String)
	m.Put("a", 1)
	m.Put("b", 2)

	c := m.Clone()
	c.Put("a", 10)
	require.NoError(t, c.Remove("b"))

	assert.Equal(t, map[string]int{"a": 1, "b": 2}, maps.Collect(m.All()))
	assert.Equal(t, map[string]int{"a": 10}, maps.Collect(c.All()))
}
