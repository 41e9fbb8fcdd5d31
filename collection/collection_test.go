package collection_test

import (
	"slices"
	"testing"

	"github.com/bywbilly/DS2014/arraylist"
	"github.com/bywbilly/DS2014/collection"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckIndex(t *testing.T) {
	tests := []struct {
		name    string
		index   int
		size    int
		wantErr bool
	}{
		{name: "first", index: 0, size: 1},
		{name: "last", index: 4, size: 5},
		{name: "negative", index: -1, size: 5, wantErr: true},
		{name: "size", index: 5, size: 5, wantErr: true},
		{name: "empty", index: 0, size: 0, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := collection.CheckIndex(tt.index, tt.size)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, collection.ErrIndexOutOfBound))
			assert.Contains(t, err.Error(), "index out of bound")
		})
	}
}

func TestErrorKindsAreDistinct(t *testing.T) {
	kinds := []error{
		collection.ErrEmpty,
		collection.ErrEndOfIteration,
		collection.ErrNoCurrentElement,
		collection.ErrIndexOutOfBound,
		collection.ErrNotFound,
		collection.ErrConcurrentModification,
	}
	for i, a := range kinds {
		for j, b := range kinds {
			assert.Equal(t, i == j, errors.Is(a, b), "%v vs %v", a, b)
		}
	}
}

func TestIteratorHelpers(t *testing.T) {
	l := arraylist.Of(1, 2, 3, 4, 5)

	got, err := collection.Collect[int](l.Iterator())
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, got)

	n, err := collection.RemoveIf[int](l.Iterator(), func(v int) bool { return v > 3 })
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	var seen []int
	for v := range collection.Seq[int](l.Iterator()) {
		seen = append(seen, v)
		if v == 2 {
			break
		}
	}
	assert.Equal(t, []int{1, 2}, seen)
}

func TestIteratorHelpers_ConcurrentModification(t *testing.T) {
	l := arraylist.Of(1, 2, 3)
	stale := l.Iterator()
	l.Add(4)

	got, err := collection.Collect[int](stale)
	assert.True(t, errors.Is(err, collection.ErrConcurrentModification))
	assert.Empty(t, got)

	n, err := collection.RemoveIf[int](l.Iterator(), func(v int) bool {
		if v == 2 {
			l.Add(9)
		}
		return v == 1
	})
	assert.True(t, errors.Is(err, collection.ErrConcurrentModification))
	assert.Equal(t, 1, n)
	assert.Equal(t, []int{2, 3, 4, 9}, l.Values())

	// Seq cannot report the error and simply stops.
	stale = l.Iterator()
	l.Add(10)
	var seen []int
	for v := range collection.Seq[int](stale) {
		seen = append(seen, v)
	}
	assert.Empty(t, seen)
}

func TestLess(t *testing.T) {
	values := []string{"b", "c", "a"}
	slices.SortFunc(values, func(a, b string) int {
		if collection.Natural(a, b) {
			return -1
		}
		return 1
	})
	assert.Equal(t, []string{"a", "b", "c"}, values)

	rev := collection.Reverse[int](collection.Natural[int])
	assert.True(t, rev(2, 1))
	assert.False(t, rev(1, 2))
	assert.False(t, rev(1, 1))
}
