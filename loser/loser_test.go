package loser_test

import (
	"iter"
	"slices"
	"testing"

	"github.com/bywbilly/DS2014/arraylist"
	"github.com/bywbilly/DS2014/collection"
	"github.com/bywbilly/DS2014/loser"
	"github.com/stretchr/testify/assert"
)

func lists(values ...[]uint64) []collection.Sequence[uint64] {
	out := make([]collection.Sequence[uint64], len(values))
	for i, v := range values {
		out[i] = arraylist.Of(v...)
	}
	return out
}

func TestMerge(t *testing.T) {
	tests := []struct {
		name string
		args []collection.Sequence[uint64]
		want []uint64
	}{
		{
			name: "empty input",
		},
		{
			name: "one list",
			args: lists([]uint64{1, 2, 3, 4}),
			want: []uint64{1, 2, 3, 4},
		},
		{
			name: "two lists",
			args: lists([]uint64{3, 4, 5}, []uint64{1, 2}),
			want: []uint64{1, 2, 3, 4, 5},
		},
		{
			name: "two lists, first empty",
			args: lists(nil, []uint64{1, 2}),
			want: []uint64{1, 2},
		},
		{
			name: "two lists, second empty",
			args: lists([]uint64{1, 2}, nil),
			want: []uint64{1, 2},
		},
		{
			name: "all empty",
			args: lists(nil, nil, nil),
		},
		{
			name: "three lists",
			args: lists([]uint64{1, 3}, []uint64{2, 4}, []uint64{5}),
			want: []uint64{1, 2, 3, 4, 5},
		},
		{
			name: "duplicates across lists",
			args: lists([]uint64{1, 1, 7}, []uint64{1, 7}, []uint64{0, 7, 7}),
			want: []uint64{0, 1, 1, 1, 7, 7, 7, 7},
		},
		{
			name: "max values are not treated as exhausted",
			args: lists([]uint64{^uint64(0)}, []uint64{2, ^uint64(0)}),
			want: []uint64{2, ^uint64(0), ^uint64(0)},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lt := loser.New(tt.args, collection.Natural[uint64])
			assert.Equal(t, tt.want, slices.Collect(lt.All()))
		})
	}
}

func TestMerge_Restart(t *testing.T) {
	lt := loser.New(lists([]uint64{2, 4}, []uint64{1, 3}), collection.Natural[uint64])
	assert.Equal(t, []uint64{1, 2, 3, 4}, slices.Collect(lt.All()))
	assert.Equal(t, []uint64{1, 2, 3, 4}, slices.Collect(lt.All()))
}

func TestMerge_EarlyStop(t *testing.T) {
	lt := loser.New(lists([]uint64{2, 4, 6}, []uint64{1, 3, 5}), collection.Natural[uint64])
	next, stop := iter.Pull(lt.All())
	defer stop()

	for _, want := range []uint64{1, 2, 3} {
		v, ok := next()
		assert.True(t, ok)
		assert.Equal(t, want, v)
	}
}
