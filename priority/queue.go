package priority

import (
	"iter"
	"slices"

	"github.com/bywbilly/DS2014/arraylist"
	"github.com/bywbilly/DS2014/collection"
	"github.com/bywbilly/DS2014/loser"
	"github.com/cockroachdb/errors"
	"golang.org/x/exp/constraints"
)

// Queue is a min-heap of values with stable element identities. The zero
// value is not usable; call New.
type Queue[V any] struct {
	values     []V   // heap, position 0 unused
	posOf      []int // identity -> position
	identityOf []int // position -> identity
	amount     int
	less       collection.Less[V]
	gen        uint64 // bumped on every mutation, checked by iterators
}

// New creates an empty queue ordered by the < operator.
func New[V constraints.Ordered](opts ...Option) *Queue[V] {
	return NewFunc[V](collection.Natural[V], opts...)
}

// NewFunc creates an empty queue ordered by less.
func NewFunc[V any](less collection.Less[V], opts ...Option) *Queue[V] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	q := &Queue[V]{less: less}
	q.alloc(o.capacity)
	return q
}

// From builds a queue ordered by the < operator from an unordered slice in
// O(n).
func From[V constraints.Ordered](values []V, opts ...Option) *Queue[V] {
	return FromFunc[V](values, collection.Natural[V], opts...)
}

// FromFunc builds a queue ordered by less from an unordered slice in O(n).
// The slice is copied.
func FromFunc[V any](values []V, less collection.Less[V], opts ...Option) *Queue[V] {
	q := NewFunc(less, opts...)
	n := len(values)
	for n >= len(q.values) {
		q.grow()
	}

	copy(q.values[1:], values)
	for i := 1; i <= n; i++ {
		q.posOf[i] = i
		q.identityOf[i] = i
	}
	q.amount = n

	for i := n / 2; i >= 1; i-- {
		q.down(i)
	}
	return q
}

// FromList builds a queue ordered by less from the elements of l in O(n).
func FromList[V comparable](l *arraylist.List[V], less collection.Less[V], opts ...Option) *Queue[V] {
	return FromFunc(l.Values(), less, opts...)
}

// Len returns the number of queued elements.
func (q *Queue[V]) Len() int {
	return q.amount
}

// Empty reports whether the queue holds no elements.
func (q *Queue[V]) Empty() bool {
	return q.amount == 0
}

// Cap returns the number of elements the queue can hold before it grows.
func (q *Queue[V]) Cap() int {
	return len(q.values) - 1
}

// Push adds v to the queue.
func (q *Queue[V]) Push(v V) {
	if q.amount+1 >= len(q.values) {
		q.grow()
	}

	q.amount++
	q.values[q.amount] = v
	q.posOf[q.amount] = q.amount
	q.identityOf[q.amount] = q.amount
	q.gen++
	q.up(q.amount)
}

// Pop removes the least element. Read it with Front beforehand.
func (q *Queue[V]) Pop() error {
	if q.amount == 0 {
		return errors.Wrap(collection.ErrEmpty, "pop")
	}
	q.gen++
	q.removeAt(1)
	return nil
}

// Front returns the least element without removing it.
func (q *Queue[V]) Front() (V, error) {
	if q.amount == 0 {
		var zero V
		return zero, errors.Wrap(collection.ErrEmpty, "front")
	}
	return q.values[1], nil
}

// Clear removes every element but keeps the allocated capacity.
func (q *Queue[V]) Clear() {
	clear(q.values[1 : q.amount+1])
	q.amount = 0
	q.gen++
}

// Clone returns an independent deep copy of the queue. The heap layout and
// identities are copied as they are, without re-heapifying.
func (q *Queue[V]) Clone() *Queue[V] {
	return &Queue[V]{
		values:     slices.Clone(q.values),
		posOf:      slices.Clone(q.posOf),
		identityOf: slices.Clone(q.identityOf),
		amount:     q.amount,
		less:       q.less,
	}
}

// Iterator returns a cursor over the queued elements.
func (q *Queue[V]) Iterator() *Iterator[V] {
	return &Iterator[V]{
		q:         q,
		remaining: q.amount,
		gen:       q.gen,
	}
}

// All returns the queued elements in iterator order, which is not sorted.
func (q *Queue[V]) All() iter.Seq[V] {
	return collection.Seq[V](q.Iterator())
}

// Drain pops elements in non-decreasing order for as long as the caller keeps
// ranging. Elements not yet yielded stay queued.
func (q *Queue[V]) Drain() iter.Seq[V] {
	return func(yield func(V) bool) {
		for q.amount > 0 {
			v := q.values[1]
			q.gen++
			q.removeAt(1)
			if !yield(v) {
				return
			}
		}
	}
}

// Merge pops from every queue and yields the union of their elements in
// non-decreasing order. All queues must share the ordering of the first one.
// An element is popped from its queue only when it is yielded, so elements
// not yet yielded stay queued if the caller stops early.
func Merge[V any](queues ...*Queue[V]) iter.Seq[V] {
	if len(queues) == 0 {
		return func(func(V) bool) {}
	}

	less := queues[0].less
	seqs := make([]collection.Sequence[head[V]], len(queues))
	for i, q := range queues {
		seqs[i] = heads[V]{q: q}
	}
	tree := loser.New[head[V]](seqs, func(a, b head[V]) bool {
		return less(a.value, b.value)
	})

	return func(yield func(V) bool) {
		for h := range tree.All() {
			_ = h.q.Pop()
			if !yield(h.value) {
				return
			}
		}
	}
}

// head is the front of a queue taking part in a merge.
type head[V any] struct {
	value V
	q     *Queue[V]
}

// heads yields the current front of q each time it is resumed. It never
// pops; Merge pops the winner before yielding it.
type heads[V any] struct {
	q *Queue[V]
}

func (h heads[V]) All() iter.Seq[head[V]] {
	return func(yield func(head[V]) bool) {
		for !h.q.Empty() {
			if !yield(head[V]{value: h.q.values[1], q: h.q}) {
				return
			}
		}
	}
}
