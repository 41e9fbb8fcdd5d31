// Package deque implements a double-ended queue on a circular buffer.
//
// The buffer length is always a power of two and doubles when full; it never
// shrinks. Operations at either end run in O(1) amortized time. Contains,
// Clear and removal through an iterator are linear.
package deque

import (
	"iter"
	"slices"

	"github.com/bywbilly/DS2014/collection"
	"github.com/cockroachdb/errors"
)

const defaultCapacity = 8

// Deque is a double-ended queue. The zero value is not usable; call New.
type Deque[T comparable] struct {
	buf    []T
	head   int // physical index of the first element
	amount int
	gen    uint64
}

// New creates an empty deque.
func New[T comparable]() *Deque[T] {
	return &Deque[T]{buf: make([]T, defaultCapacity)}
}

// Of creates a deque holding values front to back.
func Of[T comparable](values ...T) *Deque[T] {
	d := New[T]()
	for _, v := range values {
		d.AddLast(v)
	}
	return d
}

// Len returns the number of elements.
func (d *Deque[T]) Len() int {
	return d.amount
}

// Empty reports whether the deque holds no elements.
func (d *Deque[T]) Empty() bool {
	return d.amount == 0
}

// AddFirst inserts e at the front.
func (d *Deque[T]) AddFirst(e T) {
	d.reserve()
	d.head = d.wrap(d.head - 1)
	d.buf[d.head] = e
	d.amount++
	d.gen++
}

// AddLast appends e at the back.
func (d *Deque[T]) AddLast(e T) {
	d.reserve()
	d.buf[d.physical(d.amount)] = e
	d.amount++
	d.gen++
}

// RemoveFirst deletes and returns the front element.
func (d *Deque[T]) RemoveFirst() (T, error) {
	var zero T
	if d.amount == 0 {
		return zero, errors.Wrap(collection.ErrEmpty, "remove first")
	}
	v := d.buf[d.head]
	d.buf[d.head] = zero
	d.head = d.wrap(d.head + 1)
	d.amount--
	d.gen++
	return v, nil
}

// RemoveLast deletes and returns the back element.
func (d *Deque[T]) RemoveLast() (T, error) {
	var zero T
	if d.amount == 0 {
		return zero, errors.Wrap(collection.ErrEmpty, "remove last")
	}
	i := d.physical(d.amount - 1)
	v := d.buf[i]
	d.buf[i] = zero
	d.amount--
	d.gen++
	return v, nil
}

// First returns the front element.
func (d *Deque[T]) First() (T, error) {
	if d.amount == 0 {
		var zero T
		return zero, errors.Wrap(collection.ErrEmpty, "first")
	}
	return d.buf[d.head], nil
}

// Last returns the back element.
func (d *Deque[T]) Last() (T, error) {
	if d.amount == 0 {
		var zero T
		return zero, errors.Wrap(collection.ErrEmpty, "last")
	}
	return d.buf[d.physical(d.amount-1)], nil
}

// Get returns the element index positions from the front.
func (d *Deque[T]) Get(index int) (T, error) {
	if err := collection.CheckIndex(index, d.amount); err != nil {
		var zero T
		return zero, errors.Wrap(err, "get")
	}
	return d.buf[d.physical(index)], nil
}

// Set replaces the element index positions from the front.
func (d *Deque[T]) Set(index int, e T) error {
	if err := collection.CheckIndex(index, d.amount); err != nil {
		return errors.Wrap(err, "set")
	}
	d.buf[d.physical(index)] = e
	return nil
}

// Contains reports whether e is in the deque.
func (d *Deque[T]) Contains(e T) bool {
	for i := 0; i < d.amount; i++ {
		if d.buf[d.physical(i)] == e {
			return true
		}
	}
	return false
}

// Clear removes every element but keeps the buffer.
func (d *Deque[T]) Clear() {
	clear(d.buf)
	d.head = 0
	d.amount = 0
	d.gen++
}

// Values returns the elements front to back.
func (d *Deque[T]) Values() []T {
	out := make([]T, d.amount)
	for i := range out {
		out[i] = d.buf[d.physical(i)]
	}
	return out
}

// Clone returns an independent copy of the deque.
func (d *Deque[T]) Clone() *Deque[T] {
	return &Deque[T]{
		buf:    slices.Clone(d.buf),
		head:   d.head,
		amount: d.amount,
	}
}

// All yields the elements front to back.
func (d *Deque[T]) All() iter.Seq[T] {
	return collection.Seq[T](d.Iterator())
}

// Backward yields the elements back to front.
func (d *Deque[T]) Backward() iter.Seq[T] {
	return collection.Seq[T](d.DescendingIterator())
}

// Iterator returns a cursor walking front to back.
func (d *Deque[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{d: d, cursor: 0, step: 1, last: -1, gen: d.gen}
}

// DescendingIterator returns a cursor walking back to front.
func (d *Deque[T]) DescendingIterator() *Iterator[T] {
	return &Iterator[T]{d: d, cursor: d.amount - 1, step: -1, last: -1, gen: d.gen}
}

func (d *Deque[T]) wrap(i int) int {
	return i & (len(d.buf) - 1)
}

// physical maps a logical index to a buffer index.
func (d *Deque[T]) physical(index int) int {
	return d.wrap(d.head + index)
}

func (d *Deque[T]) reserve() {
	if d.amount < len(d.buf) {
		return
	}
	grown := make([]T, 2*len(d.buf))
	n := copy(grown, d.buf[d.head:])
	copy(grown[n:], d.buf[:d.head])
	d.buf = grown
	d.head = 0
}

// removeAt deletes the element at a logical index by shifting whichever side
// is shorter. Logical indices below index are unchanged.
func (d *Deque[T]) removeAt(index int) {
	var zero T
	if index < d.amount/2 {
		for i := index; i > 0; i-- {
			d.buf[d.physical(i)] = d.buf[d.physical(i-1)]
		}
		d.buf[d.head] = zero
		d.head = d.wrap(d.head + 1)
	} else {
		for i := index; i < d.amount-1; i++ {
			d.buf[d.physical(i)] = d.buf[d.physical(i+1)]
		}
		d.buf[d.physical(d.amount-1)] = zero
	}
	d.amount--
	d.gen++
}

// Iterator walks a deque in either direction.
type Iterator[T comparable] struct {
	d      *Deque[T]
	cursor int // logical index of the next element
	step   int // 1 front to back, -1 back to front
	last   int // logical index last produced, -1 if none
	gen    uint64
}

var _ collection.Iterator[int] = (*Iterator[int])(nil)

// HasNext reports whether Next will produce another element.
func (it *Iterator[T]) HasNext() bool {
	return it.cursor >= 0 && it.cursor < it.d.amount && it.gen == it.d.gen
}

// Next returns the next element.
func (it *Iterator[T]) Next() (T, error) {
	var zero T
	if it.gen != it.d.gen {
		return zero, errors.Wrap(collection.ErrConcurrentModification, "deque iterator")
	}
	if it.cursor < 0 || it.cursor >= it.d.amount {
		return zero, errors.Wrap(collection.ErrEndOfIteration, "deque iterator")
	}
	it.last = it.cursor
	it.cursor += it.step
	return it.d.buf[it.d.physical(it.last)], nil
}

// Remove deletes the element last returned by Next.
func (it *Iterator[T]) Remove() error {
	if it.gen != it.d.gen {
		return errors.Wrap(collection.ErrConcurrentModification, "deque iterator")
	}
	if it.last < 0 {
		return errors.Wrap(collection.ErrNoCurrentElement, "deque iterator")
	}
	it.d.removeAt(it.last)
	if it.step > 0 {
		it.cursor = it.last
	}
	it.last = -1
	it.gen = it.d.gen
	return nil
}
