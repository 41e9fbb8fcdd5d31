// Package arraylist implements a resizable array list.
package arraylist

import (
	"iter"
	"slices"

	"github.com/bywbilly/DS2014/collection"
	"github.com/cockroachdb/errors"
)

const defaultCapacity = 8

// List is a resizable array of elements. Storage doubles when full.
type List[T comparable] struct {
	elements []T
	amount   int
	gen      uint64
}

// New creates an empty list.
func New[T comparable]() *List[T] {
	return &List[T]{elements: make([]T, defaultCapacity)}
}

// Of creates a list holding values in order.
func Of[T comparable](values ...T) *List[T] {
	l := &List[T]{elements: make([]T, max(len(values), defaultCapacity))}
	l.amount = copy(l.elements, values)
	return l
}

// Len returns the number of elements.
func (l *List[T]) Len() int {
	return l.amount
}

// Empty reports whether the list holds no elements.
func (l *List[T]) Empty() bool {
	return l.amount == 0
}

// Add appends e to the end of the list.
func (l *List[T]) Add(e T) {
	l.reserve()
	l.elements[l.amount] = e
	l.amount++
	l.gen++
}

// Insert places e at index, shifting later elements right. index may equal
// Len.
func (l *List[T]) Insert(index int, e T) error {
	if err := collection.CheckIndex(index, l.amount+1); err != nil {
		return errors.Wrap(err, "insert")
	}
	l.reserve()
	copy(l.elements[index+1:l.amount+1], l.elements[index:l.amount])
	l.elements[index] = e
	l.amount++
	l.gen++
	return nil
}

// Get returns the element at index.
func (l *List[T]) Get(index int) (T, error) {
	if err := collection.CheckIndex(index, l.amount); err != nil {
		var zero T
		return zero, errors.Wrap(err, "get")
	}
	return l.elements[index], nil
}

// Set replaces the element at index.
func (l *List[T]) Set(index int, e T) error {
	if err := collection.CheckIndex(index, l.amount); err != nil {
		return errors.Wrap(err, "set")
	}
	l.elements[index] = e
	return nil
}

// RemoveAt deletes the element at index.
func (l *List[T]) RemoveAt(index int) error {
	if err := collection.CheckIndex(index, l.amount); err != nil {
		return errors.Wrap(err, "remove")
	}
	l.removeAt(index)
	return nil
}

// Remove deletes the first occurrence of e and reports whether there was one.
func (l *List[T]) Remove(e T) bool {
	i := l.IndexOf(e)
	if i < 0 {
		return false
	}
	l.removeAt(i)
	return true
}

// IndexOf returns the index of the first occurrence of e, or -1.
func (l *List[T]) IndexOf(e T) int {
	return slices.Index(l.elements[:l.amount], e)
}

// Contains reports whether e is in the list.
func (l *List[T]) Contains(e T) bool {
	return l.IndexOf(e) >= 0
}

// Clear removes every element but keeps the allocated capacity.
func (l *List[T]) Clear() {
	clear(l.elements[:l.amount])
	l.amount = 0
	l.gen++
}

// Values returns a copy of the elements in order.
func (l *List[T]) Values() []T {
	return slices.Clone(l.elements[:l.amount])
}

// Clone returns an independent copy of the list.
func (l *List[T]) Clone() *List[T] {
	return &List[T]{
		elements: slices.Clone(l.elements),
		amount:   l.amount,
	}
}

// All yields the elements in order.
func (l *List[T]) All() iter.Seq[T] {
	return collection.Seq[T](l.Iterator())
}

// Iterator returns a cursor over the elements in order.
func (l *List[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{l: l, last: -1, gen: l.gen}
}

func (l *List[T]) reserve() {
	if l.amount < len(l.elements) {
		return
	}
	grown := make([]T, max(2*len(l.elements), defaultCapacity))
	copy(grown, l.elements[:l.amount])
	l.elements = grown
}

func (l *List[T]) removeAt(index int) {
	copy(l.elements[index:], l.elements[index+1:l.amount])
	l.amount--
	var zero T
	l.elements[l.amount] = zero
	l.gen++
}

// Iterator walks a list front to back.
type Iterator[T comparable] struct {
	l      *List[T]
	cursor int
	last   int
	gen    uint64
}

var _ collection.Iterator[int] = (*Iterator[int])(nil)

// HasNext reports whether Next will produce another element.
func (it *Iterator[T]) HasNext() bool {
	return it.cursor < it.l.amount && it.gen == it.l.gen
}

// Next returns the next element.
func (it *Iterator[T]) Next() (T, error) {
	var zero T
	if it.gen != it.l.gen {
		return zero, errors.Wrap(collection.ErrConcurrentModification, "array list iterator")
	}
	if it.cursor >= it.l.amount {
		return zero, errors.Wrap(collection.ErrEndOfIteration, "array list iterator")
	}
	it.last = it.cursor
	it.cursor++
	return it.l.elements[it.last], nil
}

// Remove deletes the element last returned by Next.
func (it *Iterator[T]) Remove() error {
	if it.gen != it.l.gen {
		return errors.Wrap(collection.ErrConcurrentModification, "array list iterator")
	}
	if it.last < 0 {
		return errors.Wrap(collection.ErrNoCurrentElement, "array list iterator")
	}
	it.l.removeAt(it.last)
	it.cursor = it.last
	it.last = -1
	it.gen = it.l.gen
	return nil
}
