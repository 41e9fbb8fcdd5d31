// Package linkedlist implements a doubly linked list around a sentinel node.
package linkedlist

import (
	"iter"

	"github.com/bywbilly/DS2014/collection"
	"github.com/cockroachdb/errors"
)

type element[T comparable] struct {
	value      T
	prev, next *element[T]
}

// List is a doubly linked list. The zero value is not usable; call New.
type List[T comparable] struct {
	root   element[T] // sentinel: root.next is the head, root.prev the tail
	amount int
	gen    uint64
}

// New creates an empty list.
func New[T comparable]() *List[T] {
	l := &List[T]{}
	l.root.next = &l.root
	l.root.prev = &l.root
	return l
}

// Of creates a list holding values in order.
func Of[T comparable](values ...T) *List[T] {
	l := New[T]()
	for _, v := range values {
		l.AddLast(v)
	}
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
	l.AddLast(e)
}

// AddFirst inserts e at the front of the list.
func (l *List[T]) AddFirst(e T) {
	l.insertAfter(&l.root, e)
}

// AddLast appends e to the end of the list.
func (l *List[T]) AddLast(e T) {
	l.insertAfter(l.root.prev, e)
}

// Insert places e at index, shifting later elements back. index may equal
// Len.
func (l *List[T]) Insert(index int, e T) error {
	if err := collection.CheckIndex(index, l.amount+1); err != nil {
		return errors.Wrap(err, "insert")
	}
	if index == l.amount {
		l.AddLast(e)
		return nil
	}
	l.insertAfter(l.at(index).prev, e)
	return nil
}

// Get returns the element at index.
func (l *List[T]) Get(index int) (T, error) {
	if err := collection.CheckIndex(index, l.amount); err != nil {
		var zero T
		return zero, errors.Wrap(err, "get")
	}
	return l.at(index).value, nil
}

// Set replaces the element at index.
func (l *List[T]) Set(index int, e T) error {
	if err := collection.CheckIndex(index, l.amount); err != nil {
		return errors.Wrap(err, "set")
	}
	l.at(index).value = e
	return nil
}

// First returns the element at the front.
func (l *List[T]) First() (T, error) {
	if l.amount == 0 {
		var zero T
		return zero, errors.Wrap(collection.ErrEmpty, "first")
	}
	return l.root.next.value, nil
}

// Last returns the element at the end.
func (l *List[T]) Last() (T, error) {
	if l.amount == 0 {
		var zero T
		return zero, errors.Wrap(collection.ErrEmpty, "last")
	}
	return l.root.prev.value, nil
}

// RemoveAt deletes the element at index.
func (l *List[T]) RemoveAt(index int) error {
	if err := collection.CheckIndex(index, l.amount); err != nil {
		return errors.Wrap(err, "remove")
	}
	l.unlink(l.at(index))
	return nil
}

// Remove deletes the first occurrence of e and reports whether there was one.
func (l *List[T]) Remove(e T) bool {
	for n := l.root.next; n != &l.root; n = n.next {
		if n.value == e {
			l.unlink(n)
			return true
		}
	}
	return false
}

// RemoveFirst deletes and returns the element at the front.
func (l *List[T]) RemoveFirst() (T, error) {
	if l.amount == 0 {
		var zero T
		return zero, errors.Wrap(collection.ErrEmpty, "remove first")
	}
	n := l.root.next
	l.unlink(n)
	return n.value, nil
}

// RemoveLast deletes and returns the element at the end.
func (l *List[T]) RemoveLast() (T, error) {
	if l.amount == 0 {
		var zero T
		return zero, errors.Wrap(collection.ErrEmpty, "remove last")
	}
	n := l.root.prev
	l.unlink(n)
	return n.value, nil
}

// Contains reports whether e is in the list.
func (l *List[T]) Contains(e T) bool {
	for n := l.root.next; n != &l.root; n = n.next {
		if n.value == e {
			return true
		}
	}
	return false
}

// Clear removes every element.
func (l *List[T]) Clear() {
	l.root.next = &l.root
	l.root.prev = &l.root
	l.amount = 0
	l.gen++
}

// Values returns the elements in order.
func (l *List[T]) Values() []T {
	out := make([]T, 0, l.amount)
	for n := l.root.next; n != &l.root; n = n.next {
		out = append(out, n.value)
	}
	return out
}

// Clone returns an independent copy of the list.
func (l *List[T]) Clone() *List[T] {
	return Of(l.Values()...)
}

// All yields the elements front to back.
func (l *List[T]) All() iter.Seq[T] {
	return collection.Seq[T](l.Iterator())
}

// Backward yields the elements back to front.
func (l *List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.root.prev; n != &l.root; n = n.prev {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Iterator returns a cursor over the elements front to back.
func (l *List[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{l: l, next: l.root.next, gen: l.gen}
}

// at walks from whichever end is closer. index must be in range.
func (l *List[T]) at(index int) *element[T] {
	if index < l.amount/2 {
		n := l.root.next
		for ; index > 0; index-- {
			n = n.next
		}
		return n
	}
	n := l.root.prev
	for i := l.amount - 1; i > index; i-- {
		n = n.prev
	}
	return n
}

func (l *List[T]) insertAfter(at *element[T], e T) {
	n := &element[T]{value: e, prev: at, next: at.next}
	at.next.prev = n
	at.next = n
	l.amount++
	l.gen++
}

func (l *List[T]) unlink(n *element[T]) {
	n.prev.next = n.next
	n.next.prev = n.prev
	n.prev, n.next = nil, nil
	l.amount--
	l.gen++
}

// Iterator walks a list front to back.
type Iterator[T comparable] struct {
	l    *List[T]
	next *element[T]
	last *element[T]
	gen  uint64
}

var _ collection.Iterator[int] = (*Iterator[int])(nil)

// HasNext reports whether Next will produce another element.
func (it *Iterator[T]) HasNext() bool {
	return it.next != &it.l.root && it.gen == it.l.gen
}

// Next returns the next element.
func (it *Iterator[T]) Next() (T, error) {
	var zero T
	if it.gen != it.l.gen {
		return zero, errors.Wrap(collection.ErrConcurrentModification, "linked list iterator")
	}
	if it.next == &it.l.root {
		return zero, errors.Wrap(collection.ErrEndOfIteration, "linked list iterator")
	}
	it.last = it.next
	it.next = it.next.next
	return it.last.value, nil
}

// Remove deletes the element last returned by Next.
func (it *Iterator[T]) Remove() error {
	if it.gen != it.l.gen {
		return errors.Wrap(collection.ErrConcurrentModification, "linked list iterator")
	}
	if it.last == nil {
		return errors.Wrap(collection.ErrNoCurrentElement, "linked list iterator")
	}
	it.l.unlink(it.last)
	it.last = nil
	it.gen = it.l.gen
	return nil
}
