// Package oracle provides reference containers used to cross-check the
// containers of this module in tests and stress runs.
package oracle

import (
	"github.com/bywbilly/DS2014/collection"
	"github.com/google/btree"
)

type entry[T any] struct {
	value T
	seq   uint64
}

// Multiset is an ordered bag. Equal values are kept apart by insertion order.
type Multiset[T any] struct {
	tree *btree.BTreeG[entry[T]]
	less collection.Less[T]
	seq  uint64
}

// NewMultiset creates an empty multiset ordered by less.
func NewMultiset[T any](less collection.Less[T]) *Multiset[T] {
	return &Multiset[T]{
		tree: btree.NewG[entry[T]](2, func(a, b entry[T]) bool {
			if less(a.value, b.value) {
				return true
			}
			if less(b.value, a.value) {
				return false
			}
			return a.seq < b.seq
		}),
		less: less,
	}
}

// Insert adds one occurrence of v.
func (m *Multiset[T]) Insert(v T) {
	m.seq++
	m.tree.ReplaceOrInsert(entry[T]{value: v, seq: m.seq})
}

// Erase removes one occurrence of v and reports whether there was one.
func (m *Multiset[T]) Erase(v T) bool {
	var (
		found entry[T]
		ok    bool
	)
	// seq 0 sorts before every stored occurrence of v.
	m.tree.AscendGreaterOrEqual(entry[T]{value: v}, func(e entry[T]) bool {
		ok = !m.less(v, e.value) && !m.less(e.value, v)
		found = e
		return false
	})
	if ok {
		m.tree.Delete(found)
	}
	return ok
}

// Min returns the least value.
func (m *Multiset[T]) Min() (T, bool) {
	e, ok := m.tree.Min()
	return e.value, ok
}

// Len returns the number of occurrences held.
func (m *Multiset[T]) Len() int {
	return m.tree.Len()
}

// Values returns every occurrence in order.
func (m *Multiset[T]) Values() []T {
	out := make([]T, 0, m.tree.Len())
	m.tree.Ascend(func(e entry[T]) bool {
		out = append(out, e.value)
		return true
	})
	return out
}
