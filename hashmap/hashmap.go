// Package hashmap implements a hash map with separate chaining.
//
// Each bucket is a singly linked chain of entries. The bucket array is a
// power of two in length and doubles once the load factor passes 3/4. Hashes
// are cached per entry, so growing never calls the hasher again.
package hashmap

import (
	"encoding/binary"
	"hash/maphash"
	"iter"

	"github.com/bywbilly/DS2014/collection"
	"github.com/cespare/xxhash/v2"
	"github.com/cockroachdb/errors"
	"golang.org/x/exp/constraints"
)

const defaultBuckets = 16

// Hasher maps a key to a 64-bit hash. Equal keys must hash equally.
type Hasher[K any] func(K) uint64

// String hashes a string key with xxHash.
func String(s string) uint64 {
	return xxhash.Sum64String(s)
}

// Integer hashes an integer key with xxHash over its little-endian bytes.
func Integer[K constraints.Integer](k K) uint64 {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], uint64(k))
	return xxhash.Sum64(b[:])
}

// Entry is a key-value pair held by a Map.
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

type node[K comparable, V any] struct {
	entry Entry[K, V]
	hash  uint64
	next  *node[K, V]
}

// Map is a hash map from K to V. The zero value is not usable; call New.
type Map[K comparable, V any] struct {
	buckets []*node[K, V]
	amount  int
	hash    Hasher[K]
	gen     uint64
}

// New creates an empty map hashing keys with hash.
func New[K comparable, V any](hash Hasher[K]) *Map[K, V] {
	return &Map[K, V]{
		buckets: make([]*node[K, V], defaultBuckets),
		hash:    hash,
	}
}

// NewComparable creates an empty map hashing keys with a per-map random seed.
func NewComparable[K comparable, V any]() *Map[K, V] {
	seed := maphash.MakeSeed()
	return New[K, V](func(k K) uint64 {
		return maphash.Comparable(seed, k)
	})
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int {
	return m.amount
}

// Empty reports whether the map holds no entries.
func (m *Map[K, V]) Empty() bool {
	return m.amount == 0
}

// Put maps key to value, replacing any previous value.
func (m *Map[K, V]) Put(key K, value V) {
	h := m.hash(key)
	if n := m.find(key, h); n != nil {
		n.entry.Value = value
		return
	}

	if 4*(m.amount+1) > 3*len(m.buckets) {
		m.grow()
	}
	b := m.bucket(h)
	m.buckets[b] = &node[K, V]{
		entry: Entry[K, V]{Key: key, Value: value},
		hash:  h,
		next:  m.buckets[b],
	}
	m.amount++
	m.gen++
}

// Get returns the value mapped to key.
func (m *Map[K, V]) Get(key K) (V, error) {
	if n := m.find(key, m.hash(key)); n != nil {
		return n.entry.Value, nil
	}
	var zero V
	return zero, errors.Wrapf(collection.ErrNotFound, "get %v", key)
}

// Lookup returns the value mapped to key and whether there was one.
func (m *Map[K, V]) Lookup(key K) (V, bool) {
	if n := m.find(key, m.hash(key)); n != nil {
		return n.entry.Value, true
	}
	var zero V
	return zero, false
}

// ContainsKey reports whether key is mapped.
func (m *Map[K, V]) ContainsKey(key K) bool {
	return m.find(key, m.hash(key)) != nil
}

// ContainsValue reports whether any entry holds a value equal to value under
// eq.
func (m *Map[K, V]) ContainsValue(value V, eq func(a, b V) bool) bool {
	for _, head := range m.buckets {
		for n := head; n != nil; n = n.next {
			if eq(n.entry.Value, value) {
				return true
			}
		}
	}
	return false
}

// Remove deletes the entry for key.
func (m *Map[K, V]) Remove(key K) error {
	h := m.hash(key)
	n := m.find(key, h)
	if n == nil {
		return errors.Wrapf(collection.ErrNotFound, "remove %v", key)
	}
	m.unlink(n)
	return nil
}

// Clear removes every entry but keeps the bucket array.
func (m *Map[K, V]) Clear() {
	clear(m.buckets)
	m.amount = 0
	m.gen++
}

// Clone returns an independent copy of the map. Values are copied shallowly.
func (m *Map[K, V]) Clone() *Map[K, V] {
	c := &Map[K, V]{
		buckets: make([]*node[K, V], len(m.buckets)),
		amount:  m.amount,
		hash:    m.hash,
	}
	for i, head := range m.buckets {
		tail := &c.buckets[i]
		for n := head; n != nil; n = n.next {
			*tail = &node[K, V]{entry: n.entry, hash: n.hash}
			tail = &(*tail).next
		}
	}
	return c
}

// All yields every entry in unspecified order.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for e := range collection.Seq[Entry[K, V]](m.Iterator()) {
			if !yield(e.Key, e.Value) {
				return
			}
		}
	}
}

// Iterator returns a cursor over the entries in unspecified order.
func (m *Map[K, V]) Iterator() *Iterator[K, V] {
	it := &Iterator[K, V]{m: m, bucket: -1, gen: m.gen}
	it.advance(nil)
	return it
}

func (m *Map[K, V]) bucket(h uint64) int {
	return int(h & uint64(len(m.buckets)-1))
}

func (m *Map[K, V]) find(key K, h uint64) *node[K, V] {
	for n := m.buckets[m.bucket(h)]; n != nil; n = n.next {
		if n.hash == h && n.entry.Key == key {
			return n
		}
	}
	return nil
}

func (m *Map[K, V]) unlink(target *node[K, V]) {
	for link := &m.buckets[m.bucket(target.hash)]; *link != nil; link = &(*link).next {
		if *link == target {
			*link = target.next
			m.amount--
			m.gen++
			return
		}
	}
}

func (m *Map[K, V]) grow() {
	buckets := make([]*node[K, V], 2*len(m.buckets))
	mask := uint64(len(buckets) - 1)
	for _, head := range m.buckets {
		for n := head; n != nil; {
			next := n.next
			b := n.hash & mask
			n.next = buckets[b]
			buckets[b] = n
			n = next
		}
	}
	m.buckets = buckets
}

// Iterator walks the entries of a map.
type Iterator[K comparable, V any] struct {
	m      *Map[K, V]
	bucket int
	next   *node[K, V]
	last   *node[K, V]
	gen    uint64
}

var _ collection.Iterator[Entry[string, int]] = (*Iterator[string, int])(nil)

// HasNext reports whether Next will produce another entry.
func (it *Iterator[K, V]) HasNext() bool {
	return it.next != nil && it.gen == it.m.gen
}

// Next returns the next entry.
func (it *Iterator[K, V]) Next() (Entry[K, V], error) {
	if it.gen != it.m.gen {
		return Entry[K, V]{}, errors.Wrap(collection.ErrConcurrentModification, "hash map iterator")
	}
	if it.next == nil {
		return Entry[K, V]{}, errors.Wrap(collection.ErrEndOfIteration, "hash map iterator")
	}
	it.last = it.next
	it.advance(it.last)
	return it.last.entry, nil
}

// Remove deletes the entry last returned by Next.
func (it *Iterator[K, V]) Remove() error {
	if it.gen != it.m.gen {
		return errors.Wrap(collection.ErrConcurrentModification, "hash map iterator")
	}
	if it.last == nil {
		return errors.Wrap(collection.ErrNoCurrentElement, "hash map iterator")
	}
	it.m.unlink(it.last)
	it.last = nil
	it.gen = it.m.gen
	return nil
}

// advance points next at the entry following from, or the first entry when
// from is nil.
func (it *Iterator[K, V]) advance(from *node[K, V]) {
	if from != nil && from.next != nil {
		it.next = from.next
		return
	}
	for it.bucket++; it.bucket < len(it.m.buckets); it.bucket++ {
		if head := it.m.buckets[it.bucket]; head != nil {
			it.next = head
			return
		}
	}
	it.next = nil
}
