package priority

import (
	"github.com/bywbilly/DS2014/collection"
	"github.com/cockroachdb/errors"
)

// Iterator walks the identities of a queue from the highest down to 1,
// resolving each to its current heap position when it is produced.
type Iterator[V any] struct {
	q         *Queue[V]
	remaining int    // identities 1..remaining are still to be produced
	current   int    // identity last produced, 0 if none may be removed
	gen       uint64 // queue generation this iterator is in step with
}

var _ collection.Iterator[int] = (*Iterator[int])(nil)

// HasNext reports whether Next will produce another element.
func (it *Iterator[V]) HasNext() bool {
	return it.remaining > 0 && it.gen == it.q.gen
}

// Next returns the next element.
func (it *Iterator[V]) Next() (V, error) {
	var zero V
	if err := it.checkGen(); err != nil {
		return zero, err
	}
	if it.remaining == 0 {
		return zero, errors.Wrap(collection.ErrEndOfIteration, "priority queue iterator")
	}

	it.current = it.remaining
	it.remaining--
	return it.q.values[it.q.posOf[it.current]], nil
}

// Remove deletes the element last returned by Next from the queue.
func (it *Iterator[V]) Remove() error {
	if err := it.checkGen(); err != nil {
		return err
	}
	if it.current == 0 {
		return errors.Wrap(collection.ErrNoCurrentElement, "priority queue iterator")
	}

	it.q.removeAt(it.q.posOf[it.current])
	it.q.gen++
	it.gen = it.q.gen
	it.current = 0
	return nil
}

func (it *Iterator[V]) checkGen() error {
	if it.gen != it.q.gen {
		return errors.Wrap(collection.ErrConcurrentModification, "priority queue iterator")
	}
	return nil
}
