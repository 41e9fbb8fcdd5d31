package collection

import (
	"github.com/cockroachdb/errors"
)

var (
	// ErrEmpty is returned when an element is requested from, or removed
	// from, an empty container.
	ErrEmpty = errors.New("collection is empty")
	// ErrEndOfIteration is returned by Next when the iterator is exhausted.
	ErrEndOfIteration = errors.New("iteration has no more elements")
	// ErrNoCurrentElement is returned by Remove when no element has been
	// produced since the iterator was created or since the last Remove.
	ErrNoCurrentElement = errors.New("iterator has no current element")
	// ErrIndexOutOfBound is returned for positional access outside [0, size).
	ErrIndexOutOfBound = errors.New("index out of bound")
	// ErrNotFound is returned when a key or value is not held by the container.
	ErrNotFound = errors.New("element not found")
	// ErrConcurrentModification is returned by an iterator whose container was
	// mutated by something other than the iterator itself.
	ErrConcurrentModification = errors.New("collection modified outside of iterator")
)

// OutOfBound wraps ErrIndexOutOfBound with the offending index and the size
// of the container.
func OutOfBound(index, size int) error {
	return errors.Wrapf(ErrIndexOutOfBound, "index %d, size %d", index, size)
}

// CheckIndex returns an OutOfBound error unless 0 <= index < size.
func CheckIndex(index, size int) error {
	if index < 0 || index >= size {
		return OutOfBound(index, size)
	}
	return nil
}
