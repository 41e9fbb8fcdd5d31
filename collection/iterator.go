package collection

import (
	"iter"

	"github.com/cockroachdb/errors"
)

// Iterator is a single-use cursor over a container.
type Iterator[T any] interface {
	// HasNext reports whether Next will produce another element.
	HasNext() bool
	// Next returns the next element, or ErrEndOfIteration.
	Next() (T, error)
	// Remove deletes the element last returned by Next, or returns
	// ErrNoCurrentElement.
	Remove() error
}

// Sequence is anything that can be ranged over.
type Sequence[T any] interface {
	All() iter.Seq[T]
}

// Collect drains it into a slice. A container modified behind the iterator
// yields ErrConcurrentModification.
func Collect[T any](it Iterator[T]) ([]T, error) {
	var out []T
	for {
		v, err := it.Next()
		if errors.Is(err, ErrEndOfIteration) {
			return out, nil
		}
		if err != nil {
			return out, err
		}
		out = append(out, v)
	}
}

// RemoveIf walks it to exhaustion, removing every element for which pred
// returns true. It returns the number of removed elements.
func RemoveIf[T any](it Iterator[T], pred func(T) bool) (int, error) {
	removed := 0
	for {
		v, err := it.Next()
		if errors.Is(err, ErrEndOfIteration) {
			return removed, nil
		}
		if err != nil {
			return removed, err
		}
		if !pred(v) {
			continue
		}
		if err := it.Remove(); err != nil {
			return removed, err
		}
		removed++
	}
}

// Seq adapts it to a range-over-func sequence. A sequence cannot report
// errors, so ranging ends silently when Next fails, including when the
// container is modified behind the iterator. Use Collect to observe the error.
func Seq[T any](it Iterator[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for it.HasNext() {
			v, err := it.Next()
			if err != nil || !yield(v) {
				return
			}
		}
	}
}
