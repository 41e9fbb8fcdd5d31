package collection

import (
	"golang.org/x/exp/constraints"
)

// Less reports whether a sorts strictly before b. Implementations must be a
// strict weak ordering.
type Less[T any] func(a, b T) bool

// Natural orders values with the < operator.
func Natural[T constraints.Ordered](a, b T) bool {
	return a < b
}

// Reverse inverts less, turning a min ordering into a max ordering.
func Reverse[T any](less Less[T]) Less[T] {
	return func(a, b T) bool {
		return less(b, a)
	}
}
