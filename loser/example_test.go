package loser_test

import (
	"fmt"

	"github.com/bywbilly/DS2014/arraylist"
	"github.com/bywbilly/DS2014/collection"
	"github.com/bywbilly/DS2014/deque"
	"github.com/bywbilly/DS2014/loser"
)

// ExampleNew_basic demonstrates basic usage of a loser tree to merge sorted sequences.
func ExampleNew_basic() {
	// Create three sorted sequences
	seq1 := arraylist.Of(1, 4, 7)
	seq2 := arraylist.Of(2, 5, 8)
	seq3 := arraylist.Of(3, 6, 9)

	tree := loser.New(
		[]collection.Sequence[int]{seq1, seq2, seq3},
		collection.Natural[int],
	)

	for v := range tree.All() {
		fmt.Printf("%d ", v)
	}

	// Output: 1 2 3 4 5 6 7 8 9
}

// ExampleNew_strings shows merging containers of different kinds.
func ExampleNew_strings() {
	seq1 := arraylist.Of("apple", "dog", "zebra")
	seq2 := deque.Of("banana", "elephant")
	seq3 := arraylist.Of("cat", "fish")

	tree := loser.New(
		[]collection.Sequence[string]{seq1, seq2, seq3},
		collection.Natural[string],
	)

	for v := range tree.All() {
		fmt.Printf("%s ", v)
	}

	// Output: apple banana cat dog elephant fish zebra
}

// ExampleNew_descending demonstrates merging with a reversed ordering.
func ExampleNew_descending() {
	seq1 := arraylist.Of(9, 5, 1)
	seq2 := arraylist.New[int]() // Empty sequence
	seq3 := arraylist.Of(8, 2)

	tree := loser.New(
		[]collection.Sequence[int]{seq1, seq2, seq3},
		collection.Reverse[int](collection.Natural[int]),
	)

	for v := range tree.All() {
		fmt.Printf("%d ", v)
	}

	// Output: 9 8 5 2 1
}
