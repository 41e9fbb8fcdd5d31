// Package loser Taken from talk: https://github.com/bboreham/go-loser/blob/iter/tree.go.
// Thank you Bryan
package loser

import (
	"iter"

	"github.com/bywbilly/DS2014/collection"
)

// New creates a tree merging sequences, each of which must already be sorted
// by less.
func New[E any](sequences []collection.Sequence[E], less collection.Less[E]) *Tree[E] {
	return &Tree[E]{
		sequences: sequences,
		less:      less,
	}
}

// Tree merges sorted sequences. Node 0 holds the winner of the contest.
type Tree[E any] struct {
	nodes     []node[E]
	sequences []collection.Sequence[E]
	less      collection.Less[E]
}

type node[E any] struct {
	index int              // Leaf that lost here, or the winning leaf for node 0.
	value E                // Current head of the sequence. Leaves only.
	done  bool             // Sequence exhausted. Leaves only.
	next  func() (E, bool) // Leaves only.
}

// All yields the merged sequence. Each call restarts every input sequence.
func (t *Tree[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		k := len(t.sequences)
		if k == 0 {
			return
		}

		t.nodes = make([]node[E], 2*k)
		for i, s := range t.sequences {
			next, stop := iter.Pull(s.All())
			//nolint:gocritic // is not a leak.
			defer stop()
			t.nodes[k+i].next = next
			t.moveNext(k + i)
		}
		t.nodes[0].index = t.playGame(1)

		for w := t.nodes[0].index; !t.nodes[w].done; w = t.nodes[0].index {
			if !yield(t.nodes[w].value) {
				return
			}
			t.moveNext(w)
			t.replayGames(w)
		}
	}
}

func (t *Tree[E]) moveNext(leaf int) {
	n := &t.nodes[leaf]
	v, ok := n.next()
	n.value = v
	n.done = !ok
}

// beats reports whether leaf a wins against leaf b.
func (t *Tree[E]) beats(a, b int) bool {
	if t.nodes[a].done {
		return false
	}
	if t.nodes[b].done {
		return true
	}
	return t.less(t.nodes[a].value, t.nodes[b].value)
}

// Find the winner at position pos; if it is a non-leaf node, store the loser.
// pos must be >= 1 and < len(t.nodes).
func (t *Tree[E]) playGame(pos int) int {
	if pos >= len(t.nodes)/2 {
		return pos
	}
	left := t.playGame(pos * 2)
	right := t.playGame(pos*2 + 1)
	if t.beats(left, right) {
		t.nodes[pos].index = right
		return left
	}
	t.nodes[pos].index = left
	return right
}

// Starting at leaf, which was the winner, re-consider all games up to the root.
func (t *Tree[E]) replayGames(leaf int) {
	winner := leaf
	for n := parent(leaf); n != 0; n = parent(n) {
		if t.beats(t.nodes[n].index, winner) {
			// The old loser is the new winner.
			t.nodes[n].index, winner = winner, t.nodes[n].index
		}
	}
	t.nodes[0].index = winner
}

func parent(i int) int { return i >> 1 }
