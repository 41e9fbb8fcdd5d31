// Package loser implements a tournament tree (also known as a loser tree) for
// merging any number of sorted sequences into one sorted sequence. It is based
// on the work by Bryan Boreham (https://github.com/bboreham/go-loser).
//
// A loser tree is a binary tree where each internal node records the loser of
// the game played between its two subtrees and the overall winner is kept
// aside in node 0. Advancing the winning sequence only replays the games on
// the path from its leaf to the root, so each merged element costs O(log k)
// comparisons for k sequences.
//
// Any container in this module that exposes All() satisfies
// collection.Sequence, so sorted containers can be merged directly:
//
//	a := arraylist.Of(1, 3, 5)
//	b := arraylist.Of(2, 4, 6)
//
//	tree := loser.New(
//	    []collection.Sequence[int]{a, b},
//	    collection.Natural[int],
//	)
//	for v := range tree.All() {
//	    fmt.Println(v) // 1 2 3 4 5 6
//	}
//
// Layout: for k sequences the tree uses 2k nodes. Leaves live at positions
// k..2k-1, internal nodes at 1..k-1 and node N has parent N/2. Exhausted
// leaves lose every game, so no sentinel maximum value is needed.
package loser
