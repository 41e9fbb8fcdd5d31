// Package priority implements a generic binary min-heap priority queue whose
// iterator can delete arbitrary elements while the heap keeps reshuffling.
//
// The queue keeps three parallel 1-based arrays: the heap of values, and a
// bijection between heap positions and identities. An identity is a stable
// name for a queued element. It is assigned when the element is pushed and
// travels with the element however often sifting moves it. Every exchange of
// two heap positions goes through a single swap primitive that repairs both
// halves of the bijection, so the following hold after every operation:
//
//   - identityOf[posOf[id]] == id for every live identity
//   - posOf[identityOf[pos]] == pos for every position in [1, Len()]
//   - no child compares strictly less than its parent
//
// Iterators walk identities, not positions, so enumeration is unaffected by
// the heap churn their own Remove causes. Every element present when the
// iterator was created is produced exactly once unless it is removed first.
// The enumeration order is otherwise unspecified.
//
// Basic usage:
//
//	pq := priority.New[int]()
//	pq.Push(5)
//	pq.Push(3)
//	pq.Push(8)
//
//	front, err := pq.Front() // 3
//	if err != nil {
//	    return err
//	}
//
//	// Drop every even element, in whatever order the iterator yields them.
//	it := pq.Iterator()
//	for it.HasNext() {
//	    v, _ := it.Next()
//	    if v%2 == 0 {
//	        _ = it.Remove()
//	    }
//	}
//
// Queues built with FromFunc are heapified bottom-up in O(n). A custom
// ordering is supplied with NewFunc; it must be a strict weak ordering.
//
// A Queue is not safe for concurrent use. While an iterator is in use the
// queue may only be mutated through that iterator's Remove; any other
// mutation makes the iterator return collection.ErrConcurrentModification.
package priority
