// Package collection holds the pieces shared by every container in this
// module: the error kinds returned on misuse, the explicit iterator protocol
// and the comparator type used by ordered containers.
//
// Every container reports failures through the sentinel errors declared here,
// wrapped with context. Callers match on the kind with errors.Is:
//
//	if _, err := q.Front(); errors.Is(err, collection.ErrEmpty) {
//	    // nothing queued
//	}
//
// Iterators follow a hasNext/next/remove protocol. Remove deletes the element
// most recently produced by Next and may be called at most once per Next:
//
//	it := l.Iterator()
//	for it.HasNext() {
//	    v, err := it.Next()
//	    if err != nil {
//	        return err
//	    }
//	    if v%2 == 0 {
//	        if err := it.Remove(); err != nil {
//	            return err
//	        }
//	    }
//	}
//
// An iterator is a short-lived view. Mutating its container through any path
// other than the iterator's own Remove makes later calls on that iterator
// return ErrConcurrentModification.
package collection
