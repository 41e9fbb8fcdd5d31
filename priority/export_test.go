package priority

import (
	"github.com/cockroachdb/errors"
)

// CheckInvariants verifies the permutation bijection and the heap order.
func CheckInvariants[V any](q *Queue[V]) error {
	for pos := 1; pos <= q.amount; pos++ {
		id := q.identityOf[pos]
		if id < 1 || id > q.amount {
			return errors.Newf("position %d holds identity %d outside [1, %d]", pos, id, q.amount)
		}
		if q.posOf[id] != pos {
			return errors.Newf("posOf[identityOf[%d]] = %d", pos, q.posOf[id])
		}
		for _, child := range []int{2 * pos, 2*pos + 1} {
			if child <= q.amount && q.less(q.values[child], q.values[pos]) {
				return errors.Newf("child at %d sorts before its parent at %d", child, pos)
			}
		}
	}
	for id := 1; id <= q.amount; id++ {
		pos := q.posOf[id]
		if pos < 1 || pos > q.amount || q.identityOf[pos] != id {
			return errors.Newf("identityOf[posOf[%d]] is not %d", id, id)
		}
	}
	return nil
}
