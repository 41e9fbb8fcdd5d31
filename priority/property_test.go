package priority_test

import (
	"slices"
	"testing"

	"github.com/bywbilly/DS2014/collection"
	"github.com/bywbilly/DS2014/priority"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// apply runs op against q and the model slice, returning the updated model.
// Ops below 50 push, 50..74 pop, and the rest drive an iterator that removes
// every element congruent to op modulo 3.
func apply(q *priority.Queue[int], model []int, op int) ([]int, bool) {
	switch {
	case op < 50:
		q.Push(op)
		return append(model, op), q.Len() == len(model)+1
	case op < 75:
		if len(model) == 0 {
			return model, q.Pop() != nil
		}
		front, err := q.Front()
		if err != nil || q.Pop() != nil {
			return model, false
		}
		i := slices.Index(model, front)
		return slices.Delete(model, i, i+1), q.Len() == len(model)-1
	default:
		before := q.Len()
		n, err := collection.RemoveIf[int](q.Iterator(), func(v int) bool { return v%3 == op%3 })
		if err != nil {
			return model, false
		}
		model = slices.DeleteFunc(model, func(v int) bool { return v%3 == op%3 })
		return model, q.Len() == before-n && q.Len() == len(model)
	}
}

func TestQueueProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("invariants hold after any operation sequence", prop.ForAll(
		func(ops []int) bool {
			q := priority.New[int](priority.WithCapacity(1))
			var model []int
			for _, op := range ops {
				var ok bool
				if model, ok = apply(q, model, op); !ok {
					return false
				}
				if priority.CheckInvariants(q) != nil {
					return false
				}
				if q.Empty() != (len(model) == 0) {
					return false
				}
				if len(model) > 0 {
					front, err := q.Front()
					if err != nil || front != slices.Min(model) {
						return false
					}
				}
			}
			return true
		},
		gen.SliceOf(gen.IntRange(0, 99)),
	))

	properties.Property("heapify yields a sorted drain", prop.ForAll(
		func(values []int) bool {
			q := priority.From(values)
			if priority.CheckInvariants(q) != nil {
				return false
			}
			want := slices.Clone(values)
			slices.Sort(want)
			got := slices.Collect(q.Drain())
			return slices.Equal(want, got) && q.Empty()
		},
		gen.SliceOf(gen.Int()),
	))

	properties.Property("iteration visits every element once", prop.ForAll(
		func(values []int, removeMask []bool) bool {
			q := priority.From(values)
			var visited, kept []int
			it := q.Iterator()
			for i := 0; it.HasNext(); i++ {
				v, err := it.Next()
				if err != nil {
					return false
				}
				visited = append(visited, v)
				if i < len(removeMask) && removeMask[i] {
					if it.Remove() != nil {
						return false
					}
					continue
				}
				kept = append(kept, v)
			}
			slices.Sort(visited)
			want := slices.Clone(values)
			slices.Sort(want)
			remaining := slices.Collect(q.All())
			slices.Sort(remaining)
			slices.Sort(kept)
			return slices.Equal(want, visited) && slices.Equal(kept, remaining)
		},
		gen.SliceOf(gen.IntRange(-50, 50)),
		gen.SliceOf(gen.Bool()),
	))

	properties.TestingRun(t)
}
