package stress

import (
	"slices"

	"github.com/bywbilly/DS2014/arraylist"
	"github.com/bywbilly/DS2014/collection"
	"github.com/bywbilly/DS2014/deque"
	"github.com/bywbilly/DS2014/hashmap"
	"github.com/bywbilly/DS2014/internal/oracle"
	"github.com/bywbilly/DS2014/linkedlist"
	"github.com/bywbilly/DS2014/priority"
	"github.com/cockroachdb/errors"
)

func runPriorityQueue(r *round) error {
	q := priority.New[int]()
	model := oracle.NewMultiset[int](collection.Natural[int])

	for i := 0; i < r.cfg.Elements; i++ {
		v := r.value()
		q.Push(v)
		model.Insert(v)
		r.count("push")
		if err := checkFront(q, model); err != nil {
			return errors.Wrapf(err, "after push %d", i)
		}
	}

	it := q.Iterator()
	visited := 0
	for it.HasNext() {
		v, err := it.Next()
		if err != nil {
			return err
		}
		r.count("next")
		visited++
		if !r.remove() {
			continue
		}
		if err := it.Remove(); err != nil {
			return err
		}
		r.count("iterator_remove")
		if !model.Erase(v) {
			return errors.Newf("iterator yielded %d which was not queued", v)
		}
		if err := checkFront(q, model); err != nil {
			return errors.Wrapf(err, "after removing %d", v)
		}
	}
	if visited != r.cfg.Elements {
		return errors.Newf("iterator visited %d of %d elements", visited, r.cfg.Elements)
	}
	r.size = q.Len()

	for !q.Empty() {
		if err := checkFront(q, model); err != nil {
			return errors.Wrap(err, "while popping")
		}
		v, _ := q.Front()
		if err := q.Pop(); err != nil {
			return err
		}
		r.count("pop")
		model.Erase(v)
	}
	if model.Len() != 0 {
		return errors.Newf("queue drained with %d values left in the model", model.Len())
	}
	if err := q.Pop(); !errors.Is(err, collection.ErrEmpty) {
		return errors.Newf("pop on empty queue returned %v", err)
	}
	return nil
}

func checkFront(q *priority.Queue[int], model *oracle.Multiset[int]) error {
	if q.Len() != model.Len() {
		return errors.Newf("len %d, model holds %d", q.Len(), model.Len())
	}
	want, ok := model.Min()
	got, err := q.Front()
	if !ok {
		if !errors.Is(err, collection.ErrEmpty) {
			return errors.Newf("front of empty queue returned %v", err)
		}
		return nil
	}
	if err != nil {
		return err
	}
	if got != want {
		return errors.Newf("front %d, want %d", got, want)
	}
	return nil
}

func runHeapify(r *round) error {
	values := make([]int, r.cfg.Elements)
	for i := range values {
		values[i] = r.value()
	}
	sorted := slices.Clone(values)
	slices.Sort(sorted)

	heapified := priority.From(values)
	r.count("heapify")
	pushed := priority.New[int]()
	for _, v := range values {
		pushed.Push(v)
		r.count("push")
	}
	clone := heapified.Clone()
	r.size = clone.Len()

	for i := 0; !heapified.Empty(); i++ {
		a, _ := heapified.Front()
		b, err := pushed.Front()
		if err != nil {
			return errors.Wrapf(err, "pushed queue ended early at %d", i)
		}
		if a != b || a != sorted[i] {
			return errors.Newf("pop %d: heapified %d, pushed %d, want %d", i, a, b, sorted[i])
		}
		_ = heapified.Pop()
		_ = pushed.Pop()
		r.count("pop")
	}
	if !pushed.Empty() {
		return errors.Newf("pushed queue holds %d extra values", pushed.Len())
	}

	if err := sameValues(slices.Collect(clone.Drain()), sorted); err != nil {
		return errors.Wrap(err, "clone")
	}

	half := len(values) / 2
	merged := slices.Collect(priority.Merge(priority.From(values[:half]), priority.From(values[half:])))
	r.count("merge")
	return errors.Wrap(sameValues(merged, sorted), "merge")
}

func runDeque(r *round) error {
	d := deque.New[int]()
	var model []int
	for i := 0; i < r.cfg.Elements; i++ {
		v := r.value()
		if r.rng.IntN(2) == 0 {
			d.AddFirst(v)
			model = slices.Insert(model, 0, v)
			r.count("add_first")
		} else {
			d.AddLast(v)
			model = append(model, v)
			r.count("add_last")
		}
	}
	if err := sameValues(d.Values(), model); err != nil {
		return errors.Wrap(err, "after adds")
	}

	model, err := iterate(r, d.Iterator(), model, false)
	if err != nil {
		return errors.Wrap(err, "ascending")
	}
	model, err = iterate(r, d.DescendingIterator(), model, true)
	if err != nil {
		return errors.Wrap(err, "descending")
	}
	if err := sameValues(d.Values(), model); err != nil {
		return errors.Wrap(err, "after iteration")
	}
	r.size = d.Len()

	for len(model) > 0 {
		var (
			got  int
			want int
			err  error
		)
		if r.rng.IntN(2) == 0 {
			got, err = d.RemoveFirst()
			want, model = model[0], model[1:]
			r.count("remove_first")
		} else {
			got, err = d.RemoveLast()
			want, model = model[len(model)-1], model[:len(model)-1]
			r.count("remove_last")
		}
		if err != nil {
			return err
		}
		if got != want {
			return errors.Newf("removed %d, want %d", got, want)
		}
	}
	if _, err := d.RemoveFirst(); !errors.Is(err, collection.ErrEmpty) {
		return errors.Newf("remove on empty deque returned %v", err)
	}
	return nil
}

// list is the indexed surface shared by ArrayList and LinkedList.
type list interface {
	Add(e int)
	Insert(index int, e int) error
	Get(index int) (int, error)
	Set(index int, e int) error
	RemoveAt(index int) error
	Len() int
	Values() []int
}

func runList(r *round, l list, iterator func() collection.Iterator[int]) ([]int, error) {
	var model []int
	for i := 0; i < r.cfg.Elements; i++ {
		v := r.value()
		switch op := r.rng.IntN(4); {
		case op == 0:
			idx := r.rng.IntN(len(model) + 1)
			if err := l.Insert(idx, v); err != nil {
				return nil, err
			}
			model = slices.Insert(model, idx, v)
			r.count("insert")
		case op == 1 && len(model) > 0:
			idx := r.rng.IntN(len(model))
			if err := l.Set(idx, v); err != nil {
				return nil, err
			}
			model[idx] = v
			r.count("set")
		default:
			l.Add(v)
			model = append(model, v)
			r.count("add")
		}
	}
	for i := 0; i < r.cfg.Elements/10 && len(model) > 0; i++ {
		idx := r.rng.IntN(len(model))
		if err := l.RemoveAt(idx); err != nil {
			return nil, err
		}
		model = slices.Delete(model, idx, idx+1)
		r.count("remove_at")
	}
	if err := sameValues(l.Values(), model); err != nil {
		return nil, errors.Wrap(err, "after updates")
	}

	model, err := iterate(r, iterator(), model, false)
	if err != nil {
		return nil, err
	}
	if err := sameValues(l.Values(), model); err != nil {
		return nil, errors.Wrap(err, "after iteration")
	}

	for i := 0; i < len(model); i += 1 + r.rng.IntN(8) {
		got, err := l.Get(i)
		if err != nil {
			return nil, err
		}
		r.count("get")
		if got != model[i] {
			return nil, errors.Newf("get %d returned %d, want %d", i, got, model[i])
		}
	}
	if _, err := l.Get(len(model)); !errors.Is(err, collection.ErrIndexOutOfBound) {
		return nil, errors.Newf("get past the end returned %v", err)
	}
	r.size = l.Len()
	return model, nil
}

func runArrayList(r *round) error {
	l := arraylist.New[int]()
	model, err := runList(r, l, func() collection.Iterator[int] { return l.Iterator() })
	if err != nil {
		return err
	}
	if len(model) > 0 && l.IndexOf(model[0]) != slices.Index(model, model[0]) {
		return errors.Newf("index of %d disagrees with the model", model[0])
	}
	return nil
}

func runLinkedList(r *round) error {
	l := linkedlist.New[int]()
	model, err := runList(r, l, func() collection.Iterator[int] { return l.Iterator() })
	if err != nil {
		return err
	}

	backward := slices.Collect(l.Backward())
	slices.Reverse(backward)
	if err := sameValues(backward, model); err != nil {
		return errors.Wrap(err, "backward")
	}

	for len(model) > 0 {
		got, err := l.RemoveFirst()
		if err != nil {
			return err
		}
		r.count("remove_first")
		if got != model[0] {
			return errors.Newf("remove first returned %d, want %d", got, model[0])
		}
		model = model[1:]
		if len(model) == 0 {
			break
		}
		got, err = l.RemoveLast()
		if err != nil {
			return err
		}
		r.count("remove_last")
		if want := model[len(model)-1]; got != want {
			return errors.Newf("remove last returned %d, want %d", got, want)
		}
		model = model[:len(model)-1]
	}
	if !l.Empty() {
		return errors.Newf("list holds %d values after draining", l.Len())
	}
	return nil
}

func runHashMap(r *round) error {
	m := hashmap.New[int, int](hashmap.Integer[int])
	model := make(map[int]int)
	keys := max(r.cfg.Elements, 1)

	for i := 0; i < r.cfg.Elements; i++ {
		k, v := r.rng.IntN(keys), r.value()
		if r.rng.IntN(5) > 0 {
			m.Put(k, v)
			model[k] = v
			r.count("put")
			continue
		}
		err := m.Remove(k)
		r.count("remove")
		if _, ok := model[k]; ok {
			if err != nil {
				return errors.Wrapf(err, "remove present key %d", k)
			}
			delete(model, k)
		} else if !errors.Is(err, collection.ErrNotFound) {
			return errors.Newf("remove absent key %d returned %v", k, err)
		}
	}
	if err := sameEntries(m, model); err != nil {
		return errors.Wrap(err, "after updates")
	}

	before, seen := len(model), 0
	it := m.Iterator()
	for it.HasNext() {
		e, err := it.Next()
		if err != nil {
			return err
		}
		r.count("next")
		seen++
		if want, ok := model[e.Key]; !ok || want != e.Value {
			return errors.Newf("iterator yielded %d=%d, model has %d (present %t)", e.Key, e.Value, want, ok)
		}
		if r.remove() {
			if err := it.Remove(); err != nil {
				return err
			}
			r.count("iterator_remove")
			delete(model, e.Key)
		}
	}
	if seen != before {
		return errors.Newf("iterator visited %d of %d entries", seen, before)
	}
	r.size = m.Len()
	return errors.Wrap(sameEntries(m, model), "after iteration")
}

func sameEntries(m *hashmap.Map[int, int], model map[int]int) error {
	if m.Len() != len(model) {
		return errors.Newf("len %d, model holds %d", m.Len(), len(model))
	}
	for k, want := range model {
		got, err := m.Get(k)
		if err != nil {
			return errors.Wrapf(err, "get %d", k)
		}
		if got != want {
			return errors.Newf("get %d returned %d, want %d", k, got, want)
		}
	}
	for k, v := range m.All() {
		if want, ok := model[k]; !ok || want != v {
			return errors.Newf("map holds %d=%d which the model does not", k, v)
		}
	}
	return nil
}

// iterate walks it alongside model, removing elements at random, and returns
// the model with the same elements removed.
func iterate(r *round, it collection.Iterator[int], model []int, descending bool) ([]int, error) {
	i, step := 0, 1
	if descending {
		i, step = len(model)-1, -1
	}
	for it.HasNext() {
		v, err := it.Next()
		if err != nil {
			return nil, err
		}
		r.count("next")
		if i < 0 || i >= len(model) {
			return nil, errors.Newf("iterator yielded %d past the end", v)
		}
		if v != model[i] {
			return nil, errors.Newf("iterator yielded %d at %d, want %d", v, i, model[i])
		}
		if r.remove() {
			if err := it.Remove(); err != nil {
				return nil, err
			}
			r.count("iterator_remove")
			model = slices.Delete(model, i, i+1)
			if !descending {
				continue
			}
		}
		i += step
	}
	if (descending && i != -1) || (!descending && i != len(model)) {
		return nil, errors.Newf("iterator stopped at %d of %d", i, len(model))
	}
	return model, nil
}

func sameValues(got, want []int) error {
	if slices.Equal(got, want) {
		return nil
	}
	if len(got) != len(want) {
		return errors.Newf("got %d values, want %d", len(got), len(want))
	}
	for i := range got {
		if got[i] != want[i] {
			return errors.Newf("value %d is %d, want %d", i, got[i], want[i])
		}
	}
	return nil
}
