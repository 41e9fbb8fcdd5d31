package priority

// alloc sizes the backing arrays for n elements. Position 0 is never used.
func (q *Queue[V]) alloc(n int) {
	q.values = make([]V, n+1)
	q.posOf = make([]int, n+1)
	q.identityOf = make([]int, n+1)
}

// grow doubles the backing arrays.
func (q *Queue[V]) grow() {
	n := 2 * len(q.values)

	values := make([]V, n)
	posOf := make([]int, n)
	identityOf := make([]int, n)
	copy(values, q.values[:q.amount+1])
	copy(posOf, q.posOf[:q.amount+1])
	copy(identityOf, q.identityOf[:q.amount+1])

	q.values, q.posOf, q.identityOf = values, posOf, identityOf
}

// lessAt compares the values at positions i and j.
func (q *Queue[V]) lessAt(i, j int) bool {
	return q.less(q.values[i], q.values[j])
}

// swap exchanges the elements at positions i and j. Identities travel with
// their values. This is the only place positions are exchanged.
func (q *Queue[V]) swap(i, j int) {
	q.values[i], q.values[j] = q.values[j], q.values[i]
	q.identityOf[i], q.identityOf[j] = q.identityOf[j], q.identityOf[i]
	q.posOf[q.identityOf[i]] = i
	q.posOf[q.identityOf[j]] = j
}

// up moves the element at position i towards the root.
func (q *Queue[V]) up(i int) {
	for i != 1 && q.lessAt(i, i/2) {
		q.swap(i, i/2)
		i /= 2
	}
}

// down moves the element at position i towards the leaves. The left child
// wins unless the right one is strictly smaller.
func (q *Queue[V]) down(i int) {
	for 2*i <= q.amount {
		child := 2 * i
		if child+1 <= q.amount && q.lessAt(child+1, child) {
			child++
		}
		if !q.lessAt(child, i) {
			break
		}
		q.swap(i, child)
		i = child
	}
}

// removeAt deletes the element at position i. The last element takes its
// place and is sifted both ways, since its relation to the new parent and
// children is unknown.
//
// The removed identity is retired by renaming the highest identity to it, so
// identities stay dense in [1, amount]. An iterator only ever removes an
// identity it has produced, and it produces identities from the highest
// down, so the renamed element has been produced already.
func (q *Queue[V]) removeAt(i int) {
	last := q.amount
	q.swap(i, last)

	retired := q.identityOf[last]
	if retired != last {
		at := q.posOf[last]
		q.identityOf[at] = retired
		q.posOf[retired] = at
	}

	var zero V
	q.values[last] = zero
	q.amount--

	if i <= q.amount {
		q.up(i)
		q.down(i)
	}
}
