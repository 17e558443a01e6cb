package depq

import "github.com/negrel/assert"

// Interval-heap discipline. Slots pair up as intervals (2k, 2k+1): the even
// slot holds the min side, the odd slot the max side, and the root interval
// is (0, 1). Min sides form a min-heap, max sides a max-heap, and within
// every interval min <= max, so both extrema are at the root in O(1) and
// every repair is O(log n). A trailing singleton (odd store length) plays
// both sides of its own interval.
//
// Subpriorities ride along in every comparison: minAbove and maxAbove both
// break priority ties toward the smaller subpriority, and ivPairFix keeps
// the smaller subpriority on the min side of a priority-tied interval. That
// keeps equal-priority elements draining in insertion order from both ends.

// min-side parent of j, valid for j >= 2.
func ivParentMin(j int) int {
	return ((j - 2) / 2) &^ 1
}

// max-side parent of j, valid for j >= 2. The parent interval is always
// complete because both of its slots precede j.
func ivParentMax(j int) int {
	return ivParentMin(j) + 1
}

// min side of the first child interval of the interval containing i.
func ivChildMin(i int) int {
	return (i&^1)*2 + 2
}

// max-side role of the interval based at even index b: its odd slot, or b
// itself when b is a trailing singleton.
func ivMaxSideOf(b, r int) int {
	if b+1 < r {
		return b + 1
	}
	return b
}

// ivPairFix swaps the two sides of the interval containing i when they are
// inverted on priority, or on subpriority at equal priority.
func (q *Queue[V, P]) ivPairFix(i, r int) {
	m := i &^ 1
	if m+1 >= r {
		return
	}
	c := q.cmp(q.store[m].prio, q.store[m+1].prio)
	if c > 0 || (c == 0 && q.store[m].sub > q.store[m+1].sub) {
		q.swap(m, m+1)
	}
}

// ivUpMin sifts the element at min-side i toward the root along min sides,
// re-fixing the pair it leaves behind after every swap.
func (q *Queue[V, P]) ivUpMin(i, r int) bool {
	moved := false
	for i >= 2 {
		p := ivParentMin(i)
		if !q.minAbove(i, p) {
			break
		}
		q.swap(i, p)
		q.ivPairFix(i, r)
		i = p
		moved = true
	}
	return moved
}

// ivUpMax sifts the element at i toward the root along max sides. i is
// normally a max side but may be a trailing singleton, which is bounded by
// its max-side parent like any other element.
func (q *Queue[V, P]) ivUpMax(i, r int) bool {
	moved := false
	for i >= 2 {
		p := ivParentMax(i)
		if !q.maxAbove(i, p) {
			break
		}
		q.swap(i, p)
		q.ivPairFix(i, r)
		i = p
		moved = true
	}
	return moved
}

// ivDownMin sinks the element at min-side i toward the leaves, always into
// the smaller of the child min sides. When the sunk element overshoots the
// max side of its new interval the pair swap parks it there, and the loop
// carries on with whatever now occupies the min side.
func (q *Queue[V, P]) ivDownMin(i, r int) bool {
	at := i
	for {
		c := ivChildMin(i)
		if c >= r {
			break
		}
		if c2 := c + 2; c2 < r && q.minAbove(c2, c) {
			c = c2
		}
		if !q.minAbove(c, i) {
			break
		}
		q.swap(i, c)
		q.ivPairFix(c, r)
		i = c
	}
	return i > at
}

// ivDownMax is the max-side mirror of ivDownMin, sinking along the larger of
// the child max sides. A trailing singleton counts as the max of its own
// interval.
func (q *Queue[V, P]) ivDownMax(i, r int) bool {
	at := i
	for {
		b := ivChildMin(i)
		if b >= r {
			break
		}
		c := ivMaxSideOf(b, r)
		if b2 := b + 2; b2 < r {
			if c2 := ivMaxSideOf(b2, r); q.maxAbove(c2, c) {
				c = c2
			}
		}
		if !q.maxAbove(c, i) {
			break
		}
		q.swap(i, c)
		q.ivPairFix(c, r)
		i = c
	}
	return i > at
}

// ivUpSub lifts the element at i across equal-priority ancestors on its own
// side while its subpriority orders it earlier.
func (q *Queue[V, P]) ivUpSub(i, r int) {
	for i >= 2 {
		var p int
		if i%2 == 0 {
			p = ivParentMin(i)
		} else {
			p = ivParentMax(i)
		}
		if q.cmp(q.store[i].prio, q.store[p].prio) != 0 || q.store[i].sub >= q.store[p].sub {
			break
		}
		q.swap(i, p)
		q.ivPairFix(i, r)
		i = p
	}
}

// ivDownSub pushes the element at i below equal-priority descendants on its
// own side with smaller subpriorities.
func (q *Queue[V, P]) ivDownSub(i, r int) {
	for {
		b := ivChildMin(i)
		if b >= r {
			return
		}
		c1, c2 := b, b+2
		if i%2 == 1 {
			c1 = ivMaxSideOf(b, r)
			if c2 < r {
				c2 = ivMaxSideOf(c2, r)
			}
		}
		c := -1
		if q.cmp(q.store[c1].prio, q.store[i].prio) == 0 && q.store[c1].sub < q.store[i].sub {
			c = c1
		}
		if c2 < r && q.cmp(q.store[c2].prio, q.store[i].prio) == 0 && q.store[c2].sub < q.store[i].sub {
			if c < 0 || q.store[c2].sub < q.store[c].sub {
				c = c2
			}
		}
		if c < 0 {
			return
		}
		q.swap(i, c)
		q.ivPairFix(c, r)
		i = c
	}
}

// ivAdjust repairs position i back into a valid interval heap over
// store[0:r]. It is the single repair entry used by insert integration,
// priority updates and deletes: normalize the element's own interval, run
// the side-appropriate up pass, fall back to the down pass if it did not
// rise, then settle residual subpriority order among priority-tied chains.
func (q *Queue[V, P]) ivAdjust(i, r int) {
	if r <= 1 || i >= r {
		return
	}
	assert.Equal(i, q.store[i].loc.index)

	loc := q.store[i].loc
	var partner *Locator[V, P]
	if j := i ^ 1; j < r {
		partner = q.store[j].loc
	}
	q.ivPairFix(i, r)
	if partner != nil && partner.index == i {
		// the pair swap moved the partner onto i's side, where it can be out
		// of order with that side's parent or children
		if i%2 == 0 {
			if !q.ivUpMin(i, r) {
				q.ivDownMin(i, r)
			}
		} else if !q.ivUpMax(i, r) {
			q.ivDownMax(i, r)
		}
	}
	i = loc.index
	if i%2 == 0 {
		if !q.ivUpMin(i, r) {
			i = loc.index
			// a trailing singleton is also bounded by its max-side parent
			rose := i+1 >= r && q.ivUpMax(i, r)
			if !rose {
				q.ivDownMin(loc.index, r)
			}
		}
	} else {
		if !q.ivUpMax(i, r) {
			q.ivDownMax(loc.index, r)
		}
	}
	q.ivUpSub(loc.index, r)
	q.ivDownSub(loc.index, r)
}

// ivHeapify imposes the interval discipline on the whole store, either by a
// bottom-up merge of interval subtrees or by integrating the appended
// suffix one element at a time.
func (q *Queue[V, P]) ivHeapify(rebuild bool) {
	n := len(q.store)
	if rebuild {
		for b := (n - 1) &^ 1; b >= 0; b -= 2 {
			q.ivPairFix(b, n)
			q.ivDownMin(b, n)
			if b+1 < n {
				q.ivDownMax(b+1, n)
			}
		}
		return
	}
	for i := q.heapsize; i < n; i++ {
		q.ivAdjust(i, i+1)
	}
}

// ivMaxIndex locates the max element of a nonempty interval heap. The max
// normally sits at slot 1, except that a priority tie at the root means the
// stably-first element at slot 0 is both min and max.
func (q *Queue[V, P]) ivMaxIndex() int {
	if len(q.store) == 1 {
		return 0
	}
	if q.cmp(q.store[0].prio, q.store[1].prio) == 0 {
		return 0
	}
	return 1
}
