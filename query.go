package depq

import "depq/internal/pkg/null"

// Find and delete operations. Each of them forces a discipline on first use:
// min traffic keeps a min-heap, max traffic a max-heap, and mixed traffic
// (or any minmax/replace call) promotes to the interval heap.

// FindMinLocator returns the locator of the current minimum, or nil on an
// empty queue.
func (q *Queue[V, P]) FindMinLocator() *Locator[V, P] {
	if len(q.store) == 0 {
		return nil
	}
	q.useMin()
	return q.store[0].loc
}

// FindMin returns the current minimum value.
func (q *Queue[V, P]) FindMin() (V, bool) {
	if loc := q.FindMinLocator(); loc != nil {
		return loc.value, true
	}
	var zero V
	return zero, false
}

// FindMinPriority returns the current minimum priority.
func (q *Queue[V, P]) FindMinPriority() (P, bool) {
	if loc := q.FindMinLocator(); loc != nil {
		return q.store[loc.index].prio, true
	}
	var zero P
	return zero, false
}

// FindMaxLocator returns the locator of the current maximum, or nil on an
// empty queue. When every priority ties at the root the stably-first
// element is both minimum and maximum.
func (q *Queue[V, P]) FindMaxLocator() *Locator[V, P] {
	if len(q.store) == 0 {
		return nil
	}
	q.useMax()
	if q.mode == modeMax {
		return q.store[0].loc
	}
	return q.store[q.ivMaxIndex()].loc
}

// FindMax returns the current maximum value.
func (q *Queue[V, P]) FindMax() (V, bool) {
	if loc := q.FindMaxLocator(); loc != nil {
		return loc.value, true
	}
	var zero V
	return zero, false
}

// FindMaxPriority returns the current maximum priority.
func (q *Queue[V, P]) FindMaxPriority() (P, bool) {
	if loc := q.FindMaxLocator(); loc != nil {
		return q.store[loc.index].prio, true
	}
	var zero P
	return zero, false
}

// FindMinMaxLocator returns both extrema's locators. With one element, or
// with a priority tie at the root, both are the same locator.
func (q *Queue[V, P]) FindMinMaxLocator() (min, max *Locator[V, P]) {
	if len(q.store) == 0 {
		return nil, nil
	}
	q.useInterval()
	return q.store[0].loc, q.store[q.ivMaxIndex()].loc
}

// FindMinMax returns both extrema's values.
func (q *Queue[V, P]) FindMinMax() (min, max V, ok bool) {
	lo, hi := q.FindMinMaxLocator()
	if lo == nil {
		var zero V
		return zero, zero, false
	}
	return lo.value, hi.value, true
}

// FindMinMaxPriority returns both extrema's priorities.
func (q *Queue[V, P]) FindMinMaxPriority() (min, max P, ok bool) {
	lo, hi := q.FindMinMaxLocator()
	if lo == nil {
		var zero P
		return zero, zero, false
	}
	return q.store[lo.index].prio, q.store[hi.index].prio, true
}

// DeleteMinLocator removes the current minimum and returns its detached
// locator, or nil on an empty queue.
func (q *Queue[V, P]) DeleteMinLocator() *Locator[V, P] {
	loc := q.FindMinLocator()
	if loc == nil {
		return nil
	}
	q.detach(loc)
	return loc
}

// DeleteMin removes the current minimum and returns its value.
func (q *Queue[V, P]) DeleteMin() (V, bool) {
	if loc := q.DeleteMinLocator(); loc != nil {
		return loc.value, true
	}
	var zero V
	return zero, false
}

// DeleteMinWithPriority removes the current minimum and returns its value
// and priority.
func (q *Queue[V, P]) DeleteMinWithPriority() (V, P, bool) {
	if loc := q.DeleteMinLocator(); loc != nil {
		return loc.value, loc.prio, true
	}
	var zeroV V
	var zeroP P
	return zeroV, zeroP, false
}

// DeleteMaxLocator removes the current maximum and returns its detached
// locator, or nil on an empty queue.
func (q *Queue[V, P]) DeleteMaxLocator() *Locator[V, P] {
	loc := q.FindMaxLocator()
	if loc == nil {
		return nil
	}
	q.detach(loc)
	return loc
}

// DeleteMax removes the current maximum and returns its value.
func (q *Queue[V, P]) DeleteMax() (V, bool) {
	if loc := q.DeleteMaxLocator(); loc != nil {
		return loc.value, true
	}
	var zero V
	return zero, false
}

// DeleteMaxWithPriority removes the current maximum and returns its value
// and priority.
func (q *Queue[V, P]) DeleteMaxWithPriority() (V, P, bool) {
	if loc := q.DeleteMaxLocator(); loc != nil {
		return loc.value, loc.prio, true
	}
	var zeroV V
	var zeroP P
	return zeroV, zeroP, false
}

// DeleteLocator removes the element the locator is bound to. It fails with
// ErrWrongLocator before touching any state if the locator belongs to
// another queue, is detached, or no longer matches its slot.
func (q *Queue[V, P]) DeleteLocator(loc *Locator[V, P]) error {
	if err := q.owns(loc); err != nil {
		return err
	}
	q.detach(loc)
	return nil
}

// DeleteUnspecifiedLocator removes the entry at the end of the backing
// store, whichever element that happens to be. While extremum queries have
// been deferred the end of the store is unheapified tail, so this stays a
// plain pop.
func (q *Queue[V, P]) DeleteUnspecifiedLocator() *Locator[V, P] {
	if len(q.store) == 0 {
		return nil
	}
	loc := q.store[len(q.store)-1].loc
	q.detach(loc)
	return loc
}

// DeleteUnspecified removes an unspecified element and returns its value.
func (q *Queue[V, P]) DeleteUnspecified() (V, bool) {
	if loc := q.DeleteUnspecifiedLocator(); loc != nil {
		return loc.value, true
	}
	var zero V
	return zero, false
}

// ReplaceMin overwrites the current minimum in place, reusing its locator,
// and returns that locator, or nil on an empty queue. The element gets a
// fresh insertion ordinal as subpriority and the insertion count grows.
func (q *Queue[V, P]) ReplaceMin(value V, prio P) *Locator[V, P] {
	return q.replace(value, prio, null.Int64{}, true)
}

// ReplaceMinSub is ReplaceMin with an explicit subpriority.
func (q *Queue[V, P]) ReplaceMinSub(value V, prio P, sub int64) *Locator[V, P] {
	return q.replace(value, prio, null.New(sub), true)
}

// ReplaceMax is ReplaceMin for the maximum end.
func (q *Queue[V, P]) ReplaceMax(value V, prio P) *Locator[V, P] {
	return q.replace(value, prio, null.Int64{}, false)
}

// ReplaceMaxSub is ReplaceMax with an explicit subpriority.
func (q *Queue[V, P]) ReplaceMaxSub(value V, prio P, sub int64) *Locator[V, P] {
	return q.replace(value, prio, null.New(sub), false)
}

func (q *Queue[V, P]) replace(value V, prio P, sub null.Int64, minEnd bool) *Locator[V, P] {
	if len(q.store) == 0 {
		return nil
	}
	q.useInterval()
	i := 0
	if !minEnd {
		i = q.ivMaxIndex()
	}
	loc := q.store[i].loc
	s := sub.Default(q.totalcount)
	q.totalcount++
	loc.value = value
	q.store[i].prio = prio
	q.store[i].sub = s
	q.ivAdjust(i, q.heapsize)
	return loc
}
