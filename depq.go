// Package depq implements a stable double-ended priority queue.
//
// Elements are held as (priority, subpriority) pairs behind Locator handles,
// so priorities can be updated and elements deleted in place after
// insertion. The queue answers min queries, max queries or both, and adapts
// its internal heap layout (min-heap, max-heap or interval heap) to whatever
// mix of queries it actually receives. Among equal priorities, elements
// leave in insertion order from both ends.
package depq

import (
	"cmp"

	"github.com/negrel/assert"
	"github.com/rs/zerolog"

	"depq/internal/pkg/null"
)

type entry[V any, P any] struct {
	loc  *Locator[V, P]
	prio P
	sub  int64
}

// Queue is a double-ended priority queue. The zero value is not usable; use
// New or NewFunc.
//
// A queue is not safe for concurrent use. Distinct queues are independent.
type Queue[V any, P any] struct {
	cmp   Compare[P]
	store []entry[V, P]

	mode     mode
	heapsize int // prefix of store satisfying the active discipline

	// count of every successful insertion, never decremented. Used as the
	// default subpriority so equal priorities drain in insertion order.
	totalcount int64

	log zerolog.Logger
}

// New returns an empty queue ordering priorities by their natural order.
func New[V any, P cmp.Ordered]() *Queue[V, P] {
	return NewFunc[V](cmp.Compare[P])
}

// NewFunc returns an empty queue ordering priorities by compare.
func NewFunc[V any, P any](compare Compare[P]) *Queue[V, P] {
	return &Queue[V, P]{
		cmp: compare,
		log: zerolog.Nop(),
	}
}

// WithLogger attaches a logger used at trace level for discipline switches
// and heapify decisions. It returns the queue.
func (q *Queue[V, P]) WithLogger(log zerolog.Logger) *Queue[V, P] {
	q.log = log
	return q
}

// Len returns the number of elements currently in the queue.
func (q *Queue[V, P]) Len() int {
	return len(q.store)
}

func (q *Queue[V, P]) Empty() bool {
	return len(q.store) == 0
}

// TotalCount returns the number of insertions over the queue's whole
// lifetime. It is monotone: deletions and Clear do not decrease it.
func (q *Queue[V, P]) TotalCount() int64 {
	return q.totalcount
}

// Insert adds value with the given priority and returns its locator. The
// subpriority defaults to the current insertion ordinal.
func (q *Queue[V, P]) Insert(value V, prio P) *Locator[V, P] {
	loc := &Locator[V, P]{value: value}
	q.attach(loc, prio, null.Int64{})
	return loc
}

// InsertSub adds value with an explicit subpriority.
func (q *Queue[V, P]) InsertSub(value V, prio P, sub int64) *Locator[V, P] {
	loc := &Locator[V, P]{value: value}
	q.attach(loc, prio, null.New(sub))
	return loc
}

// InsertLocator attaches a detached locator, using its priority and
// subpriority snapshot. It fails with ErrAlreadyAttached if the locator is
// in a queue, this one included.
func (q *Queue[V, P]) InsertLocator(loc *Locator[V, P]) error {
	if loc.q != nil {
		return ErrAlreadyAttached
	}
	q.attach(loc, loc.prio, loc.sub)
	return nil
}

// Item is one value/priority pair for InsertAll.
type Item[V any, P any] struct {
	Value    V
	Priority P
}

// InsertAll inserts every item in order and returns their locators.
func (q *Queue[V, P]) InsertAll(items []Item[V, P]) []*Locator[V, P] {
	locs := make([]*Locator[V, P], len(items))
	for i, it := range items {
		locs[i] = q.Insert(it.Value, it.Priority)
	}
	return locs
}

// Clear removes every element. The total insertion count is kept, so
// subpriorities keep growing across a Clear.
func (q *Queue[V, P]) Clear() {
	for i := range q.store {
		q.store[i].loc.detachSnapshot()
		q.store[i] = entry[V, P]{}
	}
	q.store = q.store[:0]
	q.mode = modeNone
	q.heapsize = 0
}

// Each visits every value once, in unspecified order.
func (q *Queue[V, P]) Each(fn func(value V)) {
	for i := range q.store {
		fn(q.store[i].loc.value)
	}
}

// EachLocator visits every locator once, in unspecified order.
func (q *Queue[V, P]) EachLocator(fn func(loc *Locator[V, P])) {
	for i := range q.store {
		fn(q.store[i].loc)
	}
}

// EachWithPriority visits every value/priority pair once, in unspecified
// order.
func (q *Queue[V, P]) EachWithPriority(fn func(value V, prio P)) {
	for i := range q.store {
		fn(q.store[i].loc.value, q.store[i].prio)
	}
}

// Dup returns a deep copy. The copy gets fresh locators attached to it;
// locators of the original stay bound to the original.
func (q *Queue[V, P]) Dup() *Queue[V, P] {
	d := &Queue[V, P]{
		cmp:        q.cmp,
		mode:       q.mode,
		heapsize:   q.heapsize,
		totalcount: q.totalcount,
		log:        q.log,
		store:      make([]entry[V, P], len(q.store)),
	}
	for i := range q.store {
		e := q.store[i]
		d.store[i] = entry[V, P]{
			loc:  &Locator[V, P]{value: e.loc.value, q: d, index: i},
			prio: e.prio,
			sub:  e.sub,
		}
	}
	return d
}

func (q *Queue[V, P]) attach(loc *Locator[V, P], prio P, sub null.Int64) {
	assert.Nil(loc.q)

	s := sub.Default(q.totalcount)
	q.totalcount++
	loc.q = q
	loc.index = len(q.store)
	q.store = append(q.store, entry[V, P]{loc: loc, prio: prio, sub: s})
}

// detach snapshots priority and subpriority into the locator, unbinds it and
// removes its entry.
func (q *Queue[V, P]) detach(loc *Locator[V, P]) {
	if loc.q == nil {
		panic(ErrNotAttached)
	}
	i := loc.index
	e := q.store[i]
	loc.prio = e.prio
	loc.sub = null.New(e.sub)
	loc.q = nil
	loc.index = -1
	q.removeAt(i)
}

// detachSnapshot is detach without store surgery, for bulk teardown.
func (l *Locator[V, P]) detachSnapshot() {
	e := l.q.store[l.index]
	l.prio = e.prio
	l.sub = null.New(e.sub)
	l.q = nil
	l.index = -1
}

// removeAt fills position i from the tail, shrinks the store and repairs the
// heap region if the filled slot is inside it. Removing the last entry or a
// tail entry stays O(1).
func (q *Queue[V, P]) removeAt(i int) {
	last := len(q.store) - 1
	inHeap := i < q.heapsize
	if i != last {
		q.store[i] = q.store[last]
		q.store[i].loc.index = i
	}
	q.store[last] = entry[V, P]{}
	q.store = q.store[:last]
	if q.heapsize > last {
		q.heapsize = last
	}
	if !inHeap || i >= q.heapsize {
		return
	}
	switch q.mode {
	case modeMin:
		q.fixBinary(i, q.minAbove)
	case modeMax:
		q.fixBinary(i, q.maxAbove)
	case modeInterval:
		q.ivAdjust(i, q.heapsize)
	}
}

// owns verifies that loc is bound to this queue and that its slot refers
// back to it.
func (q *Queue[V, P]) owns(loc *Locator[V, P]) error {
	if loc.q != q || loc.index < 0 || loc.index >= len(q.store) || q.store[loc.index].loc != loc {
		return ErrWrongLocator
	}
	return nil
}

// updateEntry writes the new priority and subpriority and moves the element
// to its place under the active discipline. Entries outside the heap region
// are plain writes.
func (q *Queue[V, P]) updateEntry(loc *Locator[V, P], prio P, sub null.Int64) {
	i := loc.index
	e := &q.store[i]
	oldPrio, oldSub := e.prio, e.sub
	e.prio = prio
	e.sub = sub.Default(oldSub)
	if i >= q.heapsize || q.mode == modeNone {
		return
	}
	if q.cmp(prio, oldPrio) == 0 && e.sub == oldSub {
		return
	}
	switch q.mode {
	case modeMin:
		q.fixBinary(i, q.minAbove)
	case modeMax:
		q.fixBinary(i, q.maxAbove)
	case modeInterval:
		q.ivAdjust(i, q.heapsize)
	}
}

// swap exchanges two entries and rewrites the index both locators track.
func (q *Queue[V, P]) swap(i, j int) {
	assert.NotEqual(i, j)

	q.store[i], q.store[j] = q.store[j], q.store[i]
	q.store[i].loc.index = i
	q.store[j].loc.index = j
}

// minAbove reports whether entry i must order before entry j under the min
// discipline: by priority, then by subpriority.
func (q *Queue[V, P]) minAbove(i, j int) bool {
	c := q.cmp(q.store[i].prio, q.store[j].prio)
	return c < 0 || (c == 0 && q.store[i].sub < q.store[j].sub)
}

// maxAbove reports whether entry i must order before entry j under the max
// discipline: by priority reversed, then by subpriority, so the earliest
// element among tied maxima bubbles out first.
func (q *Queue[V, P]) maxAbove(i, j int) bool {
	c := q.cmp(q.store[i].prio, q.store[j].prio)
	return c > 0 || (c == 0 && q.store[i].sub < q.store[j].sub)
}
