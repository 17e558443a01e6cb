package depq

import "cmp"

// K-way merge of sorted sources, driven by a queue holding one entry per
// non-exhausted source. The entry's priority is the source's current head;
// popping the minimum yields the next merged element and moves that source
// forward by one priority update in place. With sorted inputs the output is
// sorted, and elements that compare equal keep source order.

// Merger merges lazily: each Next call produces one element.
type Merger[T any] struct {
	q    *Queue[int, T]
	srcs [][]T
	pos  []int
}

// NewMerger returns a lazy merger over sources in natural order.
func NewMerger[T cmp.Ordered](srcs ...[]T) *Merger[T] {
	return NewMergerFunc(cmp.Compare[T], srcs...)
}

// NewMergerFunc returns a lazy merger ordering elements by compare.
func NewMergerFunc[T any](compare Compare[T], srcs ...[]T) *Merger[T] {
	m := &Merger[T]{
		q:    NewFunc[int](compare),
		srcs: srcs,
		pos:  make([]int, len(srcs)),
	}
	for i, s := range srcs {
		if len(s) > 0 {
			m.q.Insert(i, s[0])
			m.pos[i] = 1
		}
	}
	return m
}

// Next returns the next element of the merged sequence.
func (m *Merger[T]) Next() (T, bool) {
	loc := m.q.FindMinLocator()
	if loc == nil {
		var zero T
		return zero, false
	}
	head := loc.Priority()
	i := loc.Value()
	if m.pos[i] < len(m.srcs[i]) {
		// keeping the locator's subpriority keeps ties in source order
		_ = loc.UpdatePriority(m.srcs[i][m.pos[i]])
		m.pos[i]++
	} else {
		_ = m.q.DeleteLocator(loc)
	}
	return head, true
}

// Merge merges sorted sources into one sorted slice.
func Merge[T cmp.Ordered](srcs ...[]T) []T {
	return MergeFunc(cmp.Compare[T], srcs...)
}

// MergeFunc is Merge with an explicit comparator.
func MergeFunc[T any](compare Compare[T], srcs ...[]T) []T {
	total := 0
	for _, s := range srcs {
		total += len(s)
	}
	out := make([]T, 0, total)
	m := NewMergerFunc(compare, srcs...)
	for v, ok := m.Next(); ok; v, ok = m.Next() {
		out = append(out, v)
	}
	return out
}

// MergeEach drives the merge synchronously, calling fn for every element in
// order.
func MergeEach[T cmp.Ordered](fn func(T), srcs ...[]T) {
	m := NewMerger(srcs...)
	for v, ok := m.Next(); ok; v, ok = m.Next() {
		fn(v)
	}
}
