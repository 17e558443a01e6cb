package depq

import (
	"depq/internal/pkg/null"
)

// noCopy flags accidental value copies to `go vet -copylocks`.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Locator is a stable handle to one element. Identity is pointer identity:
// two locators are the same element only if they are the same pointer, and a
// locator must not be copied.
//
// A locator is either attached to exactly one queue, in which case it tracks
// the element's index inside that queue across every internal move, or
// detached, in which case it carries its own priority and subpriority
// snapshot. Insert* methods hand out attached locators; Delete* methods
// detach them, preserving the priority and subpriority they had at deletion
// time.
type Locator[V any, P any] struct {
	_ noCopy

	value V

	q     *Queue[V, P] // nil while detached
	index int

	// snapshot, meaningful only while detached
	prio P
	sub  null.Int64
}

// NewLocator returns a detached locator with no subpriority.
func NewLocator[V any, P any](value V, prio P) *Locator[V, P] {
	return &Locator[V, P]{value: value, prio: prio, index: -1}
}

// NewLocatorSub returns a detached locator with an explicit subpriority.
func NewLocatorSub[V any, P any](value V, prio P, sub int64) *Locator[V, P] {
	return &Locator[V, P]{value: value, prio: prio, sub: null.New(sub), index: -1}
}

func (l *Locator[V, P]) Value() V {
	return l.value
}

func (l *Locator[V, P]) Priority() P {
	if l.q != nil {
		return l.q.store[l.index].prio
	}
	return l.prio
}

// Subpriority reports the current subpriority. The second return is false
// only for a detached locator that has none.
func (l *Locator[V, P]) Subpriority() (int64, bool) {
	if l.q != nil {
		return l.q.store[l.index].sub, true
	}
	return l.sub.Value, l.sub.Set
}

func (l *Locator[V, P]) InQueue() bool {
	return l.q != nil
}

// Queue returns the queue this locator is attached to, or nil.
func (l *Locator[V, P]) Queue() *Queue[V, P] {
	return l.q
}

// Update atomically changes value and priority. Attached, the previous
// subpriority is kept; detached, the subpriority is cleared.
func (l *Locator[V, P]) Update(value V, prio P) error {
	return l.update(value, prio, null.Int64{})
}

// UpdateSub atomically changes value, priority and subpriority.
func (l *Locator[V, P]) UpdateSub(value V, prio P, sub int64) error {
	return l.update(value, prio, null.New(sub))
}

func (l *Locator[V, P]) UpdateValue(value V) {
	l.value = value
}

// UpdatePriority changes the priority, keeping the value. Attached, the
// previous subpriority is kept; detached, the subpriority is cleared.
func (l *Locator[V, P]) UpdatePriority(prio P) error {
	return l.update(l.value, prio, null.Int64{})
}

// UpdatePrioritySub changes priority and subpriority, keeping the value.
func (l *Locator[V, P]) UpdatePrioritySub(prio P, sub int64) error {
	return l.update(l.value, prio, null.New(sub))
}

func (l *Locator[V, P]) update(value V, prio P, sub null.Int64) error {
	if l.q != nil {
		if err := l.q.owns(l); err != nil {
			return err
		}
		l.value = value
		l.q.updateEntry(l, prio, sub)
		return nil
	}
	l.value = value
	l.prio = prio
	l.sub = sub
	return nil
}
