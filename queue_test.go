package depq_test

import (
	"sort"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"

	"depq"
)

func drainMin[V any, P any](q *depq.Queue[V, P]) []V {
	var out []V
	for v, ok := q.DeleteMin(); ok; v, ok = q.DeleteMin() {
		out = append(out, v)
	}
	return out
}

func drainMax[V any, P any](q *depq.Queue[V, P]) []V {
	var out []V
	for v, ok := q.DeleteMax(); ok; v, ok = q.DeleteMax() {
		out = append(out, v)
	}
	return out
}

func TestEmptyQueue(t *testing.T) {
	t.Parallel()

	q := depq.New[string, int]()
	require.True(t, q.Empty())
	require.Equal(t, 0, q.Len())
	require.EqualValues(t, 0, q.TotalCount())

	_, ok := q.FindMin()
	require.False(t, ok)
	_, ok = q.FindMax()
	require.False(t, ok)
	_, _, ok = q.FindMinMax()
	require.False(t, ok)
	_, ok = q.DeleteMin()
	require.False(t, ok)
	_, ok = q.DeleteMax()
	require.False(t, ok)
	_, ok = q.DeleteUnspecified()
	require.False(t, ok)
	require.Nil(t, q.FindMinLocator())
	require.Nil(t, q.DeleteMaxLocator())
	require.Nil(t, q.ReplaceMin("x", 1))
	require.Nil(t, q.ReplaceMax("x", 1))
}

func TestStableAscendingDrain(t *testing.T) {
	t.Parallel()

	q := depq.New[string, int]()
	q.InsertAll([]depq.Item[string, int]{
		{"a", 1}, {"b", 0}, {"c", 1}, {"d", 0}, {"e", 1}, {"f", 0},
	})
	require.Equal(t, []string{"b", "d", "f", "a", "c", "e"}, drainMin(q))
}

func TestStableDescendingDrain(t *testing.T) {
	t.Parallel()

	q := depq.New[string, int]()
	q.InsertAll([]depq.Item[string, int]{
		{"a", 1}, {"b", 0}, {"c", 1}, {"d", 0}, {"e", 1}, {"f", 0},
	})
	require.Equal(t, []string{"a", "c", "e", "b", "d", "f"}, drainMax(q))
}

func TestPriorityUpdateRepositions(t *testing.T) {
	t.Parallel()

	q := depq.New[string, int]()
	a := q.Insert("a", 2)
	q.Insert("b", 1)
	q.Insert("c", 3)

	v, ok := q.FindMin()
	require.True(t, ok)
	require.Equal(t, "b", v)

	require.NoError(t, a.UpdatePriority(0))
	v, ok = q.FindMin()
	require.True(t, ok)
	require.Equal(t, "a", v)

	require.NoError(t, a.UpdatePriority(10))
	require.Equal(t, []string{"b", "c", "a"}, drainMin(q))
}

func TestReplaceMinPreservesLocator(t *testing.T) {
	t.Parallel()

	q := depq.New[int, int]()
	q.Insert(1, 1)
	q.Insert(2, 2)
	q.Insert(0, 0)

	loc := q.FindMinLocator()
	require.NotNil(t, loc)
	require.Equal(t, 0, loc.Value())
	sub, ok := loc.Subpriority()
	require.True(t, ok)
	require.EqualValues(t, 2, sub)

	rep := q.ReplaceMin(10, 10)
	require.Same(t, loc, rep)
	sub, ok = loc.Subpriority()
	require.True(t, ok)
	require.EqualValues(t, 3, sub)
	require.EqualValues(t, 4, q.TotalCount())

	require.Equal(t, []int{1, 2, 10}, drainMin(q))
	sub, ok = loc.Subpriority()
	require.True(t, ok)
	require.EqualValues(t, 3, sub)
	require.False(t, loc.InQueue())
}

func TestDeleteUnspecifiedTakesTail(t *testing.T) {
	t.Parallel()

	q := depq.New[string, int]()
	q.Insert("a", 1)
	q.Insert("b", 2)
	q.Insert("c", 0)

	// no extremum query happened yet, the store is unheapified tail
	v, ok := q.DeleteUnspecified()
	require.True(t, ok)
	require.Equal(t, "c", v)

	// after a query the last entry is heap-resident but still the one removed
	_, ok = q.FindMin()
	require.True(t, ok)
	_, ok = q.DeleteUnspecified()
	require.True(t, ok)
	require.Equal(t, 1, q.Len())
}

func TestLocatorSnapshotAfterDelete(t *testing.T) {
	t.Parallel()

	q := depq.New[string, int]()
	loc := q.InsertSub("a", 7, 42)
	q.Insert("b", 3)

	require.True(t, loc.InQueue())
	require.Same(t, q, loc.Queue())
	require.Equal(t, 7, loc.Priority())

	got := q.DeleteMaxLocator()
	require.Same(t, loc, got)
	require.False(t, loc.InQueue())
	require.Nil(t, loc.Queue())
	require.Equal(t, "a", loc.Value())
	require.Equal(t, 7, loc.Priority())
	sub, ok := loc.Subpriority()
	require.True(t, ok)
	require.EqualValues(t, 42, sub)
}

func TestInsertLocator(t *testing.T) {
	t.Parallel()

	q := depq.New[string, int]()
	loc := depq.NewLocatorSub("a", 5, 1)
	require.False(t, loc.InQueue())

	require.NoError(t, q.InsertLocator(loc))
	require.True(t, loc.InQueue())
	require.ErrorIs(t, q.InsertLocator(loc), depq.ErrAlreadyAttached)

	other := depq.New[string, int]()
	require.ErrorIs(t, other.InsertLocator(loc), depq.ErrAlreadyAttached)

	// a detached locator without subpriority gets the insertion ordinal
	fresh := depq.NewLocator("b", 5)
	require.NoError(t, q.InsertLocator(fresh))
	sub, ok := fresh.Subpriority()
	require.True(t, ok)
	require.EqualValues(t, 1, sub)
	require.Equal(t, 2, q.Len())
}

func TestDeleteLocatorForeign(t *testing.T) {
	t.Parallel()

	q := depq.New[string, int]()
	other := depq.New[string, int]()
	loc := q.Insert("a", 1)

	require.ErrorIs(t, other.DeleteLocator(loc), depq.ErrWrongLocator)
	require.True(t, loc.InQueue())

	require.NoError(t, q.DeleteLocator(loc))
	require.False(t, loc.InQueue())
	require.ErrorIs(t, q.DeleteLocator(loc), depq.ErrWrongLocator)
}

func TestUpdateRoundTrip(t *testing.T) {
	t.Parallel()

	q := depq.New[string, int]()
	loc := q.Insert("a", 1)

	require.NoError(t, loc.UpdateSub("b", 9, 17))
	require.Equal(t, "b", loc.Value())
	require.Equal(t, 9, loc.Priority())
	sub, ok := loc.Subpriority()
	require.True(t, ok)
	require.EqualValues(t, 17, sub)

	// attached update without subpriority keeps the previous one
	require.NoError(t, loc.Update("c", 4))
	sub, ok = loc.Subpriority()
	require.True(t, ok)
	require.EqualValues(t, 17, sub)

	loc.UpdateValue("d")
	require.Equal(t, "d", loc.Value())
	require.Equal(t, 4, loc.Priority())

	// detached update without subpriority clears it
	require.NoError(t, q.DeleteLocator(loc))
	require.NoError(t, loc.Update("e", 2))
	require.Equal(t, 2, loc.Priority())
	_, ok = loc.Subpriority()
	require.False(t, ok)
}

func TestClearKeepsTotalCount(t *testing.T) {
	t.Parallel()

	q := depq.New[string, int]()
	q.Insert("a", 1)
	q.Insert("b", 2)
	loc := q.Insert("c", 3)
	require.EqualValues(t, 3, q.TotalCount())

	q.Clear()
	require.True(t, q.Empty())
	require.EqualValues(t, 3, q.TotalCount())
	require.False(t, loc.InQueue())
	require.Equal(t, 3, loc.Priority())

	next := q.Insert("d", 1)
	require.EqualValues(t, 4, q.TotalCount())
	sub, ok := next.Subpriority()
	require.True(t, ok)
	require.EqualValues(t, 3, sub)
}

func TestIterators(t *testing.T) {
	t.Parallel()

	q := depq.New[string, int]()
	q.Insert("a", 3)
	q.Insert("b", 1)
	q.Insert("c", 2)

	var values []string
	q.Each(func(v string) { values = append(values, v) })
	require.ElementsMatch(t, []string{"a", "b", "c"}, values)

	var locs []*depq.Locator[string, int]
	q.EachLocator(func(l *depq.Locator[string, int]) { locs = append(locs, l) })
	require.Len(t, locs, 3)
	for _, l := range locs {
		require.Same(t, q, l.Queue())
	}

	prios := map[string]int{}
	q.EachWithPriority(func(v string, p int) { prios[v] = p })
	require.Equal(t, map[string]int{"a": 3, "b": 1, "c": 2}, prios)
}

func TestDup(t *testing.T) {
	t.Parallel()

	q := depq.New[string, int]()
	loc := q.Insert("a", 2)
	q.Insert("b", 1)
	_, ok := q.FindMin()
	require.True(t, ok)

	d := q.Dup()
	require.Equal(t, q.Len(), d.Len())
	require.Equal(t, q.TotalCount(), d.TotalCount())

	// locators of the original stay bound to the original
	require.Same(t, q, loc.Queue())
	var dupLocs []*depq.Locator[string, int]
	d.EachLocator(func(l *depq.Locator[string, int]) { dupLocs = append(dupLocs, l) })
	for _, l := range dupLocs {
		require.Same(t, d, l.Queue())
		require.NotSame(t, loc, l)
	}

	// the copies evolve independently
	_, ok = d.DeleteMin()
	require.True(t, ok)
	require.Equal(t, 2, q.Len())
	require.Equal(t, 1, d.Len())
	require.Equal(t, []string{"b", "a"}, drainMin(q))
}

func TestComparatorFunc(t *testing.T) {
	t.Parallel()

	// reversed comparator turns DeleteMin into a max drain
	q := depq.NewFunc[string](func(a, b int) int { return b - a })
	q.Insert("a", 1)
	q.Insert("b", 3)
	q.Insert("c", 2)
	require.Negative(t, q.ComparePriority(5, 2))
	require.Equal(t, []string{"b", "c", "a"}, drainMin(q))
}

func TestSortedDrainProperty(t *testing.T) {
	t.Parallel()

	prios := []int{5, 3, 3, 8, 1, 9, 3, 5, 1, 7, 0, 9, 2, 2, 6, 4}
	type el struct {
		ord  int
		prio int
	}
	els := lo.Map(prios, func(p int, i int) el { return el{ord: i, prio: p} })

	q := depq.New[int, int]()
	for _, e := range els {
		q.Insert(e.ord, e.prio)
	}
	expect := append([]el(nil), els...)
	sort.SliceStable(expect, func(i, j int) bool { return expect[i].prio < expect[j].prio })
	require.Equal(t, lo.Map(expect, func(e el, _ int) int { return e.ord }), drainMin(q))

	q = depq.New[int, int]()
	for _, e := range els {
		q.Insert(e.ord, e.prio)
	}
	expect = append([]el(nil), els...)
	sort.SliceStable(expect, func(i, j int) bool { return expect[i].prio > expect[j].prio })
	require.Equal(t, lo.Map(expect, func(e el, _ int) int { return e.ord }), drainMax(q))
}

func TestMixedEndsDrain(t *testing.T) {
	t.Parallel()

	q := depq.New[int, int]()
	for i, p := range []int{4, 9, 1, 7, 3, 8, 2, 6, 5, 0} {
		q.Insert(i, p)
	}

	var fromMin, fromMax []int
	for !q.Empty() {
		p, ok := q.FindMinPriority()
		require.True(t, ok)
		_, ok = q.DeleteMin()
		require.True(t, ok)
		fromMin = append(fromMin, p)
		if q.Empty() {
			break
		}
		p, ok = q.FindMaxPriority()
		require.True(t, ok)
		_, ok = q.DeleteMax()
		require.True(t, ok)
		fromMax = append(fromMax, p)
	}
	require.Equal(t, []int{0, 1, 2, 3, 4}, fromMin)
	require.Equal(t, []int{9, 8, 7, 6, 5}, fromMax)
}
