package depq

import (
	"cmp"
	"math"

	"github.com/samber/lo"
)

// Bounded selection of the k largest or smallest items, built on the queue.
// The working queue is allowed to grow to a limit well above k; past the
// limit it is pruned back to the k best and a threshold starts filtering
// out items that cannot make the cut any more.

// NLargest returns the k largest items in ascending order.
func NLargest[T cmp.Ordered](k int, items []T) []T {
	return topk(k, items, func(v T) T { return v }, cmp.Compare[T], true)
}

// NSmallest returns the k smallest items in ascending order.
func NSmallest[T cmp.Ordered](k int, items []T) []T {
	return topk(k, items, func(v T) T { return v }, cmp.Compare[T], false)
}

// NLargestKey returns the k items with the largest keys, ascending by key.
func NLargestKey[T any, K cmp.Ordered](k int, items []T, key func(T) K) []T {
	return topk(k, items, key, cmp.Compare[K], true)
}

// NSmallestKey returns the k items with the smallest keys, ascending by key.
func NSmallestKey[T any, K cmp.Ordered](k int, items []T, key func(T) K) []T {
	return topk(k, items, key, cmp.Compare[K], false)
}

func topkLimit(k int) int {
	limit := int(math.Ceil(float64(k) * math.Log1p(float64(k))))
	if limit < 1024 {
		limit = 1024
	}
	return limit
}

func topk[T any, K any](k int, items []T, key func(T) K, compare Compare[K], largest bool) []T {
	if k <= 0 {
		return nil
	}
	limit := topkLimit(k)
	q := NewFunc[T](compare)
	var threshold K
	haveThreshold := false
	for _, v := range items {
		p := key(v)
		if haveThreshold {
			c := compare(p, threshold)
			if largest && c < 0 || !largest && c > 0 {
				continue
			}
		}
		q.Insert(v, p)
		if q.Len() > limit {
			threshold = prune(q, k, largest)
			haveThreshold = true
		}
	}
	if q.Len() < k {
		k = q.Len()
	}
	if k == 0 {
		return nil
	}
	out := make([]T, k)
	if largest {
		for i := range out {
			out[i], _ = q.DeleteMax()
		}
		lo.Reverse(out)
		return out
	}
	for i := range out {
		out[i], _ = q.DeleteMin()
	}
	return out
}

// prune keeps only the k best entries and returns the priority of the worst
// survivor, the new admission threshold.
func prune[T any, K any](q *Queue[T, K], k int, largest bool) K {
	kept := make([]Item[T, K], 0, k)
	var edge K
	for len(kept) < k {
		var (
			v  T
			p  K
			ok bool
		)
		if largest {
			v, p, ok = q.DeleteMaxWithPriority()
		} else {
			v, p, ok = q.DeleteMinWithPriority()
		}
		if !ok {
			break
		}
		kept = append(kept, Item[T, K]{Value: v, Priority: p})
		edge = p
	}
	q.Clear()
	for _, it := range kept {
		q.Insert(it.Value, it.Priority)
	}
	return edge
}
