package depq

import "math"

// mode is the heap discipline currently imposed on store[0:heapsize].
type mode uint8

const (
	modeNone mode = iota
	modeMin
	modeMax
	modeInterval
)

func (m mode) String() string {
	switch m {
	case modeMin:
		return "min"
	case modeMax:
		return "max"
	case modeInterval:
		return "interval"
	default:
		return "none"
	}
}

// useMin prepares the store for a min query: keep a min layout, otherwise
// promote to the interval layout so the max end stays cheap too.
func (q *Queue[V, P]) useMin() {
	if q.mode == modeNone || q.mode == modeMin {
		q.establish(modeMin)
	} else {
		q.establish(modeInterval)
	}
}

func (q *Queue[V, P]) useMax() {
	if q.mode == modeNone || q.mode == modeMax {
		q.establish(modeMax)
	} else {
		q.establish(modeInterval)
	}
}

func (q *Queue[V, P]) useInterval() {
	q.establish(modeInterval)
}

// establish switches the discipline if needed and extends the heapified
// prefix over the whole store.
func (q *Queue[V, P]) establish(m mode) {
	if q.mode != m {
		q.log.Trace().Stringer("from", q.mode).Stringer("to", m).Msg("switch heap discipline")
		q.mode = m
		q.heapsize = 0
	}
	q.heapify()
}

// heapify extends the heap region over the appended suffix, either by a
// bottom-up rebuild of the whole store or by sifting each new element in,
// whichever bounds fewer moves.
func (q *Queue[V, P]) heapify() {
	n := len(q.store)
	if q.heapsize >= n {
		return
	}
	rebuild := rebuildWins(n, q.heapsize)
	if q.log.Trace().Enabled() {
		q.log.Trace().
			Stringer("mode", q.mode).
			Int("heapsize", q.heapsize).
			Int("size", n).
			Bool("rebuild", rebuild).
			Msg("heapify")
	}
	switch q.mode {
	case modeMin:
		q.heapifyBinary(rebuild, q.minAbove)
	case modeMax:
		q.heapifyBinary(rebuild, q.maxAbove)
	case modeInterval:
		q.ivHeapify(rebuild)
	}
	q.heapsize = n
}

// rebuildWins compares worst-case move counts: a bottom-up rebuild is at
// most n-1 moves, integrating the suffix one element at a time is at most
// (log2(n+1)-1) per element.
func rebuildWins(n, heapsize int) bool {
	h := math.Log2(float64(n + 1))
	return float64(n-1) < (h-1)*float64(n-heapsize+1)
}
