package depq

import (
	"encoding/json"

	"github.com/trim21/errgo"

	"depq/internal/pkg/null"
)

// JSON round-trip for queues whose value and priority types marshal with
// encoding/json. Entries travel as (value, priority, subpriority) triples;
// decoding rebuilds the queue with fresh locators bound to it, never with
// the source queue's locator identities.

type wireEntry[V any, P any] struct {
	Value       V          `json:"value"`
	Priority    P          `json:"priority"`
	Subpriority null.Int64 `json:"subpriority"`
}

type wireQueue[V any, P any] struct {
	TotalCount int64             `json:"totalcount"`
	Entries    []wireEntry[V, P] `json:"entries"`
}

func (q *Queue[V, P]) MarshalJSON() ([]byte, error) {
	w := wireQueue[V, P]{
		TotalCount: q.totalcount,
		Entries:    make([]wireEntry[V, P], len(q.store)),
	}
	for i := range q.store {
		w.Entries[i] = wireEntry[V, P]{
			Value:       q.store[i].loc.value,
			Priority:    q.store[i].prio,
			Subpriority: null.New(q.store[i].sub),
		}
	}
	return json.Marshal(w)
}

// UnmarshalJSON decodes into a queue constructed by New or NewFunc,
// replacing its contents. Entries without a subpriority get fresh insertion
// ordinals.
func (q *Queue[V, P]) UnmarshalJSON(b []byte) error {
	var w wireQueue[V, P]
	if err := json.Unmarshal(b, &w); err != nil {
		return errgo.Wrap(err, "failed to decode queue")
	}
	q.Clear()
	q.totalcount = 0
	for _, e := range w.Entries {
		loc := &Locator[V, P]{value: e.Value}
		q.attach(loc, e.Priority, e.Subpriority)
	}
	if w.TotalCount > q.totalcount {
		q.totalcount = w.TotalCount
	}
	return nil
}
