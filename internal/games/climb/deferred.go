package climb

import (
	"cmp"
	"slices"
	"time"
)

type deferredAction struct {
	at  time.Duration
	seq uint64
	run func()
}

// DeferredQueue holds actions keyed by the simulation clock. Due actions run
// at a fixed point of the tick, in deadline then insertion order.
type DeferredQueue struct {
	items []deferredAction
	seq   uint64
}

// Schedule queues fn to run once the clock reaches at.
func (q *DeferredQueue) Schedule(at time.Duration, fn func()) {
	q.seq++
	q.items = append(q.items, deferredAction{at: at, seq: q.seq, run: fn})
}

// RunDue runs and removes every action due at now. It returns the count.
func (q *DeferredQueue) RunDue(now time.Duration) int {
	var due []deferredAction
	q.items = slices.DeleteFunc(q.items, func(a deferredAction) bool {
		if a.at <= now {
			due = append(due, a)
			return true
		}
		return false
	})
	slices.SortFunc(due, func(a, b deferredAction) int {
		return cmp.Or(cmp.Compare(a.at, b.at), cmp.Compare(a.seq, b.seq))
	})
	for _, a := range due {
		a.run()
	}
	return len(due)
}

// Len returns the number of pending actions.
func (q *DeferredQueue) Len() int {
	return len(q.items)
}

// Clear drops all pending actions.
func (q *DeferredQueue) Clear() {
	q.items = q.items[:0]
}
