package wavefront

import "github.com/sarchlab/ocular/ocerr"

// Queue is a bounded, host-side scratch queue. It backs the near/far/
// dirty buckets from the specification's per-workgroup scratch model.
// A single Queue instance here stands in for the union of every
// workgroup's private queue of a given role for one net: pushes from
// concurrently running workgroup goroutines are staged locally by each
// goroutine and merged into the shared Queue by the single host control
// goroutine after a step completes, so Queue itself needs no locking.
type Queue struct {
	items []int32
	cap   int
}

// NewQueue creates an empty queue with the given capacity.
func NewQueue(capacity int) *Queue {
	return &Queue{cap: capacity}
}

// Push appends v, returning a Capacity error if the queue is full.
func (q *Queue) Push(v int32) error {
	if len(q.items) >= q.cap {
		return ocerr.New(ocerr.Capacity, "Queue.Push", errQueueFull)
	}

	q.items = append(q.items, v)

	return nil
}

// Merge appends every value in vs, returning a Capacity error (without
// partially applying the merge) if it would overflow the queue.
func (q *Queue) Merge(vs []int32) error {
	if len(q.items)+len(vs) > q.cap {
		return ocerr.New(ocerr.Capacity, "Queue.Merge", errQueueFull)
	}

	q.items = append(q.items, vs...)

	return nil
}

// Len reports the number of queued items.
func (q *Queue) Len() int {
	return len(q.items)
}

// Items returns the queue's contents without removing them.
func (q *Queue) Items() []int32 {
	return q.items
}

// Drain removes and returns every queued item.
func (q *Queue) Drain() []int32 {
	items := q.items
	q.items = nil

	return items
}

// Clear discards every queued item.
func (q *Queue) Clear() {
	q.items = nil
}

// Capacity reports the queue's maximum size.
func (q *Queue) Capacity() int {
	return q.cap
}

// Partition splits the queue's contents by pred, keeping the
// non-matching items queued and returning the matching ones.
func (q *Queue) Partition(pred func(int32) bool) (matched []int32) {
	var rest []int32

	for _, v := range q.items {
		if pred(v) {
			matched = append(matched, v)
		} else {
			rest = append(rest, v)
		}
	}

	q.items = rest

	return matched
}

var errQueueFull = queueFullError{}

type queueFullError struct{}

func (queueFullError) Error() string { return "scratch queue capacity exceeded" }
