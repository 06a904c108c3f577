package astar

import (
	"math"

	"github.com/emirpasic/gods/queues/priorityqueue"
)

// entry is one frontier record. via is nil for the source entry.
type entry[N comparable] struct {
	estimate float64 // acc + heuristic(node)
	seq      uint64  // insertion order, strict tie-breaker
	acc      float64 // accumulated cost from source
	node     N
	via      *Edge[N]
}

// frontier is a min-queue of entries ordered by (estimate, seq).
// Stale entries are kept; the runner discards them on pop.
type frontier[N comparable] struct {
	queue *priorityqueue.Queue
	seq   uint64
}

func newFrontier[N comparable]() *frontier[N] {
	return &frontier[N]{queue: priorityqueue.NewWith(byEstimate[N])}
}

// push stamps e with the next sequence number and enqueues it.
func (f *frontier[N]) push(e *entry[N]) {
	f.seq++
	e.seq = f.seq
	f.queue.Enqueue(e)
}

func (f *frontier[N]) pop() (*entry[N], bool) {
	v, ok := f.queue.Dequeue()
	if !ok {
		return nil, false
	}

	return v.(*entry[N]), true
}

// byEstimate orders entries by estimate, NaN last, then by sequence.
func byEstimate[N comparable](a, b interface{}) int {
	x, y := a.(*entry[N]), b.(*entry[N])
	xNaN, yNaN := math.IsNaN(x.estimate), math.IsNaN(y.estimate)
	switch {
	case xNaN && !yNaN:
		return 1
	case !xNaN && yNaN:
		return -1
	case !xNaN && x.estimate < y.estimate:
		return -1
	case !xNaN && x.estimate > y.estimate:
		return 1
	}

	switch {
	case x.seq < y.seq:
		return -1
	case x.seq > y.seq:
		return 1
	default:
		return 0
	}
}
