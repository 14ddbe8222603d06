package tvmrt

import "github.com/zikangliang/tvmrt/metrics"

// shutdownSentinel is the reserved value that, when popped from the Ready
// queue, instructs a worker to terminate. Any value less than zero carries
// this meaning; -1 is the conventional choice used throughout this package.
const shutdownSentinel int32 = -1

// nodeQueue is the bounded MPMC signalling queue of C1: a FIFO queue of
// node ids, sized so that push never blocks under the stated capacity
// invariant (N + a margin at least equal to the worker count, so the
// shutdown sentinels always fit). It is a thin wrapper around a buffered
// Go channel, which already provides the required guarantees (thread-safe
// concurrent push/pop, FIFO ordering of non-concurrent pushes, no lost
// wakeups, no spurious values) without any bespoke synchronization.
type nodeQueue struct {
	ch    chan int32
	depth metrics.UpDownCounter
}

// newNodeQueue allocates a queue with the given capacity. depth, if
// non-nil, is incremented on every push and decremented on every pop of a
// node id; shutdown sentinels (negative values) are never counted.
func newNodeQueue(capacity int, depth metrics.UpDownCounter) *nodeQueue {
	if depth == nil {
		depth = metrics.NoopProvider{}.UpDownCounter("")
	}
	return &nodeQueue{ch: make(chan int32, capacity), depth: depth}
}

// push appends v to the tail of the queue. Under the capacity invariant
// documented on Config.QueueMargin this never blocks.
func (q *nodeQueue) push(v int32) {
	q.ch <- v
	if v >= 0 {
		q.depth.Add(1)
	}
}

// pop blocks until an element is available and returns the head of the
// queue.
func (q *nodeQueue) pop() int32 {
	v := <-q.ch
	q.afterPop(v)
	return v
}

// channel exposes the underlying channel so a caller can select on it
// alongside other events (the scheduler does this to react to a latched
// error without waiting for its own complete.pop() to return). A caller
// that receives from channel directly must call afterPop with the received
// value to keep depth bookkeeping consistent with pop.
func (q *nodeQueue) channel() <-chan int32 { return q.ch }

// afterPop applies the depth bookkeeping pop would have applied, for a
// value received via channel directly.
func (q *nodeQueue) afterPop(v int32) {
	if v >= 0 {
		q.depth.Add(-1)
	}
}

// len reports the number of elements currently buffered. It is a snapshot,
// useful for diagnostics and the Quiescence property test (§8): it is not
// synchronized with concurrent push/pop beyond what the channel itself
// guarantees.
func (q *nodeQueue) len() int { return len(q.ch) }
