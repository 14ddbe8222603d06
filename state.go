package tvmrt

import "sync"

// dependencyTable is C2: one mutable remaining-predecessor counter per
// node. In this engine every decrement is performed by the single
// scheduler goroutine (§4.2), so plain memory access is sufficient —
// there is no concurrent writer to race against. The contract it upholds
// is "a node is pushed to the Ready queue exactly once, exactly by the
// decrement that drives its counter to zero."
type dependencyTable struct {
	current []int32
}

func newDependencyTable(initial []int32) *dependencyTable {
	current := make([]int32, len(initial))
	copy(current, initial)
	return &dependencyTable{current: current}
}

// decrementAndRead decrements current[v] by one and returns the resulting
// value. It is only ever called by the scheduler goroutine.
func (d *dependencyTable) decrementAndRead(v int32) int32 {
	d.current[v]--
	return d.current[v]
}

// errorLatch holds the first non-zero (node, status) pair observed during a
// run — first-kernel-failure-wins (§5 fail-fast semantics). A plain mutex is
// used rather than lock-free atomics: the write only happens on the rare
// failure path, and guarding node+status together avoids the two fields
// ever being read in an inconsistent combination.
//
// failed additionally closes exactly once, the first time a non-zero status
// is latched, so the scheduler can react to a kernel failure without
// waiting for its next complete_queue pop — the same "cancel promptly on
// first error" idea as the teacher's errorForwarder, adapted from a
// cancel-the-context signal to a close-this-channel signal, since this
// engine has no context to cancel.
type errorLatch struct {
	mu     sync.Mutex
	node   int32
	status int32
	failed chan struct{}
}

func newErrorLatch() *errorLatch {
	return &errorLatch{failed: make(chan struct{})}
}

// store latches (node, status) if status is non-zero and nothing has been
// latched yet. Safe for concurrent callers (every worker goroutine calls
// this).
func (e *errorLatch) store(node, status int32) {
	if status == 0 {
		return
	}
	e.mu.Lock()
	first := e.status == 0
	if first {
		e.node = node
		e.status = status
	}
	e.mu.Unlock()
	if first {
		close(e.failed)
	}
}

// load returns the latched (node, status) pair, or (0, 0) if no kernel has
// failed yet.
func (e *errorLatch) load() (node, status int32) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.node, e.status
}

// signal returns a channel that is closed the first time a non-zero status
// is latched. The scheduler can select on it alongside complete_queue.pop
// to fail fast without waiting for the next completion event.
func (e *errorLatch) signal() <-chan struct{} { return e.failed }

// runState is the dynamic state of C3's dataflow: the dependency table plus
// the completed-ops counter and the error latch. It is created once per
// run by the driver and destroyed at the end of the run (C5 steps 1 and 8).
type runState struct {
	deps         *dependencyTable
	completedOps int32 // touched only by the scheduler goroutine
	err          *errorLatch
}

func newRunState(g *Graph) *runState {
	return &runState{
		deps: newDependencyTable(g.InitialIndegree),
		err:  newErrorLatch(),
	}
}
