package tvmrt

import (
	"time"

	"github.com/zikangliang/tvmrt/metrics"
)

// worker is C3: a single goroutine that repeatedly pops the Ready queue,
// invokes the bound kernel, and pushes the node onto the Complete queue. It
// never blocks the scheduler and never talks to another worker directly —
// the two queues are the entire coordination surface.
type worker struct {
	id       int
	entities []Entity
	invs     *invocationPool
	ready    *nodeQueue
	complete *nodeQueue
	errLatch *errorLatch
	trace    *trace

	scratchConst []byte
	scratchWork  []byte

	// completed is intentionally absent here: nodes.completed is
	// incremented once per complete_queue pop by the scheduler (success or
	// failure alike), not once per successful kernel call by the worker
	// that produced it.
	dispatched metrics.Counter
	failures   metrics.Counter
	duration   metrics.Histogram

	log *logHandle
}

// run pops nodes until it pops the shutdown sentinel, then returns. Exactly
// one sentinel is ever delivered to this worker (the scheduler goroutine
// pushes num_workers sentinels, one per worker, as C4 step 6).
func (w *worker) run() {
	for {
		v := w.ready.pop()
		if v < 0 {
			return
		}
		w.invoke(v)
	}
}

func (w *worker) invoke(node int32) {
	inv := w.invs.get(node)
	defer w.invs.put(inv)

	w.dispatched.Add(1)
	w.log.debug("dispatching node", node)

	status := w.call(node)

	w.duration.Record(time.Since(inv.dispatched).Seconds())
	if status != 0 {
		w.failures.Add(1)
		w.errLatch.store(node, status)
		w.log.errStatus(node, status)
	}
	if w.trace != nil {
		w.trace.record(node)
	}

	w.complete.push(node)
}

// call invokes the node's kernel, converting a panic into a synthetic
// non-zero status rather than letting it take down the worker goroutine —
// one misbehaving kernel must not stall every node still waiting on the
// Ready queue.
func (w *worker) call(node int32) (status int32) {
	e := &w.entities[node]
	defer func() {
		if r := recover(); r != nil {
			status = kernelPanicStatus
			w.log.panicked(node, r)
		}
	}()
	return e.Kernel(e.Inputs[:e.InputCount], e.Outputs[:e.OutputCount], w.scratchConst, w.scratchWork)
}

// kernelPanicStatus is the synthetic status latched when a kernel call
// panics. It is distinct from 0 (success) and carries no other meaning; the
// recovered panic value itself is only surfaced via logging.
const kernelPanicStatus int32 = -1
