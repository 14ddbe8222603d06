package tvmrt

import (
	"sync"

	"github.com/zikangliang/tvmrt/metrics"
)

// Runtime is C5: the top-level object a caller constructs once per graph and
// invokes (possibly repeatedly) via Run. A Runtime owns no goroutines or
// queues between calls to Run — those are allocated fresh for each run and
// released at the end of it, so a single Runtime value can safely execute
// the same graph multiple times, sequentially, with fresh scratch buffers.
type Runtime struct {
	graph    *Graph
	entities []Entity
	cfg      Config

	metricsOnce sync.Once
	m           runtimeMetrics

	lastTrace *trace // set at the start of every Run call
}

type runtimeMetrics struct {
	dispatched metrics.Counter
	completed  metrics.Counter
	failures   metrics.Counter
	duration   metrics.Histogram
	readyDepth metrics.UpDownCounter
}

// New constructs a Runtime for the given static graph and entity table. The
// graph and entity table are validated immediately (GraphPrecondition
// failures are returned, not deferred to Run); scratch buffers are supplied
// per-call to Run since the upstream generator may reuse one Runtime across
// several invocations with rotating scratch memory.
func New(graph *Graph, entities []Entity, opts ...Option) (*Runtime, error) {
	if graph == nil {
		return nil, ErrNilGraph
	}
	if err := graph.validate(); err != nil {
		return nil, err
	}
	if len(entities) != graph.N {
		return nil, ErrEntityCountMismatch
	}
	for i := range entities {
		if err := entities[i].validate(); err != nil {
			return nil, err
		}
	}

	co := configOptions{cfg: defaultConfig()}
	for _, o := range opts {
		if o != nil {
			o(&co)
		}
	}
	if !co.numWorkersSet {
		co.cfg.NumWorkers = ResolveConfig(false)
	}
	if co.cfg.Metrics == nil {
		co.cfg.Metrics = metrics.NoopProvider{}
	}

	rt := &Runtime{graph: graph, entities: entities, cfg: co.cfg}
	rt.initMetrics()
	return rt, nil
}

func (rt *Runtime) initMetrics() {
	rt.metricsOnce.Do(func() {
		p := rt.cfg.Metrics
		rt.m = runtimeMetrics{
			dispatched: p.Counter("nodes.dispatched", metrics.WithDescription("kernel invocations started")),
			completed:  p.Counter("nodes.completed", metrics.WithDescription("complete_queue pops, success or failure alike")),
			failures:   p.Counter("kernel.failures", metrics.WithDescription("kernel invocations that returned a non-zero status")),
			duration:   p.Histogram("kernel.duration.seconds", metrics.WithUnit("seconds")),
			readyDepth: p.UpDownCounter("ready.queue.depth", metrics.WithDescription("nodes currently buffered in the Ready queue")),
		}
	})
}

// Run executes the graph once against the supplied scratch buffers and
// returns the first non-zero kernel status latched during the run, wrapped
// as a *NodeStatusError, or nil if every node returned 0.
//
// Run performs, in order, the eight steps of C5: allocate run state,
// allocate queues, seed the Ready queue with every initially-ready node in
// ascending id order, spawn the scheduler and (for the parallel path) the
// worker group, join every goroutine, snapshot the latched error, and
// release the run state.
func (rt *Runtime) Run(scratchConst, scratchWork []byte) error {
	log := newLogHandle(rt.cfg.Log)
	log.info("run starting")

	st := newRunState(rt.graph)

	var tr *trace
	if rt.cfg.Trace {
		tr = newTrace(rt.graph.N)
	}
	rt.lastTrace = tr

	if rt.graph.N == 0 {
		if tr != nil {
			tr.close()
		}
		log.info("run complete (empty graph)")
		return nil
	}

	serial := rt.cfg.NumWorkers == 0
	if serial {
		err := rt.runSerial(st, scratchConst, scratchWork, tr, log)
		log.info("run complete")
		return err
	}

	err := rt.runParallel(st, scratchConst, scratchWork, tr, log)
	log.info("run complete")
	return err
}

func (rt *Runtime) runParallel(st *runState, scratchConst, scratchWork []byte, tr *trace, log *logHandle) error {
	n := rt.graph.N
	capacity := n + rt.cfg.NumWorkers + rt.cfg.QueueMargin

	ready := newNodeQueue(capacity, rt.m.readyDepth)
	complete := newNodeQueue(capacity, nil)

	seed := rt.graph.initialReady()
	for _, v := range seed {
		ready.push(v)
	}

	invs := newInvocationPool(rt.cfg.NumWorkers)

	workers := make([]*worker, rt.cfg.NumWorkers)
	for i := range workers {
		workers[i] = &worker{
			id:           i,
			entities:     rt.entities,
			invs:         invs,
			ready:        ready,
			complete:     complete,
			errLatch:     st.err,
			trace:        tr,
			scratchConst: scratchConst,
			scratchWork:  scratchWork,
			dispatched:   rt.m.dispatched,
			failures:     rt.m.failures,
			duration:     rt.m.duration,
			log:          log,
		}
	}

	sched := newScheduler(rt.graph, st, ready, complete, rt.cfg.NumWorkers, len(seed), rt.m.completed)

	group := newWorkerGroup(workers)
	group.start()

	// The scheduler runs on its own dedicated goroutine (C5 step 4), not the
	// calling goroutine, so that lifecycle.teardown's "join scheduler, then
	// join workers" sequence is a real join of two independent goroutines
	// rather than a no-op on an already-returned call.
	var schedWG sync.WaitGroup
	schedWG.Add(1)
	go func() {
		defer schedWG.Done()
		sched.run()
	}()

	lc := newLifecycle(
		schedWG.Wait,
		group.join,
		func() {
			if tr != nil {
				tr.close()
			}
		},
		func() error { return statusToError(st.err) },
	)

	return lc.teardown()
}

// statusToError resolves a run's latched error state into a
// *NodeStatusError correlating the first failing node with its status, or
// nil if no kernel failed.
func statusToError(e *errorLatch) error {
	node, status := e.load()
	if status == 0 {
		return nil
	}
	return NewNodeStatusError(node, status)
}

// Trace returns the execution-order recorder from the most recent call to
// Run. ok is false if Config.Trace was not set, or if Run has not been
// called yet. Call it only after Run returns — the recorder is still being
// written to while a run is in flight.
func (rt *Runtime) Trace() (arrival, ordered []int32, ok bool) {
	if rt.lastTrace == nil {
		return nil, nil, false
	}
	return rt.lastTrace.Arrival(), rt.lastTrace.Ordered(), true
}
