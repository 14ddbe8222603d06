package tvmrt

import "time"

// runSerial is C6: the single-goroutine fallback used when NumWorkers == 0.
// It bypasses the Ready/Complete queues and the dependency table entirely —
// it simply calls every kernel in strictly ascending node id order, relying
// on the upstream generator having emitted ids in topological order (§9
// design note; not re-verified here) — and stops at the first non-zero
// status, never dispatching the remaining nodes.
//
// This mirrors the teacher's disabled single-goroutine FIFO executor,
// generalized from "run tasks in submission order" to "run nodes in
// ascending id order", which is the topological order this engine's static
// graph tables are required to already satisfy.
func (rt *Runtime) runSerial(st *runState, scratchConst, scratchWork []byte, tr *trace, log *logHandle) error {
	dispatched := rt.m.dispatched
	completed := rt.m.completed
	failures := rt.m.failures
	duration := rt.m.duration

	for v := int32(0); v < int32(rt.graph.N); v++ {
		e := &rt.entities[v]

		dispatched.Add(1)
		log.debug("dispatching node", v)
		start := time.Now()

		status := callSerial(e, scratchConst, scratchWork, v, log)

		duration.Record(time.Since(start).Seconds())
		// completed mirrors the scheduler's complete_queue-pop semantics:
		// every node that finishes counts, whether it succeeded or not.
		completed.Add(1)
		if status != 0 {
			failures.Add(1)
			st.err.store(v, status)
			log.errStatus(v, status)
			if tr != nil {
				tr.record(v)
				tr.close()
			}
			st.completedOps = v + 1
			return NewNodeStatusError(v, status)
		}
		if tr != nil {
			tr.record(v)
		}
	}

	st.completedOps = int32(rt.graph.N)
	if tr != nil {
		tr.close()
	}
	return nil
}

// callSerial invokes a single kernel, recovering a panic into the same
// synthetic status the parallel worker uses, so both paths report failure
// uniformly.
func callSerial(e *Entity, scratchConst, scratchWork []byte, node int32, log *logHandle) (status int32) {
	defer func() {
		if r := recover(); r != nil {
			status = kernelPanicStatus
			log.panicked(node, r)
		}
	}()
	return e.Kernel(e.Inputs[:e.InputCount], e.Outputs[:e.OutputCount], scratchConst, scratchWork)
}
