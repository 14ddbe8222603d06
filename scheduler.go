package tvmrt

import "github.com/zikangliang/tvmrt/metrics"

// scheduler is C4: the single goroutine that owns all dependency-propagation
// bookkeeping. It pops the Complete queue, advances the dependency table,
// and pushes newly-ready successors onto the Ready queue. No other
// goroutine ever writes runState.deps or the completed-ops counter, so this
// loop needs no locking of its own.
type scheduler struct {
	graph    *Graph
	state    *runState
	ready    *nodeQueue
	complete *nodeQueue
	numSinks int // number of worker goroutines waiting on the Ready queue
	seeded   int // number of nodes pushed onto the Ready queue before run() started

	completed metrics.Counter // incremented on every complete_queue pop, success or failure
}

func newScheduler(g *Graph, st *runState, ready, complete *nodeQueue, numSinks, seeded int, completed metrics.Counter) *scheduler {
	return &scheduler{
		graph:     g,
		state:     st,
		ready:     ready,
		complete:  complete,
		numSinks:  numSinks,
		seeded:    seeded,
		completed: completed,
	}
}

// run executes the scheduling loop to completion: every node either
// finishes or the run fails fast on the first non-zero kernel status. Either
// way, run eventually pushes exactly numSinks shutdown sentinels to the
// Ready queue and returns.
//
// On fail-fast, run does not interrupt kernels already dispatched: it stops
// pushing newly-ready nodes, but keeps draining the Complete queue until
// every already-dispatched node has reported back, so no worker is left
// blocked pushing to a Complete queue nobody is reading.
//
// run selects on the Complete queue's channel alongside state.err.signal(),
// so a latched failure is observed as soon as it happens rather than only
// on the next complete_queue pop — once observed, sig is set to nil so the
// closed signal channel isn't selected again every iteration.
func (s *scheduler) run() {
	dispatched := int32(s.seeded)
	completedOps := int32(0)
	failed := false
	sig := s.state.err.signal()

	for {
		select {
		case v := <-s.complete.channel():
			s.complete.afterPop(v)
			completedOps++
			s.completed.Add(1)

			if !failed {
				if _, status := s.state.err.load(); status != 0 {
					failed = true
				}
			}

			if !failed {
				succ := s.graph.Successors[v]
				cnt := int(s.graph.SuccessorCount[v])
				for i := 0; i < cnt; i++ {
					w := succ[i]
					if s.state.deps.decrementAndRead(w) == 0 {
						s.ready.push(w)
						dispatched++
					}
				}
			}

		case <-sig:
			failed = true
			sig = nil
		}

		if failed {
			if completedOps >= dispatched {
				break
			}
			continue
		}
		if completedOps >= int32(s.graph.N) {
			break
		}
	}

	s.state.completedOps = completedOps

	for i := 0; i < s.numSinks; i++ {
		s.ready.push(shutdownSentinel)
	}
}
