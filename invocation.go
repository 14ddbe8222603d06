package tvmrt

import (
	"time"

	"github.com/zikangliang/tvmrt/pool"
)

// invocation is the small bookkeeping record a worker borrows from an
// invocationPool for the duration of one kernel call: which node is being
// invoked and when it started, used for the duration histogram (§11.1); the
// trace recorder takes the node id directly. It carries no kernel-owned memory —
// the actual input/output/scratch buffers live on the Entity and are never
// copied — so pooling it only avoids one small heap allocation per
// dispatch, not a meaningful buffer copy.
type invocation struct {
	node       int32
	dispatched time.Time
}

// invocationPool wraps pool.Pool with typed Get/Put, choosing a bounded
// pool.NewFixed(numWorkers, ...) when the worker count is positive (at most
// numWorkers invocations are ever live concurrently) and an unbounded
// pool.NewDynamic otherwise. Only the parallel path builds one; the serial
// fallback (serial.go) calls kernels directly and uses no invocation pool.
type invocationPool struct {
	p pool.Pool
}

func newInvocationPool(numWorkers int) *invocationPool {
	newFn := func() interface{} { return &invocation{} }
	if numWorkers > 0 {
		return &invocationPool{p: pool.NewFixed(uint(numWorkers), newFn)}
	}
	return &invocationPool{p: pool.NewDynamic(newFn)}
}

func (ip *invocationPool) get(node int32) *invocation {
	inv := ip.p.Get().(*invocation)
	inv.node = node
	inv.dispatched = time.Now()
	return inv
}

func (ip *invocationPool) put(inv *invocation) {
	inv.node = 0
	ip.p.Put(inv)
}
