// Package tvmrt implements the scheduler/worker coordination subsystem that
// drives a precomputed directed acyclic graph (DAG) of compute kernels to
// completion on a pool of worker goroutines.
//
// The graph (node count, per-node predecessor count, per-node successor
// list, per-node kernel binding) is supplied by an upstream, compile-time
// generator; tvmrt owns none of that generation. It owns the ready-set
// management, the dependency-propagation protocol between a scheduler
// goroutine and N worker goroutines, the serial-fallback path used when no
// workers are configured, and the shutdown protocol.
//
// Constructors
//   - New(graph, entities, opts...) builds a Runtime bound to one
//     graph/entity table pair, validating both immediately.
//   - (*Runtime).Run(scratchConst, scratchWork) executes every node exactly
//     once against the given scratch buffers and returns a *NodeStatusError
//     for the first non-zero kernel status observed, or nil.
//   - (*Runtime).Trace() returns the most recent run's execution-order
//     recorder (arrival order and the ascending-id ordered prefix), when
//     Config.Trace was set.
//
// Defaults
// Unless overridden via Option, the following defaults apply:
//   - NumWorkers: resolved from TVMRT_NUM_WORKERS / OMP_NUM_THREADS (see
//     ResolveConfig); zero means serial execution.
//   - Metrics: a metrics.NoopProvider
//   - Log: nil, which logiface treats as a fully functional no-op logger
//   - Trace: false (no execution-order recorder)
//
// Concurrency model
// One dedicated scheduler goroutine, NumWorkers dedicated worker goroutines,
// and the calling goroutine, which performs setup, spawn, join, and
// teardown. The only suspension points are the Ready/Complete queue pop and
// the final WaitGroup join; there is no cooperative yielding.
package tvmrt
