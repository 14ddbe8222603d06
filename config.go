package tvmrt

import (
	"os"
	"strconv"

	"github.com/joeycumines/logiface"
	"github.com/zikangliang/tvmrt/metrics"
)

// Config holds the tunable knobs for a Runtime. It is assembled once, by
// New, from defaultConfig() plus any Options, and is immutable thereafter.
type Config struct {
	// NumWorkers is the fixed worker-goroutine count for the parallel path
	// (C3). Zero selects the serial fallback (C6) instead of spawning any
	// worker goroutines. See ResolveConfig for the environment-driven
	// default used when no WithNumWorkers option is given.
	NumWorkers int

	// QueueMargin is extra Ready/Complete queue capacity on top of
	// N + NumWorkers. The NumWorkers term alone already guarantees that
	// pushing a shutdown sentinel for every worker never blocks, even when
	// the queue is simultaneously holding every node's completion.
	// Default: 0.
	QueueMargin int

	// Trace enables the execution-order recorder (trace.go). Disabled by
	// default: it is a diagnostic aid, not part of the engine's normal
	// dataflow, and keeping it off avoids the extra bookkeeping on the hot
	// path.
	Trace bool

	// Metrics is the instrumentation provider used for every counter,
	// gauge, and histogram this package records. Default: a NoopProvider,
	// so embedding this runtime never requires wiring a metrics backend.
	Metrics metrics.Provider

	// Log receives structured events for construction, dispatch,
	// completion, kernel failures, and shutdown. Default: nil, which
	// logiface treats as a fully functional no-op logger — embedding this
	// runtime never requires wiring a logging backend either.
	Log *logiface.Logger[logiface.Event]
}

// defaultConfig centralizes default values for Config. ResolveConfig layers
// environment-driven overrides on top of this base; New layers Options on
// top of that.
func defaultConfig() Config {
	return Config{
		NumWorkers:  0,
		QueueMargin: 0,
		Trace:       false,
		Metrics:     metrics.NoopProvider{},
		Log:         nil,
	}
}

// envNumWorkersPrimary and envNumWorkersFallback are the two environment
// variables consulted by ResolveConfig, in priority order.
const (
	envNumWorkersPrimary  = "TVMRT_NUM_WORKERS"
	envNumWorkersFallback = "OMP_NUM_THREADS"
)

// ResolveConfig applies the environment-driven NumWorkers default described
// by the worker-count resolution rule: TVMRT_NUM_WORKERS takes priority over
// OMP_NUM_THREADS, and an unset or unparsable value at either variable falls
// back to the next one. The final fallback depends on fromParallelEntry:
// callers constructing a parallel Runtime (C5) get 3 workers, matching the
// historical default of the parallel dispatch path; callers resolving the
// top-level default (no explicit pool selected) get 0, which selects the
// serial fallback (C6). This asymmetry is intentional — see DESIGN.md — and
// mirrors an existing behavioral quirk rather than a newly invented one.
//
// ResolveConfig never overrides an explicit WithNumWorkers option; New only
// calls it when the caller left NumWorkers unset (zero) and did not request
// the serial fallback explicitly via WithSerial.
func ResolveConfig(fromParallelEntry bool) int {
	if n, ok := parseEnvWorkers(envNumWorkersPrimary); ok {
		return n
	}
	if n, ok := parseEnvWorkers(envNumWorkersFallback); ok {
		return n
	}
	if fromParallelEntry {
		return 3
	}
	return 0
}

func parseEnvWorkers(name string) (int, bool) {
	v, set := os.LookupEnv(name)
	if !set {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
