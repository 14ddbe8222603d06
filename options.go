package tvmrt

import (
	"github.com/joeycumines/logiface"
	"github.com/zikangliang/tvmrt/metrics"
)

// Option configures a Runtime. Use New(graph, entities, opts...) to apply
// them.
type Option func(*configOptions)

// configOptions is the internal builder state assembled from defaultConfig()
// plus every supplied Option, before New resolves the final worker count.
type configOptions struct {
	cfg             Config
	numWorkersSet   bool
	serialRequested bool
}

// WithNumWorkers selects a fixed-size worker pool of exactly n goroutines
// for the parallel path (C3). Panics if n == 0; use WithSerial to select the
// serial fallback explicitly.
func WithNumWorkers(n int) Option {
	if n == 0 {
		panic("tvmrt: WithNumWorkers requires n > 0; use WithSerial for the serial fallback")
	}
	return func(co *configOptions) {
		co.cfg.NumWorkers = n
		co.numWorkersSet = true
		co.serialRequested = false
	}
}

// WithSerial selects the serial fallback (C6): a single goroutine executing
// ready nodes one at a time in ascending id order, bypassing the Ready and
// Complete queues entirely.
func WithSerial() Option {
	return func(co *configOptions) {
		co.cfg.NumWorkers = 0
		co.numWorkersSet = true
		co.serialRequested = true
	}
}

// WithQueueMargin overrides the extra Ready/Complete queue capacity beyond N.
func WithQueueMargin(margin int) Option {
	return func(co *configOptions) { co.cfg.QueueMargin = margin }
}

// WithTrace enables the execution-order recorder.
func WithTrace() Option { return func(co *configOptions) { co.cfg.Trace = true } }

// WithMetrics sets the instrumentation provider. Passing nil is a no-op
// (the default NoopProvider is kept).
func WithMetrics(p metrics.Provider) Option {
	return func(co *configOptions) {
		if p != nil {
			co.cfg.Metrics = p
		}
	}
}

// WithLogger sets the structured event logger.
func WithLogger(l *logiface.Logger[logiface.Event]) Option {
	return func(co *configOptions) { co.cfg.Log = l }
}
