package tvmrt

import (
	"fmt"
	"io"

	"github.com/joeycumines/logiface"
	"github.com/joeycumines/stumpy"
)

// NewLogger builds a structured JSON logger backed by stumpy, writing to w.
// The returned value is a generified *logiface.Logger[logiface.Event], the
// type Config.Log expects, so it can be passed straight to WithLogger
// regardless of which logiface backend produced it.
//
// A nil Config.Log (the default) is itself a fully functional no-op logger —
// NewLogger only needs to be called when events should actually be written
// somewhere, e.g. the demo CLI writing to stderr.
func NewLogger(w io.Writer) *logiface.Logger[logiface.Event] {
	return stumpy.L.New(
		stumpy.L.WithStumpy(stumpy.WithWriter(w)),
	).Logger()
}

// logHandle adapts a (possibly nil) logger to the handful of events this
// package emits, so worker.go/scheduler.go/runtime.go don't repeat the same
// field names at every call site. A nil *logiface.Logger is itself
// nil-safe (every Builder method is a no-op on a disabled logger), so
// logHandle is safe to use with the default Config.Log.
type logHandle struct {
	l *logiface.Logger[logiface.Event]
}

func newLogHandle(l *logiface.Logger[logiface.Event]) *logHandle { return &logHandle{l: l} }

func (h *logHandle) debug(msg string, node int32) {
	h.l.Debug().Int64(`node`, int64(node)).Log(msg)
}

func (h *logHandle) errStatus(node, status int32) {
	h.l.Err().Int64(`node`, int64(node)).Int64(`status`, int64(status)).Log(`kernel returned a non-zero status`)
}

func (h *logHandle) panicked(node int32, r interface{}) {
	h.l.Err().Int64(`node`, int64(node)).Str(`panic`, fmt.Sprint(r)).Log(`kernel panicked`)
}

func (h *logHandle) info(msg string) {
	h.l.Info().Log(msg)
}
