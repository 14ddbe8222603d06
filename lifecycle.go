package tvmrt

import "sync"

// lifecycle is C5 steps 6-8: join the scheduler, join every worker, release
// the trace recorder, and snapshot the latched error. It is adapted from
// the teacher's lifecycleCoordinator: an ordered sequence of closures,
// assembled once per run and executed at most once via sync.Once.
//
// The order matters: the scheduler is the goroutine that pushes the
// shutdown sentinels, so it must be joined before the workers, which only
// return once they've popped theirs.
type lifecycle struct {
	joinScheduler func()
	joinWorkers   func()
	releaseTrace  func()
	snapshotErr   func() error

	once sync.Once
	err  error
}

func newLifecycle(joinScheduler, joinWorkers, releaseTrace func(), snapshotErr func() error) *lifecycle {
	return &lifecycle{
		joinScheduler: joinScheduler,
		joinWorkers:   joinWorkers,
		releaseTrace:  releaseTrace,
		snapshotErr:   snapshotErr,
	}
}

// teardown runs the shutdown sequence exactly once and returns the result
// of snapshotErr. Safe for concurrent calls.
func (lc *lifecycle) teardown() error {
	lc.once.Do(func() {
		if lc.joinScheduler != nil {
			lc.joinScheduler()
		}
		if lc.joinWorkers != nil {
			lc.joinWorkers()
		}
		if lc.releaseTrace != nil {
			lc.releaseTrace()
		}
		if lc.snapshotErr != nil {
			lc.err = lc.snapshotErr()
		}
	})
	return lc.err
}
