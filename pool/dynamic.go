package pool

import "sync"

// NewDynamic is an unbounded pool backed by sync.Pool, suitable when the
// number of concurrently live values is not known in advance.
func NewDynamic(newFn func() interface{}) Pool {
	return &sync.Pool{New: newFn}
}
