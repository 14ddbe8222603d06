package pool

// fixed is a bounded, channel-based pool sized to a known-in-advance upper
// bound on concurrently live values — e.g. capacity == num_workers, since
// at most that many kernel invocations are ever in flight at once.
type fixed struct {
	available chan interface{}
	all       chan interface{}
	buf       chan interface{}
	newFn     func() interface{}
}

// NewFixed builds a pool that never grows past capacity live values.
func NewFixed(capacity uint, newFn func() interface{}) Pool {
	return &fixed{
		available: make(chan interface{}, capacity),
		all:       make(chan interface{}, capacity),
		buf:       make(chan interface{}, 1024),
		newFn:     newFn,
	}
}

func (p *fixed) Get() interface{} {
	select {
	case el := <-p.available:
		return el

	case el := <-p.buf:
		return el

	default:
		var el interface{}

		// all holds one token per value created so far; once it is full,
		// wait for a value to be Put back instead of creating another.
		select {
		case p.all <- struct{}{}:
			el = p.newFn()
		case el = <-p.available:
		}
		return el
	}
}

func (p *fixed) Put(el interface{}) {
	select {
	case p.available <- el:
	default:
	}
}
