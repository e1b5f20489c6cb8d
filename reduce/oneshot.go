package reduce

// A oneshot carries a single value from one worker to the
// orchestrator: at most one Put, at most one blocking Take. The
// channel hand-off is what makes the published value visible to the
// orchestrator; no other synchronization is involved.
type oneshot struct {
	ch chan int64
}

func newOneshot() *oneshot {
	return &oneshot{ch: make(chan int64, 1)}
}

// Put publishes the value. A second Put panics: the slot is
// single-producer by contract.
func (o *oneshot) Put(v int64) {
	select {
	case o.ch <- v:
	default:
		panic("oneshot: value already published")
	}
}

// Take blocks until the value has been published and returns it.
func (o *oneshot) Take() int64 {
	return <-o.ch
}
