package reduce

import "sync/atomic"

// CacheLineSize is the typical cache line size on modern x86
// processors (64 bytes).
const CacheLineSize = 64

// paddedSlot occupies a full cache line so neighbouring workers do not
// invalidate each other's line while scanning.
type paddedSlot struct {
	v int64
	_ [CacheLineSize - 8]byte
}

// workerArena hands each worker a private accumulator bound to its
// identity rather than passed through the call. Slots start zeroed and
// live until the arena is dropped with the run.
type workerArena struct {
	slots []paddedSlot
}

func newWorkerArena(workers int) *workerArena {
	return &workerArena{slots: make([]paddedSlot, workers)}
}

// slot returns the worker's private accumulator.
func (a *workerArena) slot(worker int) *int64 {
	return &a.slots[worker].v
}

// workerLocalStrategy is the local-then-merge discipline with the
// private accumulator held in worker-bound arena storage instead of an
// explicit stack local. The extra indirection of locating the slot is
// the only difference; the merge is one atomic add per worker.
type workerLocalStrategy struct {
	metrics *Metrics
	total   atomic.Int64
}

func (s *workerLocalStrategy) Name() string { return KindWorkerLocal.String() }

func (s *workerLocalStrategy) Reduce(data []int64, parts []Partition) (int64, error) {
	arena := newWorkerArena(len(parts))
	err := scanPartitions(parts, func(worker int, p Partition) error {
		local := arena.slot(worker)
		for _, v := range data[p.Begin:p.End] {
			*local += v
		}
		s.total.Add(*local)
		s.metrics.counter(s.Name()).Inc()
		return nil
	})
	if err != nil {
		return 0, err
	}
	return s.total.Load(), nil
}
