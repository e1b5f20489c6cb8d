package reduce

import "golang.org/x/sync/errgroup"

// futuresStrategy gives every worker a dedicated one-shot slot and no
// shared mutable state at all. The orchestrator blocks on each slot in
// turn and does the summing itself, isolating pure parallel compute
// from any in-worker synchronization cost.
type futuresStrategy struct {
	metrics *Metrics
}

func (s *futuresStrategy) Name() string { return KindFutures.String() }

func (s *futuresStrategy) Reduce(data []int64, parts []Partition) (int64, error) {
	slots := make([]*oneshot, len(parts))
	for i := range slots {
		slots[i] = newOneshot()
	}

	var g errgroup.Group
	for i, p := range parts {
		i, p := i, p
		g.Go(func() error {
			var local int64
			for _, v := range data[p.Begin:p.End] {
				local += v
			}
			slots[i].Put(local)
			s.metrics.counter(s.Name()).Inc()
			return nil
		})
	}

	var total int64
	for _, slot := range slots {
		total += slot.Take()
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}
	return total, nil
}
