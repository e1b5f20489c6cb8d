// Package reduce implements the core of the benchmark: a closed set of
// reduction strategies that sum a shared, read-only dataset with one
// concurrent worker per partition, and a harness that times each of
// them on identical partitioning so the measurements are comparable.
package reduce

import (
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Kind identifies one reduction strategy. The set is closed: the
// harness dispatches on it and the report iterates it in a fixed
// order.
type Kind int

const (
	// KindLocked takes a shared mutex for every single element add.
	KindLocked Kind = iota
	// KindAtomicSeqCst performs one sequentially consistent atomic
	// fetch-and-add per element on the shared total.
	KindAtomicSeqCst
	// KindAtomicRelaxed is the relaxed-ordering row of the atomic
	// per-element strategy.
	KindAtomicRelaxed
	// KindLocalMergeLock scans into a private accumulator and merges
	// once per worker under a mutex.
	KindLocalMergeLock
	// KindLocalMergeAtomicSeqCst merges once per worker with a
	// sequentially consistent atomic add.
	KindLocalMergeAtomicSeqCst
	// KindLocalMergeAtomicRelaxed is the relaxed-ordering row of the
	// local-then-merge strategy.
	KindLocalMergeAtomicRelaxed
	// KindWorkerLocal accumulates into worker-bound arena storage and
	// merges once per worker.
	KindWorkerLocal
	// KindFutures hands each worker's private total to the
	// orchestrator through a one-shot slot; workers share nothing.
	KindFutures
)

var kindNames = map[Kind]string{
	KindLocked:                  "locked",
	KindAtomicSeqCst:            "atomic-seqcst",
	KindAtomicRelaxed:           "atomic-relaxed",
	KindLocalMergeLock:          "local-merge-lock",
	KindLocalMergeAtomicSeqCst:  "local-merge-atomic-seqcst",
	KindLocalMergeAtomicRelaxed: "local-merge-atomic-relaxed",
	KindWorkerLocal:             "worker-local",
	KindFutures:                 "futures",
}

var kindDescriptions = map[Kind]string{
	KindLocked:                  "mutex acquired for every element add (worst-case baseline)",
	KindAtomicSeqCst:            "one atomic fetch-and-add per element, sequentially consistent",
	KindAtomicRelaxed:           "one atomic fetch-and-add per element, relaxed ordering mode",
	KindLocalMergeLock:          "private per-worker subtotal, one mutex-guarded merge per worker",
	KindLocalMergeAtomicSeqCst:  "private per-worker subtotal, one seqcst atomic merge per worker",
	KindLocalMergeAtomicRelaxed: "private per-worker subtotal, one relaxed atomic merge per worker",
	KindWorkerLocal:             "worker-bound arena storage, one atomic merge per worker",
	KindFutures:                 "no shared state; workers publish through one-shot slots",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Description returns a one-line summary for the list command.
func (k Kind) Description() string {
	return kindDescriptions[k]
}

// Kinds returns every strategy kind in report order.
func Kinds() []Kind {
	return []Kind{
		KindLocked,
		KindAtomicSeqCst,
		KindAtomicRelaxed,
		KindLocalMergeLock,
		KindLocalMergeAtomicSeqCst,
		KindLocalMergeAtomicRelaxed,
		KindWorkerLocal,
		KindFutures,
	}
}

// ParseKind resolves a strategy identifier from the command line.
func ParseKind(s string) (Kind, error) {
	for kind, name := range kindNames {
		if name == s {
			return kind, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown strategy %q", ErrInvalidArgument, s)
}

// A Strategy reduces the shared dataset across a set of partitions,
// one concurrent worker per partition, and returns the exact sum.
// Implementations carry per-run state (the shared total, result
// slots) and must not be reused across runs.
type Strategy interface {
	Name() string
	Reduce(data []int64, parts []Partition) (int64, error)
}

// New builds a fresh strategy of the given kind recording its
// synchronized operations into m. State is per-instance, so the
// harness constructs a new one for every run.
func New(kind Kind, m *Metrics) (Strategy, error) {
	switch kind {
	case KindLocked:
		return &perElementStrategy{kind: kind, metrics: m, total: &lockedCell{}}, nil
	case KindAtomicSeqCst, KindAtomicRelaxed:
		return &perElementStrategy{kind: kind, metrics: m, total: &atomicCell{}}, nil
	case KindLocalMergeLock:
		return &localMergeStrategy{kind: kind, metrics: m, total: &lockedCell{}}, nil
	case KindLocalMergeAtomicSeqCst, KindLocalMergeAtomicRelaxed:
		return &localMergeStrategy{kind: kind, metrics: m, total: &atomicCell{}}, nil
	case KindWorkerLocal:
		return &workerLocalStrategy{metrics: m}, nil
	case KindFutures:
		return &futuresStrategy{metrics: m}, nil
	}
	return nil, fmt.Errorf("%w: unknown strategy kind %d", ErrInvalidArgument, int(kind))
}

// scanPartitions runs fn concurrently, once per partition, and waits
// for every worker to finish. The worker index is the partition index.
func scanPartitions(parts []Partition, fn func(worker int, p Partition) error) error {
	var g errgroup.Group
	for i, p := range parts {
		i, p := i, p
		g.Go(func() error {
			return fn(i, p)
		})
	}
	return g.Wait()
}
