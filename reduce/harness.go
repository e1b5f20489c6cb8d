package reduce

// This file contains the timing harness: one timed reduction per
// strategy, with partitioning and strategy construction kept outside
// the measured interval.

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/sumbench/sumbench/model"
)

// Harness runs timed reductions. It is strategy-agnostic: every run
// partitions the same way, builds a fresh strategy and a fresh metric
// set, and brackets only the reduction phase with the clock.
type Harness struct {
	logger zerolog.Logger
}

// NewHarness returns a harness logging through the given logger.
func NewHarness(logger zerolog.Logger) *Harness {
	return &Harness{logger: logger}
}

// Run executes a single timed reduction of data across workers
// partitions. The measured interval covers worker spawn through
// final-total availability and nothing else. A run that fails yields
// an error, never a partial sample.
func (h *Harness) Run(kind Kind, data []int64, workers int) (model.Sample, error) {
	parts, err := PartitionRange(len(data), workers)
	if err != nil {
		return model.Sample{}, err
	}

	m := NewMetrics()
	strat, err := New(kind, m)
	if err != nil {
		return model.Sample{}, err
	}

	h.logger.Debug().
		Str("strategy", strat.Name()).
		Int("workers", workers).
		Int("size", len(data)).
		Msg("Starting reduction run")

	start := time.Now()
	total, err := strat.Reduce(data, parts)
	elapsed := time.Since(start)
	if err != nil {
		return model.Sample{}, fmt.Errorf("strategy %s failed: %w", strat.Name(), err)
	}

	sample := model.Sample{
		Strategy: strat.Name(),
		Elapsed:  elapsed,
		Total:    total,
		Workers:  workers,
		SyncOps:  m.SyncOps(strat.Name()),
	}

	h.logger.Info().
		Str("strategy", sample.Strategy).
		Dur("elapsed", sample.Elapsed).
		Int64("total", sample.Total).
		Uint64("sync_ops", sample.SyncOps).
		Msg("Reduction run complete")

	return sample, nil
}

// RunAll runs every strategy in report order on the same dataset and
// worker count.
func (h *Harness) RunAll(data []int64, workers int) ([]model.Sample, error) {
	samples := make([]model.Sample, 0, len(Kinds()))
	for _, kind := range Kinds() {
		sample, err := h.Run(kind, data, workers)
		if err != nil {
			return nil, err
		}
		samples = append(samples, sample)
	}
	return samples, nil
}
