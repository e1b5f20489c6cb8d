// Package dataset generates the benchmark workload: a fixed-length
// slice of signed integers drawn uniformly from a bounded range. The
// slice is generated once, before any timed run, and is shared
// read-only by every worker.
package dataset

import (
	"fmt"
	"math"

	"github.com/hashicorp/go-multierror"
	"github.com/valyala/fastrand"

	"github.com/sumbench/sumbench/reduce"
)

// Config describes the workload: Size uniform draws from [Min, Max].
type Config struct {
	Size int
	Min  int64
	Max  int64
}

// Validate reports every problem with the configuration at once. The
// overflow check guarantees that an exact int64 sum exists for any
// dataset the generator can produce, so no run can silently wrap.
func (c Config) Validate() error {
	var errs *multierror.Error

	if c.Size <= 0 {
		errs = multierror.Append(errs, fmt.Errorf("%w: dataset size %d, want > 0", reduce.ErrInvalidArgument, c.Size))
	}

	if c.Min > c.Max {
		errs = multierror.Append(errs, fmt.Errorf("%w: empty value range [%d, %d]", reduce.ErrInvalidArgument, c.Min, c.Max))
	} else {
		// Width arithmetic in uint64 so extreme bounds cannot wrap.
		width := uint64(c.Max) - uint64(c.Min)
		if width >= math.MaxUint32 {
			errs = multierror.Append(errs, fmt.Errorf("%w: value range [%d, %d] wider than the generator supports", reduce.ErrInvalidArgument, c.Min, c.Max))
		}
	}

	if c.Size > 0 && c.Min <= c.Max {
		if mag := max(magnitude(c.Min), magnitude(c.Max)); mag > 0 && uint64(c.Size) > math.MaxInt64/mag {
			errs = multierror.Append(errs, fmt.Errorf("%w: %d values in [%d, %d] may exceed int64", reduce.ErrOverflow, c.Size, c.Min, c.Max))
		}
	}

	return errs.ErrorOrNil()
}

// magnitude returns |v| as a uint64, defined for math.MinInt64 too.
func magnitude(v int64) uint64 {
	if v < 0 {
		return uint64(-(v + 1)) + 1
	}
	return uint64(v)
}

// Generate draws the workload. The values are uniform over
// [Min, Max]; the seed is not reproducible across invocations, only
// the length and bounds are deterministic.
func Generate(cfg Config) ([]int64, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	width := uint32(uint64(cfg.Max)-uint64(cfg.Min)) + 1

	var rng fastrand.RNG
	rng.Seed(fastrand.Uint32())

	data := make([]int64, cfg.Size)
	for i := range data {
		data[i] = cfg.Min + int64(rng.Uint32n(width))
	}
	return data, nil
}

// Sum is the sequential reference reduction every strategy is checked
// against.
func Sum(data []int64) int64 {
	var total int64
	for _, v := range data {
		total += v
	}
	return total
}
