package reduce

import "fmt"

// A Partition is a half-open index range [Begin, End) into the shared
// dataset, assigned to exactly one worker.
type Partition struct {
	Begin int
	End   int
}

// Len returns the number of elements the partition covers.
func (p Partition) Len() int { return p.End - p.Begin }

// PartitionRange splits [0, length) into workers contiguous,
// non-overlapping ranges of equal quotient size. The last partition
// absorbs the remainder, so sizes differ by at most workers-1
// elements. Fails when workers <= 0 or length < workers, since then
// non-empty partitions cannot be guaranteed.
func PartitionRange(length, workers int) ([]Partition, error) {
	if workers <= 0 {
		return nil, fmt.Errorf("%w: worker count %d, want > 0", ErrInvalidArgument, workers)
	}
	if length < workers {
		return nil, fmt.Errorf("%w: dataset length %d smaller than worker count %d", ErrInvalidArgument, length, workers)
	}

	chunk := length / workers
	parts := make([]Partition, workers)
	for i := range parts {
		parts[i] = Partition{Begin: i * chunk, End: (i + 1) * chunk}
	}
	parts[workers-1].End = length
	return parts, nil
}
