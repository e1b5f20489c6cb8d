package reduce

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPartitionRange(t *testing.T) {
	tests := []struct {
		name    string
		length  int
		workers int
		want    []Partition
	}{
		{
			name:    "even split",
			length:  8,
			workers: 4,
			want:    []Partition{{0, 2}, {2, 4}, {4, 6}, {6, 8}},
		},
		{
			name:    "remainder goes to the last partition",
			length:  10,
			workers: 4,
			want:    []Partition{{0, 2}, {2, 4}, {4, 6}, {6, 10}},
		},
		{
			name:    "single worker",
			length:  5,
			workers: 1,
			want:    []Partition{{0, 5}},
		},
		{
			name:    "one element per worker",
			length:  3,
			workers: 3,
			want:    []Partition{{0, 1}, {1, 2}, {2, 3}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parts, err := PartitionRange(tt.length, tt.workers)
			require.NoError(t, err)
			assert.Equal(t, tt.want, parts)
		})
	}
}

func TestPartitionRange_InvalidArguments(t *testing.T) {
	tests := []struct {
		name    string
		length  int
		workers int
	}{
		{"zero workers", 10, 0},
		{"negative workers", 10, -1},
		{"empty dataset", 0, 1},
		{"fewer elements than workers", 3, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parts, err := PartitionRange(tt.length, tt.workers)
			require.ErrorIs(t, err, ErrInvalidArgument)
			assert.Nil(t, parts)
		})
	}
}

func TestPartitionRange_CoverProperties(t *testing.T) {
	// For every valid length/worker combination the partitions must be
	// a contiguous, non-overlapping, non-empty cover of [0, length).
	for length := 1; length <= 20; length++ {
		for workers := 1; workers <= length; workers++ {
			parts, err := PartitionRange(length, workers)
			require.NoError(t, err)
			require.Len(t, parts, workers)

			require.Equal(t, 0, parts[0].Begin, "length=%d workers=%d", length, workers)
			require.Equal(t, length, parts[workers-1].End, "length=%d workers=%d", length, workers)
			for i, p := range parts {
				require.Greater(t, p.Len(), 0, "length=%d workers=%d part=%d", length, workers, i)
				if i > 0 {
					require.Equal(t, parts[i-1].End, p.Begin, "length=%d workers=%d part=%d", length, workers, i)
				}
			}
		}
	}
}
