package reduce

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testHarness() *Harness {
	return NewHarness(zerolog.Nop())
}

func TestHarness_Run(t *testing.T) {
	data := testData(10_000)
	want := seqSum(data)

	h := testHarness()
	sample, err := h.Run(KindLocalMergeLock, data, 4)
	require.NoError(t, err)

	assert.Equal(t, "local-merge-lock", sample.Strategy)
	assert.Equal(t, want, sample.Total)
	assert.Equal(t, 4, sample.Workers)
	assert.Equal(t, uint64(4), sample.SyncOps)
	assert.Greater(t, sample.Elapsed.Nanoseconds(), int64(0))
}

func TestHarness_RunEmptyDataset(t *testing.T) {
	h := testHarness()
	_, err := h.Run(KindLocked, nil, 4)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestHarness_RunInvalidWorkerCount(t *testing.T) {
	h := testHarness()
	_, err := h.Run(KindLocked, testData(10), 0)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestHarness_RunUnknownKind(t *testing.T) {
	h := testHarness()
	_, err := h.Run(Kind(42), testData(10), 2)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestHarness_RunsAreIsolated(t *testing.T) {
	// Consecutive runs of the same kind must not leak shared-total
	// state into each other: both report the full sum, not a multiple.
	data := testData(1000)
	want := seqSum(data)

	h := testHarness()
	for i := 0; i < 3; i++ {
		sample, err := h.Run(KindAtomicSeqCst, data, 4)
		require.NoError(t, err)
		assert.Equal(t, want, sample.Total, "run %d", i)
	}
}

func TestHarness_RunAll(t *testing.T) {
	data := testData(5000)
	want := seqSum(data)

	h := testHarness()
	samples, err := h.RunAll(data, 4)
	require.NoError(t, err)
	require.Len(t, samples, len(Kinds()))

	for i, kind := range Kinds() {
		assert.Equal(t, kind.String(), samples[i].Strategy)
		assert.Equal(t, want, samples[i].Total)
	}
}
