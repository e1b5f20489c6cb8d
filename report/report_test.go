package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sumbench/sumbench/model"
)

func TestRender(t *testing.T) {
	r := model.Report{
		Size:      10,
		Workers:   2,
		Reference: 55,
		Samples: []model.Sample{
			{Strategy: "locked", Elapsed: 1500 * time.Microsecond, Total: 55, Workers: 2, SyncOps: 10},
			{Strategy: "futures", Elapsed: 200 * time.Microsecond, Total: 55, Workers: 2, SyncOps: 2},
		},
	}

	var buf bytes.Buffer
	Render(&buf, r)
	out := buf.String()

	assert.Contains(t, out, "10 elements, 2 workers")
	assert.Contains(t, out, "reference total: 55")

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// Header, reference, blank line, column header, one line per sample.
	require.Len(t, lines, 6)

	assert.Contains(t, lines[4], "locked")
	assert.Contains(t, lines[4], "0.001500")
	assert.Contains(t, lines[4], "OK")
	assert.Contains(t, lines[5], "futures")
	assert.Contains(t, lines[5], "OK")
	assert.NotContains(t, out, "MISMATCH")
}

func TestRender_FlagsMismatch(t *testing.T) {
	r := model.Report{
		Size:      10,
		Workers:   2,
		Reference: 55,
		Samples: []model.Sample{
			{Strategy: "locked", Elapsed: time.Millisecond, Total: 54, Workers: 2, SyncOps: 10},
		},
	}

	var buf bytes.Buffer
	Render(&buf, r)

	assert.Contains(t, buf.String(), "MISMATCH")
}
