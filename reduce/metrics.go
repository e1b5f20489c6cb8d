package reduce

import (
	"fmt"

	"github.com/VictoriaMetrics/metrics"
)

// Metrics counts the synchronized operations each strategy performs
// during a single harness run. Counters live in a private metrics.Set,
// so consecutive runs never share state.
//
// Merge-based strategies increment once per merge, making the counter
// equal the worker count. Per-element strategies account for a whole
// partition in one Add after its scan finishes, keeping the counter
// update out of the timed hot loop.
type Metrics struct {
	set *metrics.Set
}

// NewMetrics returns an empty per-run metric set.
func NewMetrics() *Metrics {
	return &Metrics{set: metrics.NewSet()}
}

func (m *Metrics) counter(strategy string) *metrics.Counter {
	return m.set.GetOrCreateCounter(fmt.Sprintf(`sumbench_sync_ops_total{strategy=%q}`, strategy))
}

// SyncOps returns the synchronized-operation count recorded for the
// named strategy.
func (m *Metrics) SyncOps(strategy string) uint64 {
	return m.counter(strategy).Get()
}
