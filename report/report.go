// Package report renders timing samples for the console. The core
// hands it an ordered model.Report and makes no assumption about the
// format beyond one line per strategy.
package report

import (
	"fmt"
	"io"

	"github.com/sumbench/sumbench/model"
)

// Render writes the report: a header with the workload parameters and
// one line per strategy with name, elapsed seconds, computed total,
// synchronized-operation count and a check against the sequential
// reference sum.
func Render(w io.Writer, r model.Report) {
	fmt.Fprintf(w, "=== sumbench: %d elements, %d workers ===\n", r.Size, r.Workers)
	fmt.Fprintf(w, "reference total: %d\n\n", r.Reference)
	fmt.Fprintf(w, "%-28s %14s %20s %14s %s\n", "STRATEGY", "ELAPSED(S)", "TOTAL", "SYNC OPS", "CHECK")
	for _, s := range r.Samples {
		check := "OK"
		if s.Total != r.Reference {
			check = "MISMATCH"
		}
		fmt.Fprintf(w, "%-28s %14.6f %20d %14d %s\n",
			s.Strategy, s.Elapsed.Seconds(), s.Total, s.SyncOps, check)
	}
}
