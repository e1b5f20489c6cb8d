package model

import "time"

// Sample records the outcome of one timed reduction run.
type Sample struct {
	// Strategy identifier that produced this sample
	Strategy string `json:"strategy"`
	// Wall-clock duration of the reduction phase only
	Elapsed time.Duration `json:"elapsed"`
	// Exact sum computed by the strategy
	Total int64 `json:"total"`
	// Number of concurrent workers used
	Workers int `json:"workers"`
	// Synchronized operations performed during the run
	SyncOps uint64 `json:"sync_ops"`
}

// Report bundles the samples of one invocation together with the
// workload parameters and the sequential reference sum they are
// verified against.
type Report struct {
	// Number of dataset elements
	Size int `json:"size"`
	// Number of concurrent workers
	Workers int `json:"workers"`
	// Sequential reference sum
	Reference int64 `json:"reference"`
	// One sample per strategy run, in execution order
	Samples []Sample `json:"samples"`
}
