package reduce

import "errors"

var (
	// ErrInvalidArgument reports a worker count, dataset length or
	// strategy identifier that cannot produce a valid run.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrOverflow reports a size/value-range combination whose exact
	// sum cannot be represented by the int64 accumulator.
	ErrOverflow = errors.New("accumulator would overflow")
)
