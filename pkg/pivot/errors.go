package pivot

import (
	"errors"
	"fmt"
)

var (
	ErrDiscovery       = errors.New("discovering the price field options failed")
	ErrAggregateQuery  = errors.New("querying the report rows failed")
	ErrInvalidCategory = errors.New("price field option ID must be a positive integer")
	ErrInvalidColumn   = errors.New("invalid column identifier")
	ErrInvalidFilter   = errors.New("filter clause must not be empty")
	ErrUnknownReport   = errors.New("there is no report with this name")
)

// Stage is a step of a report build.
type Stage string

const (
	StageDiscovery Stage = "discovery"
	StageAggregate Stage = "aggregate"
)

// BuildError is returned when a report build fails. No records are
// returned with it.
type BuildError struct {
	Stage Stage
	Err   error
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("report build failed during %s: %v", e.Stage, e.Err)
}

// Unwrap allows errors.Is to match both the stage sentinel and the cause.
func (e *BuildError) Unwrap() []error {
	switch e.Stage {
	case StageDiscovery:
		return []error{ErrDiscovery, e.Err}
	case StageAggregate:
		return []error{ErrAggregateQuery, e.Err}
	}

	return []error{e.Err}
}
