package timeparse

import (
	"fmt"
	"time"
)

// InvalidTimeComponentError reports an hour or minute outside its valid range.
type InvalidTimeComponentError struct {
	Component string
	Value     int
}

func (e *InvalidTimeComponentError) Error() string {
	return fmt.Sprintf("invalid %s value %d", e.Component, e.Value)
}

// UnparseableExpressionError reports input that no parsing stage understood.
type UnparseableExpressionError struct {
	Input string
}

func (e *UnparseableExpressionError) Error() string {
	return fmt.Sprintf("could not understand %q; try something like \"tomorrow 7pm\", \"friday 19:30\" or \"2025-01-15 19:30\"", e.Input)
}

// TimezoneResolutionError reports a wall-clock time that does not exist in the
// target timezone, such as the skipped hour of a DST transition.
type TimezoneResolutionError struct {
	Zone string
	Wall string
}

func (e *TimezoneResolutionError) Error() string {
	return fmt.Sprintf("time %q does not exist in %s (DST transition)", e.Wall, e.Zone)
}

// PastResultError reports a future-only resolution that landed in the past.
type PastResultError struct {
	Input    string
	Resolved time.Time
}

func (e *PastResultError) Error() string {
	return fmt.Sprintf("%q resolves to %s, which is in the past", e.Input, e.Resolved.Format(time.RFC3339))
}
