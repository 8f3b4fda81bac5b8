package service

import (
	"errors"
	"fmt"
)

// ErrNoData means a query matched no records. Maps to HTTP 404.
var ErrNoData = errors.New("no data found")

// ValidationError means the caller supplied bad input. Maps to HTTP 400.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// NewValidationError builds a ValidationError from a format string.
func NewValidationError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// UpstreamError wraps a failure to fetch or parse one year of feed
// data. Maps to HTTP 400: the request was well-formed but the upstream
// data it needs is unavailable.
type UpstreamError struct {
	Year string
	Err  error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("failed to fetch data for year %s: %v", e.Year, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }
