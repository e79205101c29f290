package main

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ValidationError reports caller input that failed a declared constraint.
// It is raised before any network activity takes place.
type ValidationError struct {
	Param   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Param, e.Message)
}

// RequestTimeoutError reports that upstream did not respond within the
// configured request timeout.
type RequestTimeoutError struct {
	Timeout time.Duration
}

// Error implements the error interface
func (e *RequestTimeoutError) Error() string {
	return fmt.Sprintf("upstream request timed out after %s", e.Timeout)
}

// UpstreamError reports a non-2xx response from the Merkl API.
type UpstreamError struct {
	StatusCode int
	Status     string
}

// Error implements the error interface
func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream request failed: %s", e.Status)
}

// isDeadlineExceeded reports whether err was caused by the per-request
// timeout firing. The http client wraps context errors in *url.Error, so
// errors.Is walks the chain.
func isDeadlineExceeded(err error) bool {
	return errors.Is(err, context.DeadlineExceeded)
}
