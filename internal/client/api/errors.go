package api

import (
	"errors"
	"fmt"
)

// ErrUnavailable marks any transport-level failure: timeout, unreachable
// host, or a non-2xx response. Callers match it with errors.Is.
var ErrUnavailable = errors.New("backend unavailable")

// StatusError is a non-2xx response from the backend. It unwraps to
// ErrUnavailable so callers can treat all transport failures uniformly
// while still being able to inspect the status code.
type StatusError struct {
	Method string
	Path   string
	Code   int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status %d", e.Method, e.Path, e.Code)
}

func (e *StatusError) Unwrap() error { return ErrUnavailable }
