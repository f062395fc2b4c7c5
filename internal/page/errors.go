package page

import (
	"errors"
	"fmt"
)

// Fetch failure classes for the audited page. The start page is the
// only fetch that aborts a run, so callers distinguish these mostly
// for reporting.
var (
	// ErrTimeout is returned when the page request exceeds the
	// configured timeout.
	ErrTimeout = errors.New("request timed out")

	// ErrNetwork is returned on transport-level failures: DNS errors,
	// refused connections, resets.
	ErrNetwork = errors.New("connection failed")
)

// StatusError reports a non-success HTTP status for the audited page.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status code: %d", e.Code)
}
