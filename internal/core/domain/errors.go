package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRange is returned before any fetch when a range's
	// start date falls after its end date.
	ErrInvalidRange = errors.New("start date is after end date")

	// ErrEventNotFound marks a calendar lookup that came back 404,
	// which triggers the recurrence base-ID fallback.
	ErrEventNotFound = errors.New("calendar event not found")
)

// UpstreamError wraps a failed audit-log page request. It is not
// retried; the date being fetched is aborted.
type UpstreamError struct {
	Op  string
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream %s failed: %v", e.Op, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// ConfigError marks a missing credential or target identifier. It is
// fatal and never retried.
type ConfigError struct {
	Field string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s is not configured", e.Field)
}

// IngestError wraps a failed analytics push. The batch is
// all-or-nothing; the caller decides whether to continue the range.
type IngestError struct {
	StatusCode int
	Err        error
}

func (e *IngestError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("analytics ingestion failed with status %d: %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("analytics ingestion failed: %v", e.Err)
}

func (e *IngestError) Unwrap() error { return e.Err }
