package port

import (
	"context"
	"time"

	"orbiont.com/meetmetrics/internal/core/domain"
)

// ReportsClient reads meeting audit logs from the directory-service
// API. ListActivities follows the page-token cursor until exhausted
// and returns entries in source order.
type ReportsClient interface {
	ListActivities(ctx context.Context, day time.Time) ([]domain.Activity, error)
	ListByConference(ctx context.Context, conferenceID string) ([]domain.Activity, error)
}

// CalendarClient looks up a single calendar event. A 404 from the
// upstream is reported as domain.ErrEventNotFound so the caller can
// distinguish it from transport failures.
type CalendarClient interface {
	GetEvent(ctx context.Context, calendarID, eventID string) (*domain.EventDetails, error)
}

// AnalyticsClient pushes NDJSON batches to the analytics store.
type AnalyticsClient interface {
	PushActivities(ctx context.Context, rows []domain.ActivityRow) error
	PushEmployees(ctx context.Context, rows []domain.EmployeeRow) error
	TruncateEmployees(ctx context.Context) error
}

// DirectoryClient lists employees from the HR directory API,
// following its page-number pagination.
type DirectoryClient interface {
	ListEmployees(ctx context.Context) ([]domain.DirectoryEmployee, error)
}

type NotifierClient interface {
	NotifyBatchIngested(ctx context.Context, message *domain.ActivityBatchIngestedMessage) error
}
