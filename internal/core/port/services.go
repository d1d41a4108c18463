package port

import (
	"context"
	"time"

	"orbiont.com/meetmetrics/internal/core/domain"
)

// PipelineService drives the fetch → normalize → filter → enrich →
// aggregate → ingest pipeline. ProcessDate surfaces structural errors
// to the caller; ProcessRange logs per-date failures and keeps going.
type PipelineService interface {
	ProcessDate(ctx context.Context, day time.Time) (int, error)
	ProcessRange(ctx context.Context, start, end time.Time) (*domain.RangeSummary, error)
	ProcessPastDays(ctx context.Context, days int) (*domain.RangeSummary, error)
	LookupConference(ctx context.Context, conferenceID string) ([]domain.MeetingActivity, error)
}

// EmployeeSyncService mirrors the HR directory into the analytics
// store as a full refresh.
type EmployeeSyncService interface {
	Sync(ctx context.Context) (int, error)
}
