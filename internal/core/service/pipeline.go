package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	cache "github.com/patrickmn/go-cache"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"orbiont.com/meetmetrics/internal/core/domain"
	"orbiont.com/meetmetrics/internal/core/port"
)

const (
	dateLayout = "2006-01-02"

	defaultBackfillDays = 180

	// Duplicate (calendar, event) pairs inside a run resolve from
	// this cache instead of hitting the calendar API again.
	lookupCacheTTL     = 30 * time.Minute
	lookupCacheCleanup = 10 * time.Minute
)

// Pipeline drives the per-day ingestion: fetch raw audit logs,
// normalize, drop automated participants, enrich with calendar
// metadata, aggregate per conference and push the batch.
type Pipeline struct {
	reports   port.ReportsClient
	analytics port.AnalyticsClient
	notifier  port.NotifierClient // may be nil when no broker is configured

	normalizer *Normalizer
	bots       *BotFilter
	enricher   *Enricher
	aggregator *Aggregator

	lookups           *cache.Cache
	enrichConcurrency int
}

func NewPipeline(
	reports port.ReportsClient,
	analytics port.AnalyticsClient,
	notifier port.NotifierClient,
	enricher *Enricher,
	enrichConcurrency int,
) *Pipeline {
	return &Pipeline{
		reports:           reports,
		analytics:         analytics,
		notifier:          notifier,
		normalizer:        NewNormalizer(),
		bots:              NewBotFilter(),
		enricher:          enricher,
		aggregator:        NewAggregator(),
		lookups:           cache.New(lookupCacheTTL, lookupCacheCleanup),
		enrichConcurrency: enrichConcurrency,
	}
}

// ProcessDate runs the pipeline for one calendar day and returns the
// number of records pushed. Fetch, ingestion and configuration errors
// surface to the caller; only calendar lookups degrade silently.
func (p *Pipeline) ProcessDate(ctx context.Context, day time.Time) (int, error) {
	date := day.UTC().Format(dateLayout)

	activities, err := p.reports.ListActivities(ctx, day)
	if err != nil {
		return 0, err
	}

	records := p.normalizer.NormalizeAll(activities)

	// Drop automated participants before anything is counted.
	humans := make([]domain.MeetingActivity, 0, len(records))
	for _, rec := range records {
		if p.bots.IsAutomated(rec.ParticipantDisplayName, rec.ParticipantEmail) {
			continue
		}
		humans = append(humans, rec)
	}

	if len(humans) == 0 {
		log.WithField("date", date).Info("No relevant meeting activity")
		return 0, nil
	}

	rows, err := p.enrich(ctx, humans)
	if err != nil {
		return 0, err
	}

	p.aggregator.Annotate(rows)

	batch := make([]domain.ActivityRow, len(rows))
	for i, row := range rows {
		batch[i] = *row
	}

	if err := p.analytics.PushActivities(ctx, batch); err != nil {
		return 0, err
	}

	p.notifyIngested(ctx, date, len(batch))
	log.WithFields(log.Fields{"date": date, "records": len(batch)}).Info("Pushed activity batch")

	return len(batch), nil
}

// ProcessRange runs ProcessDate for every day of the inclusive
// [start, end] range. A failed day is logged and skipped so one bad
// day does not lose the rest of the range; the summary carries the
// best-effort total.
func (p *Pipeline) ProcessRange(ctx context.Context, start, end time.Time) (*domain.RangeSummary, error) {
	start = midnightUTC(start)
	end = midnightUTC(end)
	if start.After(end) {
		return nil, domain.ErrInvalidRange
	}

	total := 0
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		count, err := p.ProcessDate(ctx, day)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			log.WithError(err).WithField("date", day.Format(dateLayout)).Error("Failed to process date, continuing with the rest of the range")
			continue
		}
		total += count
	}

	return &domain.RangeSummary{
		Message: fmt.Sprintf("Fetched and pushed meeting activity from %s to %s, excluding automated participants.",
			start.Format(dateLayout), end.Format(dateLayout)),
		TotalActivities: total,
	}, nil
}

// ProcessPastDays backfills the trailing window ending yesterday.
func (p *Pipeline) ProcessPastDays(ctx context.Context, days int) (*domain.RangeSummary, error) {
	if days < 1 {
		days = defaultBackfillDays
	}
	today := midnightUTC(time.Now().UTC())
	return p.ProcessRange(ctx, today.AddDate(0, 0, -days), today.AddDate(0, 0, -1))
}

// LookupConference returns the normalized records of one meeting
// instance. Unlike the range path, errors surface to the caller.
func (p *Pipeline) LookupConference(ctx context.Context, conferenceID string) ([]domain.MeetingActivity, error) {
	activities, err := p.reports.ListByConference(ctx, conferenceID)
	if err != nil {
		return nil, err
	}
	return p.normalizer.NormalizeAll(activities), nil
}

type lookupKey struct {
	calendarID string
	eventID    string
}

// enrich resolves each distinct (calendar, event) pair once through a
// bounded fan-out, then builds the flattened rows. Aggregation does
// not depend on completion order, only on per-conference grouping.
func (p *Pipeline) enrich(ctx context.Context, records []domain.MeetingActivity) ([]*domain.ActivityRow, error) {
	keys := make(map[lookupKey]struct{})
	for _, rec := range records {
		if rec.CalendarEventID == "" || rec.OrganizerEmail == "" {
			continue
		}
		keys[lookupKey{calendarID: rec.OrganizerEmail, eventID: rec.CalendarEventID}] = struct{}{}
	}

	details := make(map[lookupKey]domain.EventDetails, len(keys))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.enrichConcurrency)
	for key := range keys {
		key := key
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			d := p.eventDetails(gctx, key)
			mu.Lock()
			details[key] = d
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	rows := make([]*domain.ActivityRow, 0, len(records))
	for _, rec := range records {
		row := &domain.ActivityRow{
			MeetingCode:            rec.MeetingCode,
			ConferenceID:           rec.ConferenceID,
			CalendarEventID:        rec.CalendarEventID,
			OrganizerEmail:         rec.OrganizerEmail,
			ParticipantEmail:       rec.ParticipantEmail,
			ParticipantDisplayName: rec.ParticipantDisplayName,
			StartTimestamp:         rec.StartTimestamp,
			DurationSeconds:        rec.DurationSeconds,
			IsExternal:             boolToInt(rec.IsExternal),
			Location:               rec.Location,
			Attendees:              []domain.Attendee{},
		}
		if d, ok := details[lookupKey{calendarID: rec.OrganizerEmail, eventID: rec.CalendarEventID}]; ok {
			row.MeetingName = d.Summary
			row.Attendees = wireAttendees(p.bots.FilterAttendees(d.Attendees))
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (p *Pipeline) eventDetails(ctx context.Context, key lookupKey) domain.EventDetails {
	cacheKey := key.calendarID + "\x00" + key.eventID
	if cached, ok := p.lookups.Get(cacheKey); ok {
		return cached.(domain.EventDetails)
	}
	d := p.enricher.EventDetails(ctx, key.calendarID, key.eventID)
	p.lookups.SetDefault(cacheKey, d)
	return d
}

// notifyIngested is best effort: the batch is already in the store,
// so a failed notification only costs downstream visibility.
func (p *Pipeline) notifyIngested(ctx context.Context, date string, count int) {
	if p.notifier == nil {
		return
	}
	msg := &domain.ActivityBatchIngestedMessage{
		BatchID:     uuid.New(),
		Date:        date,
		RecordCount: count,
		IngestedAt:  time.Now().UTC(),
	}
	if err := p.notifier.NotifyBatchIngested(ctx, msg); err != nil {
		log.WithError(err).WithField("date", date).Warn("Failed to notify batch ingestion")
	}
}

// wireAttendees reduces attendees to email and response status. The
// display name is only needed for bot filtering and stays out of the
// ingestion rows.
func wireAttendees(attendees []domain.Attendee) []domain.Attendee {
	out := make([]domain.Attendee, len(attendees))
	for i, att := range attendees {
		out[i] = domain.Attendee{
			Email:          att.Email,
			ResponseStatus: att.ResponseStatus,
		}
	}
	return out
}

func midnightUTC(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
