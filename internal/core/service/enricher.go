package service

import (
	"context"
	"errors"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"orbiont.com/meetmetrics/internal/core/domain"
	"orbiont.com/meetmetrics/internal/core/port"
)

// Enricher resolves calendar-event metadata for meetings. A single
// unresolved lookup must not abort a day's ingestion, so every
// failure degrades to empty details with a logged warning.
type Enricher struct {
	calendar port.CalendarClient
	timeout  time.Duration
}

func NewEnricher(calendar port.CalendarClient, timeout time.Duration) *Enricher {
	return &Enricher{
		calendar: calendar,
		timeout:  timeout,
	}
}

// EventDetails looks up summary and attendees for an event. On a
// not-found response it retries once with the recurrence base ID
// (audit logs append an instance suffix like _20250205T... to the
// stable series ID). It never returns an error.
func (e *Enricher) EventDetails(ctx context.Context, calendarID, eventID string) domain.EventDetails {
	details, err := e.lookup(ctx, calendarID, eventID)
	if err == nil {
		return *details
	}

	if errors.Is(err, domain.ErrEventNotFound) {
		if baseID, _, found := strings.Cut(eventID, "_"); found && baseID != eventID {
			log.WithFields(log.Fields{
				"event_id": eventID,
				"base_id":  baseID,
			}).Warn("Calendar event not found, retrying with recurrence base ID")

			details, err = e.lookup(ctx, calendarID, baseID)
			if err == nil {
				return *details
			}
		}
	}

	log.WithError(err).WithFields(log.Fields{
		"calendar_id": calendarID,
		"event_id":    eventID,
	}).Warn("Calendar lookup failed, continuing without event details")

	return domain.EventDetails{Attendees: []domain.Attendee{}}
}

// EventTitle returns only the event summary.
func (e *Enricher) EventTitle(ctx context.Context, calendarID, eventID string) string {
	return e.EventDetails(ctx, calendarID, eventID).Summary
}

func (e *Enricher) lookup(ctx context.Context, calendarID, eventID string) (*domain.EventDetails, error) {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()
	return e.calendar.GetEvent(ctx, calendarID, eventID)
}
