package service

import (
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"

	"orbiont.com/meetmetrics/internal/core/domain"
)

// Normalizer turns raw audit-log entries into simplified meeting
// activities. It works on the first event of each entry; audit-log
// entries are assumed to carry one event per activity.
type Normalizer struct{}

func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

// Normalize returns the simplified record for one entry, or nil when
// the entry has no events or is missing any of the required
// meeting_code, conference_id and organizer_email parameters.
func (n *Normalizer) Normalize(entry domain.Activity) *domain.MeetingActivity {
	if len(entry.Events) == 0 {
		return nil
	}
	if len(entry.Events) > 1 {
		log.WithFields(log.Fields{
			"qualifier": entry.ID.UniqueQualifier,
			"events":    len(entry.Events),
		}).Warn("Audit entry carries multiple events, only the first is used")
	}

	params := flattenParameters(entry.Events[0].Parameters)

	meetingCode := params.str("meeting_code")
	conferenceID := params.str("conference_id")
	organizerEmail := params.str("organizer_email")
	if meetingCode == "" || conferenceID == "" || organizerEmail == "" {
		return nil
	}

	return &domain.MeetingActivity{
		MeetingCode:            meetingCode,
		ConferenceID:           conferenceID,
		CalendarEventID:        params.str("calendar_event_id"),
		OrganizerEmail:         organizerEmail,
		ParticipantEmail:       params.str("identifier"),
		ParticipantDisplayName: params.str("display_name"),
		StartTimestamp:         startTimestamp(params, entry),
		DurationSeconds:        params.integer("duration_seconds"),
		IsExternal:             flagValue(params["is_external"]),
		Location: domain.Location{
			Country: params.str("location_country"),
			Region:  params.str("location_region"),
		},
	}
}

// NormalizeAll maps a page of entries, dropping the discards.
func (n *Normalizer) NormalizeAll(entries []domain.Activity) []domain.MeetingActivity {
	records := make([]domain.MeetingActivity, 0, len(entries))
	for _, entry := range entries {
		if rec := n.Normalize(entry); rec != nil {
			records = append(records, *rec)
		}
	}
	return records
}

// startTimestamp prefers the epoch-seconds parameter over the entry's
// own timestamp, converted to RFC 3339 UTC.
func startTimestamp(params paramSet, entry domain.Activity) string {
	if secs := params.integer("start_timestamp_seconds"); secs > 0 {
		return time.Unix(secs, 0).UTC().Format(time.RFC3339)
	}
	return entry.ID.Time
}

// paramSet is an event's parameter list keyed by parameter name,
// resolved once per entry.
type paramSet map[string]domain.EventParameter

func flattenParameters(list []domain.EventParameter) paramSet {
	set := make(paramSet, len(list))
	for _, p := range list {
		set[p.Name] = p
	}
	return set
}

func (s paramSet) str(name string) string {
	p, ok := s[name]
	if !ok {
		return ""
	}
	if p.Value != "" {
		return p.Value
	}
	// Some upstream parameters arrive int-typed even when read as text.
	if p.IntValue != nil {
		return strconv.FormatInt(*p.IntValue, 10)
	}
	return ""
}

func (s paramSet) integer(name string) int64 {
	p, ok := s[name]
	if !ok {
		return 0
	}
	if p.IntValue != nil {
		return *p.IntValue
	}
	if n, err := strconv.ParseInt(p.Value, 10, 64); err == nil {
		return n
	}
	return 0
}

// flagValue decodes the three truthy encodings the upstream uses for
// boolean parameters: typed boolean true, the string "true" and the
// integer 1. Anything else, including an absent parameter, is false.
func flagValue(p domain.EventParameter) bool {
	if p.BoolValue != nil {
		return *p.BoolValue
	}
	if p.Value == "true" {
		return true
	}
	if p.IntValue != nil && *p.IntValue == 1 {
		return true
	}
	return false
}
