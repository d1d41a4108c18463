package service

import (
	"math"
	"strings"

	"orbiont.com/meetmetrics/internal/core/domain"
)

// Aggregator computes per-conference attendance statistics and
// broadcasts them onto every row of the conference group.
type Aggregator struct{}

func NewAggregator() *Aggregator {
	return &Aggregator{}
}

// Annotate groups rows by conference ID and sets ParticipantCount,
// InvitedCount and AttendeePercentage in place. All rows of a group
// receive identical values. InvitedCount stays nil when the group has
// no resolved attendees, meaning no calendar invite matched; the
// percentage is left unset in that case.
func (a *Aggregator) Annotate(rows []*domain.ActivityRow) {
	groups := make(map[string][]*domain.ActivityRow)
	for _, row := range rows {
		groups[row.ConferenceID] = append(groups[row.ConferenceID], row)
	}

	for _, group := range groups {
		distinct := make(map[string]struct{}, len(group))
		for _, row := range group {
			distinct[strings.ToLower(row.ParticipantEmail)] = struct{}{}
		}
		participantCount := len(distinct)

		// The calendar lookup is shared by the whole group, so the
		// first row's attendee list speaks for all of them.
		var invitedCount, attendeePercentage *int
		if n := len(group[0].Attendees); n > 0 {
			pct := int(math.Round(float64(participantCount) / float64(n) * 100))
			invitedCount = &n
			attendeePercentage = &pct
		}

		for _, row := range group {
			row.ParticipantCount = participantCount
			row.InvitedCount = invitedCount
			row.AttendeePercentage = attendeePercentage
		}
	}
}
