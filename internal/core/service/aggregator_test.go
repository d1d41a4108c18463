package service

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"orbiont.com/meetmetrics/internal/core/domain"
)

func TestAggregator(t *testing.T) {
	suite.Run(t, new(AggregatorSuite))
}

type AggregatorSuite struct {
	suite.Suite
	aggregator *Aggregator
}

func (suite *AggregatorSuite) SetupTest() {
	suite.aggregator = NewAggregator()
}

func row(conferenceID, email string, attendees ...domain.Attendee) *domain.ActivityRow {
	if attendees == nil {
		attendees = []domain.Attendee{}
	}
	return &domain.ActivityRow{
		ConferenceID:     conferenceID,
		ParticipantEmail: email,
		Attendees:        attendees,
	}
}

func (suite *AggregatorSuite) TestAnnotate_BroadcastsGroupStats() {
	invited := []domain.Attendee{
		{Email: "alice@acme.io"},
		{Email: "bob@acme.io"},
		{Email: "carol@acme.io"},
		{Email: "dave@acme.io"},
	}
	rows := []*domain.ActivityRow{
		row("conf-1", "alice@acme.io", invited...),
		row("conf-1", "bob@acme.io", invited...),
		row("conf-1", "carol@acme.io", invited...),
	}

	suite.aggregator.Annotate(rows)

	for _, r := range rows {
		suite.Equal(3, r.ParticipantCount)
		suite.Require().NotNil(r.InvitedCount)
		suite.Equal(4, *r.InvitedCount)
		suite.Require().NotNil(r.AttendeePercentage)
		suite.Equal(75, *r.AttendeePercentage)
	}
}

func (suite *AggregatorSuite) TestAnnotate_DistinctParticipantsCaseInsensitive() {
	rows := []*domain.ActivityRow{
		row("conf-1", "Alice@acme.io"),
		row("conf-1", "alice@acme.io"),
		row("conf-1", "bob@acme.io"),
	}

	suite.aggregator.Annotate(rows)

	suite.Equal(2, rows[0].ParticipantCount)
}

func (suite *AggregatorSuite) TestAnnotate_NoAttendeesLeavesCountsUnset() {
	rows := []*domain.ActivityRow{
		row("conf-1", "alice@acme.io"),
		row("conf-1", "bob@acme.io"),
	}

	suite.aggregator.Annotate(rows)

	suite.Equal(2, rows[0].ParticipantCount)
	suite.Nil(rows[0].InvitedCount)
	suite.Nil(rows[0].AttendeePercentage)
}

func (suite *AggregatorSuite) TestAnnotate_IndependentGroups() {
	invited := []domain.Attendee{{Email: "alice@acme.io"}, {Email: "bob@acme.io"}}
	rows := []*domain.ActivityRow{
		row("conf-1", "alice@acme.io", invited...),
		row("conf-2", "bob@acme.io"),
	}

	suite.aggregator.Annotate(rows)

	suite.Equal(1, rows[0].ParticipantCount)
	suite.Require().NotNil(rows[0].InvitedCount)
	suite.Equal(2, *rows[0].InvitedCount)
	suite.Equal(50, *rows[0].AttendeePercentage)

	suite.Equal(1, rows[1].ParticipantCount)
	suite.Nil(rows[1].InvitedCount)
}

func (suite *AggregatorSuite) TestAnnotate_PercentageRounds() {
	invited := []domain.Attendee{{Email: "a@acme.io"}, {Email: "b@acme.io"}, {Email: "c@acme.io"}}
	rows := []*domain.ActivityRow{
		row("conf-1", "alice@acme.io", invited...),
	}

	suite.aggregator.Annotate(rows)

	// 1 of 3 invitees showed up: 33.33... rounds to 33.
	suite.Equal(33, *rows[0].AttendeePercentage)
}

func (suite *AggregatorSuite) TestAnnotate_CanExceedHundredPercent() {
	// More distinct participants than invitees happens when people
	// join from a forwarded link.
	invited := []domain.Attendee{{Email: "alice@acme.io"}}
	rows := []*domain.ActivityRow{
		row("conf-1", "alice@acme.io", invited...),
		row("conf-1", "bob@acme.io", invited...),
	}

	suite.aggregator.Annotate(rows)

	suite.Equal(200, *rows[0].AttendeePercentage)
}

func (suite *AggregatorSuite) TestAnnotate_Idempotent() {
	invited := []domain.Attendee{{Email: "alice@acme.io"}, {Email: "bob@acme.io"}}
	rows := []*domain.ActivityRow{
		row("conf-1", "alice@acme.io", invited...),
		row("conf-1", "bob@acme.io", invited...),
	}

	suite.aggregator.Annotate(rows)
	first := *rows[0]

	suite.aggregator.Annotate(rows)

	suite.Equal(first.ParticipantCount, rows[0].ParticipantCount)
	suite.Equal(*first.InvitedCount, *rows[0].InvitedCount)
	suite.Equal(*first.AttendeePercentage, *rows[0].AttendeePercentage)
}

func (suite *AggregatorSuite) TestAnnotate_EmptyInput() {
	suite.NotPanics(func() {
		suite.aggregator.Annotate(nil)
	})
}
