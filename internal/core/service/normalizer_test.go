package service

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"orbiont.com/meetmetrics/internal/core/domain"
)

func TestNormalizer(t *testing.T) {
	suite.Run(t, new(NormalizerSuite))
}

type NormalizerSuite struct {
	suite.Suite
	normalizer *Normalizer
}

func (suite *NormalizerSuite) SetupTest() {
	suite.normalizer = NewNormalizer()
}

func strParam(name, value string) domain.EventParameter {
	return domain.EventParameter{Name: name, Value: value}
}

func intParam(name string, value int64) domain.EventParameter {
	return domain.EventParameter{Name: name, IntValue: &value}
}

func boolParam(name string, value bool) domain.EventParameter {
	return domain.EventParameter{Name: name, BoolValue: &value}
}

func meetEntry(params ...domain.EventParameter) domain.Activity {
	return domain.Activity{
		ID: domain.ActivityID{
			Time:            "2025-02-05T10:00:00Z",
			UniqueQualifier: "123456",
		},
		Events: []domain.ActivityEvent{
			{Type: "call", Name: "call_ended", Parameters: params},
		},
	}
}

func completeEntry() domain.Activity {
	return meetEntry(
		strParam("meeting_code", "abc-defg-hij"),
		strParam("conference_id", "conf-1"),
		strParam("calendar_event_id", "evt123"),
		strParam("organizer_email", "organizer@acme.io"),
		strParam("identifier", "alice@acme.io"),
		strParam("display_name", "Alice"),
		intParam("start_timestamp_seconds", 1738750500),
		intParam("duration_seconds", 1800),
		boolParam("is_external", false),
		strParam("location_country", "FR"),
		strParam("location_region", "Paris"),
	)
}

func (suite *NormalizerSuite) TestNormalize_CompleteEntry() {
	rec := suite.normalizer.Normalize(completeEntry())

	suite.Require().NotNil(rec)
	suite.Equal("abc-defg-hij", rec.MeetingCode)
	suite.Equal("conf-1", rec.ConferenceID)
	suite.Equal("evt123", rec.CalendarEventID)
	suite.Equal("organizer@acme.io", rec.OrganizerEmail)
	suite.Equal("alice@acme.io", rec.ParticipantEmail)
	suite.Equal("Alice", rec.ParticipantDisplayName)
	suite.Equal("2025-02-05T10:15:00Z", rec.StartTimestamp)
	suite.Equal(int64(1800), rec.DurationSeconds)
	suite.False(rec.IsExternal)
	suite.Equal("FR", rec.Location.Country)
	suite.Equal("Paris", rec.Location.Region)
}

func (suite *NormalizerSuite) TestNormalize_NoEvents() {
	entry := domain.Activity{ID: domain.ActivityID{Time: "2025-02-05T10:00:00Z"}}
	suite.Nil(suite.normalizer.Normalize(entry))
}

func (suite *NormalizerSuite) TestNormalize_MissingRequiredParameters() {
	// Each of meeting_code, conference_id and organizer_email is
	// required; dropping any one discards the entry.
	missingCode := meetEntry(
		strParam("conference_id", "conf-1"),
		strParam("organizer_email", "organizer@acme.io"),
	)
	suite.Nil(suite.normalizer.Normalize(missingCode))

	missingConference := meetEntry(
		strParam("meeting_code", "abc-defg-hij"),
		strParam("organizer_email", "organizer@acme.io"),
	)
	suite.Nil(suite.normalizer.Normalize(missingConference))

	missingOrganizer := meetEntry(
		strParam("meeting_code", "abc-defg-hij"),
		strParam("conference_id", "conf-1"),
	)
	suite.Nil(suite.normalizer.Normalize(missingOrganizer))
}

func (suite *NormalizerSuite) TestNormalize_TimestampFallsBackToEntryTime() {
	rec := suite.normalizer.Normalize(meetEntry(
		strParam("meeting_code", "abc-defg-hij"),
		strParam("conference_id", "conf-1"),
		strParam("organizer_email", "organizer@acme.io"),
	))

	suite.Require().NotNil(rec)
	suite.Equal("2025-02-05T10:00:00Z", rec.StartTimestamp)
}

func (suite *NormalizerSuite) TestNormalize_MissingDurationDefaultsToZero() {
	rec := suite.normalizer.Normalize(meetEntry(
		strParam("meeting_code", "abc-defg-hij"),
		strParam("conference_id", "conf-1"),
		strParam("organizer_email", "organizer@acme.io"),
	))

	suite.Require().NotNil(rec)
	suite.Equal(int64(0), rec.DurationSeconds)
}

func (suite *NormalizerSuite) TestNormalize_MultipleEventsUsesFirst() {
	entry := completeEntry()
	entry.Events = append(entry.Events, domain.ActivityEvent{
		Name: "call_ended",
		Parameters: []domain.EventParameter{
			strParam("meeting_code", "zzz-zzzz-zzz"),
			strParam("conference_id", "conf-other"),
			strParam("organizer_email", "other@acme.io"),
		},
	})

	rec := suite.normalizer.Normalize(entry)
	suite.Require().NotNil(rec)
	suite.Equal("conf-1", rec.ConferenceID)
}

func (suite *NormalizerSuite) TestNormalizeAll_DropsDiscards() {
	entries := []domain.Activity{
		completeEntry(),
		{ID: domain.ActivityID{Time: "2025-02-05T10:00:00Z"}},
		meetEntry(strParam("meeting_code", "only-code")),
	}

	records := suite.normalizer.NormalizeAll(entries)
	suite.Len(records, 1)
	suite.Equal("conf-1", records[0].ConferenceID)
}

func (suite *NormalizerSuite) TestFlagValue_TruthyEncodings() {
	suite.True(flagValue(boolParam("is_external", true)))
	suite.True(flagValue(strParam("is_external", "true")))
	suite.True(flagValue(intParam("is_external", 1)))

	suite.False(flagValue(boolParam("is_external", false)))
	suite.False(flagValue(strParam("is_external", "false")))
	suite.False(flagValue(strParam("is_external", "TRUE")))
	suite.False(flagValue(intParam("is_external", 0)))
	suite.False(flagValue(domain.EventParameter{}))
}
