package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"orbiont.com/meetmetrics/internal/config"
	"orbiont.com/meetmetrics/internal/core/domain"
)

func TestTinybirdClient(t *testing.T) {
	suite.Run(t, new(TinybirdSuite))
}

type TinybirdSuite struct {
	suite.Suite
}

func (suite *TinybirdSuite) newClient(serverURL string) *TinybirdClient {
	return NewTinybirdClient(&config.Config{
		TinybirdURL:                serverURL,
		TinybirdToken:              "test-token",
		TinybirdDataSource:         "meet_activities",
		TinybirdEmployeeDataSource: "employees",
	})
}

func (suite *TinybirdSuite) TestPushActivities_SendsNDJSON() {
	var gotPath, gotAuth, gotContentType string
	var gotBody []byte

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path + "?" + r.URL.RawQuery
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	invited := 2
	pct := 50
	rows := []domain.ActivityRow{
		{
			MeetingCode:      "abc-defg-hij",
			ConferenceID:     "conf-1",
			ParticipantEmail: "alice@acme.io",
			Attendees: []domain.Attendee{
				{Email: "carol@acme.io", ResponseStatus: "accepted"},
			},
			ParticipantCount:   1,
			InvitedCount:       &invited,
			AttendeePercentage: &pct,
		},
		{
			MeetingCode:      "abc-defg-hij",
			ConferenceID:     "conf-1",
			ParticipantEmail: "bob@acme.io",
			Attendees:        []domain.Attendee{},
			ParticipantCount: 1,
			InvitedCount:     nil,
		},
	}

	err := suite.newClient(server.URL).PushActivities(context.Background(), rows)
	suite.NoError(err)

	suite.Equal("/events?name=meet_activities", gotPath)
	suite.Equal("Bearer test-token", gotAuth)
	suite.Equal("application/x-ndjson", gotContentType)

	// One JSON object per line, in input order.
	lines := strings.Split(strings.TrimSpace(string(gotBody)), "\n")
	suite.Require().Len(lines, 2)

	var first map[string]any
	suite.NoError(json.Unmarshal([]byte(lines[0]), &first))
	suite.Equal("alice@acme.io", first["participantEmail"])
	suite.Equal(float64(2), first["invitedCount"])
	suite.Equal(float64(50), first["attendeePercentage"])

	// Attendees carry email and response status only.
	attendees, ok := first["attendees"].([]any)
	suite.Require().True(ok)
	suite.Require().Len(attendees, 1)
	attendee := attendees[0].(map[string]any)
	suite.Equal("carol@acme.io", attendee["email"])
	suite.Equal("accepted", attendee["responseStatus"])
	suite.NotContains(attendee, "displayName")

	var second map[string]any
	suite.NoError(json.Unmarshal([]byte(lines[1]), &second))
	suite.Nil(second["invitedCount"])
	_, hasPercentage := second["attendeePercentage"]
	suite.False(hasPercentage, "attendeePercentage should be omitted when unresolved")
}

func (suite *TinybirdSuite) TestPushActivities_EmptyBatchSkipsRequest() {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	err := suite.newClient(server.URL).PushActivities(context.Background(), nil)
	suite.NoError(err)
	suite.False(called)
}

func (suite *TinybirdSuite) TestPushActivities_MissingToken() {
	client := NewTinybirdClient(&config.Config{
		TinybirdURL:        "https://api.tinybird.co/v0",
		TinybirdDataSource: "meet_activities",
	})

	err := client.PushActivities(context.Background(), []domain.ActivityRow{{ConferenceID: "conf-1"}})
	var cfgErr *domain.ConfigError
	suite.Require().ErrorAs(err, &cfgErr)
	suite.Equal("TINYBIRD_TOKEN", cfgErr.Field)
}

func (suite *TinybirdSuite) TestPushActivities_MissingDataSource() {
	client := NewTinybirdClient(&config.Config{
		TinybirdURL:   "https://api.tinybird.co/v0",
		TinybirdToken: "test-token",
	})

	err := client.PushActivities(context.Background(), []domain.ActivityRow{{ConferenceID: "conf-1"}})
	var cfgErr *domain.ConfigError
	suite.Require().ErrorAs(err, &cfgErr)
	suite.Equal("TINYBIRD_DATA_SOURCE", cfgErr.Field)
}

func (suite *TinybirdSuite) TestPushActivities_ErrorStatus() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte("invalid token"))
	}))
	defer server.Close()

	err := suite.newClient(server.URL).PushActivities(context.Background(), []domain.ActivityRow{{ConferenceID: "conf-1"}})
	var ingestErr *domain.IngestError
	suite.Require().ErrorAs(err, &ingestErr)
	suite.Equal(http.StatusForbidden, ingestErr.StatusCode)
	suite.Contains(ingestErr.Error(), "invalid token")
}

func (suite *TinybirdSuite) TestPushEmployees_UsesEmployeeDataSource() {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path + "?" + r.URL.RawQuery
		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	err := suite.newClient(server.URL).PushEmployees(context.Background(), []domain.EmployeeRow{
		{EmployeeID: 1, Email: "alice@acme.io"},
	})
	suite.NoError(err)
	suite.Equal("/events?name=employees", gotPath)
}

func (suite *TinybirdSuite) TestTruncateEmployees() {
	var gotMethod, gotPath, gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	err := suite.newClient(server.URL).TruncateEmployees(context.Background())
	suite.NoError(err)
	suite.Equal(http.MethodPost, gotMethod)
	suite.Equal("/datasources/employees/truncate", gotPath)
	suite.Equal("Bearer test-token", gotAuth)
}

func (suite *TinybirdSuite) TestTruncateEmployees_ErrorStatus() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte("unknown datasource"))
	}))
	defer server.Close()

	err := suite.newClient(server.URL).TruncateEmployees(context.Background())
	var ingestErr *domain.IngestError
	suite.Require().ErrorAs(err, &ingestErr)
	suite.Equal(http.StatusNotFound, ingestErr.StatusCode)
}
