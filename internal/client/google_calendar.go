package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"orbiont.com/meetmetrics/internal/core/domain"
)

// CalendarClient looks up single calendar events. A 404 is reported
// as domain.ErrEventNotFound so the enricher can apply its recurrence
// base-ID fallback; any other failure is a plain error.
type CalendarClient struct {
	http    *http.Client
	baseURL string
}

func NewCalendarClient(httpClient *http.Client, baseURL string) *CalendarClient {
	return &CalendarClient{
		http:    httpClient,
		baseURL: baseURL,
	}
}

type calendarEventResponse struct {
	Summary   string `json:"summary"`
	Attendees []struct {
		Email          string `json:"email"`
		DisplayName    string `json:"displayName"`
		ResponseStatus string `json:"responseStatus"`
	} `json:"attendees"`
}

func (c *CalendarClient) GetEvent(ctx context.Context, calendarID, eventID string) (*domain.EventDetails, error) {
	endpoint := fmt.Sprintf("%s/calendars/%s/events/%s",
		c.baseURL, url.PathEscape(calendarID), url.PathEscape(eventID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("event %q on calendar %q: %w", eventID, calendarID, domain.ErrEventNotFound)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("calendar API returned status %d: %s", resp.StatusCode, string(body))
	}

	var event calendarEventResponse
	if err := json.Unmarshal(body, &event); err != nil {
		return nil, fmt.Errorf("failed to unmarshal event response: %w", err)
	}

	details := &domain.EventDetails{
		Summary:   event.Summary,
		Attendees: make([]domain.Attendee, 0, len(event.Attendees)),
	}
	for _, att := range event.Attendees {
		details.Attendees = append(details.Attendees, domain.Attendee{
			Email:          att.Email,
			DisplayName:    att.DisplayName,
			ResponseStatus: att.ResponseStatus,
		})
	}

	return details, nil
}
