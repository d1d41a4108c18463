package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	log "github.com/sirupsen/logrus"

	"orbiont.com/meetmetrics/internal/core/domain"
)

// ReportsClient reads Meet audit-log entries from the Admin SDK
// Reports API. Listing follows the page-token cursor until exhausted
// and returns entries in source order; a failed page aborts the whole
// listing without retry.
type ReportsClient struct {
	http    *http.Client
	baseURL string
}

func NewReportsClient(httpClient *http.Client, baseURL string) *ReportsClient {
	return &ReportsClient{
		http:    httpClient,
		baseURL: baseURL,
	}
}

type activitiesResponse struct {
	Items         []domain.Activity `json:"items"`
	NextPageToken string            `json:"nextPageToken"`
}

// ListActivities fetches all Meet activities for one UTC calendar day.
func (c *ReportsClient) ListActivities(ctx context.Context, day time.Time) ([]domain.Activity, error) {
	date := day.UTC().Format("2006-01-02")

	query := url.Values{}
	query.Set("startTime", date+"T00:00:00Z")
	query.Set("endTime", date+"T23:59:59Z")

	activities, err := c.list(ctx, query)
	if err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{"date": date, "activities": len(activities)}).Info("Fetched meeting activities")
	return activities, nil
}

// ListByConference fetches the activities of a single meeting instance.
func (c *ReportsClient) ListByConference(ctx context.Context, conferenceID string) ([]domain.Activity, error) {
	query := url.Values{}
	query.Set("filters", "conference_id=="+conferenceID)
	return c.list(ctx, query)
}

func (c *ReportsClient) list(ctx context.Context, query url.Values) ([]domain.Activity, error) {
	var all []domain.Activity
	pageToken := ""

	for {
		items, next, err := c.fetchPage(ctx, query, pageToken)
		if err != nil {
			return nil, &domain.UpstreamError{Op: "activities.list", Err: err}
		}
		all = append(all, items...)
		if next == "" {
			return all, nil
		}
		pageToken = next
	}
}

func (c *ReportsClient) fetchPage(ctx context.Context, query url.Values, pageToken string) ([]domain.Activity, string, error) {
	q := url.Values{}
	for k, v := range query {
		q[k] = v
	}
	q.Set("userKey", "all")
	if pageToken != "" {
		q.Set("pageToken", pageToken)
	}

	endpoint := fmt.Sprintf("%s/activity/users/all/applications/meet?%s", c.baseURL, q.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("reports API returned status %d: %s", resp.StatusCode, string(body))
	}

	var page activitiesResponse
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, "", fmt.Errorf("failed to unmarshal activities response: %w", err)
	}

	return page.Items, page.NextPageToken, nil
}
