package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"

	"orbiont.com/meetmetrics/internal/config"
	"orbiont.com/meetmetrics/internal/core/domain"
)

// PeopleForceClient lists employees from the PeopleForce directory
// API, following its page-number pagination.
type PeopleForceClient struct {
	http    *http.Client
	baseURL string
	apiKey  string
}

func NewPeopleForceClient(cfg *config.Config) *PeopleForceClient {
	return &PeopleForceClient{
		http:    &http.Client{Timeout: 30 * time.Second},
		baseURL: cfg.DirectoryURL,
		apiKey:  cfg.DirectoryAPIKey,
	}
}

type employeesResponse struct {
	Data     []domain.DirectoryEmployee `json:"data"`
	Metadata struct {
		Pagination struct {
			Pages int `json:"pages"`
		} `json:"pagination"`
	} `json:"metadata"`
}

func (c *PeopleForceClient) ListEmployees(ctx context.Context) ([]domain.DirectoryEmployee, error) {
	var all []domain.DirectoryEmployee
	page := 1
	totalPages := 1

	for page <= totalPages {
		resp, err := c.fetchPage(ctx, page)
		if err != nil {
			return nil, err
		}
		all = append(all, resp.Data...)
		if resp.Metadata.Pagination.Pages > 0 {
			totalPages = resp.Metadata.Pagination.Pages
		}
		page++
	}

	log.WithField("employees", len(all)).Info("Fetched employee directory")
	return all, nil
}

func (c *PeopleForceClient) fetchPage(ctx context.Context, page int) (*employeesResponse, error) {
	endpoint := fmt.Sprintf("%s/employees?page=%s", c.baseURL, strconv.Itoa(page))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("X-API-KEY", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("directory API returned status %d: %s", resp.StatusCode, string(body))
	}

	var parsed employeesResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to unmarshal employees response: %w", err)
	}

	return &parsed, nil
}
