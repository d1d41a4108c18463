package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	log "github.com/sirupsen/logrus"

	"orbiont.com/meetmetrics/internal/config"
	"orbiont.com/meetmetrics/internal/core/domain"
)

// TinybirdClient pushes NDJSON batches to the Tinybird events API.
// A missing token or datasource name is a configuration error raised
// before any I/O; transport and HTTP failures are logged and wrapped
// in domain.IngestError. A batch is all-or-nothing.
type TinybirdClient struct {
	http               *http.Client
	baseURL            string
	token              string
	dataSource         string
	employeeDataSource string
}

func NewTinybirdClient(cfg *config.Config) *TinybirdClient {
	return &TinybirdClient{
		http:               &http.Client{Timeout: 60 * time.Second},
		baseURL:            cfg.TinybirdURL,
		token:              cfg.TinybirdToken,
		dataSource:         cfg.TinybirdDataSource,
		employeeDataSource: cfg.TinybirdEmployeeDataSource,
	}
}

func (c *TinybirdClient) PushActivities(ctx context.Context, rows []domain.ActivityRow) error {
	if c.dataSource == "" {
		return &domain.ConfigError{Field: "TINYBIRD_DATA_SOURCE"}
	}
	return push(ctx, c, c.dataSource, rows)
}

func (c *TinybirdClient) PushEmployees(ctx context.Context, rows []domain.EmployeeRow) error {
	if c.employeeDataSource == "" {
		return &domain.ConfigError{Field: "TINYBIRD_EMPLOYEE_DATA_SOURCE"}
	}
	return push(ctx, c, c.employeeDataSource, rows)
}

// TruncateEmployees drops all rows of the employee datasource; the
// sync path calls it before pushing a full refresh.
func (c *TinybirdClient) TruncateEmployees(ctx context.Context) error {
	if c.token == "" {
		return &domain.ConfigError{Field: "TINYBIRD_TOKEN"}
	}
	if c.employeeDataSource == "" {
		return &domain.ConfigError{Field: "TINYBIRD_EMPLOYEE_DATA_SOURCE"}
	}

	endpoint := fmt.Sprintf("%s/datasources/%s/truncate", c.baseURL, url.PathEscape(c.employeeDataSource))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.http.Do(req)
	if err != nil {
		log.WithError(err).WithField("datasource", c.employeeDataSource).Error("Failed to truncate datasource")
		return &domain.IngestError{Err: err}
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode >= http.StatusMultipleChoices {
		log.WithFields(log.Fields{"datasource": c.employeeDataSource, "status": resp.StatusCode}).Error("Failed to truncate datasource")
		return &domain.IngestError{StatusCode: resp.StatusCode, Err: fmt.Errorf("truncate failed: %s", string(body))}
	}

	log.WithField("datasource", c.employeeDataSource).Info("Truncated datasource")
	return nil
}

// push serializes the batch as NDJSON, one record per line in input
// order, and submits it as a single request.
func push[T any](ctx context.Context, c *TinybirdClient, dataSource string, rows []T) error {
	if c.token == "" {
		return &domain.ConfigError{Field: "TINYBIRD_TOKEN"}
	}
	if len(rows) == 0 {
		return nil
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	for _, row := range rows {
		if err := enc.Encode(row); err != nil {
			return fmt.Errorf("failed to encode row: %w", err)
		}
	}

	endpoint := fmt.Sprintf("%s/events?name=%s", c.baseURL, url.QueryEscape(dataSource))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, &buf)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/x-ndjson")

	resp, err := c.http.Do(req)
	if err != nil {
		log.WithError(err).WithField("datasource", dataSource).Error("Failed to push batch")
		return &domain.IngestError{Err: err}
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode >= http.StatusMultipleChoices {
		log.WithFields(log.Fields{"datasource": dataSource, "status": resp.StatusCode}).Error("Failed to push batch")
		return &domain.IngestError{StatusCode: resp.StatusCode, Err: fmt.Errorf("ingestion failed: %s", string(body))}
	}

	log.WithFields(log.Fields{"datasource": dataSource, "rows": len(rows)}).Debug("Batch ingested")
	return nil
}
