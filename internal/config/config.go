package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
)

// Config carries every setting the binaries need. It is loaded once
// in main and passed into constructors; no component reads the
// environment directly.
type Config struct {
	HTTPAddr string
	AMQPURL  string

	// Google service-account credentials (domain-wide delegation).
	// The key is the raw JSON key file contents.
	GoogleServiceAccountKey string `validate:"required"`
	GoogleAdminEmail        string `validate:"required,email"`
	GoogleReportsURL        string `validate:"required,url"`
	GoogleCalendarURL       string `validate:"required,url"`
	GoogleTokenURL          string `validate:"required,url"`

	// Analytics store. Token and datasource names are deliberately
	// not required here: a missing value is reported as a fatal
	// ConfigError at push time, not at startup.
	TinybirdURL                string `validate:"required,url"`
	TinybirdToken              string
	TinybirdDataSource         string
	TinybirdEmployeeDataSource string

	// HR directory API (employee sync path).
	DirectoryURL    string `validate:"required,url"`
	DirectoryAPIKey string

	// Pipeline tuning.
	EnrichConcurrency int           `validate:"min=1"`
	CalendarTimeout   time.Duration `validate:"min=1s"`
	TriggerWorkers    int           `validate:"min=1"`
}

// Load reads configuration from the environment and validates it.
func Load() (*Config, error) {
	cfg := &Config{
		HTTPAddr: getenv("HTTP_ADDR", ":8080"),
		AMQPURL:  os.Getenv("AMQP_URL"),

		GoogleServiceAccountKey: os.Getenv("GOOGLE_SERVICE_ACCOUNT_KEY"),
		GoogleAdminEmail:        os.Getenv("GOOGLE_ADMIN_EMAIL"),
		GoogleReportsURL:        getenv("GOOGLE_REPORTS_URL", "https://admin.googleapis.com/admin/reports/v1"),
		GoogleCalendarURL:       getenv("GOOGLE_CALENDAR_URL", "https://www.googleapis.com/calendar/v3"),
		GoogleTokenURL:          getenv("GOOGLE_TOKEN_URL", "https://oauth2.googleapis.com/token"),

		TinybirdURL:                getenv("TINYBIRD_URL", "https://api.tinybird.co/v0"),
		TinybirdToken:              os.Getenv("TINYBIRD_TOKEN"),
		TinybirdDataSource:         os.Getenv("TINYBIRD_DATA_SOURCE"),
		TinybirdEmployeeDataSource: os.Getenv("TINYBIRD_EMPLOYEE_DATA_SOURCE"),

		DirectoryURL:    getenv("PEOPLEFORCE_URL", "https://app.peopleforce.io/api/public/v2"),
		DirectoryAPIKey: os.Getenv("PEOPLEFORCE_API_KEY"),

		EnrichConcurrency: intenv("ENRICH_CONCURRENCY", 8),
		CalendarTimeout:   durenv("CALENDAR_TIMEOUT", 15*time.Second),
		TriggerWorkers:    intenv("TRIGGER_WORKERS", 2),
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func intenv(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func durenv(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
