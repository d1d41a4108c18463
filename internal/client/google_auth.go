package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/jwt"

	"orbiont.com/meetmetrics/internal/config"
)

const (
	ScopeReportsReadonly  = "https://www.googleapis.com/auth/admin.reports.audit.readonly"
	ScopeCalendarReadonly = "https://www.googleapis.com/auth/calendar.readonly"
)

type serviceAccountKey struct {
	ClientEmail  string `json:"client_email"`
	PrivateKey   string `json:"private_key"`
	PrivateKeyID string `json:"private_key_id"`
}

// NewGoogleHTTPClient builds an HTTP client that authenticates with a
// service-account JWT and impersonates the configured admin subject
// (domain-wide delegation). Tokens are refreshed transparently by the
// oauth2 transport.
func NewGoogleHTTPClient(ctx context.Context, cfg *config.Config, scopes ...string) (*http.Client, error) {
	var key serviceAccountKey
	if err := json.Unmarshal([]byte(cfg.GoogleServiceAccountKey), &key); err != nil {
		return nil, fmt.Errorf("invalid GOOGLE_SERVICE_ACCOUNT_KEY: %w", err)
	}
	if key.ClientEmail == "" || key.PrivateKey == "" {
		return nil, fmt.Errorf("GOOGLE_SERVICE_ACCOUNT_KEY is missing client_email or private_key")
	}

	conf := &jwt.Config{
		Email:        key.ClientEmail,
		PrivateKey:   []byte(key.PrivateKey),
		PrivateKeyID: key.PrivateKeyID,
		Subject:      cfg.GoogleAdminEmail,
		Scopes:       scopes,
		TokenURL:     cfg.GoogleTokenURL,
	}

	return oauth2.NewClient(ctx, conf.TokenSource(ctx)), nil
}
