package tables

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	// DefaultAPIURL is the Airtable REST endpoint.
	DefaultAPIURL = "https://api.airtable.com/v0"

	// MaxResponseSize caps a single page body (10MB).
	MaxResponseSize = 10 * 1024 * 1024

	// UserAgent is the user agent string for table requests.
	UserAgent = "hub-sync/1.0"
)

// AirtableConfig holds the Airtable connection settings.
type AirtableConfig struct {
	// BaseID identifies the Airtable base. Required.
	BaseID string `mapstructure:"base_id" default:""`
	// Token is the personal access token. Required.
	Token string `mapstructure:"token" default:""`
	// APIURL overrides the REST endpoint (tests, proxies).
	APIURL string `mapstructure:"api_url" default:"https://api.airtable.com/v0"`
	// PageSize is the number of records requested per page (max 100).
	PageSize int `mapstructure:"page_size" default:"100"`
	// TimeoutSeconds bounds each page request.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

// AirtableLister lists records through the Airtable REST API.
type AirtableLister struct {
	client   *http.Client
	apiURL   string
	baseID   string
	token    string
	pageSize int
}

// NewAirtableLister creates a lister for the configured base.
func NewAirtableLister(cfg AirtableConfig) *AirtableLister {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	apiURL := cfg.APIURL
	if apiURL == "" {
		apiURL = DefaultAPIURL
	}
	pageSize := cfg.PageSize
	if pageSize <= 0 || pageSize > 100 {
		pageSize = 100
	}

	return &AirtableLister{
		client:   &http.Client{Timeout: time.Duration(timeout) * time.Second},
		apiURL:   strings.TrimSuffix(apiURL, "/"),
		baseID:   cfg.BaseID,
		token:    cfg.Token,
		pageSize: pageSize,
	}
}

// ListRecords fetches every page of the table, following the offset cursor
// until Airtable stops returning one.
func (l *AirtableLister) ListRecords(ctx context.Context, table string) ([]Record, error) {
	var (
		records []Record
		offset  string
	)

	for {
		p, err := l.fetchPage(ctx, table, offset)
		if err != nil {
			return nil, err
		}
		records = append(records, p.Records...)

		if p.Offset == "" {
			return records, nil
		}
		offset = p.Offset
	}
}

func (l *AirtableLister) fetchPage(ctx context.Context, table, offset string) (*page, error) {
	query := url.Values{}
	query.Set("pageSize", strconv.Itoa(l.pageSize))
	if offset != "" {
		query.Set("offset", offset)
	}
	endpoint := fmt.Sprintf("%s/%s/%s?%s", l.apiURL, url.PathEscape(l.baseID), url.PathEscape(table), query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+l.token)
	req.Header.Set("User-Agent", UserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to list table %q: %w", table, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxResponseSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	if int64(len(body)) > MaxResponseSize {
		return nil, fmt.Errorf("response size exceeds maximum allowed size of %d bytes", MaxResponseSize)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, NewHTTPError(resp.StatusCode, endpoint, errorMessage(resp.Status, body))
	}

	var p page
	if err := json.Unmarshal(body, &p); err != nil {
		return nil, fmt.Errorf("failed to decode table %q: %w", table, err)
	}
	return &p, nil
}

// errorMessage extracts Airtable's error description, which is either
// {"error": "CODE"} or {"error": {"type": ..., "message": ...}}.
func errorMessage(status string, body []byte) string {
	var envelope struct {
		Error json.RawMessage `json:"error"`
	}
	if json.Unmarshal(body, &envelope) != nil || len(envelope.Error) == 0 {
		return status
	}

	var code string
	if json.Unmarshal(envelope.Error, &code) == nil {
		return status + ": " + code
	}

	var detail struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	}
	if json.Unmarshal(envelope.Error, &detail) == nil && detail.Type != "" {
		if detail.Message != "" {
			return fmt.Sprintf("%s: %s (%s)", status, detail.Type, detail.Message)
		}
		return status + ": " + detail.Type
	}
	return status
}
