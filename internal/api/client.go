// Package api provides the REST client for the expense tracker backend.
//
// Every response follows the envelope shape {data, message?, error?}. On
// success the client unwraps and returns the data field; failures are
// reported as *NetworkError, *HTTPError, or *DecodeError.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tallyhq/tally/internal/model"
)

const defaultTimeout = 30 * time.Second

// Client is the HTTP client for the backend API.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a client for the API rooted at baseURL (including the
// /api prefix, e.g. "http://localhost:8080/api"). A nil httpClient gets a
// default with a 30s timeout.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: httpClient,
	}
}

// envelope is the wrapper every API response is expected to follow.
type envelope struct {
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
}

// do issues a request and decodes the envelope's data field into out.
// A nil out discards the data field (void endpoints).
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	slog.Debug("API request", "method", method, "path", path)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &NetworkError{Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{Err: err}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		msg := fmt.Sprintf("HTTP %d", resp.StatusCode)
		var env envelope
		if jsonErr := json.Unmarshal(raw, &env); jsonErr == nil && env.Error != "" {
			msg = env.Error
		}
		return &HTTPError{Status: resp.StatusCode, Message: msg}
	}

	if len(bytes.TrimSpace(raw)) == 0 {
		if out == nil {
			return nil
		}
		return &DecodeError{Err: errors.New("empty response body")}
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return &DecodeError{Err: err}
	}
	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return &DecodeError{Err: err}
		}
	}
	return nil
}

// ListTransactions fetches transactions matching the filter.
func (c *Client) ListTransactions(ctx context.Context, filter Filter) ([]model.Transaction, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	path := "/transactions"
	if q := filter.Query(); q != "" {
		path += "?" + q
	}

	var transactions []model.Transaction
	if err := c.do(ctx, http.MethodGet, path, nil, &transactions); err != nil {
		return nil, err
	}
	return transactions, nil
}

// GetTransaction fetches a single transaction by id.
func (c *Client) GetTransaction(ctx context.Context, id int64) (*model.Transaction, error) {
	var txn model.Transaction
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/transactions/%d", id), nil, &txn); err != nil {
		return nil, err
	}
	return &txn, nil
}

// CreateTransactions submits a natural-language line for parsing. The
// backend may expand one line into zero, one, or several transactions.
func (c *Client) CreateTransactions(ctx context.Context, line string) ([]model.Transaction, error) {
	body := struct {
		Line string `json:"line"`
	}{Line: line}

	var transactions []model.Transaction
	if err := c.do(ctx, http.MethodPost, "/transactions", body, &transactions); err != nil {
		return nil, err
	}
	return transactions, nil
}

// UpdateTransaction sends a partial patch for the transaction with the
// given id. Absent patch fields are omitted from the request body.
func (c *Client) UpdateTransaction(ctx context.Context, id int64, patch model.TransactionPatch) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/transactions/%d", id), patch, nil)
}

// DeleteTransaction removes the transaction with the given id.
func (c *Client) DeleteTransaction(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/transactions/%d", id), nil, nil)
}

// TopExpenseCategories fetches the top-expense-categories report. Nil
// bounds default to the backend's current-month window.
func (c *Client) TopExpenseCategories(ctx context.Context, start, end *model.Date) ([]model.CategorySummary, error) {
	q := url.Values{}
	if start != nil {
		q.Set("start_date", start.String())
	}
	if end != nil {
		q.Set("end_date", end.String())
	}

	path := "/reports/top-expense-categories"
	if encoded := q.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var summaries []model.CategorySummary
	if err := c.do(ctx, http.MethodGet, path, nil, &summaries); err != nil {
		return nil, err
	}
	return summaries, nil
}

// DailySpending fetches per-day spending totals for the given range.
func (c *Client) DailySpending(ctx context.Context, start, end model.Date) ([]model.DailySpendingSummary, error) {
	q := url.Values{}
	q.Set("start_date", start.String())
	q.Set("end_date", end.String())

	var summaries []model.DailySpendingSummary
	if err := c.do(ctx, http.MethodGet, "/reports/daily-spending?"+q.Encode(), nil, &summaries); err != nil {
		return nil, err
	}
	return summaries, nil
}

// DashboardStats fetches the backend's aggregate counters.
func (c *Client) DashboardStats(ctx context.Context) (*model.DashboardStats, error) {
	var stats model.DashboardStats
	if err := c.do(ctx, http.MethodGet, "/dashboard/stats", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// GetSettings fetches the user settings.
func (c *Client) GetSettings(ctx context.Context) (*model.Settings, error) {
	var settings model.Settings
	if err := c.do(ctx, http.MethodGet, "/settings", nil, &settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

// UpdateSettings replaces the user settings.
func (c *Client) UpdateSettings(ctx context.Context, settings model.Settings) error {
	return c.do(ctx, http.MethodPut, "/settings", settings, nil)
}

// Ensure Client implements the Service interface.
var _ Service = (*Client)(nil)
