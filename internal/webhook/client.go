// Package webhook provides a small JSON POST client for outbound
// notifications such as sales check-ins.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrNotConfigured is returned when no webhook URL was set.
var ErrNotConfigured = errors.New("webhook URL not configured")

// Client posts JSON payloads to a fixed webhook URL.
type Client struct {
	url        string
	httpClient *http.Client
}

// New creates a Client for the given URL. An empty URL is allowed; Send will
// then fail with ErrNotConfigured.
func New(url string) *Client {
	return &Client{
		url: url,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Send posts the payload as JSON. Any non-2xx response is an error. No
// retries are attempted; that is the caller's decision.
func (c *Client) Send(ctx context.Context, payload any) error {
	if c.url == "" {
		return ErrNotConfigured
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("post webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}

	return nil
}
