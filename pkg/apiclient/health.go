package apiclient

import (
	"context"
	"net/http"
	"time"
)

// Health defaults, used when the caller passes zero values.
const (
	DefaultHealthRetries = 30
	DefaultHealthDelay   = 1 * time.Second
)

// Health polls GET path until the API answers 200, waiting delay between
// attempts. It reports true on the first 200 and false when maxRetries
// attempts are exhausted or ctx is done. Transport errors and non-200
// statuses both count as failed attempts.
func (c *Client) Health(ctx context.Context, path string, maxRetries int, delay time.Duration) bool {
	if path == "" {
		path = "/"
	}
	if maxRetries <= 0 {
		maxRetries = DefaultHealthRetries
	}
	if delay <= 0 {
		delay = DefaultHealthDelay
	}

	for attempt := 1; attempt <= maxRetries; attempt++ {
		if c.probe(ctx, path) {
			c.logger.Debug("api ready", "path", path, "attempt", attempt)
			return true
		}
		c.logger.Debug("api not ready", "path", path, "attempt", attempt, "max_retries", maxRetries)

		if attempt == maxRetries {
			break
		}
		select {
		case <-ctx.Done():
			return false
		case <-time.After(delay):
		}
	}
	return false
}

// probe runs a single readiness request. Only a 200 counts as ready.
func (c *Client) probe(ctx context.Context, path string) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return false
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false
	}
	defer func() { _ = resp.Body.Close() }()
	return resp.StatusCode == http.StatusOK
}
