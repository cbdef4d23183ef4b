package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/seedctl/seedctl/pkg/logging"
)

// DefaultTimeout is the per-request timeout when WithTimeout is not given.
const DefaultTimeout = 30 * time.Second

// Client issues JSON requests against a single base URL.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithLogger sets the logger used for request-level debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client entirely.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// New creates a client for the API at baseURL. A trailing slash on
// baseURL is dropped so paths always join cleanly.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
			// Each call uses a fresh connection; no pooled state
			// survives between requests.
			Transport: &http.Transport{DisableKeepAlives: true},
		},
		logger: logging.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the normalized base URL the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Get issues a GET and returns the decoded JSON response.
func (c *Client) Get(ctx context.Context, path string) (any, error) {
	return c.send(ctx, http.MethodGet, path, nil)
}

// Post issues a POST with a JSON body and returns the decoded response.
func (c *Client) Post(ctx context.Context, path string, body any) (any, error) {
	return c.send(ctx, http.MethodPost, path, body)
}

// Put issues a PUT with a JSON body and returns the decoded response.
func (c *Client) Put(ctx context.Context, path string, body any) (any, error) {
	return c.send(ctx, http.MethodPut, path, body)
}

// Delete issues a DELETE and returns the decoded response.
func (c *Client) Delete(ctx context.Context, path string) (any, error) {
	return c.send(ctx, http.MethodDelete, path, nil)
}

// Patch issues a PATCH with a JSON body and returns the decoded response.
func (c *Client) Patch(ctx context.Context, path string, body any) (any, error) {
	return c.send(ctx, http.MethodPatch, path, body)
}

// send runs one request. Any failure, transport or HTTP, comes back as a
// *RequestError; non-2xx responses wrap an *APIError inside it.
func (c *Client) send(ctx context.Context, method, path string, body any) (any, error) {
	var reader io.Reader
	if body != nil {
		var buf bytes.Buffer
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return nil, &RequestError{Method: method, Path: path, Err: err}
		}
		reader = &buf
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, &RequestError{Method: method, Path: path, Err: err}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.logger.Debug("api request", "method", method, "path", path)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &RequestError{Method: method, Path: path, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &RequestError{Method: method, Path: path, Err: parseAPIError(resp)}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &RequestError{Method: method, Path: path, Err: err}
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	var result any
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("failed to decode response from %s: %w", path, err)
	}
	return result, nil
}

// parseAPIError builds an *APIError from a non-2xx response. The message
// comes from an {"error", "message"} or {"detail"} JSON body when one is
// present, otherwise from a truncated copy of the raw body.
func parseAPIError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	data, _ := io.ReadAll(resp.Body)
	var errResp struct {
		Error   string `json:"error"`
		Message string `json:"message"`
		Detail  string `json:"detail"`
	}
	switch {
	case json.Unmarshal(data, &errResp) != nil:
		apiErr.Message = truncate(string(bytes.TrimSpace(data)), 200)
	case errResp.Message != "":
		apiErr.Message = errResp.Message
	case errResp.Detail != "":
		apiErr.Message = errResp.Detail
	case errResp.Error != "":
		apiErr.Message = errResp.Error
	default:
		apiErr.Message = truncate(string(bytes.TrimSpace(data)), 200)
	}
	return apiErr
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
