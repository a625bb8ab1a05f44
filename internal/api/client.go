package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Client is the HTTP API client.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	retry      *RetryConfig
	logger     *zap.Logger
}

// Option configures the API client.
type Option func(*Client)

// WithBaseURL sets the base URL.
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithRetries sets the maximum number of retries. Zero disables retries.
func WithRetries(retries int) Option {
	return func(c *Client) {
		c.retry.MaxRetries = retries
	}
}

// WithRetryOn sets the HTTP status codes that trigger a retry.
func WithRetryOn(statusCodes []int) Option {
	return func(c *Client) {
		set := make(map[int]struct{}, len(statusCodes))
		for _, code := range statusCodes {
			set[code] = struct{}{}
		}
		c.retry.RetryableOn = func(statusCode int) bool {
			_, ok := set[statusCode]
			return ok
		}
	}
}

// WithRetryConfig replaces the whole retry configuration.
func WithRetryConfig(cfg *RetryConfig) Option {
	return func(c *Client) {
		c.retry = cfg
	}
}

// WithLogger sets a structured logger. Defaults to a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// New creates a new API client.
func New(token string, opts ...Option) (*Client, error) {
	if token == "" {
		return nil, fmt.Errorf("API token is required")
	}

	c := &Client{
		baseURL: "https://api.searchdock.io",
		token:   token,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		retry:  DefaultRetryConfig(),
		logger: zap.NewNop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// SetHTTPClient sets a custom HTTP client.
func (c *Client) SetHTTPClient(client *http.Client) {
	c.httpClient = client
}

// Do executes a single JSON request against the API. body is marshalled
// when non-nil; a 2xx response body is decoded into result when result is
// non-nil. Retryable status codes and transport failures are retried per
// the client's retry configuration; retry waits honor ctx.
func (c *Client) Do(ctx context.Context, method, path string, body, result any) error {
	var payload []byte
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		payload = data
	}

	var resp *http.Response
	for attempt := 0; ; attempt++ {
		var bodyReader io.Reader
		if payload != nil {
			bodyReader = bytes.NewReader(payload)
		}

		req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
		if err != nil {
			return fmt.Errorf("create request: %w", err)
		}

		req.Header.Set("Authorization", "Bearer "+c.token)
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Accept", "application/json")

		start := time.Now()
		resp, err = c.httpClient.Do(req)
		if err != nil {
			if attempt < c.retry.MaxRetries && ctx.Err() == nil {
				c.logger.Warn("request failed, retrying",
					zap.String("method", method),
					zap.String("path", path),
					zap.Int("attempt", attempt),
					zap.Error(err))
				if werr := c.retry.Wait(ctx, attempt); werr != nil {
					return werr
				}
				continue
			}
			return &NetworkError{Err: err, URL: c.baseURL + path, Attempt: attempt}
		}

		c.logger.Debug("request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
			zap.Duration("elapsed", time.Since(start)))

		if resp.StatusCode < 400 {
			break
		}

		apiErr := parseErrorResponse(resp)
		resp.Body.Close()

		if c.retry.ShouldRetry(attempt, resp.StatusCode) {
			c.logger.Warn("retrying on status",
				zap.String("method", method),
				zap.String("path", path),
				zap.Int("status", resp.StatusCode),
				zap.Int("attempt", attempt))
			if werr := c.retry.Wait(ctx, attempt); werr != nil {
				return werr
			}
			continue
		}
		return apiErr
	}
	defer resp.Body.Close()

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}

	return nil
}

func parseErrorResponse(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)

	var errResp struct {
		Error     string `json:"error"`
		Message   string `json:"message"`
		RequestID string `json:"request_id"`
	}

	if err := json.Unmarshal(body, &errResp); err == nil && (errResp.Error != "" || errResp.Message != "") {
		msg := errResp.Error
		if msg == "" {
			msg = errResp.Message
		}
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    msg,
			RequestID:  errResp.RequestID,
		}
	}

	return &APIError{
		StatusCode: resp.StatusCode,
		Message:    string(body),
	}
}
