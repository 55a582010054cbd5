// Package backend is the REST client for the external e-commerce API.
package backend

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
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/niksmo/ecom-admin/internal/core/port"
	"github.com/niksmo/ecom-admin/pkg/retry"
)

const (
	maxResponseSize = 10 << 20
	requestIDHeader = "X-Request-ID"
	retryDelay      = 200 * time.Millisecond
)

var _ port.Backend = (*Client)(nil)

var ErrBaseURL = errors.New("backend base url must be absolute http(s)")

// APIError is a non-2xx response. Message is resolved from the response
// body and may be empty.
type APIError struct {
	StatusCode int
	Message    string
	RequestID  string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend responded %d", e.StatusCode)
	}
	return fmt.Sprintf("backend responded %d: %s", e.StatusCode, e.Message)
}

func (e *APIError) UserMessage() string {
	return e.Message
}

func (e *APIError) Is(target error) bool {
	switch target {
	case port.ErrBackend:
		return true
	case port.ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized
	}
	return false
}

type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	headers    map[string]string
	retryCfg   retry.RetryConfig
}

type Opt func(*Client) error

// TimeoutOpt bounds every request. Zero leaves requests unbounded.
func TimeoutOpt(d time.Duration) Opt {
	return func(c *Client) error {
		if d < 0 {
			return errors.New("timeout is negative")
		}
		c.httpClient.Timeout = d
		return nil
	}
}

// RetryOpt sets how many times a read request is attempted.
func RetryOpt(attempts int) Opt {
	return func(c *Client) error {
		if attempts < 1 {
			return errors.New("retry attempts must be at least 1")
		}
		c.retryCfg.MaxAttempts = attempts
		return nil
	}
}

// HeadersOpt adds fixed headers to every request.
func HeadersOpt(h map[string]string) Opt {
	return func(c *Client) error {
		for k, v := range h {
			c.headers[http.CanonicalHeaderKey(k)] = v
		}
		return nil
	}
}

func HTTPClientOpt(hc *http.Client) Opt {
	return func(c *Client) error {
		if hc == nil {
			return errors.New("http client is nil")
		}
		c.httpClient = hc
		return nil
	}
}

func New(baseURL string, opts ...Opt) (*Client, error) {
	const op = "backend.New"

	u, err := url.Parse(strings.TrimSuffix(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("%s: %w: %q", op, ErrBaseURL, baseURL)
	}

	c := &Client{
		baseURL:    u,
		httpClient: &http.Client{},
		headers:    make(map[string]string),
		retryCfg: retry.RetryConfig{
			MaxAttempts: 1,
			Backoff:     retry.ExponentialBackoff(retryDelay),
			ShouldRetry: retryable,
		},
	}
	for _, o := range opts {
		if err := o(c); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}
	return c, nil
}

// retryable reports transport failures and 5xx responses.
func retryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode >= http.StatusInternalServerError
	}
	return true
}

type request struct {
	method string
	path   string
	query  url.Values
	token  string
	body   any
}

func (c *Client) endpoint(path string, query url.Values) string {
	u := *c.baseURL
	u.Path = strings.TrimSuffix(u.Path, "/") + path
	u.RawQuery = query.Encode()
	return u.String()
}

func idPath(format string, ids ...int64) string {
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = strconv.FormatInt(id, 10)
	}
	return fmt.Sprintf(format, args...)
}

// call sends r and decodes a successful body into out when out is not
// nil. GET requests are retried per the retry config.
func (c *Client) call(ctx context.Context, r request, out any) ([]byte, error) {
	if r.method != http.MethodGet {
		return c.send(ctx, r, out)
	}
	return retry.DoWithResult(ctx, c.retryCfg, func() ([]byte, error) {
		return c.send(ctx, r, out)
	})
}

func (c *Client) send(ctx context.Context, r request, out any) ([]byte, error) {
	const op = "Client.send"
	log := slog.With("op", op, "method", r.method, "path", r.path)

	var body io.Reader
	if r.body != nil {
		b, err := json.Marshal(r.body)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(
		ctx, r.method, c.endpoint(r.path, r.query), body,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set(requestIDHeader, requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if r.token != "" {
		req.Header.Set("Authorization", "Bearer "+r.token)
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", op, port.ErrBackend, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", op, port.ErrBackend, err)
	}

	log.Debug("backend call",
		"status", resp.StatusCode,
		"requestID", requestID,
		"took", time.Since(start),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Message:    resolveMessage(data),
			RequestID:  requestID,
		}
	}

	if out != nil && len(bytes.TrimSpace(data)) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return nil, fmt.Errorf(
				"%s: %w: decode response: %w", op, port.ErrBackend, err,
			)
		}
	}
	return data, nil
}

// resolveMessage extracts an operator facing message from an error
// body: a string, a list joined with ", ", or the "message" field of an
// object holding either. Anything else gives "".
func resolveMessage(body []byte) string {
	var payload any
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}

	switch v := payload.(type) {
	case string:
		return v
	case []any:
		return joinValues(v)
	case map[string]any:
		switch m := v["message"].(type) {
		case string:
			return m
		case []any:
			return joinValues(m)
		}
	}
	return ""
}

func joinValues(vs []any) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		switch t := v.(type) {
		case nil:
		case string:
			parts[i] = t
		case float64:
			parts[i] = strconv.FormatFloat(t, 'f', -1, 64)
		case bool:
			parts[i] = strconv.FormatBool(t)
		default:
			b, _ := json.Marshal(t)
			parts[i] = string(b)
		}
	}
	return strings.Join(parts, ", ")
}
