// Package upstream is the HTTP client for the legacy Talento-Hub REST
// backend. It owns transport, bearer-token auth and 401 detection; the
// payloads it returns stay loose (record.Record) and are interpreted by
// the normalization packages.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/JavierGuerrero99/talento-hub/internal/record"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 30 * time.Second

// DefaultUserAgent identifies the gateway against the legacy backend.
const DefaultUserAgent = "TalentoHub-Gateway/1.0"

// Options configures the client.
type Options struct {
	Timeout   time.Duration
	UserAgent string
}

// DefaultOptions returns sensible defaults.
func DefaultOptions() *Options {
	return &Options{
		Timeout:   DefaultTimeout,
		UserAgent: DefaultUserAgent,
	}
}

// Client talks to one legacy backend. Clients are cheap; WithToken
// derives per-session copies sharing the same transport.
type Client struct {
	baseURL   string
	userAgent string
	token     string
	http      *http.Client
}

// New creates a client for the backend at baseURL.
func New(baseURL string, opts *Options) *Client {
	if opts == nil {
		opts = DefaultOptions()
	}
	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: opts.UserAgent,
		http:      &http.Client{Timeout: opts.Timeout},
	}
}

// WithToken returns a copy of the client that authenticates with the
// given bearer token.
func (c *Client) WithToken(token string) *Client {
	clone := *c
	clone.token = token
	return &clone
}

// BaseURL returns the configured backend base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// getJSON issues a GET and decodes the response body into a loose value.
func (c *Client) getJSON(ctx context.Context, path string) (interface{}, error) {
	return c.doJSON(ctx, http.MethodGet, path, nil)
}

// doJSON issues a request with an optional JSON body and decodes the
// loose JSON response. A nil response body yields nil.
func (c *Client) doJSON(ctx context.Context, method, path string, body interface{}) (interface{}, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, &Error{URL: path, Message: "failed to encode request body", Cause: err}
		}
		reader = bytes.NewReader(data)
	}

	resp, err := c.do(ctx, method, path, reader, "application/json")
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if err := c.checkStatus(resp, path); err != nil {
		return nil, err
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{URL: path, Message: "failed to read response body", Cause: err}
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	var payload interface{}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, &Error{URL: path, Message: "invalid JSON in response", Cause: err}
	}
	return payload, nil
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string) (*http.Response, error) {
	fullURL := c.baseURL + path
	if _, err := url.Parse(fullURL); err != nil {
		return nil, &Error{URL: fullURL, Message: "invalid URL", Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, body)
	if err != nil {
		return nil, &Error{URL: fullURL, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")
	if body != nil && contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &Error{URL: fullURL, Message: "HTTP request failed", Cause: err}
	}
	return resp, nil
}

// checkStatus converts non-2xx responses into errors; 401 maps to
// ErrUnauthorized so callers can clear their stored token.
func (c *Client) checkStatus(resp *http.Response, path string) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	if resp.StatusCode == http.StatusUnauthorized {
		return &Error{URL: path, Message: "HTTP status 401", Cause: ErrUnauthorized}
	}
	return &Error{URL: path, Message: fmt.Sprintf("HTTP status %d", resp.StatusCode)}
}

// getList fetches a list-bearing endpoint, tolerating every envelope
// shape the backend is known to produce.
func (c *Client) getList(ctx context.Context, path string) ([]record.Record, error) {
	payload, err := c.getJSON(ctx, path)
	if err != nil {
		return nil, err
	}
	return record.ExtractList(payload), nil
}

// getRecord fetches a single-object endpoint.
func (c *Client) getRecord(ctx context.Context, path string) (record.Record, error) {
	payload, err := c.getJSON(ctx, path)
	if err != nil {
		return nil, err
	}
	if r, ok := record.AsRecord(payload); ok {
		return r, nil
	}
	return nil, &Error{URL: path, Message: "response is not an object"}
}
