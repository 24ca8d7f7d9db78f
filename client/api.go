package client

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

	"go-bank-console/metrics"
)

const (
	DefaultBaseURL = "http://localhost:8000/"
	DefaultTimeout = 10 * time.Second

	maxBodySize = 1 << 20
)

// Options configures the API client. Zero values fall back to the defaults.
type Options struct {
	BaseURL   string
	Timeout   time.Duration
	Metrics   *metrics.Collector
	Transport http.RoundTripper
}

// API is the transport layer: one HTTP client bound to a fixed base address
// and timeout, sending and receiving JSON. Requests are attempted once.
type API struct {
	baseURL string
	http    *http.Client
}

func NewAPI(opts Options) (*API, error) {
	base := opts.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	u, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", base, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid base URL %q: scheme and host are required", base)
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	next := opts.Transport
	if next == nil {
		next = http.DefaultTransport
	}

	return &API{
		baseURL: strings.TrimRight(u.String(), "/"),
		http: &http.Client{
			Timeout:   timeout,
			Transport: &loggingTransport{next: next, metrics: opts.Metrics},
		},
	}, nil
}

// BaseURL returns the base address without trailing slash.
func (a *API) BaseURL() string {
	return a.baseURL
}

// Do sends one request and decodes a non-empty 2xx body into out. Non-2xx
// answers become *APIError, missing answers wrap ErrNetwork.
func (a *API) Do(ctx context.Context, operation, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: encoding request body: %w", operation, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(withOperation(ctx, operation), method, a.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("%s: building request: %w", operation, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := a.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrNetwork, operation, err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return fmt.Errorf("%w: %s: reading response: %v", ErrNetwork, operation, err)
	}

	if resp.StatusCode/100 != 2 {
		return newAPIError(resp.StatusCode, payload)
	}

	if out == nil || len(bytes.TrimSpace(payload)) == 0 {
		return nil
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return fmt.Errorf("%s: decoding response: %w", operation, err)
	}
	return nil
}
