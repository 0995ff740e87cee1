package transport

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"emoji-catalog/core/errdefs"

	"golang.org/x/time/rate"
)

// Fetcher returns the body of an endpoint.
type Fetcher interface {
	Fetch(ctx context.Context, endpoint Endpoint) (string, error)
}

// Client fetches endpoints over HTTP.
type Client struct {
	http      *http.Client
	baseURL   string
	userAgent string
	limiter   *rate.Limiter
}

// NewClient creates a Client from configuration.
func NewClient(cfg Config) (*Client, error) {
	base := strings.TrimRight(cfg.BaseURL, "/")
	if !strings.HasPrefix(base, "http://") && !strings.HasPrefix(base, "https://") {
		return nil, fmt.Errorf("invalid base url %q: scheme must be http or https", cfg.BaseURL)
	}

	// Ensure timeout defaults if not set
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	timeoutDuration := time.Duration(timeout) * time.Second

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeoutDuration,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          10,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   timeoutDuration,
		ExpectContinueTimeout: 1 * time.Second,
		ResponseHeaderTimeout: timeoutDuration,
	}

	limit := rate.Inf
	if cfg.RateLimit > 0 {
		limit = rate.Limit(cfg.RateLimit)
	}
	burst := cfg.RateBurst
	if burst < 1 {
		burst = 1
	}

	return &Client{
		http:      &http.Client{Transport: transport, Timeout: timeoutDuration},
		baseURL:   base,
		userAgent: cfg.UserAgent,
		limiter:   rate.NewLimiter(limit, burst),
	}, nil
}

// URL returns the absolute URL of an endpoint.
func (c *Client) URL(endpoint Endpoint) string {
	return c.baseURL + endpoint.Path()
}

// Fetch performs a GET on the endpoint and returns the body text. An empty
// body is returned as "{}".
func (c *Client) Fetch(ctx context.Context, endpoint Endpoint) (string, error) {
	target := c.URL(endpoint)

	if err := c.limiter.Wait(ctx); err != nil {
		return "", &errdefs.TransportError{Endpoint: target, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return "", &errdefs.TransportError{Endpoint: target, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", &errdefs.TransportError{Endpoint: target, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		return "", &errdefs.TransportError{Endpoint: target, Status: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &errdefs.TransportError{Endpoint: target, Err: err}
	}
	if len(body) == 0 {
		return "{}", nil
	}
	return string(body), nil
}
