// Package source fetches the global temperature dataset over HTTP.
package source

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/okian/tempmap/internal/domain/model"
	"github.com/okian/tempmap/pkg/logger"
	"github.com/okian/tempmap/pkg/metrics"
)

// Client defaults.
const (
	DefaultURL       = "https://raw.githubusercontent.com/freeCodeCamp/ProjectReferenceData/master/global-temperature.json"
	DefaultTimeout   = 30 * time.Second
	DefaultUserAgent = "tempmap/1.0 (github.com/okian/tempmap)"
	maxErrorBody     = 512
)

// Fetch outcomes recorded in metrics.
const (
	outcomeOK          = "ok"
	outcomeRequestFail = "request_error"
	outcomeStatusFail  = "status_error"
	outcomeDecodeFail  = "decode_error"
)

// Fetcher retrieves one dataset.
type Fetcher interface {
	Fetch(ctx context.Context) (model.Dataset, error)
}

// Client implements Fetcher with a single GET. It never retries and never
// caches.
type Client struct {
	url        string
	httpClient *http.Client
	userAgent  string
	logger     logger.Logger
}

// Option applies a configuration option to the Client.
type Option func(*Client)

// WithURL sets the dataset URL.
func WithURL(url string) Option {
	return func(c *Client) {
		if url != "" {
			c.url = url
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l logger.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewClient creates a dataset client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		url:        DefaultURL,
		httpClient: &http.Client{Timeout: DefaultTimeout},
		userAgent:  DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// URL returns the configured dataset URL.
func (c *Client) URL() string { return c.url }

// Fetch performs the GET and decodes the dataset.
func (c *Client) Fetch(ctx context.Context) (model.Dataset, error) {
	start := time.Now()
	ds, outcome, err := c.fetch(ctx)
	metrics.RecordFetch(outcome, float64(time.Since(start).Milliseconds()))
	if err != nil {
		metrics.RecordErrorByComponent("source", outcome)
		if c.logger != nil {
			c.logger.Warn(ctx, "dataset fetch failed", logger.String("url", c.url), logger.Error(err))
		}
		return model.Dataset{}, err
	}
	if c.logger != nil {
		c.logger.Debug(ctx, "dataset fetched",
			logger.String("url", c.url),
			logger.Int("records", ds.Len()),
			logger.Float64("base_temperature", ds.BaseTemperature))
	}
	return ds, nil
}

func (c *Client) fetch(ctx context.Context) (model.Dataset, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, http.NoBody)
	if err != nil {
		return model.Dataset{}, outcomeRequestFail, fmt.Errorf("%w: create request: %w", ErrRequest, err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return model.Dataset{}, outcomeRequestFail, fmt.Errorf("%w: %w", ErrRequest, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return model.Dataset{}, outcomeStatusFail, fmt.Errorf("%w: status %d: %s", ErrStatus, resp.StatusCode, string(body))
	}

	var ds model.Dataset
	if err := json.NewDecoder(resp.Body).Decode(&ds); err != nil {
		return model.Dataset{}, outcomeDecodeFail, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return ds, outcomeOK, nil
}
