// Package service runs the fetch and render stages and holds their results for
// the HTTP API.
package service

import (
	"context"
	"sync"
	"time"

	"github.com/okian/tempmap/internal/adapters/source"
	"github.com/okian/tempmap/internal/domain/model"
	"github.com/okian/tempmap/internal/render"
	"github.com/okian/tempmap/pkg/logger"
	"github.com/okian/tempmap/pkg/metrics"
)

// Service fetches the dataset once, renders it once and serves the result.
type Service struct {
	mu sync.RWMutex

	fetcher   source.Fetcher
	showError bool

	// State. started never resets, so a stopped service cannot be started
	// again.
	started  bool
	stopped  bool
	loaded   bool
	dataset  model.Dataset
	chart    *render.Chart
	fetchErr error

	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(logger logger.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithFetcher sets the dataset source.
func WithFetcher(f source.Fetcher) Option {
	return func(s *Service) {
		if f != nil {
			s.fetcher = f
		}
	}
}

// WithShowError makes the page show a generic error message when the fetch
// fails instead of an empty container.
func WithShowError(show bool) Option {
	return func(s *Service) {
		s.showError = show
	}
}

// New constructs a new Service. Without WithFetcher it uses a source.Client
// with default settings.
func New(opts ...Option) *Service {
	s := &Service{}

	for _, opt := range opts {
		opt(s)
	}

	if s.fetcher == nil {
		s.fetcher = source.NewClient(source.WithLogger(s.logger))
	}

	return s
}

// Start fetches the dataset and renders the chart. A fetch failure is logged
// and kept for Err; Start itself only fails when called a second time, even
// after Stop.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.started {
		s.mu.Unlock()
		return ErrAlreadyStarted
	}
	s.started = true
	if s.logger == nil {
		s.logger = logger.Get()
	}
	s.mu.Unlock()

	s.logger.Info(ctx, "loading temperature dataset...")

	ds, err := s.fetcher.Fetch(ctx)
	if err != nil {
		s.logger.Error(ctx, "dataset unavailable, serving empty view", logger.Error(err))
		s.mu.Lock()
		s.fetchErr = err
		s.chart = render.Render(model.Dataset{})
		s.mu.Unlock()
		return nil
	}

	start := time.Now()
	chart := render.Render(ds)
	elapsed := time.Since(start)

	metrics.UpdateDatasetShape(ds.Len(), len(ds.Years()))
	metrics.RecordRender(float64(elapsed.Microseconds())/1000, len(chart.Cells), chart.BucketCounts())

	s.mu.Lock()
	s.dataset = ds
	s.loaded = true
	s.chart = chart
	s.mu.Unlock()

	s.logger.Info(ctx, "heat-map rendered",
		logger.Int("records", ds.Len()),
		logger.Int("cells", len(chart.Cells)),
		logger.Int("first_year", chart.FirstYear),
		logger.Int("last_year", chart.LastYear),
		logger.Duration("render_time", elapsed),
	)

	return nil
}

// Stop marks the service as stopped. The rendered chart stays readable.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started || s.stopped {
		return
	}
	s.stopped = true
	if s.logger != nil {
		s.logger.Info(context.Background(), "heat-map service stopped")
	}
}

// Chart returns the rendered chart. It is never nil once Start has returned.
func (s *Service) Chart() *render.Chart {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.chart
}

// Dataset returns the fetched dataset and whether the fetch succeeded.
func (s *Service) Dataset() (model.Dataset, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dataset, s.loaded
}

// Err returns the fetch error, if any.
func (s *Service) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fetchErr
}

// ShowError reports whether fetch failures are surfaced on the page.
func (s *Service) ShowError() bool {
	return s.showError
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]interface{}{
		"started": s.started && !s.stopped,
		"stopped": s.stopped,
		"loaded":  s.loaded,
		"records": s.dataset.Len(),
		"years":   len(s.dataset.Years()),
		"cells":   0,
	}
	if s.fetchErr != nil {
		stats["fetchError"] = s.fetchErr.Error()
	}
	if s.chart != nil {
		stats["cells"] = len(s.chart.Cells)
		stats["buckets"] = s.chart.BucketCounts()
		if s.loaded {
			stats["firstYear"] = s.chart.FirstYear
			stats["lastYear"] = s.chart.LastYear
			stats["baseTemperature"] = s.chart.BaseTemperature
		}
	}

	return stats
}
