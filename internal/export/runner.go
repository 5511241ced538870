// Package export runs the fetch and render stages once and writes the chart to
// a file, for use outside the HTTP service.
package export

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/okian/tempmap/internal/adapters/source"
	"github.com/okian/tempmap/internal/render"
	"github.com/okian/tempmap/pkg/logger"
)

// File permission constants.
const (
	directoryPermission = 0750
	filePermission      = 0644
)

// Run fetches the dataset with f, renders it and writes it to cfg.Out (or
// stdout). A fetch failure is reported as ErrUnavailable and nothing is
// written.
func Run(ctx context.Context, cfg Config, f source.Fetcher, stdout io.Writer) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	log := logger.Get()

	ds, err := f.Fetch(ctx)
	if err != nil {
		log.Debug(ctx, "fetch failed", logger.Error(err))
		return ErrUnavailable
	}

	start := time.Now()
	chart := render.Render(ds)
	log.Info(ctx, "chart rendered",
		logger.Int("cells", len(chart.Cells)),
		logger.Int("first_year", chart.FirstYear),
		logger.Int("last_year", chart.LastYear),
		logger.Duration("took", time.Since(start)),
	)

	w, done, err := open(cfg.Out, stdout)
	if err != nil {
		return err
	}

	switch cfg.Format {
	case FormatHTML:
		err = render.WritePage(w, chart, render.PageOptions{})
	default:
		err = render.WriteSVG(w, chart)
	}
	if cerr := done(); err == nil && cerr != nil {
		err = fmt.Errorf("%w: %w", ErrOutput, cerr)
	}
	if err != nil {
		return err
	}

	if cfg.Out != "" && cfg.Out != "-" {
		log.Info(ctx, "chart written", logger.String("path", cfg.Out), logger.String("format", cfg.Format))
	}
	return nil
}

func open(path string, stdout io.Writer) (io.Writer, func() error, error) {
	if path == "" || path == "-" {
		return stdout, func() error { return nil }, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), directoryPermission); err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrOutput, err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, filePermission)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrOutput, err)
	}
	return file, file.Close, nil
}
