package export

import (
	"fmt"
	"io"
	"os"

	"github.com/okian/tempmap/pkg/logger"
)

// SetupLogging initializes the tint console logger on stderr, so stdout stays
// free for the chart.
func SetupLogging(verbose bool) error {
	if err := logger.Init(logger.WithFormat(logger.FormatTint), logger.WithOutput(os.Stderr)); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	level := "info"
	if verbose {
		level = "debug"
	}
	return logger.SetLevelString(level)
}

// ShowHelp prints usage information for the export tool.
func ShowHelp(w io.Writer) {
	_, _ = io.WriteString(w, `tempmap render
==============

Fetches the global temperature dataset once and writes the heat-map.

Usage:
  go run ./cmd/render [options]

Options:
  -url string
        Dataset URL (default: the freeCodeCamp global-temperature.json)
  -out string
        Output file, "-" for stdout (default stdout)
  -format string
        svg or html (default "svg")
  -timeout duration
        HTTP request timeout (default 30s)
  -verbose
        Enable debug logging on stderr
  -help
        Show this help message

Examples:
  go run ./cmd/render -out heatmap.svg
  go run ./cmd/render -format html -out public/index.html
`)
}
