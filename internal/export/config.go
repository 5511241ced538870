package export

import (
	"time"

	"github.com/okian/tempmap/internal/adapters/source"
)

// Output formats.
const (
	FormatSVG  = "svg"
	FormatHTML = "html"
)

// Config holds configuration for one export run.
type Config struct {
	URL     string        // Dataset URL
	Out     string        // Output file; empty or "-" writes to stdout
	Format  string        // svg or html
	Timeout time.Duration // HTTP client timeout
	Verbose bool          // Enable debug logging
}

// DefaultConfig returns the flag defaults.
func DefaultConfig() Config {
	return Config{
		URL:     source.DefaultURL,
		Format:  FormatSVG,
		Timeout: source.DefaultTimeout,
	}
}

// Validate checks the format and timeout.
func (c Config) Validate() error {
	switch c.Format {
	case FormatSVG, FormatHTML:
	default:
		return ErrFormat
	}
	if c.Timeout <= 0 {
		return ErrTimeout
	}
	return nil
}
