// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults.
// - Loading functions accept context.Context as the first parameter.
// - External errors are wrapped with this package's sentinel errors.
package config

import (
	"time"

	"github.com/okian/tempmap/internal/adapters/source"
	"github.com/okian/tempmap/pkg/logger"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat selects the log handler: text, json, tint.
	LogFormat string `koanf:"log_format"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// DatasetURL is the location of the temperature JSON document.
	DatasetURL string `koanf:"dataset_url"`

	// FetchTimeoutMS bounds the single dataset fetch.
	FetchTimeoutMS int `koanf:"fetch_timeout_ms"`

	// UserAgent is sent with the dataset request.
	UserAgent string `koanf:"user_agent"`

	// ShowError surfaces a generic error state on the page when the fetch
	// failed. The default is a silent empty view.
	ShowError bool `koanf:"show_error"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:       "info",
		LogFormat:      logger.FormatText,
		Addr:           ":9080",
		DatasetURL:     source.DefaultURL,
		FetchTimeoutMS: int(source.DefaultTimeout / time.Millisecond),
		UserAgent:      source.DefaultUserAgent,
		ShowError:      false,
	}
}

// FetchTimeout returns FetchTimeoutMS as a duration.
func (c *Config) FetchTimeout() time.Duration {
	return time.Duration(c.FetchTimeoutMS) * time.Millisecond
}
