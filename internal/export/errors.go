package export

import "errors"

// Sentinel errors returned by Run.
var (
	ErrFormat      = errors.New("format must be svg or html")
	ErrTimeout     = errors.New("timeout must be positive")
	ErrUnavailable = errors.New("temperature data is currently unavailable")
	ErrOutput      = errors.New("write output failed")
)
