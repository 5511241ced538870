package api

import "errors"

// Sentinel kinds for API errors.
var (
	ErrNoData           = errors.New("temperature data unavailable")
	ErrMethodNotAllowed = errors.New("method not allowed")
	ErrRender           = errors.New("render failed")
	ErrBadQuery         = errors.New("year and month must be integers, x and y numbers")
	ErrNoRecord         = errors.New("no record for year and month")
)
