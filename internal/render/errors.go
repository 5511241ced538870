package render

import "errors"

// Sentinel kinds for render errors.
var (
	ErrWriteSVG  = errors.New("write svg failed")
	ErrWritePage = errors.New("write page failed")
)
