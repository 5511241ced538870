package source

import "errors"

// Sentinel kinds for fetch errors. Every error returned by Fetch wraps exactly
// one of them.
var (
	ErrRequest = errors.New("dataset request failed")
	ErrStatus  = errors.New("dataset unexpected status")
	ErrDecode  = errors.New("dataset decode failed")
)
