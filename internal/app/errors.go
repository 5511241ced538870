package service

import "errors"

// ErrAlreadyStarted is returned when Start is called more than once.
var ErrAlreadyStarted = errors.New("service already started")
