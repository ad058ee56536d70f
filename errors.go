package carousel

import "errors"

// Errors returned by New.
var (
	// ErrNilHost is returned when New is called without a host.
	ErrNilHost = errors.New("carousel: nil host")

	// ErrNilScheduler is returned when New is called without a scheduler.
	ErrNilScheduler = errors.New("carousel: nil scheduler")
)
