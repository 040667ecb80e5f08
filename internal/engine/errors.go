package engine

import "errors"

var (
	// ErrNotStarted is returned by Send when the transport has not been
	// opened with Start.
	ErrNotStarted = errors.New("engine: transport not started")

	// ErrSendFailed wraps a transport error while emitting a frame.
	ErrSendFailed = errors.New("engine: send failed")
)
