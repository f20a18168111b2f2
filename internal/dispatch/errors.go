package dispatch

import "errors"

// Sentinel errors for the dispatch package.
var (
	// ErrAlreadyRunning is returned when Run is called on a loop that has
	// already been started.
	ErrAlreadyRunning = errors.New("dispatch loop is already running")

	// ErrSourceClosed is returned by Run when the producer closed the queue.
	// The loop does not restart itself.
	ErrSourceClosed = errors.New("input source closed")
)
