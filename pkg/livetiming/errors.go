package livetiming

import "github.com/pkg/errors"

var (
	// ErrSessionNotFound is returned when the year/event/session
	// combination does not exist upstream.
	ErrSessionNotFound = errors.New("session not found")
	// ErrDriverNotFound is returned when a driver code has no timed
	// lap in the session.
	ErrDriverNotFound = errors.New("driver not found")
)
