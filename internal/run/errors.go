package run

import "errors"

var (
	// ErrRunNotFound means the referenced run id has no session.
	ErrRunNotFound = errors.New("run not found")
	// ErrInvalidTransition means a mutation was attempted on a session
	// that already reached a terminal status.
	ErrInvalidTransition = errors.New("run is not active")
)
