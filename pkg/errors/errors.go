package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	ErrEmptyPlaylist     = errors.New("no playable tracks found")
	ErrUnsupportedFormat = errors.New("unsupported audio format")
	ErrInvalidVolume     = errors.New("volume must be between 0.0 and 1.0")
	ErrResultsClosed     = errors.New("preload result channel closed")
	ErrEmptyListFile     = errors.New("playlist file contains no paths")
)

// PlayerError wraps errors with additional context
type PlayerError struct {
	Op    string // Operation that failed
	Track string // Track path or display name if applicable
	Err   error  // Underlying error
}

func (e *PlayerError) Error() string {
	if e.Track != "" {
		return fmt.Sprintf("%s failed for %s: %v", e.Op, e.Track, e.Err)
	}
	return fmt.Sprintf("%s failed: %v", e.Op, e.Err)
}

func (e *PlayerError) Unwrap() error {
	return e.Err
}

// NewPlayerError creates a new PlayerError
func NewPlayerError(op, track string, err error) *PlayerError {
	return &PlayerError{Op: op, Track: track, Err: err}
}
