package usecase

import (
	"fmt"

	"wingman/internal/errors"
)

// retryableError marks an event-handling failure that should be redelivered
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

// NewRetryableError wraps an error as retryable
func NewRetryableError(err error) error {
	return &retryableError{err: err}
}

// IsRetryableError checks if an error is retryable
func IsRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// ErrUnknownEventType is returned for events no handler understands
var ErrUnknownEventType = errors.New("unknown event type")
