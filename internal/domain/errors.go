package domain

import (
	"errors"
	"fmt"
)

var (
	ErrSecretNotFound = errors.New("secret not found")

	// ErrAuthenticationExpired means the stored credentials can no longer be
	// used and were cleared; the user has to sign in again.
	ErrAuthenticationExpired = errors.New("authentication expired")

	// ErrPollingLost means the task status could not be fetched. It is distinct
	// from a task the server reports as failed.
	ErrPollingLost = errors.New("lost contact with task")

	// ErrPollingStopped means the poll ended before the task reached a
	// terminal status, either stopped or replaced by another poll.
	ErrPollingStopped = errors.New("stopped following task before it finished")

	ErrNotSignedIn = errors.New("not signed in")
)

// ValidationError reports input rejected before any request is sent.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "invalid input: " + e.Reason
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

func IsValidationError(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}
