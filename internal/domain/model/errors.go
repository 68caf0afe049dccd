package model

import "errors"

var (
	// ErrSourceUnavailable covers transport failures, timeouts and non-2xx
	// responses from the price source.
	ErrSourceUnavailable = errors.New("price source unavailable")

	ErrMalformedObservation = errors.New("malformed price observation")
)

// ValidationError is returned for bad caller input. Its message is safe to
// show to API clients.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func NewValidationError(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

func NewNotFoundError(msg string) *NotFoundError {
	return &NotFoundError{Message: msg}
}
