package services

import "errors"

// ErrNotFound is returned when a referenced bill, order, worker or customer
// does not exist. Handlers map it to 404.
var ErrNotFound = errors.New("not found")

// ValidationError marks a rejected payload. Handlers map it to 400 with the
// message as-is.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func validationf(message string) error {
	return &ValidationError{Message: message}
}
