package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidField = errors.New("invalid field")
	ErrValidation   = errors.New("validation error")
	ErrNotFound     = errors.New("not found")
)

type AppError struct {
	Err     error  // actual error
	Message string // Human-readable error message
	Field   string // Optional: field causing the error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// InvalidField reports a write to a field name that is not part of the
// snippet field set. Callers that want a non-fatal variant use
// Record.TrySet instead of catching this.
func InvalidField(field string) *AppError {
	return &AppError{
		Err:     ErrInvalidField,
		Message: fmt.Sprintf("%q is not a snippet field", field),
		Field:   field,
	}
}

func ValidationFailed(field, message string) *AppError {
	return &AppError{
		Err:     ErrValidation,
		Message: message,
		Field:   field,
	}
}

func NotFound(resource, name string) *AppError {
	return &AppError{
		Err:     ErrNotFound,
		Message: fmt.Sprintf("%s not found: %s", resource, name),
	}
}
