package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// AppError carries an HTTP-ish status code alongside a message and the
// underlying cause. Repositories wrap storage failures in an AppError so
// handlers can log the detail without leaking it to callers.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError wrapping the given cause.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError creates an AppError that unwraps to ErrNotFound.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: 404, Message: message, Err: ErrNotFound}
}

// NewValidationError creates an AppError that unwraps to ErrValidation.
func NewValidationError(message string) *AppError {
	return &AppError{Code: 400, Message: message, Err: ErrValidation}
}
