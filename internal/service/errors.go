package service

import (
	"errors"
	"fmt"
)

// Common service errors - sentinel errors used across service implementations.
// Callers use errors.Is to check for them; the API layer maps the wrapped
// cause to an HTTP status code.
var (
	// ErrNilDependency is returned by constructors given a nil dependency.
	ErrNilDependency = errors.New("required dependency is nil")
)

// AppointmentServiceError is a custom error type for appointment service errors.
type AppointmentServiceError struct {
	Operation string
	Message   string
	Err       error
}

// Error implements the error interface for AppointmentServiceError.
func (e *AppointmentServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("appointment service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("appointment service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *AppointmentServiceError) Unwrap() error {
	return e.Err
}

// NewAppointmentServiceError creates a new AppointmentServiceError.
func NewAppointmentServiceError(operation, message string, err error) *AppointmentServiceError {
	return &AppointmentServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
