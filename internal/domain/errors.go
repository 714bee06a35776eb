// Package domain defines the core business entities and errors.
package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// Every *ValidationError unwraps to it.
	ErrValidation = errors.New("validation failed")
)

// ValidationError describes the first rule an appointment input violated.
// Message is user-facing and safe to return to clients.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Message
}

// Unwrap allows errors.Is(err, ErrValidation).
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

func newValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// User-facing validation messages, one per appointment rule.
const (
	MsgInvalidID        = "ID de cita es requerido y debe ser una cadena"
	MsgInvalidName      = "Nombre es requerido y debe tener al menos 2 caracteres"
	MsgInvalidEmail     = "Email es requerido y debe tener un formato válido"
	MsgInvalidPhone     = "Teléfono es requerido y debe tener al menos 10 dígitos"
	MsgInvalidService   = "Servicio es requerido y debe ser válido"
	MsgMessageType      = "Mensaje debe ser una cadena de texto"
	MsgMessageTooLong   = "Mensaje no puede exceder 1000 caracteres"
	MsgInvalidCreatedAt = "Fecha de creación es requerida y debe ser una fecha válida"
	MsgInvalidStatus    = "Estado debe ser una cadena de texto"
)
