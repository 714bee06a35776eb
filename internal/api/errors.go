package api

import (
	"errors"
	"net/http"

	"github.com/clinicacaracas/citas-api/internal/api/shared"
	"github.com/clinicacaracas/citas-api/internal/domain"
	"github.com/clinicacaracas/citas-api/internal/platform/aescrypt"
	"github.com/clinicacaracas/citas-api/internal/service/auth"
	"github.com/clinicacaracas/citas-api/internal/store"
)

// Client-facing messages written by the handlers.
const (
	MsgInternalError       = "Error interno del servidor"
	MsgConfigurationError  = "Error de configuración del servidor"
	MsgInvalidBody         = "Cuerpo de la solicitud inválido"
	MsgPayloadTooLarge     = "Payload demasiado grande"
	MsgMissingFieldsPrefix = "Campos requeridos faltantes: "
	MsgFieldsMustBeStrings = "Todos los campos deben ser cadenas de texto"
	MsgCredentialsRequired = "clientId y clientSecret son requeridos (pueden ser cifrados o sin cifrar)"
	MsgInvalidCredentials  = "Credenciales inválidas"
	MsgTokenGenerated      = "Token generado exitosamente"
	MsgTokenFailed         = "Error al generar token"
	MsgEncryptedCreds      = "Error al procesar credenciales cifradas"
	MsgEndpointNotFound    = "Endpoint no encontrado"
	MsgMethodNotAllowed    = "Método no permitido"
	MsgTokenInvalid        = "Token inválido"
	MsgTokenExpired        = "Token expirado"
	MsgAppointmentFailed   = "No se pudo crear la cita"
)

// respondDecodeError writes 413 when the body exceeded the size cap and 400
// for any other decode failure.
func respondDecodeError(w http.ResponseWriter, r *http.Request, err error) {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		shared.RespondWithError(w, r, http.StatusRequestEntityTooLarge, MsgPayloadTooLarge)
		return
	}
	shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, MsgInvalidBody, err)
}

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, auth.ErrInvalidCredentials):
		return http.StatusUnauthorized

	// Bad request errors
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, auth.ErrMissingCredentials),
		errors.Is(err, aescrypt.ErrDecryption):
		return http.StatusBadRequest

	// Not found errors
	case store.IsNotFoundError(err):
		return http.StatusNotFound

	// Configuration and everything else
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-facing message for err.
// Validation messages are already written for patients and pass through.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return MsgInternalError
	}

	var validationErr *domain.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return validationErr.Message

	case errors.Is(err, auth.ErrExpiredToken):
		return MsgTokenExpired

	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrMissingToken):
		return MsgTokenInvalid

	case errors.Is(err, auth.ErrInvalidCredentials):
		return MsgInvalidCredentials

	case errors.Is(err, auth.ErrMissingCredentials):
		return MsgCredentialsRequired

	case errors.Is(err, aescrypt.ErrDecryption):
		return MsgEncryptedCreds

	case errors.Is(err, auth.ErrSecretNotConfigured),
		errors.Is(err, auth.ErrInvalidCredentialConfig):
		return MsgConfigurationError

	case errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, store.ErrSaveFailed):
		return MsgAppointmentFailed

	default:
		return MsgInternalError
	}
}
