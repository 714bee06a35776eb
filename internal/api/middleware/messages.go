package middleware

// Client-facing messages written by the middleware chain.
const (
	MsgTokenRequired          = "Token de acceso requerido. Formato: Authorization: Bearer <token>"
	MsgTokenExpired           = "Token expirado"
	MsgTokenInvalid           = "Token inválido"
	MsgConfigurationError     = "Error de configuración del servidor"
	MsgInternalError          = "Error interno del servidor"
	MsgAPIKeyInvalid          = "API key inválida o faltante"
	MsgContentTypeJSON        = "Content-Type debe ser application/json"
	MsgPayloadTooLarge        = "Payload demasiado grande"
	MsgOriginNotAllowed       = "Acceso no permitido desde este origen"
	MsgEncryptionUnavailable  = "Cifrado de credenciales no disponible en esta configuración"
	MsgEncryptedCredentials   = "Error al procesar credenciales cifradas"
	MsgInvalidJSON            = "Cuerpo de la solicitud inválido"
	MsgTooManyRequests        = "Demasiadas solicitudes. Por favor, espera antes de intentar nuevamente."
	MsgTooManyAppointmentReqs = "Demasiadas solicitudes de citas. Por favor, espera antes de intentar nuevamente."
)
