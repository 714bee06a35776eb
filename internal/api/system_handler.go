package api

import (
	"net/http"
	"time"

	"github.com/clinicacaracas/citas-api/internal/api/shared"
	"github.com/clinicacaracas/citas-api/internal/domain"
)

// SystemHandler serves the health check, the API description and the JSON
// fallbacks for unknown routes.
type SystemHandler struct {
	environment string
	version     string
	now         func() time.Time
}

// NewSystemHandler creates a new SystemHandler.
func NewSystemHandler(environment, version string) *SystemHandler {
	return &SystemHandler{
		environment: environment,
		version:     version,
		now:         time.Now,
	}
}

// Health handles GET /api/health.
func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, HealthResponse{
		Success:     true,
		Message:     "API funcionando correctamente",
		Timestamp:   h.now().UTC().Format("2006-01-02T15:04:05.000Z"),
		Environment: h.environment,
		Version:     h.version,
	})
}

// Info handles GET /api/info.
func (h *SystemHandler) Info(w http.ResponseWriter, r *http.Request) {
	codes := domain.ValidServices()
	services := make([]ServiceInfo, 0, len(codes))
	for _, code := range codes {
		services = append(services, ServiceInfo{Code: code, Name: domain.ServiceDisplayName(code)})
	}

	shared.RespondWithJSON(w, r, http.StatusOK, InfoResponse{
		Success: true,
		Data: APIInfo{
			Name:           "API Clínica Caracas",
			Version:        h.version,
			Description:    "API REST para gestión de citas médicas",
			Architecture:   "Hexagonal Architecture",
			Authentication: "JWT Token Required",
			Endpoints: map[string]string{
				"POST /api/auth/token":   "Generar token de acceso",
				"POST /api/citas":        "Crear nueva cita (requiere token)",
				"POST /api/appointments": "Alias de /api/citas",
				"GET /api/health":        "Estado de la API",
				"GET /api/info":          "Información de la API",
			},
			Services: services,
			Features: []string{
				"Autenticación JWT",
				"Envío de correos electrónicos",
				"Validación de datos",
				"Rate limiting",
				"CORS configurado",
				"Logging de seguridad",
			},
		},
	})
}

// NotFound answers requests for unknown routes.
func (h *SystemHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusNotFound, RouteErrorResponse{
		Success: false,
		Message: MsgEndpointNotFound,
		Path:    r.URL.Path,
		Method:  r.Method,
	})
}

// MethodNotAllowed answers requests whose route exists for other methods.
func (h *SystemHandler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusMethodNotAllowed, RouteErrorResponse{
		Success: false,
		Message: MsgMethodNotAllowed,
		Path:    r.URL.Path,
		Method:  r.Method,
	})
}
