package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/clinicacaracas/citas-api/internal/api/shared"
	"github.com/clinicacaracas/citas-api/internal/platform/logger"
	"github.com/clinicacaracas/citas-api/internal/redact"
	"github.com/clinicacaracas/citas-api/internal/service"
)

// requiredAppointmentFields are checked, in order, before the workflow runs.
var requiredAppointmentFields = []string{"name", "email", "phone", "service"}

// AppointmentHandler handles appointment booking requests.
type AppointmentHandler struct {
	service     service.AppointmentService
	showDetails bool
}

// NewAppointmentHandler creates a new AppointmentHandler. showDetails adds
// the underlying error to 500 responses and must be false in production.
func NewAppointmentHandler(svc service.AppointmentService, showDetails bool) *AppointmentHandler {
	return &AppointmentHandler{
		service:     svc,
		showDetails: showDetails,
	}
}

// CreateAppointment handles POST /api/citas.
func (h *AppointmentHandler) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), slog.Default())
	if clientID, ok := shared.GetClientID(r.Context()); ok {
		log = log.With(slog.String("client_id", clientID))
	}

	body, err := shared.DecodeJSONObject(r)
	if err != nil && !errors.Is(err, shared.ErrEmptyBody) {
		respondDecodeError(w, r, err)
		return
	}

	if missing := missingFields(body, requiredAppointmentFields); len(missing) > 0 {
		shared.RespondWithError(w, r, http.StatusBadRequest, MsgMissingFieldsPrefix+strings.Join(missing, ", "))
		return
	}

	input := make(map[string]any, len(requiredAppointmentFields)+1)
	for _, field := range requiredAppointmentFields {
		s, ok := body[field].(string)
		if !ok {
			shared.RespondWithError(w, r, http.StatusBadRequest, MsgFieldsMustBeStrings)
			return
		}
		input[field] = s
	}
	if msg, ok := body["message"]; ok {
		input["message"] = msg
	}

	result := h.service.CreateAppointment(r.Context(), input)
	if result.Success {
		shared.RespondWithJSON(w, r, http.StatusCreated, result)
		return
	}

	status := MapErrorToStatusCode(result.Err)
	if status >= http.StatusInternalServerError {
		log.Error("appointment creation failed", slog.String("error", redact.Error(result.Err)))
		resp := AppointmentErrorResponse{Success: false, Message: result.Message}
		if resp.Message == "" {
			resp.Message = GetSafeErrorMessage(result.Err)
		}
		if h.showDetails && result.Err != nil {
			resp.Error = result.Err.Error()
		}
		shared.RespondWithJSON(w, r, status, resp)
		return
	}

	log.Info("appointment rejected", slog.Int("status", status), slog.String("reason", result.Message))
	shared.RespondWithJSON(w, r, status, result)
}

// missingFields lists the fields that are absent or empty. Empty means null,
// "", false or 0, matching what browsers send for unset form controls.
func missingFields(body map[string]any, fields []string) []string {
	var missing []string
	for _, f := range fields {
		if isEmptyValue(body[f]) {
			missing = append(missing, f)
		}
	}
	return missing
}

func isEmptyValue(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return val == ""
	case bool:
		return !val
	case float64:
		return val == 0
	default:
		return false
	}
}
