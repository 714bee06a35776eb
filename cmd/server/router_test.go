package main

import (
	"net/http"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var appointmentIDPattern = regexp.MustCompile(`^CITA-\d+-[a-z0-9]{9}$`)

func booking() map[string]any {
	return map[string]any{
		"name":    "Jo",
		"email":   "jo@x.com",
		"phone":   "1234567890",
		"service": "cardiologia",
	}
}

func TestRouter_BookAppointmentEndToEnd(t *testing.T) {
	server, transport, app := newTestServer(t, testConfig())

	token := issueToken(t, server.URL)

	resp := postJSON(t, server.URL+"/api/citas", booking(), map[string]string{
		"Authorization": "Bearer " + token,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, true, body["success"])
	id, _ := body["appointmentId"].(string)
	assert.Regexp(t, appointmentIDPattern, id)

	assert.Equal(t, 2, transport.count(), "clinic and patient emails")

	stored, err := app.appointmentStore.GetByID(t.Context(), id)
	require.NoError(t, err)
	assert.Equal(t, "jo@x.com", stored.Email)
	assert.Equal(t, "pendiente", stored.Status)
}

func TestRouter_AppointmentsAlias(t *testing.T) {
	server, _, _ := newTestServer(t, testConfig())
	token := issueToken(t, server.URL)

	resp := postJSON(t, server.URL+"/api/appointments", booking(), map[string]string{
		"Authorization": "Bearer " + token,
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}

func TestRouter_BookingSucceedsWhenEmailFails(t *testing.T) {
	server, transport, _ := newTestServer(t, testConfig())
	transport.sendErr = assert.AnError
	token := issueToken(t, server.URL)

	resp := postJSON(t, server.URL+"/api/citas", booking(), map[string]string{
		"Authorization": "Bearer " + token,
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}

func TestRouter_AppointmentRejections(t *testing.T) {
	server, transport, _ := newTestServer(t, testConfig())
	token := issueToken(t, server.URL)

	tests := []struct {
		name        string
		payload     map[string]any
		headers     map[string]string
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "no token",
			payload:     booking(),
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Token de acceso requerido. Formato: Authorization: Bearer <token>",
		},
		{
			name:        "garbage token",
			payload:     booking(),
			headers:     map[string]string{"Authorization": "Bearer not-a-jwt"},
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Token inválido",
		},
		{
			name: "invalid service",
			payload: map[string]any{
				"name": "Jo", "email": "jo@x.com", "phone": "1234567890", "service": "brain-surgery",
			},
			headers:     map[string]string{"Authorization": "Bearer " + token},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Servicio es requerido y debe ser válido",
		},
		{
			name:        "missing fields",
			payload:     map[string]any{"name": "Jo"},
			headers:     map[string]string{"Authorization": "Bearer " + token},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Campos requeridos faltantes: email, phone, service",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := postJSON(t, server.URL+"/api/citas", tt.payload, tt.headers)
			require.Equal(t, tt.wantStatus, resp.StatusCode)
			body := decodeBody(t, resp)
			assert.Equal(t, false, body["success"])
			assert.Equal(t, tt.wantMessage, body["message"])
		})
	}

	assert.Zero(t, transport.count(), "rejected bookings send no email")
}

func TestRouter_RequiresJSONContentType(t *testing.T) {
	server, _, _ := newTestServer(t, testConfig())
	token := issueToken(t, server.URL)

	req, err := http.NewRequest(http.MethodPost, server.URL+"/api/citas", strings.NewReader("name=Jo"))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Content-Type debe ser application/json", decodeBody(t, resp)["message"])
}

func TestRouter_AppointmentRateLimit(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimit.MaxAppointments = 2
	server, _, _ := newTestServer(t, cfg)
	token := issueToken(t, server.URL)
	headers := map[string]string{"Authorization": "Bearer " + token}

	for i := 0; i < 2; i++ {
		resp := postJSON(t, server.URL+"/api/citas", booking(), headers)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	resp := postJSON(t, server.URL+"/api/citas", booking(), headers)
	require.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "Demasiadas solicitudes de citas. Por favor, espera antes de intentar nuevamente.", body["message"])
	assert.Equal(t, float64(900), body["retryAfter"])
}

func TestRouter_EncryptedTokenRequest(t *testing.T) {
	server, _, _ := newTestServer(t, testConfig())

	resp := postJSON(t, server.URL+"/api/auth/token", map[string]string{
		"encryptedClientId":     "U2FsdGVkX18BAgMEBQYHCCqbyTdNyGATEAISf0Di5OA=",
		"encryptedClientSecret": "U2FsdGVkX18IBwYFBAMCAWlI0ntyI2yIvrKLsMN0sEk=",
	}, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	data := decodeBody(t, resp)["data"].(map[string]any)
	assert.Equal(t, "Bearer", data["type"])
	assert.Equal(t, "24h", data["expiresIn"])
	assert.NotEmpty(t, data["token"])
}

func TestRouter_ProductionCredentialCheck(t *testing.T) {
	cfg := testConfig()
	cfg.Server.Environment = "production"
	cfg.Auth.ValidClientCredentials = `[{"clientId":"landing-page","clientSecret":"s3cr3t-client"}]`
	server, _, _ := newTestServer(t, cfg)

	resp := postJSON(t, server.URL+"/api/auth/token", map[string]string{
		"clientId":     "landing-page",
		"clientSecret": "wrong",
	}, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Credenciales inválidas", decodeBody(t, resp)["message"])

	assert.NotEmpty(t, issueToken(t, server.URL))
}

func TestRouter_SystemEndpoints(t *testing.T) {
	server, _, _ := newTestServer(t, testConfig())

	resp, err := http.Get(server.URL + "/api/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "DENY", resp.Header.Get("X-Frame-Options"))
	assert.Equal(t, "API funcionando correctamente", decodeBody(t, resp)["message"])

	resp, err = http.Get(server.URL + "/api/unknown")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "Endpoint no encontrado", body["message"])
	assert.Equal(t, "/api/unknown", body["path"])
}

func TestRouter_RejectsUnknownOrigin(t *testing.T) {
	server, _, _ := newTestServer(t, testConfig())

	req, err := http.NewRequest(http.MethodGet, server.URL+"/api/health", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "https://evil.example")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestRouter_APIKeyGate(t *testing.T) {
	cfg := testConfig()
	cfg.Auth.APIKeys = []string{"landing-key"}
	server, _, _ := newTestServer(t, cfg)

	resp, err := http.Get(server.URL + "/api/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	req, err := http.NewRequest(http.MethodGet, server.URL+"/api/health", nil)
	require.NoError(t, err)
	req.Header.Set("X-API-Key", "landing-key")
	resp2, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusOK, resp2.StatusCode)
}
