package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/clinicacaracas/citas-api/internal/config"
	"github.com/stretchr/testify/require"
	gomail "github.com/wneessen/go-mail"
)

const testJWTSecret = "thisisasecretkeythatis32charslong!!"

// recordingTransport captures outgoing mail instead of dialing SMTP.
type recordingTransport struct {
	mu        sync.Mutex
	sent      []*gomail.Msg
	sendErr   error
	verifyErr error
}

func (t *recordingTransport) Send(_ context.Context, msg *gomail.Msg) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.sent = append(t.sent, msg)
	return t.sendErr
}

func (t *recordingTransport) Verify(context.Context) error { return t.verifyErr }

func (t *recordingTransport) count() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.sent)
}

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Port:        3000,
			Environment: config.EnvDevelopment,
			LogLevel:    "debug",
			Version:     "2.0.0",
		},
		Auth: config.AuthConfig{
			JWTSecret:     testJWTSecret,
			TokenLifetime: "24h",
			EncryptionKey: "clave-secreta",
		},
		Clinic: config.ClinicConfig{
			Name:    "Clínica Caracas",
			Email:   "citas@clinicaencaracas.com",
			Phone:   "+58 212 555 0000",
			Address: "Caracas",
		},
		Mail: config.MailConfig{
			Host:     "smtp.example.com",
			Port:     465,
			Username: "notificaciones@clinicaencaracas.com",
			Password: "app-password",
			SSL:      true,
		},
		RateLimit: config.RateLimitConfig{
			WindowMS:        15 * 60 * 1000,
			MaxGeneral:      100,
			MaxAppointments: 10,
		},
		CORS: config.CORSConfig{
			AllowedOrigins: []string{"https://clinicaencaracas.com"},
		},
	}
}

// newTestServer builds the full router around cfg with a recording mail
// transport.
func newTestServer(t *testing.T, cfg *config.Config) (*httptest.Server, *recordingTransport, *application) {
	t.Helper()

	transport := &recordingTransport{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	app, err := newApplication(cfg, logger, transport)
	require.NoError(t, err)

	server := httptest.NewServer(app.setupRouter())
	t.Cleanup(server.Close)
	return server, transport, app
}

func postJSON(t *testing.T, url string, payload any, headers map[string]string) *http.Response {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// issueToken obtains a bearer token through the token endpoint.
func issueToken(t *testing.T, baseURL string) string {
	t.Helper()

	resp := postJSON(t, baseURL+"/api/auth/token", map[string]string{
		"clientId":     "landing-page",
		"clientSecret": "s3cr3t-client",
	}, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	data := body["data"].(map[string]any)
	return data["token"].(string)
}
