package middleware

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/clinicacaracas/citas-api/internal/api/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) shared.ErrorResponse {
	t.Helper()
	var resp shared.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestSecurityHeaders(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	SecurityHeaders(okHandler).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "strict-origin-when-cross-origin", rec.Header().Get("Referrer-Policy"))
	assert.Equal(t, "geolocation=(), microphone=(), camera=()", rec.Header().Get("Permissions-Policy"))
	assert.Equal(t, "1; mode=block", rec.Header().Get("X-XSS-Protection"))
}

func TestAPIKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		keys   []string
		header string
		want   int
	}{
		{name: "no keys configured", keys: nil, header: "", want: http.StatusOK},
		{name: "matching key", keys: []string{"k1", "k2"}, header: "k2", want: http.StatusOK},
		{name: "missing key", keys: []string{"k1"}, header: "", want: http.StatusUnauthorized},
		{name: "wrong key", keys: []string{"k1"}, header: "k3", want: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("X-API-Key", tt.header)
			}
			rec := httptest.NewRecorder()
			APIKey(tt.keys)(okHandler).ServeHTTP(rec, req)

			assert.Equal(t, tt.want, rec.Code)
			if tt.want == http.StatusUnauthorized {
				assert.Equal(t, MsgAPIKeyInvalid, decodeError(t, rec).Message)
			}
		})
	}
}

func TestValidateInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		method        string
		contentType   string
		contentLength int64
		wantStatus    int
		wantMessage   string
	}{
		{name: "json post", method: http.MethodPost, contentType: "application/json", wantStatus: http.StatusOK},
		{
			name:        "json with charset",
			method:      http.MethodPost,
			contentType: "application/json; charset=utf-8",
			wantStatus:  http.StatusOK,
		},
		{
			name:        "form post",
			method:      http.MethodPost,
			contentType: "application/x-www-form-urlencoded",
			wantStatus:  http.StatusBadRequest,
			wantMessage: MsgContentTypeJSON,
		},
		{
			name:        "missing content type",
			method:      http.MethodPost,
			wantStatus:  http.StatusBadRequest,
			wantMessage: MsgContentTypeJSON,
		},
		{name: "get without content type", method: http.MethodGet, wantStatus: http.StatusOK},
		{
			name:          "declared length over limit",
			method:        http.MethodPost,
			contentType:   "application/json",
			contentLength: MaxBodyBytes + 1,
			wantStatus:    http.StatusRequestEntityTooLarge,
			wantMessage:   MsgPayloadTooLarge,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/api/citas", strings.NewReader("{}"))
			if tt.contentType != "" {
				req.Header.Set("Content-Type", tt.contentType)
			}
			if tt.contentLength > 0 {
				req.ContentLength = tt.contentLength
			}
			rec := httptest.NewRecorder()
			ValidateInput(okHandler).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, decodeError(t, rec).Message)
			}
		})
	}
}

func TestValidateInput_CapsUndeclaredBody(t *testing.T) {
	t.Parallel()

	body := strings.NewReader(`"` + strings.Repeat("a", MaxBodyBytes+10) + `"`)
	req := httptest.NewRequest(http.MethodPost, "/api/citas", body)
	req.Header.Set("Content-Type", "application/json")
	req.ContentLength = -1

	var readErr error
	h := ValidateInput(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, readErr = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	h.ServeHTTP(httptest.NewRecorder(), req)

	var maxErr *http.MaxBytesError
	assert.ErrorAs(t, readErr, &maxErr)
}
