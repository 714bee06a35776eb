package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/clinicacaracas/citas-api/internal/api/shared"
	"github.com/clinicacaracas/citas-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraceMiddleware(t *testing.T) {
	t.Parallel()

	log, buf := logger.GetTestLogger(t)

	var traceID string
	h := TraceMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID = shared.GetTraceID(r.Context())
		logger.FromContext(r.Context()).Info("inside handler")
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	h.ServeHTTP(httptest.NewRecorder(), req.WithContext(logger.WithLogger(req.Context(), log)))

	require.Len(t, traceID, 32)

	entries, err := buf.GetLogEntries()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	for _, e := range entries {
		assert.Equal(t, traceID, e["trace_id"])
	}
	assert.Equal(t, "request started", entries[0]["msg"])
}
