package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/clinicacaracas/citas-api/internal/platform/logger"
	"github.com/go-chi/chi/v5/middleware"
)

// RequestLogger logs every completed request. Responses with status 400 or
// above are logged at WARN so that rejected and failed calls stand out; the
// rest are access-log entries at DEBUG.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		level := slog.LevelDebug
		uaLimit := 100
		if status >= http.StatusBadRequest {
			level = slog.LevelWarn
			uaLimit = 50
		}

		logger.FromContext(r.Context()).LogAttrs(r.Context(), level, "request completed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", status),
			slog.String("ip", clientIP(r)),
			slog.String("user_agent", truncate(r.UserAgent(), uaLimit)),
			slog.Int("bytes", ww.BytesWritten()),
			slog.Duration("duration", time.Since(start)),
		)
	})
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

// WithLogger stores l in each request context so later middleware and
// handlers can enrich it.
func WithLogger(l *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(logger.WithLogger(r.Context(), l)))
		})
	}
}
