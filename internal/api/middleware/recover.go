package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/clinicacaracas/citas-api/internal/api/shared"
	"github.com/clinicacaracas/citas-api/internal/platform/logger"
	"github.com/clinicacaracas/citas-api/internal/redact"
)

// Recoverer turns handler panics into a JSON 500 response. It re-panics on
// http.ErrAbortHandler so the server can abort the connection.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler { //nolint:errorlint // sentinel compared by identity
				panic(rec)
			}

			logger.FromContext(r.Context()).Error("panic recovered",
				slog.String("panic", redact.String(fmt.Sprint(rec))),
				slog.String("stack", redact.String(string(debug.Stack()))),
				slog.String("path", r.URL.Path),
				slog.String("method", r.Method))

			shared.RespondWithError(w, r, http.StatusInternalServerError, MsgInternalError)
		}()

		next.ServeHTTP(w, r)
	})
}
