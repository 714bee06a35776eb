package middleware

import (
	"net/http"
	"strings"

	"github.com/clinicacaracas/citas-api/internal/api/shared"
	"github.com/go-chi/cors"
)

// CORS returns middleware that answers preflight requests for the allowed
// origins and rejects requests from any other browser origin with 403.
// Requests without an Origin header (curl, server-to-server) pass.
func CORS(allowedOrigins []string) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{}, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowed[strings.TrimRight(o, "/")] = struct{}{}
	}

	handler := cors.Handler(cors.Options{
		AllowOriginFunc: func(_ *http.Request, origin string) bool {
			_, ok := allowed[origin]
			return ok
		},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "X-Requested-With", "X-API-Key"},
		ExposedHeaders:   []string{"X-Total-Count", "X-Rate-Limit-Remaining"},
		AllowCredentials: true,
		MaxAge:           300,
	})

	return func(next http.Handler) http.Handler {
		withCORS := handler(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if origin := r.Header.Get("Origin"); origin != "" {
				if _, ok := allowed[origin]; !ok {
					shared.RespondWithError(w, r, http.StatusForbidden, MsgOriginNotAllowed)
					return
				}
			}
			withCORS.ServeHTTP(w, r)
		})
	}
}
