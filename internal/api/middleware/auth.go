package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/clinicacaracas/citas-api/internal/api/shared"
	"github.com/clinicacaracas/citas-api/internal/platform/logger"
	"github.com/clinicacaracas/citas-api/internal/service/auth"
)

// AuthMiddleware provides JWT authentication for routes.
type AuthMiddleware struct {
	jwtService auth.JWTService
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(jwtService auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
	}
}

// Authenticate validates the bearer token from the Authorization header and
// adds the client id to the request context for authorized requests.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r.Header.Get("Authorization"))
		if token == "" {
			shared.RespondWithError(w, r, http.StatusUnauthorized, MsgTokenRequired)
			return
		}

		claims, err := m.jwtService.ValidateToken(r.Context(), token)
		if err != nil {
			switch {
			case errors.Is(err, auth.ErrExpiredToken):
				shared.RespondWithError(w, r, http.StatusUnauthorized, MsgTokenExpired)
			case errors.Is(err, auth.ErrInvalidToken), errors.Is(err, auth.ErrMissingToken):
				shared.RespondWithError(w, r, http.StatusUnauthorized, MsgTokenInvalid)
			case errors.Is(err, auth.ErrSecretNotConfigured):
				shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, MsgConfigurationError, err)
			default:
				shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, MsgInternalError, err)
			}
			return
		}

		ctx := shared.WithClientID(r.Context(), claims.ClientID)
		ctx = logger.WithLogger(ctx, logger.FromContext(ctx).With("client_id", claims.ClientID))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// bearerToken returns the credential after the auth scheme, e.g. the token
// in "Bearer <token>".
func bearerToken(header string) string {
	_, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found {
		return ""
	}
	return strings.TrimSpace(token)
}
