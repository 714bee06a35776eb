package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/clinicacaracas/citas-api/internal/api/shared"
	"github.com/clinicacaracas/citas-api/internal/platform/logger"
	"github.com/clinicacaracas/citas-api/internal/service/auth"
)

// tokenType is the scheme clients must use with the issued token.
const tokenType = "Bearer"

// AuthHandler issues access tokens to client applications.
type AuthHandler struct {
	verifier    auth.CredentialVerifier
	jwtService  auth.JWTService
	expiresIn   string
	environment string
}

// NewAuthHandler creates a new AuthHandler. expiresIn is echoed to clients
// as configured, e.g. "24h".
func NewAuthHandler(
	verifier auth.CredentialVerifier,
	jwtService auth.JWTService,
	expiresIn string,
	environment string,
) *AuthHandler {
	return &AuthHandler{
		verifier:    verifier,
		jwtService:  jwtService,
		expiresIn:   expiresIn,
		environment: environment,
	}
}

// IssueToken handles POST /api/auth/token. Encrypted credentials are
// decrypted by middleware before this handler runs.
func (h *AuthHandler) IssueToken(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), slog.Default())

	var req TokenRequest
	if err := shared.DecodeJSON(r, &req); err != nil && !errors.Is(err, shared.ErrEmptyBody) {
		respondDecodeError(w, r, err)
		return
	}

	if err := shared.ValidateRequest(&req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, MsgCredentialsRequired)
		return
	}

	if err := h.verifier.Verify(r.Context(), req.ClientID, req.ClientSecret); err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidCredentials):
			log.Warn("rejected client credentials", slog.String("client_id", req.ClientID))
			shared.RespondWithError(w, r, http.StatusUnauthorized, MsgInvalidCredentials)
		case errors.Is(err, auth.ErrMissingCredentials):
			shared.RespondWithError(w, r, http.StatusBadRequest, MsgCredentialsRequired)
		default:
			shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, MsgConfigurationError, err)
		}
		return
	}

	token, err := h.jwtService.GenerateToken(r.Context(), auth.Claims{
		ClientID: req.ClientID,
		Role:     auth.RoleClient,
	})
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, MsgTokenFailed, err)
		return
	}

	log.Info("access token issued", slog.String("client_id", req.ClientID))

	shared.RespondWithJSON(w, r, http.StatusOK, TokenResponse{
		Success: true,
		Message: MsgTokenGenerated,
		Data: TokenData{
			Token:       token,
			ExpiresIn:   h.expiresIn,
			Type:        tokenType,
			Environment: h.environment,
		},
	})
}
