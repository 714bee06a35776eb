package middleware

import (
	"crypto/subtle"
	"mime"
	"net/http"
	"strings"

	"github.com/clinicacaracas/citas-api/internal/api/shared"
)

// MaxBodyBytes caps request bodies accepted by ValidateInput.
const MaxBodyBytes = 1 << 20

// SecurityHeaders sets the response headers browsers use to restrict framing,
// MIME sniffing, referrers and device APIs.
func SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Frame-Options", "DENY")
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		h.Set("Permissions-Policy", "geolocation=(), microphone=(), camera=()")
		h.Set("X-XSS-Protection", "1; mode=block")
		next.ServeHTTP(w, r)
	})
}

// APIKey returns middleware that requires X-API-Key to match one of keys.
// With no keys configured every request passes.
func APIKey(keys []string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if len(keys) == 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !matchesAny(r.Header.Get("X-API-Key"), keys) {
				shared.RespondWithError(w, r, http.StatusUnauthorized, MsgAPIKeyInvalid)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func matchesAny(candidate string, keys []string) bool {
	if candidate == "" {
		return false
	}
	found := 0
	for _, k := range keys {
		found |= subtle.ConstantTimeCompare([]byte(candidate), []byte(k))
	}
	return found == 1
}

// ValidateInput rejects POST bodies that are not JSON and applies LimitBody.
func ValidateInput(next http.Handler) http.Handler {
	limited := LimitBody(next)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost && !isJSON(r.Header.Get("Content-Type")) {
			shared.RespondWithError(w, r, http.StatusBadRequest, MsgContentTypeJSON)
			return
		}
		limited.ServeHTTP(w, r)
	})
}

// LimitBody rejects bodies declared larger than MaxBodyBytes with 413 and
// caps reads of undeclared bodies at the same size.
func LimitBody(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.ContentLength > MaxBodyBytes {
			shared.RespondWithError(w, r, http.StatusRequestEntityTooLarge, MsgPayloadTooLarge)
			return
		}
		if r.Body != nil {
			r.Body = http.MaxBytesReader(w, r.Body, MaxBodyBytes)
		}
		next.ServeHTTP(w, r)
	})
}

func isJSON(contentType string) bool {
	if contentType == "" {
		return false
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return strings.EqualFold(mediaType, "application/json")
}
