package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/clinicacaracas/citas-api/internal/api/shared"
	"github.com/clinicacaracas/citas-api/internal/platform/aescrypt"
)

const (
	fieldEncryptedClientID     = "encryptedClientId"
	fieldEncryptedClientSecret = "encryptedClientSecret"
)

// CredentialDecrypter turns encrypted client credentials into plaintext.
type CredentialDecrypter interface {
	Configured() bool
	DecryptCredentials(encryptedClientID, encryptedClientSecret string) (aescrypt.Credentials, error)
}

// DecryptCredentials rewrites JSON bodies that carry both encryptedClientId
// and encryptedClientSecret so downstream handlers see plain clientId and
// clientSecret instead. Other bodies pass through untouched. showDetails adds
// the failure reason to error responses.
func DecryptCredentials(decrypter CredentialDecrypter, showDetails bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body == nil || r.Body == http.NoBody {
				next.ServeHTTP(w, r)
				return
			}

			raw, err := io.ReadAll(r.Body)
			_ = r.Body.Close()
			if err != nil {
				var maxErr *http.MaxBytesError
				if errors.As(err, &maxErr) {
					shared.RespondWithError(w, r, http.StatusRequestEntityTooLarge, MsgPayloadTooLarge)
					return
				}
				shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, MsgInvalidJSON, err)
				return
			}

			var body map[string]any
			if json.Unmarshal(raw, &body) != nil {
				// Not an object; the handler reports malformed input.
				restoreBody(r, raw)
				next.ServeHTTP(w, r)
				return
			}

			encID, idOK := body[fieldEncryptedClientID].(string)
			encSecret, secretOK := body[fieldEncryptedClientSecret].(string)
			if !idOK || !secretOK || encID == "" || encSecret == "" {
				restoreBody(r, raw)
				next.ServeHTTP(w, r)
				return
			}

			if decrypter == nil || !decrypter.Configured() {
				shared.RespondWithError(w, r, http.StatusBadRequest, MsgEncryptionUnavailable)
				return
			}

			creds, err := decrypter.DecryptCredentials(encID, encSecret)
			if err != nil {
				var opts []shared.ResponseOption
				if showDetails {
					opts = append(opts, shared.WithDetails(err.Error()))
				}
				shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, MsgEncryptedCredentials, err,
					append(opts, shared.WithElevatedLogLevel())...)
				return
			}

			delete(body, fieldEncryptedClientID)
			delete(body, fieldEncryptedClientSecret)
			body["clientId"] = creds.ClientID
			body["clientSecret"] = creds.ClientSecret

			rewritten, err := json.Marshal(body)
			if err != nil {
				shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, MsgInternalError, err)
				return
			}
			restoreBody(r, rewritten)

			next.ServeHTTP(w, r)
		})
	}
}

func restoreBody(r *http.Request, b []byte) {
	r.Body = io.NopCloser(bytes.NewReader(b))
	r.ContentLength = int64(len(b))
	r.Header.Set("Content-Length", strconv.Itoa(len(b)))
}
