package aescrypt

import (
	"errors"
	"fmt"
)

// ErrDecryption is the parent of every failure returned by Decrypt and
// DecryptCredentials.
var ErrDecryption = errors.New("decryption failed")

var (
	// ErrKeyNotConfigured is returned when the Cipher has no passphrase.
	ErrKeyNotConfigured = fmt.Errorf("%w: encryption key not configured", ErrDecryption)

	// ErrEmptyCiphertext is returned for empty or blank input.
	ErrEmptyCiphertext = fmt.Errorf("%w: empty ciphertext", ErrDecryption)

	// ErrEmptyResult is returned when decryption yields no plaintext, which
	// usually means the wrong key was used.
	ErrEmptyResult = fmt.Errorf("%w: empty result", ErrDecryption)

	// ErrMalformedCiphertext covers bad base64, a missing salt header,
	// bad block alignment and bad padding.
	ErrMalformedCiphertext = fmt.Errorf("%w: malformed ciphertext", ErrDecryption)
)

// DecryptionError records which field failed to decrypt.
type DecryptionError struct {
	Field string
	Err   error
}

// Error implements the error interface.
func (e *DecryptionError) Error() string {
	if e.Field == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

// Unwrap returns the underlying error.
func (e *DecryptionError) Unwrap() error {
	return e.Err
}
