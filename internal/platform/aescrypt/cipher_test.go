package aescrypt

import (
	"bytes"
	"encoding/base64"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKey = "clave-secreta"

// Produced with: openssl enc -aes-256-cbc -md md5 -pass pass:clave-secreta -S <salt>
const (
	vectorClientID     = "U2FsdGVkX18BAgMEBQYHCCqbyTdNyGATEAISf0Di5OA="
	vectorClientSecret = "U2FsdGVkX18IBwYFBAMCAWlI0ntyI2yIvrKLsMN0sEk="
)

func TestDecrypt_OpenSSLVectors(t *testing.T) {
	c := New(testKey)

	id, err := c.Decrypt(vectorClientID)
	require.NoError(t, err)
	assert.Equal(t, "landing-page", id)

	secret, err := c.Decrypt("  " + vectorClientSecret + "\n")
	require.NoError(t, err)
	assert.Equal(t, "s3cr3t-client", secret)
}

func TestEncryptDecrypt_RoundTrip(t *testing.T) {
	c := New(testKey)

	inputs := []string{
		"a",
		"landing-page",
		"exactly-16-bytes",
		"clínica caracas ñandú",
		strings.Repeat("x", 257),
	}

	for _, in := range inputs {
		t.Run(in[:min(len(in), 16)], func(t *testing.T) {
			enc, err := c.Encrypt(in)
			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(enc, "U2FsdGVkX1"), "ciphertext carries the Salted__ header")

			out, err := c.Decrypt(enc)
			require.NoError(t, err)
			assert.Equal(t, in, out)
		})
	}
}

func TestEncrypt_UsesFreshSalt(t *testing.T) {
	c := New(testKey)

	a, err := c.Encrypt("landing-page")
	require.NoError(t, err)
	b, err := c.Encrypt("landing-page")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestEncrypt_MatchesOpenSSLForFixedSalt(t *testing.T) {
	c := New(testKey)
	c.rand = bytes.NewReader([]byte{1, 2, 3, 4, 5, 6, 7, 8})

	enc, err := c.Encrypt("landing-page")
	require.NoError(t, err)
	assert.Equal(t, vectorClientID, enc)
}

func TestDecrypt_Errors(t *testing.T) {
	emptyPayload, err := New(testKey).Encrypt("")
	require.NoError(t, err)

	noHeader := base64.StdEncoding.EncodeToString(bytes.Repeat([]byte{0x41}, 32))
	shortBody := base64.StdEncoding.EncodeToString(append([]byte("Salted__12345678"), 1, 2, 3))

	tests := []struct {
		name    string
		key     string
		input   string
		wantErr error
	}{
		{name: "key not configured", key: "", input: vectorClientID, wantErr: ErrKeyNotConfigured},
		{name: "empty input", key: testKey, input: "", wantErr: ErrEmptyCiphertext},
		{name: "blank input", key: testKey, input: "   ", wantErr: ErrEmptyCiphertext},
		{name: "not base64", key: testKey, input: "%%%not-base64%%%", wantErr: ErrMalformedCiphertext},
		{name: "missing salt header", key: testKey, input: noHeader, wantErr: ErrMalformedCiphertext},
		{name: "body not block aligned", key: testKey, input: shortBody, wantErr: ErrMalformedCiphertext},
		{name: "wrong key", key: "otra-clave", input: vectorClientID, wantErr: ErrMalformedCiphertext},
		{name: "empty plaintext", key: testKey, input: emptyPayload, wantErr: ErrEmptyResult},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := New(tt.key).Decrypt(tt.input)
			assert.Empty(t, out)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, ErrDecryption)
		})
	}
}

func TestDecryptCredentials(t *testing.T) {
	c := New(testKey)

	creds, err := c.DecryptCredentials(vectorClientID, vectorClientSecret)
	require.NoError(t, err)
	assert.Equal(t, Credentials{ClientID: "landing-page", ClientSecret: "s3cr3t-client"}, creds)
}

func TestDecryptCredentials_FailsAtomically(t *testing.T) {
	c := New(testKey)

	tests := []struct {
		name      string
		id        string
		secret    string
		wantField string
	}{
		{name: "bad id", id: "garbage", secret: vectorClientSecret, wantField: "clientId"},
		{name: "bad secret", id: vectorClientID, secret: "", wantField: "clientSecret"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			creds, err := c.DecryptCredentials(tt.id, tt.secret)
			require.Error(t, err)
			assert.Equal(t, Credentials{}, creds)

			var decErr *DecryptionError
			require.True(t, errors.As(err, &decErr))
			assert.Equal(t, tt.wantField, decErr.Field)
			assert.ErrorIs(t, err, ErrDecryption)
		})
	}
}

func TestConfigured(t *testing.T) {
	var nilCipher *Cipher
	assert.False(t, nilCipher.Configured())
	assert.False(t, New("").Configured())
	assert.True(t, New(testKey).Configured())
}
