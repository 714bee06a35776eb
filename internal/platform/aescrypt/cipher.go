package aescrypt

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/md5" //nolint:gosec // EVP_BytesToKey compatibility requires MD5
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

const (
	saltHeader = "Salted__"
	saltSize   = 8
	keySize    = 32
)

// Credentials is a decrypted client id and secret pair.
type Credentials struct {
	ClientID     string
	ClientSecret string
}

// Cipher encrypts and decrypts with a fixed passphrase.
type Cipher struct {
	passphrase []byte
	rand       io.Reader
}

// New returns a Cipher using passphrase. An empty passphrase yields a Cipher
// whose operations fail with ErrKeyNotConfigured.
func New(passphrase string) *Cipher {
	return &Cipher{passphrase: []byte(passphrase), rand: rand.Reader}
}

// Configured reports whether a passphrase is set.
func (c *Cipher) Configured() bool {
	return c != nil && len(c.passphrase) > 0
}

// Decrypt returns the plaintext of a base64 "Salted__" ciphertext.
func (c *Cipher) Decrypt(ciphertext string) (string, error) {
	if !c.Configured() {
		return "", ErrKeyNotConfigured
	}

	ciphertext = strings.TrimSpace(ciphertext)
	if ciphertext == "" {
		return "", ErrEmptyCiphertext
	}

	raw, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedCiphertext, err)
	}
	if len(raw) < len(saltHeader)+saltSize || string(raw[:len(saltHeader)]) != saltHeader {
		return "", fmt.Errorf("%w: missing salt header", ErrMalformedCiphertext)
	}

	salt := raw[len(saltHeader) : len(saltHeader)+saltSize]
	body := raw[len(saltHeader)+saltSize:]
	if len(body) == 0 || len(body)%aes.BlockSize != 0 {
		return "", fmt.Errorf("%w: invalid block size", ErrMalformedCiphertext)
	}

	key, iv := deriveKeyIV(c.passphrase, salt)
	block, err := aes.NewCipher(key)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedCiphertext, err)
	}

	plain := make([]byte, len(body))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plain, body)

	plain, err = unpad(plain)
	if err != nil {
		return "", err
	}
	if len(plain) == 0 {
		return "", ErrEmptyResult
	}
	if !utf8.Valid(plain) {
		return "", fmt.Errorf("%w: plaintext is not valid UTF-8", ErrMalformedCiphertext)
	}
	return string(plain), nil
}

// Encrypt returns plaintext encrypted under a fresh random salt.
func (c *Cipher) Encrypt(plaintext string) (string, error) {
	if !c.Configured() {
		return "", ErrKeyNotConfigured
	}

	salt := make([]byte, saltSize)
	if _, err := io.ReadFull(c.rand, salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	key, iv := deriveKeyIV(c.passphrase, salt)
	block, err := aes.NewCipher(key)
	if err != nil {
		return "", fmt.Errorf("failed to create cipher: %w", err)
	}

	body := pad([]byte(plaintext))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(body, body)

	out := make([]byte, 0, len(saltHeader)+saltSize+len(body))
	out = append(out, saltHeader...)
	out = append(out, salt...)
	out = append(out, body...)
	return base64.StdEncoding.EncodeToString(out), nil
}

// DecryptCredentials decrypts both halves of a client credential pair.
// It fails if either half fails; no partial result is returned.
func (c *Cipher) DecryptCredentials(encryptedClientID, encryptedClientSecret string) (Credentials, error) {
	id, err := c.Decrypt(encryptedClientID)
	if err != nil {
		return Credentials{}, &DecryptionError{Field: "clientId", Err: err}
	}
	secret, err := c.Decrypt(encryptedClientSecret)
	if err != nil {
		return Credentials{}, &DecryptionError{Field: "clientSecret", Err: err}
	}
	return Credentials{ClientID: id, ClientSecret: secret}, nil
}

// deriveKeyIV implements OpenSSL's EVP_BytesToKey with MD5 and one round.
func deriveKeyIV(passphrase, salt []byte) (key, iv []byte) {
	need := keySize + aes.BlockSize
	derived := make([]byte, 0, need+md5.Size)

	var prev []byte
	for len(derived) < need {
		h := md5.New() //nolint:gosec
		h.Write(prev)
		h.Write(passphrase)
		h.Write(salt)
		prev = h.Sum(nil)
		derived = append(derived, prev...)
	}
	return derived[:keySize], derived[keySize:need]
}

func pad(b []byte) []byte {
	n := aes.BlockSize - len(b)%aes.BlockSize
	return append(b, bytes.Repeat([]byte{byte(n)}, n)...)
}

func unpad(b []byte) ([]byte, error) {
	if len(b) == 0 {
		return nil, fmt.Errorf("%w: empty block", ErrMalformedCiphertext)
	}
	n := int(b[len(b)-1])
	if n == 0 || n > aes.BlockSize || n > len(b) {
		return nil, fmt.Errorf("%w: bad padding", ErrMalformedCiphertext)
	}
	for _, v := range b[len(b)-n:] {
		if int(v) != n {
			return nil, fmt.Errorf("%w: bad padding", ErrMalformedCiphertext)
		}
	}
	return b[:len(b)-n], nil
}
