// Package aescrypt decrypts and encrypts short secrets in the passphrase
// format produced by OpenSSL's enc command and by CryptoJS.AES.encrypt:
// base64("Salted__" || salt || AES-256-CBC ciphertext), with the key and IV
// derived from the passphrase and salt using EVP_BytesToKey over MD5.
//
// Browser clients use it to submit client credentials to the token endpoint
// without sending them in plain text.
package aescrypt
