// Command encrypt-credentials prepares client credentials for the token
// endpoint.
//
// It encrypts a client id and secret with ENCRYPTION_KEY in the OpenSSL
// "Salted__" format the API decrypts, and prints the JSON body a client can
// send to /api/auth/token. With -bcrypt it also prints the allow-list entry
// for VALID_CLIENT_CREDENTIALS with the secret stored as a bcrypt hash.
//
// Usage:
//
//	encrypt-credentials -id landing-page -secret s3cr3t [-key passphrase] [-bcrypt]
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"golang.org/x/crypto/bcrypt"

	"github.com/clinicacaracas/citas-api/internal/config"
	"github.com/clinicacaracas/citas-api/internal/platform/aescrypt"
)

func main() {
	if err := config.LoadEnvFiles(config.DefaultEnvFiles...); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := run(os.Args[1:], os.Stdout, os.Getenv); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

type encryptedBody struct {
	EncryptedClientID     string `json:"encryptedClientId"`
	EncryptedClientSecret string `json:"encryptedClientSecret"`
}

func run(args []string, out io.Writer, getenv func(string) string) error {
	fs := flag.NewFlagSet("encrypt-credentials", flag.ContinueOnError)
	fs.SetOutput(out)
	clientID := fs.String("id", "", "client id")
	clientSecret := fs.String("secret", "", "client secret")
	key := fs.String("key", getenv("ENCRYPTION_KEY"), "encryption passphrase (defaults to ENCRYPTION_KEY)")
	withHash := fs.Bool("bcrypt", false, "also print a VALID_CLIENT_CREDENTIALS entry with a bcrypt-hashed secret")
	cost := fs.Int("cost", bcrypt.DefaultCost, "bcrypt cost")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if *clientID == "" || *clientSecret == "" {
		return errors.New("-id and -secret are required")
	}

	cipher := aescrypt.New(*key)
	if !cipher.Configured() {
		return errors.New("no encryption key: set ENCRYPTION_KEY or pass -key")
	}

	encID, err := cipher.Encrypt(*clientID)
	if err != nil {
		return fmt.Errorf("encrypt client id: %w", err)
	}
	encSecret, err := cipher.Encrypt(*clientSecret)
	if err != nil {
		return fmt.Errorf("encrypt client secret: %w", err)
	}

	body, err := json.MarshalIndent(encryptedBody{
		EncryptedClientID:     encID,
		EncryptedClientSecret: encSecret,
	}, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Token request body:\n%s\n", body)

	if !*withHash {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*clientSecret), *cost)
	if err != nil {
		return fmt.Errorf("hash client secret: %w", err)
	}
	entry, err := json.Marshal([]config.ClientCredential{{ClientID: *clientID, ClientSecret: string(hash)}})
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "\nVALID_CLIENT_CREDENTIALS entry:\n%s\n", entry)
	return nil
}
