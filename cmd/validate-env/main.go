// Command validate-env reports whether the environment holds a complete
// configuration for the given deployment environment.
//
// Usage:
//
//	validate-env [development|production]
//
// It reads config.env and .env when present, masks secrets in its report and
// exits with status 1 when any check fails.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/clinicacaracas/citas-api/internal/config"
)

func main() {
	if err := config.LoadEnvFiles(config.DefaultEnvFiles...); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	environment := os.Getenv("NODE_ENV")
	if len(os.Args) > 1 {
		environment = os.Args[1]
	}
	environment = strings.ToLower(strings.TrimSpace(environment))
	if environment == "" {
		environment = config.EnvDevelopment
	}

	if !validate(os.Stdout, environment, os.Getenv) {
		os.Exit(1)
	}
}
