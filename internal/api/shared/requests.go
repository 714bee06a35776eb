package shared

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// Global validator instance for reuse
var validate = validator.New()

// ErrEmptyBody is returned when the request has no JSON body.
var ErrEmptyBody = errors.New("request body is empty")

// DecodeJSON decodes the request body into the given struct.
func DecodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return ErrEmptyBody
	}
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrEmptyBody
		}
		return err
	}
	return nil
}

// DecodeJSONObject decodes the request body into a loosely-typed map.
// The body must be a JSON object.
func DecodeJSONObject(r *http.Request) (map[string]any, error) {
	var raw map[string]any
	if err := DecodeJSON(r, &raw); err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, fmt.Errorf("request body must be a JSON object")
	}
	return raw, nil
}

// ValidateRequest validates the given struct using the validator package.
func ValidateRequest(v interface{}) error {
	// Check if the object implements the Validate interface
	if validator, ok := v.(interface{ Validate() error }); ok {
		return validator.Validate()
	}

	// Otherwise, use the struct validator
	return validate.Struct(v)
}
