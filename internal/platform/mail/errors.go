package mail

import "errors"

var (
	// ErrDelivery wraps every transport failure.
	ErrDelivery = errors.New("email delivery failed")

	// ErrRender indicates a template or message could not be built.
	ErrRender = errors.New("email rendering failed")
)
