// Package mail delivers appointment notifications over SMTP.
//
// Notifier renders the clinic-facing and patient-facing HTML emails from
// embedded templates and hands them to a Transport. The SMTP transport is
// built on github.com/wneessen/go-mail. Transport failures are returned to
// the caller wrapped in ErrDelivery; this package never suppresses them.
package mail
