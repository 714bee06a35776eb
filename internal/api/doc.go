// Package api contains the HTTP handlers of the booking service: appointment
// creation, token issuance, health and info, plus the JSON 404 and 405
// responses. Handlers turn request bodies into workflow input and map
// domain, store and auth errors to status codes and Spanish client messages.
package api
