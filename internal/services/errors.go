// Package services contains the business logic between the HTTP handlers
// and the repositories. Repository interfaces are declared next to the
// service that consumes them.
package services

import "errors"

// ErrValidation is returned when request input is missing or malformed.
// Handlers translate it into an HTTP 400 response. The wrapping message
// carries the specific reason.
var ErrValidation = errors.New("validation failed")

// ErrInvalidCredentials is returned when a login password does not verify
// against the stored hash. Handlers translate it into an HTTP 401 response.
var ErrInvalidCredentials = errors.New("invalid email or password")
