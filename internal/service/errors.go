package service

import "errors"

// ErrNotFound covers both "record does not exist" and "record is not yours".
// The two are deliberately indistinguishable so a non-owner cannot probe for
// existence.
var ErrNotFound = errors.New("record not found or access denied")

// ErrEmailDomainNotAllowed rejects session requests from outside the
// allow-listed email domain.
var ErrEmailDomainNotAllowed = errors.New("email domain is not allowed")

// ValidationError carries a client-facing message for a missing or empty
// required field. It is always raised before any store access.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string) error {
	return &ValidationError{Message: message}
}
