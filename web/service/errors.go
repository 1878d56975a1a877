package service

import (
	"errors"
	"fmt"
)

// Sentinel errors shared across the auth flows. Controllers translate
// these into HTTP statuses; anything else is an internal error whose
// details stay in the log.
var (
	// ErrInvalidCredentials covers both unknown email and wrong
	// password so the two are indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidResetToken covers unknown, mismatched and expired
	// reset tokens alike.
	ErrInvalidResetToken = errors.New("invalid or expired reset token")

	// ErrSecretMissing means the signing secret is not configured.
	// Token issuance fails closed instead of using a fallback secret.
	ErrSecretMissing = errors.New("jwt secret is not configured")

	// ErrMailDelivery means the mail collaborator failed to send.
	ErrMailDelivery = errors.New("failed to send reset email")

	// ErrTicketNotFound is returned for missing tickets and for
	// tickets outside the caller's scope. Deliberately not a
	// distinct "forbidden".
	ErrTicketNotFound = errors.New("ticket not found")
)

// ValidationError is a user-correctable input problem.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func newValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// ConflictError means a unique field is already taken.
type ConflictError struct {
	Field string
}

func (e *ConflictError) Error() string {
	switch e.Field {
	case "username":
		return "Username already taken"
	case "email":
		return "User with this email already exists"
	}
	return fmt.Sprintf("%s already exists", e.Field)
}
