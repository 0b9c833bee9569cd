// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrInvalidInput is returned when client-side data is malformed (e.g. an empty password).
	// It is detected before any remote call is made.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUserNotFound is returned when no credential document exists for an email.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidCredentials is returned when the password does not match the stored digest.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrUserAlreadyExists is returned when registering an email that already has an account.
	ErrUserAlreadyExists = errors.New("user with this email already exists")

	// ErrTooManyAttempts is returned when login attempts for an email exceed the configured window limit.
	ErrTooManyAttempts = errors.New("too many login attempts")
)
