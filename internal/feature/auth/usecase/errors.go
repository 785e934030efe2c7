// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be found by email or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when attempting to create a user with an email that already exists.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrInvalidCredentials is returned for any failed login attempt.
	// It deliberately does not distinguish an unknown email from a wrong
	// password, so responses never reveal whether an account exists.
	ErrInvalidCredentials = errors.New("invalid email or password")
)
