package api

import "errors"

var (
	// ErrInvalidCredentials covers both an unknown email and a too-short
	// password; login does not reveal which.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrEmailExists is returned when registering an email that is already
	// taken.
	ErrEmailExists = errors.New("email already exists")

	// ErrInvalidTransition is returned when a swap status change is not in
	// the transition table.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrValidation is returned when an input fails minimal schema checks.
	ErrValidation = errors.New("validation error")
)
