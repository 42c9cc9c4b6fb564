// Package apperrors defines the error taxonomy shared by all services.
// Sentinels are matched with errors.Is in the HTTP handlers and mapped to
// status codes there; usecases wrap them with context via fmt.Errorf("%w").
package apperrors

import "errors"

var (
	// ErrUnauthorized means the caller presented no or invalid credentials
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden means the caller's role or participation does not permit the operation
	ErrForbidden = errors.New("forbidden")

	// ErrNotFound means the entity does not exist or is not assigned to the caller
	ErrNotFound = errors.New("not found")

	// ErrValidation means required input is missing or malformed
	ErrValidation = errors.New("validation failed")

	// ErrConflict means the entity is no longer in the expected state,
	// e.g. the loser of a double-accept race
	ErrConflict = errors.New("conflict")
)
