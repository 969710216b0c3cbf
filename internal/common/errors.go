// Package common defines shared constants and sentinel errors used across
// the persistence layer and the dashboard features built on top of it.
// Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// ErrStoreFull is returned when the record store refuses a write because
	// the serialized record exceeds the configured quota or the underlying
	// database is out of space. The mutation is lost unless the caller retries.
	ErrStoreFull = errors.New("record store full")

	// Auth errors.
	ErrNotAuthenticated   = errors.New("not authenticated")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid session token")

	// Validation errors.
	ErrValidation   = errors.New("validation error")
	ErrFileTooLarge = errors.New("file exceeds the upload limit")
)
