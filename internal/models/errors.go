package models

import "errors"

// Domain errors shared by stores, services and handlers.
var (
	// ErrNotFound indicates the referenced algorithm or session does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates an algorithm with the same ID is already stored.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates a request payload is missing required fields.
	ErrInvalidInput = errors.New("invalid input")

	// ErrIDMismatch indicates an update body carries an ID different from the path ID.
	ErrIDMismatch = errors.New("id mismatch")

	// ErrInvalidCredentials indicates a login attempt with a wrong username or password.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUnauthorized indicates a missing, unknown or expired session token.
	ErrUnauthorized = errors.New("unauthorized")
)
