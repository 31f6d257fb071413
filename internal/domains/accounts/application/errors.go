package application

import "errors"

var (
	// ErrInvalidInput indicates missing or malformed use-case input.
	ErrInvalidInput = errors.New("invalid account input")
	// ErrSessionNotFound indicates an unknown or expired session token.
	ErrSessionNotFound = errors.New("session not found or expired")
)
