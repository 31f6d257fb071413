package application

import "errors"

// ErrInvalidQuery indicates missing or malformed query input.
var ErrInvalidQuery = errors.New("invalid reservation query")
