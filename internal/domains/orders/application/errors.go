package application

import "errors"

var (
	// ErrInvalidQuery signals a query missing its restaurant context.
	ErrInvalidQuery = errors.New("invalid order query")
	// ErrOrderNotFound signals the order number was absent from the
	// fetched range.
	ErrOrderNotFound = errors.New("order not found")
)
