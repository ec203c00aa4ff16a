// Package apperr defines the sentinel errors services return so the
// HTTP layer can map them to status codes in one place.
package apperr

import "errors"

var (
	ErrUnauthenticated   = errors.New("unauthenticated")
	ErrForbidden         = errors.New("forbidden")
	ErrNotFound          = errors.New("not found")
	ErrInvalidInput      = errors.New("invalid input")
	ErrInvalidState      = errors.New("invalid state")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrDuplicateEmail    = errors.New("email already registered")
)
