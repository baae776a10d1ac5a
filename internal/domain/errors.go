package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("forbidden")
	ErrUnauthorized       = errors.New("authentication required")
	ErrDuplicateEmail     = errors.New("a user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrValidation is the base for field validation failures; wrap it so
	// callers can classify with errors.Is.
	ErrValidation = errors.New("validation failed")
)

// Validationf builds a field validation error wrapping ErrValidation.
func Validationf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrValidation}, args...)...)
}
