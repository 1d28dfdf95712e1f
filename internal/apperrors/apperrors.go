package apperrors

import (
	"errors"
	"fmt"
)

// Outcome taxonomy shared by the access gate, services and handlers.
// Handlers map these to 404/403/401/409; everything else is a 500.
var (
	ErrNotFound     = errors.New("not found")
	ErrForbidden    = errors.New("forbidden")
	ErrUnauthorized = errors.New("unauthorized")
	ErrConflict     = errors.New("conflict")
)

// FieldError names the first invalid field of a request so callers can
// render it against the right input (form re-render or JSON payload).
type FieldError struct {
	Field   string
	Code    string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewFieldError(field, code, message string) *FieldError {
	return &FieldError{Field: field, Code: code, Message: message}
}
