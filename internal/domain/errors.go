package domain

import (
	"errors"
	"strings"
)

// Domain errors (no external dependencies).
var (
	ErrNotFound             = errors.New("resource not found")
	ErrUserNotFound         = errors.New("user not found")
	ErrEmailAlreadyExists   = errors.New("email is already registered")
	ErrInvalidInput         = errors.New("invalid input")
	ErrDuplicate            = errors.New("duplicate resource")
	ErrDuplicateInvoiceNo   = errors.New("invoice number is already in use")
	ErrDuplicateCompanyName = errors.New("company name is already in use")
	ErrUnauthorized         = errors.New("unauthorized")
	ErrForbidden            = errors.New("access denied")
	ErrConflict             = errors.New("conflict with current state")
	ErrEmptyOrder           = errors.New("order has no line items")
)

// FieldError names one invalid field and why it was rejected.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidationError carries per-field validation failures. It unwraps to
// ErrInvalidInput so errors.Is checks keep working.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return ErrInvalidInput.Error()
	}
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Field + ": " + f.Reason
	}
	return "invalid input: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

// Invalid builds a single-field validation error.
func Invalid(field, reason string) error {
	return &ValidationError{Fields: []FieldError{{Field: field, Reason: reason}}}
}
