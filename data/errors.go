package data

import (
	"errors"
	"sort"
	"strings"
)

// ErrFailedValidation is the sentinel error wrapped by every ValidationError,
// so callers can detect precondition failures with errors.Is.
var ErrFailedValidation = errors.New("failed validation")

// ValidationError reports one or more violated preconditions, keyed by the
// field or operation that failed.
type ValidationError struct {
	Fields map[string]string
}

// Error loops through the field error map and returns a single message
// listing each field with its failure, in stable field order.
func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+" "+e.Fields[k])
	}
	return strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrFailedValidation
}

// FailedValidation wraps a validator error map in a ValidationError.
func FailedValidation(errs map[string]string) error {
	return &ValidationError{Fields: errs}
}

// failedValidationf is a shorthand for a single-field ValidationError.
func failedValidationf(field, message string) error {
	return &ValidationError{Fields: map[string]string{field: message}}
}
