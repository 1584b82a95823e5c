// Package domain contains the validated value types of the order-taking
// domain. Every type can only be obtained through its constructor, so a value
// that exists is a valid one.
package domain

import "fmt"

// FieldError reports a value that could not be constructed.
type FieldError struct {
	Field       string
	Description string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Description)
}

func fieldError(field, format string, args ...any) *FieldError {
	return &FieldError{Field: field, Description: fmt.Sprintf(format, args...)}
}
