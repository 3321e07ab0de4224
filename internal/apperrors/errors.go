// Package apperrors defines the error taxonomy the API maps to HTTP
// status codes. Services return these; controllers translate them.
package apperrors

import (
	"fmt"
	"strings"
)

// FieldError describes a single failed validation rule on one input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries one or more field errors. Maps to 400.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// NewValidation wraps field errors into a ValidationError.
func NewValidation(fields []FieldError) *ValidationError {
	return &ValidationError{Fields: fields}
}

// UnauthorizedError covers missing/invalid/expired credentials. Maps to 401.
type UnauthorizedError struct {
	Message string
}

func (e *UnauthorizedError) Error() string {
	return e.Message
}

// NewUnauthorized creates an UnauthorizedError with the given message.
func NewUnauthorized(message string) *UnauthorizedError {
	return &UnauthorizedError{Message: message}
}

// NotFoundError covers resources that are absent or not owned by the
// caller. The two cases are deliberately indistinguishable. Maps to 404.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

// NewNotFound creates a NotFoundError with the given message.
func NewNotFound(message string) *NotFoundError {
	return &NotFoundError{Message: message}
}

// ConflictError covers unique-constraint conflicts such as a duplicate
// email. Maps to 409.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// NewConflict creates a ConflictError with the given message.
func NewConflict(message string) *ConflictError {
	return &ConflictError{Message: message}
}
