// Package apperror defines the error kinds shared by the application services.
// The REST layer maps each kind to an HTTP status code.
package apperror

import (
	"errors"
	"fmt"
)

// Kind classifies an application error
type Kind string

// Error kinds
const (
	KindValidation        Kind = "VALIDATION"
	KindNotFound          Kind = "NOT_FOUND"
	KindDuplicate         Kind = "DUPLICATE"
	KindConflict          Kind = "CONFLICT"
	KindUnauthorized      Kind = "UNAUTHORIZED"
	KindForbidden         Kind = "FORBIDDEN"
	KindInvalidTransition Kind = "INVALID_TRANSITION"
	KindUnavailable       Kind = "UNAVAILABLE"
	KindInternal          Kind = "INTERNAL"
)

// Error is an application error carrying a kind, a client safe message and an optional field
type Error struct {
	Kind    Kind
	Message string
	Field   string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates an error of the given kind
func New(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates an error of the given kind around a cause
func Wrap(kind Kind, err error, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Err: err}
}

// Validation reports invalid input
func Validation(format string, args ...interface{}) *Error {
	return New(KindValidation, format, args...)
}

// FieldValidation reports invalid input for a single field
func FieldValidation(field, format string, args ...interface{}) *Error {
	e := New(KindValidation, format, args...)
	e.Field = field
	return e
}

// NotFound reports a missing resource, e.g. NotFound("dealer", id)
func NotFound(resource, id string) *Error {
	return New(KindNotFound, "%s %s not found", resource, id)
}

// Duplicate reports a uniqueness violation
func Duplicate(format string, args ...interface{}) *Error {
	return New(KindDuplicate, format, args...)
}

// Conflict reports a concurrent modification or a state that blocks the operation
func Conflict(format string, args ...interface{}) *Error {
	return New(KindConflict, format, args...)
}

// Unauthorized reports missing or invalid credentials
func Unauthorized(format string, args ...interface{}) *Error {
	return New(KindUnauthorized, format, args...)
}

// Forbidden reports an authenticated caller lacking permission
func Forbidden(format string, args ...interface{}) *Error {
	return New(KindForbidden, format, args...)
}

// InvalidTransition reports a status change the state machine does not allow
func InvalidTransition(entity string, from, to interface{}) *Error {
	return New(KindInvalidTransition, "%s cannot move from %v to %v", entity, from, to)
}

// Unavailable reports a failing or disabled dependency
func Unavailable(err error, format string, args ...interface{}) *Error {
	return Wrap(KindUnavailable, err, format, args...)
}

// KindOf returns the kind of err, or KindInternal when err is not an *Error
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// Is reports whether err carries the given kind
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
