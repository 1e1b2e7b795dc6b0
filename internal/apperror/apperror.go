// Package apperror defines the error taxonomy shared by the data access,
// reporting and presentation layers. Every failure a repository or service
// returns is one of these kinds; callers branch on the kind, never on
// message text.
package apperror

import (
	"errors"
	"fmt"
)

// Kind classifies an error
type Kind int

const (
	// Validation means malformed input; recoverable by re-prompting
	Validation Kind = iota
	// Conflict means a uniqueness violation (duplicate email, duplicate pair)
	Conflict
	// Reference means a referenced entity does not exist
	Reference
	// NotFound means the target of an update/delete does not exist
	NotFound
	// Store means an underlying persistence failure
	Store
)

func (k Kind) String() string {
	switch k {
	case Validation:
		return "validation"
	case Conflict:
		return "conflict"
	case Reference:
		return "reference"
	case NotFound:
		return "not found"
	case Store:
		return "store"
	}
	return "unknown"
}

// Error carries a kind, a user-facing message and an optional cause
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New builds an error of the given kind
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap builds an error of the given kind around an underlying cause
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// Validationf formats a Validation error
func Validationf(format string, args ...interface{}) *Error {
	return &Error{Kind: Validation, Message: fmt.Sprintf(format, args...)}
}

// Conflictf formats a Conflict error
func Conflictf(format string, args ...interface{}) *Error {
	return &Error{Kind: Conflict, Message: fmt.Sprintf(format, args...)}
}

// Referencef formats a Reference error
func Referencef(format string, args ...interface{}) *Error {
	return &Error{Kind: Reference, Message: fmt.Sprintf(format, args...)}
}

// NotFoundf formats a NotFound error
func NotFoundf(format string, args ...interface{}) *Error {
	return &Error{Kind: NotFound, Message: fmt.Sprintf(format, args...)}
}

// Storef wraps an underlying persistence failure, surfaced verbatim
func Storef(err error, format string, args ...interface{}) *Error {
	return &Error{Kind: Store, Message: fmt.Sprintf(format, args...), Err: err}
}

// Is reports whether err is an *Error of the given kind
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// KindOf returns the kind of err, defaulting to Store for untyped errors
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Store
}
