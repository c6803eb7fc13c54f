package domain

import (
	"errors"
	"fmt"
)

// ErrorKind is a stable, machine-readable failure classification. The
// HTTP layer translates kinds to status codes in exactly one place;
// raw datastore errors never cross the API boundary.
type ErrorKind string

const (
	ErrInvalidInput     ErrorKind = "INVALID_INPUT"
	ErrUnauthorized     ErrorKind = "UNAUTHORIZED"
	ErrNotFound         ErrorKind = "NOT_FOUND"
	ErrConflict         ErrorKind = "CONFLICT"
	ErrAlreadyProcessed ErrorKind = "ALREADY_PROCESSED"
	ErrDuplicateMember  ErrorKind = "DUPLICATE_MEMBER"
	ErrWriteFailure     ErrorKind = "WRITE_FAILURE"
	ErrInternal         ErrorKind = "INTERNAL"
)

type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// E builds a tagged error with a caller-safe message.
func E(kind ErrorKind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap tags an underlying error with a kind and a caller-safe message.
// The cause is kept for logs but is never shown to API clients.
func Wrap(kind ErrorKind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf extracts the kind from err, or ErrInternal for untagged errors.
func KindOf(err error) ErrorKind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return ErrInternal
}

// MessageOf returns the caller-safe message for err.
func MessageOf(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.Message
	}
	return "internal server error"
}
