// Package apperrors classifies failures so the HTTP layer can map them to status codes
// without inspecting message text.
package apperrors

import (
	"errors"
	"net/http"
)

// Kind identifies a class of failure.
type Kind int

const (
	KindInternal Kind = iota
	KindUnauthenticated
	KindForbidden
	KindInvalid
	KindNotFound
	KindConflict
)

// Sentinel values for errors.Is checks.
var (
	ErrInternal        = &Error{Kind: KindInternal, Message: "Internal Server Error"}
	ErrUnauthenticated = &Error{Kind: KindUnauthenticated, Message: "Not authenticated"}
	ErrForbidden       = &Error{Kind: KindForbidden, Message: "Not authorized"}
	ErrInvalid         = &Error{Kind: KindInvalid, Message: "Invalid request"}
	ErrNotFound        = &Error{Kind: KindNotFound, Message: "Not found"}
	ErrConflict        = &Error{Kind: KindConflict, Message: "Conflict"}
)

// Error carries a user facing message and an optional cause that is never shown to clients.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches any *Error of the same kind, so wrapped values compare equal to the sentinels.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

func newError(kind Kind, msg string, cause error) *Error {
	return &Error{Kind: kind, Message: msg, Cause: cause}
}

func Unauthenticated(msg string) error { return newError(KindUnauthenticated, msg, nil) }
func Forbidden(msg string) error       { return newError(KindForbidden, msg, nil) }
func Invalid(msg string) error         { return newError(KindInvalid, msg, nil) }
func NotFound(msg string) error        { return newError(KindNotFound, msg, nil) }
func Conflict(msg string, cause error) error {
	return newError(KindConflict, msg, cause)
}

// Internal wraps an unexpected failure; the client only sees msg.
func Internal(msg string, cause error) error {
	return newError(KindInternal, msg, cause)
}

// KindOf returns the kind of the first *Error in err's chain, or KindInternal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// PublicMessage returns the message safe to expose to clients.
func PublicMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return ErrInternal.Message
}

// HTTPStatus maps err to a response status code.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindUnauthenticated:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindInvalid:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
