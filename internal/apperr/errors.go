// Package apperr defines the typed error taxonomy shared by all features.
// Handlers and services return these errors; the terminal error-handling
// middleware translates them into HTTP responses. Error discrimination is
// always by Kind, never by message text.
package apperr

import "net/http"

// Kind classifies an application error for HTTP status translation.
type Kind int

const (
	// KindBadRequest covers malformed or missing required input.
	KindBadRequest Kind = iota
	// KindUnauthorized covers missing, invalid or expired credentials.
	KindUnauthorized
	// KindForbidden covers authenticated but disallowed access.
	KindForbidden
	// KindNotFound covers absent entities.
	KindNotFound
	// KindValidation covers multi-field input errors.
	KindValidation
	// KindInternal covers everything else.
	KindInternal
)

// Error is an operational error carrying its taxonomy kind, a client-facing
// message and, for validation failures, a field-to-message map.
type Error struct {
	Kind    Kind
	Message string
	Fields  map[string]string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap exposes the underlying cause for errors.Is / errors.As.
func (e *Error) Unwrap() error { return e.Err }

// Status returns the HTTP status code for the error's kind.
func (e *Error) Status() int {
	switch e.Kind {
	case KindBadRequest:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindValidation:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// BadRequest returns a 400-kind error with the given message.
func BadRequest(message string) *Error {
	return &Error{Kind: KindBadRequest, Message: message}
}

// Unauthorized returns a 401-kind error with the given message.
func Unauthorized(message string) *Error {
	return &Error{Kind: KindUnauthorized, Message: message}
}

// Forbidden returns a 403-kind error with the given message.
func Forbidden(message string) *Error {
	return &Error{Kind: KindForbidden, Message: message}
}

// NotFound returns a 404-kind error for the named resource,
// e.g. NotFound("Category") renders as "Category not found".
func NotFound(resource string) *Error {
	return &Error{Kind: KindNotFound, Message: resource + " not found"}
}

// Validation returns a 422-kind error carrying per-field messages.
func Validation(fields map[string]string) *Error {
	return &Error{Kind: KindValidation, Message: "Validation error", Fields: fields}
}

// Internal wraps an unexpected failure. The message is generic; the cause is
// kept for logging and is only surfaced in development mode.
func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Message: "Internal server error", Err: err}
}
