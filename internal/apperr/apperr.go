// Package apperr defines the error kinds that handlers report to clients.
//
// Handlers translate store and validation failures into one of these kinds; the
// transport layer maps the kind to a status code and writes only the message.
package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies a failure for the client.
type Kind int

const (
	// KindServer is an unexpected failure. Its cause is never shown to clients.
	KindServer Kind = iota
	KindUnauthenticated
	KindInvalidInput
	KindConflict
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindUnauthenticated:
		return "unauthenticated"
	case KindInvalidInput:
		return "invalid_input"
	case KindConflict:
		return "conflict"
	case KindNotFound:
		return "not_found"
	default:
		return "server_error"
	}
}

// ServerMessage is the only message a client sees for KindServer errors.
const ServerMessage = "Server error"

// Error is a client-facing failure with an optional underlying cause.
type Error struct {
	Kind    Kind
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

// Unauthenticated reports a missing, invalid or expired credential.
func Unauthenticated(msg string) *Error {
	return &Error{Kind: KindUnauthenticated, Message: msg}
}

// InvalidInput reports a request body that failed validation.
func InvalidInput(msg string) *Error {
	return &Error{Kind: KindInvalidInput, Message: msg}
}

// Conflict reports a write that collides with existing state.
func Conflict(msg string) *Error {
	return &Error{Kind: KindConflict, Message: msg}
}

// NotFound reports a missing record.
func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

// Server wraps an unexpected failure.
func Server(err error) *Error {
	return &Error{Kind: KindServer, Message: ServerMessage, Err: err}
}

// KindOf returns the kind of err, or KindServer if err is not an *Error.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindServer
}

// MessageOf returns the client-facing message for err.
func MessageOf(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) && appErr.Kind != KindServer {
		return appErr.Message
	}
	return ServerMessage
}
