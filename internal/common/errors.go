// Package common defines shared constants, error kinds and small helpers used
// across the chirpy server and CLI. Callers should use errors.Is to match the
// sentinel values.
package common

import (
	"errors"
	"fmt"
)

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Error kinds surfaced to transports. Every *Error carries exactly one.
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")
	ErrNotFound        = errors.New("entity not found")
	ErrBadRequest      = errors.New("bad request")
	ErrInternal        = errors.New("internal error")
)

// Error is a classified failure with a caller-safe message.
//
// Kind is one of the Err* kinds above; Msg is what a client may see; Err is
// the optional underlying cause, which must only ever be logged.
type Error struct {
	Kind error
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

// Unwrap exposes both the kind and the cause to errors.Is / errors.As.
func (e *Error) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Kind, e.Err}
	}
	return []error{e.Kind}
}

func Unauthenticated(msg string) error { return &Error{Kind: ErrUnauthenticated, Msg: msg} }

func Forbidden(msg string) error { return &Error{Kind: ErrForbidden, Msg: msg} }

func NotFound(msg string) error { return &Error{Kind: ErrNotFound, Msg: msg} }

func BadRequest(msg string) error { return &Error{Kind: ErrBadRequest, Msg: msg} }

// Internal wraps an unexpected failure. The public message is fixed.
func Internal(err error) error {
	return &Error{Kind: ErrInternal, Msg: "Internal server error", Err: err}
}

// Message returns the caller-safe message of err. Unclassified errors are
// reported as internal.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) && !errors.Is(e.Kind, ErrInternal) {
		return e.Msg
	}
	return "Internal server error"
}
