// Package errors defines the error kinds shared by services and the HTTP layer.
//
// Services declare sentinel *AppError values (e.g. ErrMeetingNotFound); handlers
// map any error to a status code through KindOf.
package errors

import (
	"errors"
	"net/http"
)

// Kind classifies an application error
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
	KindConflict
	KindUnauthorized
	KindForbidden
	KindState
)

// HTTPStatus maps the kind to its response status
func (k Kind) HTTPStatus() int {
	switch k {
	case KindValidation, KindConflict, KindState:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// AppError an error with a kind and a client-facing message
type AppError struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

// Is matches sentinels by identity or, for wrapped copies, by kind and message
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e == t || (e.Kind == t.Kind && e.Message == t.Message)
}

// Wrap attaches a cause while keeping the sentinel's kind and message
func (e *AppError) Wrap(err error) *AppError {
	return &AppError{Kind: e.Kind, Message: e.Message, Err: err}
}

func newError(kind Kind, msg string) *AppError {
	return &AppError{Kind: kind, Message: msg}
}

func Validation(msg string) *AppError   { return newError(KindValidation, msg) }
func NotFound(msg string) *AppError     { return newError(KindNotFound, msg) }
func Conflict(msg string) *AppError     { return newError(KindConflict, msg) }
func Unauthorized(msg string) *AppError { return newError(KindUnauthorized, msg) }
func Forbidden(msg string) *AppError    { return newError(KindForbidden, msg) }
func State(msg string) *AppError        { return newError(KindState, msg) }

// KindOf returns the kind of err, KindInternal for anything that is not an AppError
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// MessageOf returns the client-facing message of err, "" when err is not an AppError
func MessageOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return ""
}
