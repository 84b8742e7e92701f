// Package serrors defines semantic error kinds shared by services and the
// HTTP layer. A service wraps a cause with a kind and a user-facing message;
// handlers turn the kind into a status code and the message into the
// {"error": ...} response body.
package serrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind marks sentinel errors created with NewKind.
type Kind interface {
	error
	isKind()
}

type kind struct{ s string }

func (k kind) Error() string { return k.s }
func (k kind) isKind()       {}

// NewKind creates a new semantic error kind.
func NewKind(name string) Kind { return kind{s: name} }

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = NewKind("NOT_FOUND")
	// ErrUnauthorized indicates a missing, expired or invalid token.
	ErrUnauthorized = NewKind("UNAUTHORIZED")
	// ErrForbidden indicates the caller may not perform the operation.
	ErrForbidden = NewKind("FORBIDDEN")
	// ErrBadRequest indicates the client sent invalid data.
	ErrBadRequest = NewKind("BAD_REQUEST")
	// ErrConflict indicates the resource already exists.
	ErrConflict = NewKind("CONFLICT")
	// ErrInternal indicates an internal server error.
	ErrInternal = NewKind("INTERNAL")
	// ErrUnavailable indicates an upstream provider is not configured or down.
	ErrUnavailable = NewKind("UNAVAILABLE")
	// ErrRateLimited indicates too many requests.
	ErrRateLimited = NewKind("RATE_LIMITED")
)

// Error carries a kind, an optional cause and an optional message.
//
// errors.Is and errors.As match both the kind and anything in the cause
// chain. Error() renders "<msg>: <cause>", "<msg>", "<cause>" or the kind
// name, whichever parts are present.
type Error struct {
	kind Kind
	err  error
	msg  string
}

// With creates an error of kind k with a formatted message.
func With(k Kind, msgFmt string, args ...any) *Error {
	return &Error{kind: k, msg: fmt.Sprintf(msgFmt, args...)}
}

// Wrap creates an error of kind k that wraps err and carries a formatted message.
func Wrap(k Kind, err error, msgFmt string, args ...any) *Error {
	return &Error{kind: k, err: err, msg: fmt.Sprintf(msgFmt, args...)}
}

// KindOnly creates an error carrying only the kind.
func KindOnly(k Kind) *Error { return &Error{kind: k} }

func (e *Error) Error() string {
	switch {
	case e == nil:
		return "<nil>"
	case e.msg != "" && e.err != nil:
		return e.msg + ": " + e.err.Error()
	case e.msg != "":
		return e.msg
	case e.err != nil:
		return e.err.Error()
	case e.kind != nil:
		return e.kind.Error()
	default:
		return "unknown error"
	}
}

func (e *Error) Unwrap() error { return e.err }

// Is matches either the kind sentinel or the wrapped cause.
func (e *Error) Is(target error) bool {
	if e == nil || target == nil {
		return e == nil && target == nil
	}
	if e.kind != nil && errors.Is(e.kind, target) {
		return true
	}

	return e.err != nil && errors.Is(e.err, target)
}

// As matches either the kind sentinel or the wrapped cause.
func (e *Error) As(target any) bool {
	if e == nil || target == nil {
		return false
	}
	if e.kind != nil && errors.As(e.kind, target) {
		return true
	}

	return e.err != nil && errors.As(e.err, target)
}

// Kind returns the kind sentinel, or nil.
func (e *Error) Kind() Kind { return e.kind }

// Message returns the user-facing message.
func (e *Error) Message() string { return e.msg }

// Cause returns the wrapped cause, or nil.
func (e *Error) Cause() error { return e.err }

// KindOf returns the kind of the first *Error in err's chain, or ErrInternal
// when err carries no kind.
func KindOf(err error) Kind {
	var se *Error
	if errors.As(err, &se) && se.kind != nil {
		return se.kind
	}
	var k Kind
	if errors.As(err, &k) {
		return k
	}

	return ErrInternal
}

// HTTPStatus maps the kind of err to a status code.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case ErrNotFound:
		return http.StatusNotFound
	case ErrUnauthorized:
		return http.StatusUnauthorized
	case ErrForbidden:
		return http.StatusForbidden
	case ErrBadRequest:
		return http.StatusBadRequest
	case ErrConflict:
		return http.StatusConflict
	case ErrUnavailable:
		return http.StatusServiceUnavailable
	case ErrRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage returns the text safe to show to a client. Internal errors
// never leak their cause.
func PublicMessage(err error) string {
	var se *Error
	if errors.As(err, &se) && se.kind != ErrInternal && se.kind != nil {
		if se.msg != "" {
			return se.msg
		}

		return defaultMessage(se.kind)
	}
	var k Kind
	if errors.As(err, &k) {
		return defaultMessage(k)
	}

	return defaultMessage(ErrInternal)
}

func defaultMessage(k Kind) string {
	switch k {
	case ErrNotFound:
		return "resource not found"
	case ErrUnauthorized:
		return "unauthorized"
	case ErrForbidden:
		return "forbidden"
	case ErrBadRequest:
		return "bad request"
	case ErrConflict:
		return "resource already exists"
	case ErrUnavailable:
		return "service unavailable"
	case ErrRateLimited:
		return "too many requests"
	default:
		return "internal error"
	}
}
