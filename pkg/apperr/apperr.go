// Package apperr defines the tagged error kinds shared by services and
// controllers. Services return an *Error with the right Kind; the controller
// layer is the only place a Kind is turned into an HTTP status code, so
// callers never have to string-match messages to tell "not found" from
// "store fault".
package apperr

import (
	"errors"
	"net/http"
)

// Kind classifies an application error.
type Kind int

const (
	// Validation: malformed or missing input.
	Validation Kind = iota
	// Unauthorized: credential mismatch.
	Unauthorized
	// Forbidden: role/flag gate refused the operation.
	Forbidden
	// NotFound: the referenced user or vehicle does not exist.
	NotFound
	// Unavailable: maintenance mode or unconfigured completion service.
	Unavailable
	// Upstream: the remote store or the model endpoint failed.
	Upstream
)

// Error carries a kind, a user-facing message, and the wrapped cause.
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

func (e *Error) Unwrap() error { return e.Err }

// New builds an *Error without a cause.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap builds an *Error around a cause. The cause's text is appended to the
// message by Error(), matching the "message includes underlying error text"
// policy for upstream faults.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf extracts the Kind from err. Unclassified errors are treated as
// Upstream faults.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Upstream
}

// MessageOf returns the user-facing message for err, falling back to the
// full error text for unclassified errors.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		if e.Err != nil {
			return e.Message + ": " + e.Err.Error()
		}
		return e.Message
	}
	return err.Error()
}

// Status maps a Kind to its HTTP status code.
func Status(kind Kind) int {
	switch kind {
	case Validation:
		return http.StatusBadRequest
	case Unauthorized:
		return http.StatusUnauthorized
	case Forbidden:
		return http.StatusForbidden
	case NotFound:
		return http.StatusNotFound
	case Unavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
