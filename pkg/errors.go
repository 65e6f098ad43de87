package pkg

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind is the closed taxonomy of failures surfaced by the escrow core.
//
// Every error crossing a component boundary carries exactly one kind; the HTTP
// layer maps kinds to status codes in one place (FromError).

type ErrorKind string

const (
	KindValidation     ErrorKind = "validation"
	KindAuthentication ErrorKind = "authentication"
	KindAuthorization  ErrorKind = "authorization"
	KindNotFound       ErrorKind = "not_found"
	KindStateConflict  ErrorKind = "state_conflict"
	KindGateway        ErrorKind = "gateway"

	// KindIndeterminate marks a processor call whose outcome is unknown
	// (timeout or lost response after dispatch). It must never be treated as
	// a plain failure: the record is left in a recoverable state and resolved
	// by reconciliation, not by retrying the call.
	KindIndeterminate ErrorKind = "indeterminate"

	KindInternal ErrorKind = "internal"
)

// DomainError is the error type returned by use cases and adapters.

type DomainError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error { return e.Err }

// Is lets wrapped variants match their sentinel by kind and message, so
// errors.Is(Wrap(sentinel, cause), sentinel) holds.
func (e *DomainError) Is(target error) bool {
	var t *DomainError
	if !errors.As(target, &t) {
		return false
	}
	return e.Kind == t.Kind && e.Message == t.Message
}

func NewDomainError(kind ErrorKind, message string) *DomainError {
	return &DomainError{Kind: kind, Message: message}
}

func WrapDomainError(kind ErrorKind, message string, err error) *DomainError {
	return &DomainError{Kind: kind, Message: message, Err: err}
}

// KindOf extracts the taxonomy kind from an error chain; unclassified errors
// are internal.
func KindOf(err error) ErrorKind {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindInternal
}

// HTTPError is the caller-visible failure body: { "error": "<message>" }.

type HTTPError struct {
	Error string `json:"error"`
}

// AppError pairs a DomainError with the HTTP status it maps to.

type AppError struct {
	Kind       ErrorKind
	Message    string
	Err        error
	HTTPStatus int
}

func (e *AppError) ToHTTPError() HTTPError { return HTTPError{Error: e.Message} }

// FromError maps any error to its HTTP representation. Internal errors hide
// the underlying cause from the caller.
func FromError(err error) *AppError {
	kind := KindOf(err)
	message := err.Error()

	status := http.StatusInternalServerError
	switch kind {
	case KindValidation:
		status = http.StatusBadRequest
	case KindAuthentication:
		status = http.StatusUnauthorized
	case KindAuthorization:
		status = http.StatusForbidden
	case KindNotFound:
		status = http.StatusNotFound
	case KindStateConflict:
		status = http.StatusConflict
	case KindGateway:
		status = http.StatusBadGateway
	case KindIndeterminate:
		// The call was dispatched but its outcome is unknown; the record is
		// left for reconciliation and the caller must not blindly retry.
		status = http.StatusGatewayTimeout
	default:
		message = "an internal error occurred"
	}

	return &AppError{Kind: kind, Message: message, Err: err, HTTPStatus: status}
}
