// Package errs defines the application error taxonomy. Handlers map these
// errors onto HTTP responses; services return them without knowing about HTTP.
package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an application error.
type Kind string

const (
	KindValidation     Kind = "validation_error"
	KindMissingContext Kind = "missing_context"
	KindAmountMismatch Kind = "amount_mismatch"
	KindNotFound       Kind = "not_found"
	KindConflict       Kind = "conflict"
	KindUnauthorized   Kind = "unauthorized"
	KindForbidden      Kind = "forbidden"
	KindTransient      Kind = "transient"
	KindInternal       Kind = "internal"
)

// FieldError describes a single invalid input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error is the application error type. Err carries the underlying cause,
// Fields the per-field detail for validation failures.
type Error struct {
	Kind    Kind
	Message string
	Fields  []FieldError
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// HTTPStatus maps the error kind to a response status code.
func (e *Error) HTTPStatus() int {
	switch e.Kind {
	case KindValidation, KindAmountMismatch:
		return http.StatusBadRequest
	case KindMissingContext:
		return http.StatusConflict
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindTransient:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func Validation(fields ...FieldError) *Error {
	return &Error{Kind: KindValidation, Message: "invalid input", Fields: fields}
}

func Validationf(field, format string, args ...any) *Error {
	return Validation(FieldError{Field: field, Message: fmt.Sprintf(format, args...)})
}

func MissingContext(slot string) *Error {
	return &Error{Kind: KindMissingContext, Message: fmt.Sprintf("no active %s in session", slot)}
}

func AmountMismatch(claimed, computed float64) *Error {
	return &Error{
		Kind:    KindAmountMismatch,
		Message: fmt.Sprintf("claimed total %.2f does not match computed total %.2f", claimed, computed),
	}
}

func NotFound(resource string) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf("%s not found", resource)}
}

func Conflict(msg string) *Error {
	return &Error{Kind: KindConflict, Message: msg}
}

func Unauthorized(msg string) *Error {
	return &Error{Kind: KindUnauthorized, Message: msg}
}

func Forbidden(msg string) *Error {
	return &Error{Kind: KindForbidden, Message: msg}
}

func Transient(msg string, err error) *Error {
	return &Error{Kind: KindTransient, Message: msg, Err: err}
}

func Internal(msg string, err error) *Error {
	return &Error{Kind: KindInternal, Message: msg, Err: err}
}

// As unwraps err into an *Error, returning nil when err is not one.
func As(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// IsKind reports whether err is an application error of the given kind.
func IsKind(err error, kind Kind) bool {
	if appErr := As(err); appErr != nil {
		return appErr.Kind == kind
	}
	return false
}
