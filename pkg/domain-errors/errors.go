// Package errors provides code-tagged domain errors.
//
// Services return these so transports can map failures to responses without
// string matching. Infrastructure facts (row missing, key taken) travel as
// pkg/platform/sentinel errors and are translated into coded errors at the
// service boundary.
package errors

import (
	"errors"
	"fmt"
)

// Code classifies a domain error.
type Code string

const (
	// CodeBadRequest marks malformed or missing request input.
	CodeBadRequest Code = "bad_request"
	// CodeValidation marks input that parsed but failed business validation.
	CodeValidation Code = "validation_failed"
	// CodeIncompleteVehicle marks a new-vehicle submission missing required
	// attributes (brand, model, year, fuel type, transmission).
	CodeIncompleteVehicle Code = "incomplete_vehicle_data"
	// CodeInvalidReference marks a foreign key that points at nothing
	// (unknown city, brand or model).
	CodeInvalidReference Code = "invalid_reference"
	// CodeUnauthorized marks missing or failed authentication.
	CodeUnauthorized Code = "unauthorized"
	// CodeForbidden marks an authenticated caller acting outside its rights.
	CodeForbidden Code = "forbidden"
	// CodeNotFound marks an absent entity where absence is an error.
	CodeNotFound Code = "not_found"
	// CodeConflict marks a uniqueness or state conflict.
	CodeConflict Code = "conflict"
	// CodeInvariantViolation marks a broken domain invariant.
	CodeInvariantViolation Code = "invariant_violation"
	// CodeInternal marks storage and other lower-layer failures.
	CodeInternal Code = "internal_error"
)

// Error is a domain error carrying a code, a safe message and an optional cause.
type Error struct {
	Code    Code
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.cause
}

// New builds a domain error with the given code and message.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap attaches a code and message to a lower-layer error, preserving the
// cause for errors.Is/As chains.
func Wrap(err error, code Code, message string) *Error {
	return &Error{Code: code, Message: message, cause: err}
}

// Is reports whether err carries the given code anywhere in its chain.
func Is(err error, code Code) bool {
	return HasCode(err, code)
}

// HasCode reports whether err carries the given code anywhere in its chain.
func HasCode(err error, code Code) bool {
	var domainErr *Error
	if errors.As(err, &domainErr) {
		return domainErr.Code == code
	}
	return false
}

// CodeOf extracts the code from err, defaulting to CodeInternal for
// untagged errors so nothing leaks as a surprise success.
func CodeOf(err error) Code {
	var domainErr *Error
	if errors.As(err, &domainErr) {
		return domainErr.Code
	}
	return CodeInternal
}

// MessageOf extracts the safe message from err, or "" for untagged errors.
func MessageOf(err error) string {
	var domainErr *Error
	if errors.As(err, &domainErr) {
		return domainErr.Message
	}
	return ""
}
