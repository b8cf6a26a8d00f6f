// Package errors provides structured error types for cratescout.
//
// Every failure in a search run maps onto one of a small set of codes so the
// command layer can print a precise message and pick an exit status:
//
//   - CONFIG_*: credentials missing or unusable
//   - INVALID_*: bad user input (package name, count, header values)
//   - NETWORK_ERROR: transport failures before a response arrived
//   - REMOTE_STATUS, UNAUTHORIZED, FORBIDDEN, NOT_FOUND, RATE_LIMITED: the API
//     answered with a non-200 status
//   - DECODE_ERROR: the response body did not have the expected shape
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidInput, "invalid package name: %q", name)
//	if errors.Is(err, errors.ErrCodeInvalidInput) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeNetwork, origErr, "search %s", url)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Configuration errors
	ErrCodeConfigMissing Code = "CONFIG_MISSING"
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"

	// Input validation errors
	ErrCodeInvalidInput Code = "INVALID_INPUT"
	ErrCodeInvalidCount Code = "INVALID_COUNT"

	// Transport errors
	ErrCodeNetwork Code = "NETWORK_ERROR"

	// Remote rejection errors
	ErrCodeRemoteStatus Code = "REMOTE_STATUS"
	ErrCodeUnauthorized Code = "UNAUTHORIZED"
	ErrCodeForbidden    Code = "FORBIDDEN"
	ErrCodeNotFound     Code = "NOT_FOUND"
	ErrCodeRateLimited  Code = "RATE_LIMITED"

	// Response errors
	ErrCodeDecode Code = "DECODE_ERROR"

	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// StatusError reports a non-200 answer from a remote API.
type StatusError struct {
	StatusCode int
	Status     string // Full status line text, e.g. "403 Forbidden"
	Message    string // Message field from the response body, if any
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	s := fmt.Sprintf("status %d", e.StatusCode)
	if e.Message != "" {
		s += ": " + e.Message
	}
	return s
}

// StatusCode returns the HTTP status carried by err, or 0 if err does not
// wrap a *StatusError.
func StatusCode(err error) int {
	var se *StatusError
	if errors.As(err, &se) {
		return se.StatusCode
	}
	return 0
}
