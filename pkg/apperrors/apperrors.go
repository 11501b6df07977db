// Package apperrors carries code-tagged errors across layer boundaries so
// adapters can classify failures without inspecting message text.
package apperrors

import "errors"

// Code identifies the failure class an error belongs to.
type Code string

const (
	CodeValidation Code = "validation"
	CodeNotFound   Code = "not_found"
	CodeStorage    Code = "storage"
	CodeInternal   Code = "internal"
)

// Error is the tagged error type used throughout the services.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New builds a tagged error with the given code and message.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap tags an underlying error with a code and message while keeping the
// cause reachable through errors.Unwrap.
func Wrap(err error, code Code, message string) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

// HasCode reports whether err, or any error it wraps, carries the code.
func HasCode(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// Normalize guarantees a tagged error. Untagged errors become internal
// errors; a nil message falls back to "Unknown error" so no failure ever
// reaches the wire without one.
func Normalize(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		if e.Message == "" {
			return &Error{Code: e.Code, Message: "Unknown error", Err: e.Err}
		}
		return e
	}
	if err == nil || err.Error() == "" {
		return &Error{Code: CodeInternal, Message: "Unknown error", Err: err}
	}
	return &Error{Code: CodeInternal, Message: err.Error(), Err: err}
}
