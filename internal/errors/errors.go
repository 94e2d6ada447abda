package errors

import (
	"fmt"
)

// ErrorCode represents stable error codes for all failure modes
type ErrorCode string

const (
	// InvalidPathParam indicates a path segment could not be coerced to its declared type
	InvalidPathParam ErrorCode = "INVALID_PATH_PARAM"
	// RejectedInput indicates a handler refused well-formed input
	RejectedInput ErrorCode = "REJECTED_INPUT"
	// InternalError indicates unexpected error
	InternalError ErrorCode = "INTERNAL_ERROR"
)

// ParamKind names the type a path parameter is coerced to.
type ParamKind string

const (
	// KindU32 is an unsigned 32-bit base-10 integer
	KindU32 ParamKind = "u32"
	// KindString is a non-empty path segment
	KindString ParamKind = "String"
	// KindBool is the literal true or false
	KindBool ParamKind = "bool"
)

// ParamError reports a path parameter that failed type coercion.
type ParamError struct {
	Name  string
	Value string
	Kind  ParamKind
	cause error
}

// NewParamError creates a new ParamError
func NewParamError(name, value string, kind ParamKind, cause error) *ParamError {
	return &ParamError{
		Name:  name,
		Value: value,
		Kind:  kind,
		cause: cause,
	}
}

// Error implements the error interface. The text doubles as the 400 response body.
func (e *ParamError) Error() string {
	return fmt.Sprintf("can not parse %q to a %s", e.Value, e.Kind)
}

// Unwrap returns the underlying error
func (e *ParamError) Unwrap() error {
	return e.cause
}

// Code returns the stable error code
func (e *ParamError) Code() ErrorCode {
	return InvalidPathParam
}

// Error is a coded error with a message and an optional cause
type Error struct {
	Code    ErrorCode
	Message string
	cause   error
}

// New creates a new coded Error
func New(code ErrorCode, message string, cause error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		cause:   cause,
	}
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.cause
}
