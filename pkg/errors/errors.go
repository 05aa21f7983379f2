package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown       ErrorCode = "UNKNOWN"
	ErrInternal      ErrorCode = "INTERNAL"
	ErrInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrNotFound      ErrorCode = "NOT_FOUND"
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Template pipeline errors
	ErrParse            ErrorCode = "PARSE"
	ErrLookup           ErrorCode = "LOOKUP"
	ErrRender           ErrorCode = "RENDER"
	ErrAmbiguousBinding ErrorCode = "AMBIGUOUS_BINDING"

	// FileSystem errors
	ErrFileAccess ErrorCode = "FILE_ACCESS"
	ErrFileWrite  ErrorCode = "FILE_WRITE"
	ErrDirCreate  ErrorCode = "DIR_CREATE"
)

// TemplateerError represents a structured error with code and details
type TemplateerError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *TemplateerError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *TemplateerError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *TemplateerError) Is(target error) bool {
	var targetErr *TemplateerError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new TemplateerError with the given code and message
func New(code ErrorCode, message string) *TemplateerError {
	return &TemplateerError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new TemplateerError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *TemplateerError {
	return &TemplateerError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a TemplateerError
func Wrap(err error, code ErrorCode, message string) *TemplateerError {
	if err == nil {
		return nil
	}
	return &TemplateerError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *TemplateerError {
	if err == nil {
		return nil
	}
	return &TemplateerError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *TemplateerError) WithDetail(key string, value interface{}) *TemplateerError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var tErr *TemplateerError
	if errors.As(err, &tErr) {
		return tErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a TemplateerError
func GetErrorCode(err error) ErrorCode {
	var tErr *TemplateerError
	if errors.As(err, &tErr) {
		return tErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a TemplateerError
func GetErrorDetails(err error) map[string]interface{} {
	var tErr *TemplateerError
	if errors.As(err, &tErr) {
		return tErr.Details
	}
	return nil
}
