// Package errors provides structured error handling for the newsreader core.
// It defines error types with codes, messages, causes, and contextual
// information so failures can be classified across the pipeline layers.
package errors

import (
	"fmt"
	"log/slog"
)

// ErrorCode represents a categorized error type for structured error handling.
type ErrorCode string

// Error code constants mirroring the pipeline failure taxonomy. EmptyResult
// is a code of its own: a well-formed feed with zero entries must never be
// reported as a fetch or parse failure.
const (
	ErrCodeFetch       ErrorCode = "FETCH_ERROR"
	ErrCodeParse       ErrorCode = "PARSE_ERROR"
	ErrCodeEmptyResult ErrorCode = "EMPTY_RESULT"
	ErrCodeRemoteStore ErrorCode = "REMOTE_STORE_ERROR"
	ErrCodeTimeout     ErrorCode = "TIMEOUT_ERROR"
	ErrCodeCache       ErrorCode = "CACHE_ERROR"
	ErrCodeValidation  ErrorCode = "VALIDATION_ERROR"
	ErrCodeUnknown     ErrorCode = "UNKNOWN_ERROR"
)

// AppError represents a structured application error with code, message,
// cause, and context. It implements the error interface and supports error
// unwrapping.
type AppError struct {
	Code    ErrorCode
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error returns a string representation of the AppError.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause error for use with errors.Is and errors.As.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// FetchError creates an AppError for network-level failures reaching a feed
// or article page.
func FetchError(message string, cause error, context map[string]interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeFetch,
		Message: message,
		Cause:   cause,
		Context: context,
	}
}

// ParseError creates an AppError for malformed XML/HTML payloads.
func ParseError(message string, cause error, context map[string]interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeParse,
		Message: message,
		Cause:   cause,
		Context: context,
	}
}

// EmptyResultError creates an AppError for well-formed responses with no
// usable entries.
func EmptyResultError(message string, cause error, context map[string]interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeEmptyResult,
		Message: message,
		Cause:   cause,
		Context: context,
	}
}

// RemoteStoreError creates an AppError for bookmark/article store failures.
func RemoteStoreError(message string, cause error, context map[string]interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeRemoteStore,
		Message: message,
		Cause:   cause,
		Context: context,
	}
}

// TimeoutError creates an AppError for soft-cancellation timeouts. For
// fallback purposes it is handled like a remote-store failure but keeps its
// own code for logging.
func TimeoutError(message string, cause error, context map[string]interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeTimeout,
		Message: message,
		Cause:   cause,
		Context: context,
	}
}

// CacheError creates an AppError for local cache read/write failures.
func CacheError(message string, cause error, context map[string]interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeCache,
		Message: message,
		Cause:   cause,
		Context: context,
	}
}

// ValidationError creates an AppError for input validation failures.
func ValidationError(message string, context map[string]interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeValidation,
		Message: message,
		Context: context,
	}
}

// UnknownError creates an AppError for unclassified errors.
func UnknownError(message string, cause error, context map[string]interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeUnknown,
		Message: message,
		Cause:   cause,
		Context: context,
	}
}

// LogError logs an AppError with structured logging and context.
func LogError(logger *slog.Logger, err error, operation string) {
	// Handle nil logger gracefully (e.g., during tests)
	if logger == nil {
		return
	}

	if appErr, ok := err.(*AppError); ok {
		args := []interface{}{
			"operation", operation,
			"error_code", string(appErr.Code),
			"error_message", appErr.Message,
		}

		if appErr.Context != nil {
			for key, value := range appErr.Context {
				args = append(args, key, value)
			}
		}

		if appErr.Cause != nil {
			args = append(args, "cause", appErr.Cause.Error())
		}

		logger.Error("application error occurred", args...)
	} else {
		logger.Error("unknown error occurred",
			"operation", operation,
			"error", err.Error(),
		)
	}
}
