package errors

import (
	"errors"
	"fmt"
)

// NewConfigurationError creates an error for an unusable target configuration.
// These abort the invocation before any state is read.
func NewConfigurationError(message string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeConfiguration,
		Message: message,
		Code:    "CONFIGURATION_ERROR",
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}

// NewStateError creates an error for a state file that exists but cannot be used
func NewStateError(path string, reason string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeState,
		Message: fmt.Sprintf("state file %s: %s", path, reason),
		Code:    "STATE_ERROR",
		Cause:   cause,
		Context: map[string]interface{}{
			"path":   path,
			"reason": reason,
		},
	}
}

// NewPersistenceError creates an error for a failed write of the state
func NewPersistenceError(operation string, path string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypePersistence,
		Message: fmt.Sprintf("failed to %s %s", operation, path),
		Code:    "PERSISTENCE_ERROR",
		Cause:   cause,
		Context: map[string]interface{}{
			"operation": operation,
			"path":      path,
		},
	}
}

// NewInvalidInputError creates a new invalid input error
func NewInvalidInputError(field string, value interface{}, reason string) *AppError {
	return &AppError{
		Type:    ErrorTypeInvalidInput,
		Message: fmt.Sprintf("invalid input for %s: %s", field, reason),
		Code:    "INVALID_INPUT",
		Context: map[string]interface{}{
			"field":  field,
			"value":  value,
			"reason": reason,
		},
	}
}

// AsAppError converts an error to an AppError if possible
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsErrorType checks if the error is of the specified type
func IsErrorType(err error, errorType ErrorType) bool {
	if appErr, ok := AsAppError(err); ok {
		return appErr.IsType(errorType)
	}
	return false
}

// GetUserMessage returns a user-friendly error message
func GetUserMessage(err error) string {
	if appErr, ok := AsAppError(err); ok {
		switch appErr.Type {
		case ErrorTypeConfiguration, ErrorTypeInvalidInput:
			return appErr.Message
		case ErrorTypeState, ErrorTypePersistence:
			if appErr.Cause != nil {
				return fmt.Sprintf("%s: %v", appErr.Message, appErr.Cause)
			}
			return appErr.Message
		default:
			return "An unexpected error occurred."
		}
	}
	return err.Error()
}

// GetErrorCode returns the error code for the error
func GetErrorCode(err error) string {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code
	}
	return "UNKNOWN_ERROR"
}

// GetExitCode returns the process exit status for err. nil maps to ExitOK.
func GetExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	if appErr, ok := AsAppError(err); ok {
		return appErr.ExitCode()
	}
	return ExitFailure
}

// ShouldLogError determines if an error should be logged based on its type
func ShouldLogError(err error) bool {
	if appErr, ok := AsAppError(err); ok {
		switch appErr.Type {
		case ErrorTypeConfiguration, ErrorTypeInvalidInput:
			return false // user errors
		default:
			return true
		}
	}
	return true
}
