package errors

import (
	"fmt"
)

// ErrorType represents the category of error
type ErrorType int

const (
	ErrorTypeConfiguration ErrorType = iota
	ErrorTypeState
	ErrorTypeInvalidInput
	ErrorTypePersistence
)

// String returns the string representation of the error type
func (et ErrorType) String() string {
	switch et {
	case ErrorTypeConfiguration:
		return "configuration"
	case ErrorTypeState:
		return "state"
	case ErrorTypeInvalidInput:
		return "invalid_input"
	case ErrorTypePersistence:
		return "persistence"
	default:
		return "unknown"
	}
}

// Exit codes returned by the wt binary.
const (
	ExitOK            = 0
	ExitFailure       = 1
	ExitInvalidInput  = 2
	ExitConfiguration = 3
	ExitState         = 4
	ExitPersistence   = 5
)

// AppError represents a structured application error
type AppError struct {
	Type    ErrorType
	Message string
	Code    string
	Cause   error
	Context map[string]interface{}
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type.String(), e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type.String(), e.Message)
}

// Unwrap returns the underlying error for error unwrapping
func (e *AppError) Unwrap() error {
	return e.Cause
}

// Is checks if this error matches the target error type
func (e *AppError) Is(target error) bool {
	if appErr, ok := target.(*AppError); ok {
		return e.Type == appErr.Type && e.Code == appErr.Code
	}
	return false
}

// IsType checks if this error is of the specified type
func (e *AppError) IsType(errorType ErrorType) bool {
	return e.Type == errorType
}

// ExitCode maps the error type to the process exit status.
func (e *AppError) ExitCode() int {
	switch e.Type {
	case ErrorTypeInvalidInput:
		return ExitInvalidInput
	case ErrorTypeConfiguration:
		return ExitConfiguration
	case ErrorTypeState:
		return ExitState
	case ErrorTypePersistence:
		return ExitPersistence
	default:
		return ExitFailure
	}
}

// WithContext adds context information to the error
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}
