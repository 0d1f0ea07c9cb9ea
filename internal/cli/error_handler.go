package cli

import (
	"fmt"

	"week-tracker/internal/errors"
	"week-tracker/internal/validation"
)

// ErrorHandler provides centralized error handling for command handlers
type ErrorHandler struct{}

// NewErrorHandler creates a new error handler
func NewErrorHandler() *ErrorHandler {
	return &ErrorHandler{}
}

// Message returns the text shown to the user for err.
func (eh *ErrorHandler) Message(err error) string {
	if validationErr, ok := err.(*validation.ValidationError); ok {
		return validationErr.GetUserFriendlyMessage()
	}

	appErr, ok := errors.AsAppError(err)
	if !ok {
		return err.Error()
	}

	msg := errors.GetUserMessage(err)
	// Parse failures in a targets file carry the decoder's position.
	if appErr.Type == errors.ErrorTypeConfiguration && appErr.Cause != nil && !validation.IsValidationError(appErr.Cause) {
		if _, nested := errors.AsAppError(appErr.Cause); !nested {
			msg = fmt.Sprintf("%s: %v", msg, appErr.Cause)
		}
	}
	return msg
}

// ExitCode returns the process exit status for err
func (eh *ErrorHandler) ExitCode(err error) int {
	if validation.IsValidationError(err) {
		return errors.ExitConfiguration
	}
	return errors.GetExitCode(err)
}

// GetErrorCode returns the error code for structured errors
func (eh *ErrorHandler) GetErrorCode(err error) string {
	return errors.GetErrorCode(err)
}
