package cli

import (
	"errors"
	"testing"

	apperrors "week-tracker/internal/errors"
	"week-tracker/internal/validation"
)

func TestErrorHandler_Message(t *testing.T) {
	eh := NewErrorHandler()
	ve := validation.NewValidationError()
	ve.AddRequiredError("targets")

	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "Invalid input",
			err:      apperrors.NewInvalidInputError("--A", "NaN", "value must be a finite number"),
			expected: "invalid input for --A: value must be a finite number",
		},
		{
			name:     "State error",
			err:      apperrors.NewStateError("/tmp/s.json", "is not a JSON object of task hours", errors.New("unexpected EOF")),
			expected: "state file /tmp/s.json: is not a JSON object of task hours: unexpected EOF",
		},
		{
			name:     "Configuration error with parse cause",
			err:      apperrors.NewConfigurationError("invalid targets in t.yaml", errors.New("yaml: line 2: did not find expected key")),
			expected: "invalid targets in t.yaml: yaml: line 2: did not find expected key",
		},
		{
			name:     "Configuration error wrapping validation",
			err:      apperrors.NewConfigurationError("targets is required", ve),
			expected: "targets is required",
		},
		{
			name:     "Bare validation error",
			err:      ve,
			expected: ve.GetUserFriendlyMessage(),
		},
		{
			name:     "Persistence error",
			err:      apperrors.NewPersistenceError("write", "/tmp/s.json", errors.New("disk full")),
			expected: "failed to write /tmp/s.json: disk full",
		},
		{
			name:     "Regular error",
			err:      errors.New("regular error"),
			expected: "regular error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := eh.Message(tt.err); result != tt.expected {
				t.Errorf("ErrorHandler.Message() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestErrorHandler_Classification(t *testing.T) {
	eh := NewErrorHandler()

	tests := []struct {
		name      string
		err       error
		exitCode  int
		errorCode string
	}{
		{
			name:      "invalid input",
			err:       apperrors.NewInvalidInputError("--A", "x", "bad"),
			exitCode:  apperrors.ExitInvalidInput,
			errorCode: "INVALID_INPUT",
		},
		{
			name:      "configuration",
			err:       apperrors.NewConfigurationError("bad", nil),
			exitCode:  apperrors.ExitConfiguration,
			errorCode: "CONFIGURATION_ERROR",
		},
		{
			name:      "legacy validation",
			err:       &validation.ValidationError{Errors: []validation.FieldError{{Field: "A", Message: "invalid"}}},
			exitCode:  apperrors.ExitConfiguration,
			errorCode: "UNKNOWN_ERROR",
		},
		{
			name:      "state",
			err:       apperrors.NewStateError("p", "bad", nil),
			exitCode:  apperrors.ExitState,
			errorCode: "STATE_ERROR",
		},
		{
			name:      "persistence",
			err:       apperrors.NewPersistenceError("write", "p", nil),
			exitCode:  apperrors.ExitPersistence,
			errorCode: "PERSISTENCE_ERROR",
		},
		{
			name:      "regular",
			err:       errors.New("boom"),
			exitCode:  apperrors.ExitFailure,
			errorCode: "UNKNOWN_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := eh.ExitCode(tt.err); got != tt.exitCode {
				t.Errorf("ExitCode() = %v, want %v", got, tt.exitCode)
			}
			if got := eh.GetErrorCode(tt.err); got != tt.errorCode {
				t.Errorf("GetErrorCode() = %v, want %v", got, tt.errorCode)
			}
		})
	}
}
