package validation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"week-tracker/internal/domain"
)

func TestTargetValidator_ValidateTasks(t *testing.T) {
	validator := NewTargetValidator("show", "clean", "save-to", "reset-all")

	tests := []struct {
		name      string
		tasks     []domain.Task
		errorType ValidationErrorType
	}{
		{"valid tasks", []domain.Task{domain.NewTask("A", 4), domain.NewTask("B", 30)}, ""},
		{"no tasks", nil, ErrorTypeRequired},
		{"empty name", []domain.Task{domain.NewTask(" ", 4)}, ErrorTypeRequired},
		{"unsafe name", []domain.Task{domain.NewTask("two words", 4)}, ErrorTypeInvalidFormat},
		{"duplicate name", []domain.Task{domain.NewTask("A", 4), domain.NewTask("A", 2)}, ErrorTypeDuplicate},
		{"zero target", []domain.Task{domain.NewTask("A", 0)}, ErrorTypeInvalidValue},
		{"negative target", []domain.Task{domain.NewTask("A", -1)}, ErrorTypeInvalidValue},
		{"nan target", []domain.Task{domain.NewTask("A", math.NaN())}, ErrorTypeInvalidValue},
		{"shadows fixed flag", []domain.Task{domain.NewTask("show", 1)}, ErrorTypeReserved},
		{"reset flag shadows fixed flag", []domain.Task{domain.NewTask("all", 1)}, ErrorTypeReserved},
		{"shadows another task's reset flag", []domain.Task{domain.NewTask("X", 1), domain.NewTask("reset-X", 1)}, ErrorTypeReserved},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateTasks(tt.tasks)
			if tt.errorType == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			require.NotEmpty(t, ve.Errors)
			assert.Equal(t, tt.errorType, ve.Errors[0].Type)
		})
	}
}

func TestTargetValidator_CollectsAllProblems(t *testing.T) {
	err := NewTargetValidator().ValidateTasks([]domain.Task{
		domain.NewTask("bad name", 1),
		domain.NewTask("Ok", 0),
	})

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Len(t, ve.Errors, 2)
}
