package validation

import (
	"week-tracker/internal/domain"
)

// ResetFlagPrefix is prepended to a task name to form its reset flag.
const ResetFlagPrefix = "reset-"

// TargetValidator checks a target table before it is used to build flags.
type TargetValidator struct {
	validator *Validator
}

// NewTargetValidator creates a target validator. reservedFlags are the fixed
// CLI flags that task-derived flags must not shadow.
func NewTargetValidator(reservedFlags ...string) *TargetValidator {
	return &TargetValidator{
		validator: NewValidator(reservedFlags...),
	}
}

// ValidateTasks checks names and targets of every task. The sum invariant is
// checked separately by the target registry.
func (tv *TargetValidator) ValidateTasks(tasks []domain.Task) error {
	validationError := NewValidationError()

	if len(tasks) == 0 {
		validationError.AddRequiredError("tasks")
		return validationError
	}

	seen := make(map[string]bool, len(tasks))
	for _, task := range tasks {
		tv.validateName(validationError, task.Name, seen)

		if !tv.validator.IsPositiveHours(task.TargetHours) {
			validationError.AddInvalidValueError("target", task.TargetHours, task.Name+" must have a positive number of hours")
		}
	}

	// A task called "reset-X" would shadow the reset flag of task "X".
	for _, task := range tasks {
		if seen[ResetFlagPrefix+task.Name] {
			validationError.AddReservedError("task", ResetFlagPrefix+task.Name, ResetFlagPrefix+task.Name)
		}
	}

	return validationError.ErrOrNil()
}

func (tv *TargetValidator) validateName(ve *ValidationError, name string, seen map[string]bool) {
	if !tv.validator.IsNonEmptyString(name) {
		ve.AddRequiredError("task")
		return
	}
	if !tv.validator.IsFlagSafeName(name) {
		ve.AddInvalidFormatError("task", name, "letters, digits, '-' or '_', starting with a letter or digit")
		return
	}
	if seen[name] {
		ve.AddDuplicateError("task", name)
		return
	}
	seen[name] = true

	if tv.validator.IsReservedFlag(name) {
		ve.AddReservedError("task", name, name)
	}
	if tv.validator.IsReservedFlag(ResetFlagPrefix + name) {
		ve.AddReservedError("task", name, ResetFlagPrefix+name)
	}
}
