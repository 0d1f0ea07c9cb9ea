package validation

import (
	"math"
	"regexp"
	"strings"

	"week-tracker/internal/domain"
)

// flagSafeName matches task names that can be used verbatim as --<name>.
var flagSafeName = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]*$`)

// Validator provides common validation utilities
type Validator struct {
	reserved map[string]struct{}
}

// NewValidator creates a validator that treats the given flag names as taken.
func NewValidator(reservedFlags ...string) *Validator {
	v := &Validator{reserved: make(map[string]struct{}, len(reservedFlags))}
	for _, name := range reservedFlags {
		v.reserved[name] = struct{}{}
	}
	return v
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsFlagSafeName checks that a name can be used as a command-line flag
func (v *Validator) IsFlagSafeName(name string) bool {
	return flagSafeName.MatchString(name)
}

// IsReservedFlag reports whether name is already used by a built-in flag
func (v *Validator) IsReservedFlag(name string) bool {
	_, ok := v.reserved[name]
	return ok
}

// IsFinite rejects NaN and the infinities
func (v *Validator) IsFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// IsPositiveHours checks for a strictly positive number of hours that fits a duration
func (v *Validator) IsPositiveHours(h float64) bool {
	return domain.HoursFit(h) && h > 0
}

// IsNonNegativeHours checks for a number of hours, zero or more, that fits a duration
func (v *Validator) IsNonNegativeHours(h float64) bool {
	return domain.HoursFit(h) && h >= 0
}
