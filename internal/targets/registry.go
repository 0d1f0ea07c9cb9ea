// Package targets loads and validates the weekly target table.
package targets

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"week-tracker/internal/domain"
	apperrors "week-tracker/internal/errors"
	"week-tracker/internal/logging"
	"week-tracker/internal/validation"
)

//go:embed default_targets.yaml
var defaultTargets []byte

// BuiltinSource names the embedded table in messages.
const BuiltinSource = "built-in targets"

// Registry turns a target file into a validated TargetSet.
type Registry struct {
	week      domain.WeekConfig
	validator *validation.TargetValidator
}

// NewRegistry creates a registry that checks targets against week.
// reservedFlags are CLI flags task names must not shadow.
func NewRegistry(week domain.WeekConfig, reservedFlags ...string) *Registry {
	return &Registry{
		week:      week,
		validator: validation.NewTargetValidator(reservedFlags...),
	}
}

// Load reads the target table at path. When the file does not exist and
// required is false, the built-in table is used instead.
func (r *Registry) Load(path string, required bool) (*domain.TargetSet, error) {
	if path == "" {
		if required {
			return nil, apperrors.NewConfigurationError("no targets file configured", nil)
		}
		return r.Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !required {
			logging.Debugf("targets file %s not found, using %s\n", path, BuiltinSource)
			return r.Default()
		}
		return nil, apperrors.NewConfigurationError(fmt.Sprintf("cannot read targets file %s", path), err).
			WithContext("path", path)
	}

	logging.Debugf("loading targets from %s\n", path)
	return r.Parse(data, path)
}

// Default returns the built-in target table, validated against the week.
func (r *Registry) Default() (*domain.TargetSet, error) {
	return r.Parse(defaultTargets, BuiltinSource)
}

// Parse decodes a YAML (or JSON) mapping of task name to hours, keeping the
// document order, and validates it.
func (r *Registry) Parse(data []byte, source string) (*domain.TargetSet, error) {
	tasks, err := decodeTasks(data)
	if err != nil {
		return nil, apperrors.NewConfigurationError(fmt.Sprintf("invalid targets in %s", source), err).
			WithContext("source", source)
	}

	ts := domain.NewTargetSet(tasks, r.week)
	if err := r.Validate(ts); err != nil {
		if appErr, ok := apperrors.AsAppError(err); ok {
			appErr.WithContext("source", source)
		}
		return nil, err
	}

	logging.Debugf("loaded %d targets from %s\n", len(tasks), source)
	return ts, nil
}

// Validate checks every task and then the sum invariant:
// sum(targets) + lunch == working hours, compared exactly.
func (r *Registry) Validate(ts *domain.TargetSet) error {
	if err := r.validator.ValidateTasks(ts.Tasks); err != nil {
		msg := err.Error()
		if ve, ok := err.(*validation.ValidationError); ok {
			msg = ve.GetUserFriendlyMessage()
		}
		return apperrors.NewConfigurationError(msg, err)
	}

	sum := ts.SumHours()
	if sum+ts.Week.LunchHours != ts.Week.WorkingHours {
		return apperrors.NewConfigurationError(fmt.Sprintf(
			"you're not working the correct amount of hours: targets add up to %vh, plus %vh lunch must equal %vh",
			sum, ts.Week.LunchHours, ts.Week.WorkingHours), nil).
			WithContext("sum", sum).
			WithContext("expected", ts.Week.WorkingHours-ts.Week.LunchHours)
	}
	return nil
}

func decodeTasks(data []byte) ([]domain.Task, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return nil, fmt.Errorf("no targets defined")
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: expected a mapping of task name to hours", root.Line)
	}

	tasks := make([]domain.Task, 0, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]
		if key.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("line %d: task name must be a string", key.Line)
		}
		if value.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("line %d: target for %q must be a number of hours", value.Line, key.Value)
		}

		var hours float64
		if err := value.Decode(&hours); err != nil {
			return nil, fmt.Errorf("line %d: target for %q must be a number of hours: %w", value.Line, key.Value, err)
		}
		tasks = append(tasks, domain.NewTask(key.Value, hours))
	}
	return tasks, nil
}
