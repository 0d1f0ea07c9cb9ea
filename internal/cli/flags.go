package cli

import (
	"fmt"
	"math"

	"github.com/spf13/pflag"

	"week-tracker/internal/domain"
	"week-tracker/internal/errors"
	"week-tracker/internal/logging"
	"week-tracker/internal/validation"
)

// Fixed flags on the root command.
const (
	flagShow   = "show"
	flagClean  = "clean"
	flagSaveTo = "save-to"
)

// Configuration override flags, shared by every command.
const (
	flagTargets     = "targets"
	flagStateFile   = "state-file"
	flagStore       = "store"
	flagMinBarWidth = "min-bar-width"
	flagNoColor     = "no-color"
	flagVerbose     = "verbose"
	flagHelp        = "help"
)

// ReservedFlags lists every flag name a task must not shadow.
var ReservedFlags = []string{
	flagShow, flagClean, flagSaveTo,
	flagTargets, flagStateFile, flagStore, flagMinBarWidth, flagNoColor, flagVerbose,
	flagHelp,
}

// FlagBinding ties a generated flag to the task and operation it drives.
type FlagBinding struct {
	Task string
	Kind domain.OperationKind
}

// FlagPlan is the set of per-task flags generated from a TargetSet: one
// increment flag (--<task>, minutes) and one reset flag (--reset-<task>,
// hours) per task.
type FlagPlan struct {
	names    []string
	bindings map[string]FlagBinding
}

// NewFlagPlan builds the per-task flags for targets in configured order.
func NewFlagPlan(targets *domain.TargetSet) *FlagPlan {
	plan := &FlagPlan{bindings: make(map[string]FlagBinding, 2*len(targets.Tasks))}
	for _, task := range targets.Tasks {
		plan.add(task.Name, FlagBinding{Task: task.Name, Kind: domain.OperationIncrement})
		plan.add(validation.ResetFlagPrefix+task.Name, FlagBinding{Task: task.Name, Kind: domain.OperationReset})
	}
	return plan
}

func (p *FlagPlan) add(name string, b FlagBinding) {
	p.names = append(p.names, name)
	p.bindings[name] = b
}

// Names returns the generated flag names in registration order.
func (p *FlagPlan) Names() []string {
	out := make([]string, len(p.names))
	copy(out, p.names)
	return out
}

// Binding returns what a generated flag drives.
func (p *FlagPlan) Binding(name string) (FlagBinding, bool) {
	b, ok := p.bindings[name]
	return b, ok
}

// Register defines every generated flag on fs.
func (p *FlagPlan) Register(fs *pflag.FlagSet) {
	for _, name := range p.names {
		b := p.bindings[name]
		switch b.Kind {
		case domain.OperationIncrement:
			fs.Float64(name, 0, fmt.Sprintf("Add this much time (in minutes) to %s.", b.Task))
		case domain.OperationReset:
			fs.Float64(name, 0, fmt.Sprintf("Reset time spent on %s to value (in hours).", b.Task))
		}
	}
}

// Collect turns the generated flags that were set on the command line into
// Operations. Non-finite values, values too large for a duration and
// negative resets are rejected.
func (p *FlagPlan) Collect(fs *pflag.FlagSet) (domain.Operations, error) {
	ops := domain.NewOperations()

	var changed []string
	fs.Visit(func(f *pflag.Flag) {
		if _, ok := p.bindings[f.Name]; ok {
			changed = append(changed, f.Name)
		}
	})

	for _, name := range changed {
		value, err := fs.GetFloat64(name)
		if err != nil {
			return ops, errors.NewInvalidInputError("--"+name, fs.Lookup(name).Value.String(), err.Error())
		}
		if math.IsNaN(value) || math.IsInf(value, 0) {
			return ops, errors.NewInvalidInputError("--"+name, value, "value must be a finite number")
		}

		b := p.bindings[name]
		switch b.Kind {
		case domain.OperationIncrement:
			if !domain.MinutesFit(value) {
				return ops, errors.NewInvalidInputError("--"+name, value, "value is too large to track")
			}
			ops.AddIncrement(b.Task, value)
		case domain.OperationReset:
			if value < 0 {
				return ops, errors.NewInvalidInputError("--"+name, value, "reset hours cannot be negative")
			}
			if !domain.HoursFit(value) {
				return ops, errors.NewInvalidInputError("--"+name, value, "value is too large to track")
			}
			ops.AddReset(b.Task, value)
		}
		logging.Debugf("%s %s by %v\n", b.Kind, b.Task, value)
	}

	return ops, nil
}
