package domain

import (
	"math"
	"time"
)

// Defaults for the working week the targets are measured against.
const (
	DefaultWorkingHours = 37.5
	DefaultLunchHours   = 3.5
	DefaultWorkingDays  = 5
)

// Task represents a named weekly activity with a target duration.
type Task struct {
	Name        string
	TargetHours float64
}

// NewTask creates a new Task with the given name and weekly target in hours.
func NewTask(name string, targetHours float64) Task {
	return Task{
		Name:        name,
		TargetHours: targetHours,
	}
}

// Target returns the weekly target as a duration.
func (t Task) Target() time.Duration {
	return HoursToDuration(t.TargetHours)
}

// IsValid checks if the task has a name and a positive target.
func (t Task) IsValid() bool {
	return t.Name != "" && t.TargetHours > 0
}

// String returns the task name for display purposes.
func (t Task) String() string {
	return t.Name
}

// WeekConfig describes the working week the targets must fill.
type WeekConfig struct {
	WorkingHours float64
	LunchHours   float64
	WorkingDays  int
}

// DefaultWeek returns a 37.5h, five-day week with 3.5h of lunch.
func DefaultWeek() WeekConfig {
	return WeekConfig{
		WorkingHours: DefaultWorkingHours,
		LunchHours:   DefaultLunchHours,
		WorkingDays:  DefaultWorkingDays,
	}
}

// Total returns the full working week as a duration.
func (w WeekConfig) Total() time.Duration {
	return HoursToDuration(w.WorkingHours)
}

// Day returns the length of one working day.
func (w WeekConfig) Day() time.Duration {
	days := w.WorkingDays
	if days <= 0 {
		days = DefaultWorkingDays
	}
	return HoursToDuration(w.WorkingHours / float64(days))
}

// TargetSet is the ordered, validated set of tasks and their weekly targets.
type TargetSet struct {
	Tasks []Task
	Week  WeekConfig
}

// NewTargetSet creates a TargetSet. No validation is performed here.
func NewTargetSet(tasks []Task, week WeekConfig) *TargetSet {
	return &TargetSet{Tasks: tasks, Week: week}
}

// Names returns task names in configured order.
func (ts *TargetSet) Names() []string {
	names := make([]string, len(ts.Tasks))
	for i, t := range ts.Tasks {
		names[i] = t.Name
	}
	return names
}

// Get returns the task with the given name.
func (ts *TargetSet) Get(name string) (Task, bool) {
	for _, t := range ts.Tasks {
		if t.Name == name {
			return t, true
		}
	}
	return Task{}, false
}

// Has reports whether name is a configured task.
func (ts *TargetSet) Has(name string) bool {
	_, ok := ts.Get(name)
	return ok
}

// SumHours adds up every target in configured order.
func (ts *TargetSet) SumHours() float64 {
	var sum float64
	for _, t := range ts.Tasks {
		sum += t.TargetHours
	}
	return sum
}

// MaxDuration is the largest duration a task can accumulate.
const MaxDuration = time.Duration(math.MaxInt64)

// durationLimit is 2^63, the first nanosecond count a Duration cannot hold.
const durationLimit = float64(math.MaxInt64)

// HoursFit reports whether hours is finite and representable as a Duration.
func HoursFit(hours float64) bool {
	return nanosFit(hours * float64(time.Hour))
}

// MinutesFit reports whether minutes is finite and representable as a Duration.
func MinutesFit(minutes float64) bool {
	return nanosFit(minutes * float64(time.Minute))
}

func nanosFit(ns float64) bool {
	return !math.IsNaN(ns) && ns > -durationLimit && ns < durationLimit
}

// HoursToDuration converts fractional hours to a duration, rounded to the
// nanosecond. Values outside the Duration range saturate.
func HoursToDuration(hours float64) time.Duration {
	return toDuration(hours * float64(time.Hour))
}

// MinutesToDuration converts fractional minutes to a duration, rounded to the
// nanosecond. Values outside the Duration range saturate.
func MinutesToDuration(minutes float64) time.Duration {
	return toDuration(minutes * float64(time.Minute))
}

func toDuration(ns float64) time.Duration {
	switch {
	case math.IsNaN(ns):
		return 0
	case ns >= durationLimit:
		return MaxDuration
	case ns <= -durationLimit:
		return time.Duration(math.MinInt64)
	}
	return time.Duration(math.Round(ns))
}

// DurationToHours converts a duration back to fractional hours.
func DurationToHours(d time.Duration) float64 {
	return d.Hours()
}
