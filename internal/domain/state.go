package domain

import (
	"time"
)

// CurrentState is the accumulated time per task for the current week.
// Entries follow the order of the TargetSet it was created from.
type CurrentState struct {
	order []string
	spent map[string]time.Duration
}

// NewCurrentState creates an all-zero state with one entry per configured task.
func NewCurrentState(targets *TargetSet) *CurrentState {
	s := &CurrentState{
		order: targets.Names(),
		spent: make(map[string]time.Duration, len(targets.Tasks)),
	}
	for _, name := range s.order {
		s.spent[name] = 0
	}
	return s
}

// Tasks returns task names in configured order.
func (s *CurrentState) Tasks() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Get returns the accumulated duration for a task. Unknown tasks report zero.
func (s *CurrentState) Get(task string) time.Duration {
	return s.spent[task]
}

// Has reports whether the state tracks the task.
func (s *CurrentState) Has(task string) bool {
	_, ok := s.spent[task]
	return ok
}

// Set overwrites the accumulated duration for a tracked task. Negative values
// are stored as zero. Unknown tasks are ignored and Set reports false.
func (s *CurrentState) Set(task string, d time.Duration) bool {
	if !s.Has(task) {
		return false
	}
	if d < 0 {
		d = 0
	}
	s.spent[task] = d
	return true
}

// Add adds d to a tracked task, never dropping below zero and saturating at
// MaxDuration.
func (s *CurrentState) Add(task string, d time.Duration) bool {
	if !s.Has(task) {
		return false
	}
	cur := s.spent[task]
	if d > 0 && cur > MaxDuration-d {
		return s.Set(task, MaxDuration)
	}
	return s.Set(task, cur+d)
}

// Reset zeroes every task.
func (s *CurrentState) Reset() {
	for name := range s.spent {
		s.spent[name] = 0
	}
}

// Total sums every task's accumulated duration.
func (s *CurrentState) Total() time.Duration {
	var total time.Duration
	for _, name := range s.order {
		total += s.spent[name]
	}
	return total
}

// Equal reports whether both states track the same tasks with the same durations.
func (s *CurrentState) Equal(other *CurrentState) bool {
	if other == nil || len(s.spent) != len(other.spent) {
		return false
	}
	for k, v := range s.spent {
		ov, ok := other.spent[k]
		if !ok || ov != v {
			return false
		}
	}
	return true
}
