package services

import (
	"week-tracker/internal/domain"
	"week-tracker/internal/logging"
)

// trackerServiceImpl implements the TrackerService interface
type trackerServiceImpl struct{}

// NewTrackerService creates a new TrackerService instance
func NewTrackerService() TrackerService {
	return &trackerServiceImpl{}
}

// Apply runs clean, or the per-task increments and resets, against state.
// Operations naming tasks outside targets are ignored.
func (t *trackerServiceImpl) Apply(state *domain.CurrentState, targets *domain.TargetSet, ops domain.Operations) ApplyResult {
	var result ApplyResult

	if ops.Clean {
		logging.Debugln("clean requested, zeroing every task")
		state.Reset()
		result.Cleaned = true
		return result
	}

	for _, name := range targets.Names() {
		if minutes, ok := ops.Increments[name]; ok && minutes != 0 {
			if state.Add(name, domain.MinutesToDuration(minutes)) {
				logging.Debugf("%s += %vm\n", name, minutes)
				result.Incremented = append(result.Incremented, name)
			}
		}

		if hours, ok := ops.Resets[name]; ok {
			if state.Set(name, domain.HoursToDuration(hours)) {
				logging.Debugf("%s = %vh\n", name, hours)
				result.Reset = append(result.Reset, name)
			}
		}
	}

	return result
}
