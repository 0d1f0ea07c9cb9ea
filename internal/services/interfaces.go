package services

import (
	"week-tracker/internal/domain"
)

// ApplyResult reports what an Apply call changed.
type ApplyResult struct {
	Cleaned     bool
	Reset       []string // tasks overwritten by a reset, in configured order
	Incremented []string // tasks with a non-zero increment, in configured order
}

// TrackerService applies requested operations to the accumulated state
type TrackerService interface {
	// Apply mutates state in one pass. Clean short-circuits everything else;
	// otherwise each task gets its increment and then its reset.
	Apply(state *domain.CurrentState, targets *domain.TargetSet, ops domain.Operations) ApplyResult
}

// ReportingService computes and formats the weekly summary
type ReportingService interface {
	Summarize(state *domain.CurrentState, week domain.WeekConfig) domain.WeeklySummary
	FormatSummary(summary domain.WeeklySummary) string
}

// ServiceContainer manages all services and their dependencies
type ServiceContainer struct {
	TrackerService   TrackerService
	ReportingService ReportingService
}

// NewServiceContainer wires the default service implementations.
func NewServiceContainer() *ServiceContainer {
	return &ServiceContainer{
		TrackerService:   NewTrackerService(),
		ReportingService: NewReportingService(),
	}
}
