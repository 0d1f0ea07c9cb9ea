package services

import (
	"fmt"

	"week-tracker/internal/domain"
)

// reportingServiceImpl implements the ReportingService interface
type reportingServiceImpl struct{}

// NewReportingService creates a new ReportingService instance
func NewReportingService() ReportingService {
	return &reportingServiceImpl{}
}

// Summarize totals the state against the working week.
func (r *reportingServiceImpl) Summarize(state *domain.CurrentState, week domain.WeekConfig) domain.WeeklySummary {
	spent := state.Total()
	total := week.Total()

	summary := domain.WeeklySummary{
		TotalSpent:  spent,
		TotalWeekly: total,
	}
	if total > 0 {
		summary.PercentOfWeek = 100 * float64(spent) / float64(total)
	}
	if day := week.Day(); day > 0 {
		summary.WorkingDaysSpent = float64(spent) / float64(day)
	}

	return summary
}

// FormatSummary renders the one-line weekly summary.
func (r *reportingServiceImpl) FormatSummary(summary domain.WeeklySummary) string {
	return fmt.Sprintf("Total working hours spent: %s/%s (%.2f days, or %.1f%% of the working week).",
		domain.FormatHours(domain.DurationToHours(summary.TotalSpent)),
		domain.FormatHours(domain.DurationToHours(summary.TotalWeekly)),
		summary.WorkingDaysSpent,
		summary.PercentOfWeek,
	)
}
