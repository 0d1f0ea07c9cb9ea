package domain

import "time"

// WeeklySummary aggregates time spent against the whole working week.
type WeeklySummary struct {
	TotalSpent       time.Duration
	TotalWeekly      time.Duration
	PercentOfWeek    float64
	WorkingDaysSpent float64
}
