package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// FormatHours renders fractional hours in their shortest exact form, always
// keeping a fractional part ("2.0", "1.25", "37.5").
func FormatHours(h float64) string {
	s := strconv.FormatFloat(h, 'f', -1, 64)
	if math.IsNaN(h) || math.IsInf(h, 0) || strings.Contains(s, ".") {
		return s
	}
	return s + ".0"
}

// FormatDuration renders d as hours and minutes, e.g. "2h 5m", followed by
// any leftover seconds ("0h 0m 30s"). Negative durations render as zero.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	hours := int64(d / time.Hour)
	minutes := int64(d%time.Hour) / int64(time.Minute)
	out := fmt.Sprintf("%dh %dm", hours, minutes)
	if rest := d % time.Minute; rest > 0 {
		out += " " + strconv.FormatFloat(rest.Seconds(), 'f', -1, 64) + "s"
	}
	return out
}
