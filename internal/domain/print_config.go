package domain

import (
	"math"
	"unicode/utf8"
)

// DefaultMinBarWidth is the narrowest bar considered readable.
const DefaultMinBarWidth = 20

// PrintConfig holds display widths derived from a TargetSet. It is never persisted.
type PrintConfig struct {
	BarWidth   int
	LabelWidth int
}

// NewPrintConfig derives the bar width from the least common multiple of the
// integer-valued targets, doubled until it reaches minBarWidth, and the label
// width from the longest task name.
func NewPrintConfig(targets *TargetSet, minBarWidth int) PrintConfig {
	width := 1
	for _, t := range targets.Tasks {
		if t.TargetHours < 1 || t.TargetHours != math.Trunc(t.TargetHours) {
			continue
		}
		width = lcm(width, int(t.TargetHours))
	}
	for width < minBarWidth {
		width *= 2
	}

	label := 0
	for _, t := range targets.Tasks {
		if n := utf8.RuneCountInString(t.Name); n > label {
			label = n
		}
	}

	return PrintConfig{BarWidth: width, LabelWidth: label}
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func lcm(a, b int) int {
	return a / gcd(a, b) * b
}
