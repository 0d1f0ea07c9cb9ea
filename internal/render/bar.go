// Package render draws the per-task progress bars.
package render

import (
	"fmt"
	"io"
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"week-tracker/internal/domain"
)

// Default glyphs for the filled and empty parts of a bar.
const (
	DefaultFillGlyph  = "█"
	DefaultEmptyGlyph = "-"
)

// Options controls how bars are drawn.
type Options struct {
	FillGlyph  string
	EmptyGlyph string
	Color      bool
}

// Renderer turns a task's progress into a single text line. It holds no
// state between calls.
type Renderer struct {
	fill  string
	empty string
	color bool
	under lipgloss.Style
	over  lipgloss.Style
}

// New returns a Renderer. Empty glyphs fall back to the defaults.
func New(opts Options) *Renderer {
	r := &Renderer{
		fill:  opts.FillGlyph,
		empty: opts.EmptyGlyph,
		color: opts.Color,
	}
	if r.fill == "" {
		r.fill = DefaultFillGlyph
	}
	if r.empty == "" {
		r.empty = DefaultEmptyGlyph
	}

	// The caller has already decided whether colour is wanted, so the
	// profile is fixed instead of being sniffed from the output.
	lr := lipgloss.NewRenderer(io.Discard)
	lr.SetColorProfile(termenv.ANSI256)
	r.under = lr.NewStyle().Foreground(lipgloss.Color("34"))
	r.over = lr.NewStyle().Foreground(lipgloss.Color("196"))

	return r
}

// Render draws one bar line:
//
//	<label>:|<fill><empty>| <pct>% (<Xh Ym>)
//
// The fill is floor(current/target * BarWidth) glyphs and is not capped, so
// an over-target bar grows past the frame while the empty part drops to zero.
func (r *Renderer) Render(task string, current, target time.Duration, cfg domain.PrintConfig) string {
	fraction := 0.0
	if target > 0 {
		fraction = float64(current) / float64(target)
	}

	filled := int(math.Floor(fraction * float64(cfg.BarWidth)))
	if filled < 0 {
		filled = 0
	}
	remaining := cfg.BarWidth - filled
	if remaining < 0 {
		remaining = 0
	}

	fill := strings.Repeat(r.fill, filled)
	if r.color && filled > 0 {
		if fraction > 1 {
			fill = r.over.Render(fill)
		} else {
			fill = r.under.Render(fill)
		}
	}

	return fmt.Sprintf("%s:|%s%s| %.1f%% (%s)",
		padRight(task, cfg.LabelWidth),
		fill,
		strings.Repeat(r.empty, remaining),
		fraction*100,
		domain.FormatDuration(current),
	)
}

func padRight(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}
