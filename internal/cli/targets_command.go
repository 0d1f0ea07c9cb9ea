package cli

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"week-tracker/internal/config"
	"week-tracker/internal/domain"
)

// TargetsCommand prints the validated target table
type TargetsCommand struct {
	app     *App
	config  *config.Config
	targets *domain.TargetSet
}

// NewTargetsCommand creates a new targets command handler
func NewTargetsCommand(app *App, cfg *config.Config, ts *domain.TargetSet) *TargetsCommand {
	return &TargetsCommand{app: app, config: cfg, targets: ts}
}

// Execute prints one line per task followed by the week totals
func (c *TargetsCommand) Execute() error {
	out := c.app.stdout
	printCfg := domain.NewPrintConfig(c.targets, c.config.Display.MinBarWidth)
	week := c.targets.Week

	for _, task := range c.targets.Tasks {
		pad := strings.Repeat(" ", printCfg.LabelWidth-utf8.RuneCountInString(task.Name))
		fmt.Fprintf(out, "%s%s  %sh\n", task.Name, pad, domain.FormatHours(task.TargetHours))
	}
	fmt.Fprintf(out, "Lunch: %sh\n", domain.FormatHours(week.LunchHours))
	fmt.Fprintf(out, "Working week: %sh over %d days (%s per day)\n",
		domain.FormatHours(week.WorkingHours), week.WorkingDays, domain.FormatDuration(week.Day()))
	fmt.Fprintf(out, "The bar width (LCM) will be %d\n", printCfg.BarWidth)

	return nil
}
