package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"week-tracker/internal/config"
	"week-tracker/internal/domain"
	"week-tracker/internal/errors"
	"week-tracker/internal/services"
	"week-tracker/internal/targets"
)

// App represents the main CLI application
type App struct {
	stdout   io.Writer
	stderr   io.Writer
	services *services.ServiceContainer
}

// NewApp creates a new CLI application writing to the given streams
func NewApp(stdout, stderr io.Writer) *App {
	return &App{
		stdout:   stdout,
		stderr:   stderr,
		services: services.NewServiceContainer(),
	}
}

// Run executes the CLI application with the given arguments. Configuration
// and the target table are resolved first, since the per-task flags cannot
// be defined until the targets are known.
func (a *App) Run(ctx context.Context, args []string) error {
	overrides, err := prescan(args)
	if err != nil {
		return err
	}

	cfg, err := config.NewLoader().LoadWithOverrides(overrides)
	if err != nil {
		return errors.NewConfigurationError("invalid configuration", err)
	}

	week := domain.WeekConfig{
		WorkingHours: cfg.Week.WorkingHours,
		LunchHours:   cfg.Week.LunchHours,
		WorkingDays:  cfg.Week.WorkingDays,
	}
	ts, err := targets.NewRegistry(week, ReservedFlags...).Load(cfg.Targets.File, cfg.Targets.Required)
	if err != nil {
		return err
	}

	root := NewRootCommand(a, cfg, ts)
	return root.Execute(ctx, args)
}

func (a *App) verbosef(cfg *config.Config, format string, args ...interface{}) {
	if cfg.Application.Verbose {
		fmt.Fprintf(a.stderr, format, args...)
	}
}

// colorEnabled resolves the configured colour mode against the output stream.
func colorEnabled(mode string, w io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
