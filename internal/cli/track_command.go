package cli

import (
	"context"
	"fmt"
	"os"

	"week-tracker/internal/config"
	"week-tracker/internal/domain"
	"week-tracker/internal/errors"
	"week-tracker/internal/filelock"
	"week-tracker/internal/logging"
	"week-tracker/internal/render"
	"week-tracker/internal/repository"
)

// TrackRequest is one invocation of the root command.
type TrackRequest struct {
	Operations domain.Operations
	Show       bool
	SaveTo     string
}

// TrackCommand loads the weekly state, applies the requested operations,
// reports and saves the result.
type TrackCommand struct {
	app     *App
	config  *config.Config
	targets *domain.TargetSet
}

// NewTrackCommand creates a new track command handler
func NewTrackCommand(app *App, cfg *config.Config, ts *domain.TargetSet) *TrackCommand {
	return &TrackCommand{app: app, config: cfg, targets: ts}
}

// Execute runs the load, apply, report, save sequence under the state lock.
func (c *TrackCommand) Execute(ctx context.Context, req TrackRequest) error {
	path := c.config.GetStatePath()
	backend := c.config.Storage.Backend
	perm := os.FileMode(c.config.Storage.DirPermissions)
	out := c.app.stdout

	release, err := filelock.Acquire(ctx, path, perm)
	if err != nil {
		return errors.NewPersistenceError("lock", path, err)
	}
	defer func() {
		if err := release(); err != nil {
			logging.Debugf("releasing lock on %s: %v\n", path, err)
		}
	}()

	store, err := repository.Open(backend, path, perm)
	if err != nil {
		return err
	}
	defer store.Close()

	c.app.verbosef(c.config, "Using %s state at %s\n", backend, store.Path())

	state, err := store.Load(ctx, c.targets)
	if err != nil {
		return err
	}

	if req.Operations.IsEmpty() {
		c.app.verbosef(c.config, "No changes requested\n")
	}
	result := c.app.services.TrackerService.Apply(state, c.targets, req.Operations)
	for _, name := range result.Incremented {
		c.app.verbosef(c.config, "Added %v minutes to %s\n", req.Operations.Increments[name], name)
	}
	for _, name := range result.Reset {
		fmt.Fprintf(out, "Resetting %s\n", name)
	}

	if req.Show {
		c.printBars(state)
	}

	reporting := c.app.services.ReportingService
	fmt.Fprintln(out, reporting.FormatSummary(reporting.Summarize(state, c.targets.Week)))

	if err := store.Save(ctx, state); err != nil {
		return err
	}
	fmt.Fprintf(out, "Written results to %s\n", store.Path())

	if req.SaveTo != "" {
		if err := c.saveCopy(ctx, req.SaveTo, backend, perm, state); err != nil {
			return err
		}
		fmt.Fprintf(out, "Also written results to %s\n", req.SaveTo)
	}

	return nil
}

func (c *TrackCommand) printBars(state *domain.CurrentState) {
	out := c.app.stdout
	printCfg := domain.NewPrintConfig(c.targets, c.config.Display.MinBarWidth)
	renderer := render.New(render.Options{
		FillGlyph:  c.config.Display.FillGlyph,
		EmptyGlyph: c.config.Display.EmptyGlyph,
		Color:      colorEnabled(c.config.Display.Color, out),
	})

	fmt.Fprintln(out, "Current summary of time tracking...")
	fmt.Fprintf(out, "The bar width (LCM) will be %d\n", printCfg.BarWidth)
	for _, task := range c.targets.Tasks {
		fmt.Fprintln(out, renderer.Render(task.Name, state.Get(task.Name), task.Target(), printCfg))
	}
}

func (c *TrackCommand) saveCopy(ctx context.Context, path, backend string, perm os.FileMode, state *domain.CurrentState) error {
	store, err := repository.Open(backend, path, perm)
	if err != nil {
		return err
	}
	defer store.Close()

	return store.Save(ctx, state)
}
