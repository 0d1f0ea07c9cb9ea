package cli

import (
	"context"

	"github.com/spf13/cobra"

	"week-tracker/internal/config"
	"week-tracker/internal/domain"
	"week-tracker/internal/errors"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd     *cobra.Command
	app     *App
	config  *config.Config
	targets *domain.TargetSet
	plan    *FlagPlan
}

// NewRootCommand creates the root cobra command, with one increment and one
// reset flag per configured task
func NewRootCommand(app *App, cfg *config.Config, ts *domain.TargetSet) *RootCommand {
	root := &RootCommand{
		app:     app,
		config:  cfg,
		targets: ts,
		plan:    NewFlagPlan(ts),
	}

	root.cmd = &cobra.Command{
		Use:   "wt",
		Short: "Track weekly time against per-task targets",
		Long: `Week Tracker (wt) accumulates the minutes you spend on each task against a
weekly target in hours, and shows how far through the working week you are.

Every task in the target table gets two flags:
  --<task> MINUTES          add time to the task (may be negative)
  --reset-<task> HOURS      overwrite the time spent on the task

EXAMPLES:
  wt --CPD 45                              # Add 45 minutes to CPD
  wt --reset-Faff 1.5 --show               # Set Faff to 1.5h and show every bar
  wt --clean --save-to last-week.json      # Start a new week, keeping a copy

CONFIGURATION:
  Configuration follows this priority order: command-line flags > environment variables > defaults

    WT_TARGETS_FILE             Target table, YAML or JSON (default: ~/.wt/targets.yaml)
    WT_TARGETS_REQUIRED         Fail instead of using the built-in table (default: false)
    WT_STATE_DIR                State directory (default: ~/.wt)
    WT_STATE_FILE               State file (default: <dir>/time_tracking.json)
    WT_STORE                    State backend, json or sqlite (default: json)
    WT_WEEK_WORKING_HOURS       Working hours per week (default: 37.5)
    WT_WEEK_LUNCH_HOURS         Lunch hours per week (default: 3.5)
    WT_WEEK_WORKING_DAYS        Working days per week (default: 5)
    WT_DISPLAY_MIN_BAR_WIDTH    Narrowest bar (default: 20)
    WT_DISPLAY_COLOR            auto, always or never (default: auto)
    WT_APP_TIMEOUT              Application timeout (default: 30s)
    WT_DEBUG                    Print debug output to stderr`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          rejectPositional,
		RunE:          root.runTrack,
	}
	root.cmd.CompletionOptions.DisableDefaultCmd = true
	root.cmd.SetOut(app.stdout)
	root.cmd.SetErr(app.stderr)
	root.cmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return errors.NewInvalidInputError("flags", cmd.CommandPath(), err.Error())
	})

	addGlobalFlags(root.cmd.PersistentFlags())

	flags := root.cmd.Flags()
	flags.Bool(flagShow, false, "Print the time-tracking summary")
	flags.Bool(flagClean, false, "Reset all values to 0")
	flags.String(flagSaveTo, "", "In addition to usual save, save to this path as well (e.g. at end of week, or backup)")
	root.plan.Register(flags)

	root.addSubcommands()

	return root
}

// Execute runs the root command with args
func (r *RootCommand) Execute(ctx context.Context, args []string) error {
	r.cmd.SetArgs(args)
	return r.cmd.ExecuteContext(ctx)
}

func (r *RootCommand) addSubcommands() {
	targetsCmd := &cobra.Command{
		Use:   "targets",
		Short: "Show the validated target table",
		Long:  "Print each task's weekly target, the lunch allowance, the working week and the bar width. Does not read or write state.",
		Args:  rejectPositional,
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewTargetsCommand(r.app, r.config, r.targets).Execute()
		},
	}

	r.cmd.AddCommand(targetsCmd)
}

func (r *RootCommand) runTrack(cmd *cobra.Command, args []string) error {
	ops, err := r.plan.Collect(cmd.Flags())
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	ops.Clean, _ = flags.GetBool(flagClean)
	show, _ := flags.GetBool(flagShow)
	saveTo, _ := flags.GetString(flagSaveTo)

	ctx, cancel := context.WithTimeout(cmd.Context(), r.config.Application.Timeout)
	defer cancel()

	return NewTrackCommand(r.app, r.config, r.targets).Execute(ctx, TrackRequest{
		Operations: ops,
		Show:       show,
		SaveTo:     saveTo,
	})
}

func rejectPositional(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return errors.NewInvalidInputError("argument", args[0], "unexpected argument to "+cmd.CommandPath())
	}
	return nil
}
