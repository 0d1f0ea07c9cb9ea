package cli

import (
	"io"

	"github.com/spf13/pflag"

	"week-tracker/internal/config"
	"week-tracker/internal/errors"
)

// addGlobalFlags defines the configuration override flags on fs.
func addGlobalFlags(fs *pflag.FlagSet) {
	fs.String(flagTargets, "", "Target table file, YAML or JSON (overrides WT_TARGETS_FILE)")
	fs.String(flagStateFile, "", "State file (overrides WT_STATE_FILE)")
	fs.String(flagStore, "", "State backend, json or sqlite (overrides WT_STORE)")
	fs.Int(flagMinBarWidth, 0, "Narrowest bar width (overrides WT_DISPLAY_MIN_BAR_WIDTH)")
	fs.Bool(flagNoColor, false, "Disable coloured bars (also honours NO_COLOR)")
	fs.Bool(flagVerbose, false, "Enable verbose output (overrides WT_APP_VERBOSE)")
}

// prescan reads the configuration override flags before the per-task flags
// exist. Anything it does not recognise is left for the real parse.
func prescan(args []string) (*config.ConfigOverrides, error) {
	fs := pflag.NewFlagSet("wt", pflag.ContinueOnError)
	fs.ParseErrorsWhitelist.UnknownFlags = true
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	addGlobalFlags(fs)

	if err := fs.Parse(args); err != nil && err != pflag.ErrHelp {
		return nil, errors.NewInvalidInputError("flags", args, err.Error())
	}

	return overridesFrom(fs), nil
}

// overridesFrom collects the override flags that were explicitly set.
func overridesFrom(fs *pflag.FlagSet) *config.ConfigOverrides {
	o := &config.ConfigOverrides{}

	if fs.Changed(flagTargets) {
		v, _ := fs.GetString(flagTargets)
		o.TargetsFile = &v
	}
	if fs.Changed(flagStateFile) {
		v, _ := fs.GetString(flagStateFile)
		o.StateFile = &v
	}
	if fs.Changed(flagStore) {
		v, _ := fs.GetString(flagStore)
		o.Backend = &v
	}
	if fs.Changed(flagMinBarWidth) {
		v, _ := fs.GetInt(flagMinBarWidth)
		o.MinBarWidth = &v
	}
	if fs.Changed(flagNoColor) {
		v, _ := fs.GetBool(flagNoColor)
		o.NoColor = &v
	}
	if fs.Changed(flagVerbose) {
		v, _ := fs.GetBool(flagVerbose)
		o.Verbose = &v
	}

	return o
}
