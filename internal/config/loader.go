package config

// Loader handles loading configuration from multiple sources
type Loader struct {
	config *Config
}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	return &Loader{
		config: NewConfig(),
	}
}

// LoadWithOverrides loads configuration using the cascading strategy:
// 1. Start with defaults
// 2. Override with environment variables
// 3. Override with command line flags
func (l *Loader) LoadWithOverrides(overrides *ConfigOverrides) (*Config, error) {
	if err := l.config.LoadFromEnvironment(); err != nil {
		return nil, err
	}

	if overrides != nil {
		overrides.Apply(l.config)
	}

	// Validate once, after every source has been applied
	if err := l.config.Validate(); err != nil {
		return nil, err
	}

	return l.config, nil
}

// ConfigOverrides holds command line flag overrides. A nil field means the
// flag was not given.
type ConfigOverrides struct {
	TargetsFile *string
	StateFile   *string
	Backend     *string
	MinBarWidth *int
	NoColor     *bool
	Verbose     *bool
}

// Apply applies command line overrides to the configuration
func (o *ConfigOverrides) Apply(config *Config) {
	if o.TargetsFile != nil {
		config.Targets.File = *o.TargetsFile
		// An explicitly named file must exist.
		config.Targets.Required = true
	}
	if o.StateFile != nil {
		config.Storage.File = *o.StateFile
	}
	if o.Backend != nil {
		config.Storage.Backend = *o.Backend
	}
	if o.MinBarWidth != nil {
		config.Display.MinBarWidth = *o.MinBarWidth
	}
	if o.NoColor != nil && *o.NoColor {
		config.Display.Color = ColorNever
	}
	if o.Verbose != nil {
		config.Application.Verbose = *o.Verbose
	}
}
