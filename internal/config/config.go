package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Storage backends understood by the state store factory.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// Colour modes for bar output.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds all configuration options for the weekly tracker
type Config struct {
	Storage     StorageConfig
	Targets     TargetsConfig
	Week        WeekConfig
	Display     DisplayConfig
	Application ApplicationConfig
}

// StorageConfig holds state persistence configuration
type StorageConfig struct {
	Dir            string `env:"WT_STATE_DIR"`
	File           string `env:"WT_STATE_FILE"`
	Backend        string `env:"WT_STORE"`
	DirPermissions uint32 `env:"WT_STATE_DIR_PERMISSIONS"`
}

// TargetsConfig holds the location of the target table
type TargetsConfig struct {
	File     string `env:"WT_TARGETS_FILE"`
	Required bool   `env:"WT_TARGETS_REQUIRED"`
}

// WeekConfig holds the working week the targets must add up to
type WeekConfig struct {
	WorkingHours float64 `env:"WT_WEEK_WORKING_HOURS"`
	LunchHours   float64 `env:"WT_WEEK_LUNCH_HOURS"`
	WorkingDays  int     `env:"WT_WEEK_WORKING_DAYS"`
}

// DisplayConfig holds bar rendering configuration
type DisplayConfig struct {
	MinBarWidth int    `env:"WT_DISPLAY_MIN_BAR_WIDTH"`
	FillGlyph   string `env:"WT_DISPLAY_FILL_GLYPH"`
	EmptyGlyph  string `env:"WT_DISPLAY_EMPTY_GLYPH"`
	Color       string `env:"WT_DISPLAY_COLOR"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration `env:"WT_APP_TIMEOUT"`
	Verbose bool          `env:"WT_APP_VERBOSE"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	defaultDir := filepath.Join(homeDir, ".wt")

	return &Config{
		Storage: StorageConfig{
			Dir:            defaultDir,
			Backend:        BackendJSON,
			DirPermissions: 0755,
		},
		Targets: TargetsConfig{
			File: filepath.Join(defaultDir, "targets.yaml"),
		},
		Week: WeekConfig{
			WorkingHours: 37.5,
			LunchHours:   3.5,
			WorkingDays:  5,
		},
		Display: DisplayConfig{
			MinBarWidth: 20,
			FillGlyph:   "█",
			EmptyGlyph:  "-",
			Color:       ColorAuto,
		},
		Application: ApplicationConfig{
			Timeout: 30 * time.Second,
			Verbose: false,
		},
	}
}

// GetStatePath returns the primary state file path. An explicit file wins
// over the directory default, whose name depends on the backend.
func (c *Config) GetStatePath() string {
	if c.Storage.File != "" {
		return c.Storage.File
	}
	return filepath.Join(c.Storage.Dir, DefaultStateFilename(c.Storage.Backend))
}

// DefaultStateFilename returns the state file name used for a backend.
func DefaultStateFilename(backend string) string {
	if backend == BackendSQLite {
		return "time_tracking.db"
	}
	return "time_tracking.json"
}

// LoadFromEnvironment loads configuration from environment variables.
// Unparseable values are ignored and the previous value is kept.
func (c *Config) LoadFromEnvironment() error {
	// Storage configuration
	if dir := os.Getenv("WT_STATE_DIR"); dir != "" {
		c.Storage.Dir = dir
	}
	if file := os.Getenv("WT_STATE_FILE"); file != "" {
		c.Storage.File = file
	}
	if backend := os.Getenv("WT_STORE"); backend != "" {
		c.Storage.Backend = backend
	}
	if perms := os.Getenv("WT_STATE_DIR_PERMISSIONS"); perms != "" {
		c.Storage.DirPermissions = ParseUint32WithFallback(perms, 8, c.Storage.DirPermissions)
	}

	// Targets configuration
	if file := os.Getenv("WT_TARGETS_FILE"); file != "" {
		c.Targets.File = file
	}
	if required := os.Getenv("WT_TARGETS_REQUIRED"); required != "" {
		c.Targets.Required = ParseBoolWithFallback(required, c.Targets.Required)
	}

	// Week configuration
	if hours := os.Getenv("WT_WEEK_WORKING_HOURS"); hours != "" {
		c.Week.WorkingHours = ParseFloatWithFallback(hours, c.Week.WorkingHours)
	}
	if lunch := os.Getenv("WT_WEEK_LUNCH_HOURS"); lunch != "" {
		c.Week.LunchHours = ParseFloatWithFallback(lunch, c.Week.LunchHours)
	}
	if days := os.Getenv("WT_WEEK_WORKING_DAYS"); days != "" {
		c.Week.WorkingDays = ParseIntWithFallback(days, c.Week.WorkingDays)
	}

	// Display configuration
	if width := os.Getenv("WT_DISPLAY_MIN_BAR_WIDTH"); width != "" {
		c.Display.MinBarWidth = ParseIntWithFallback(width, c.Display.MinBarWidth)
	}
	if glyph := os.Getenv("WT_DISPLAY_FILL_GLYPH"); glyph != "" {
		c.Display.FillGlyph = glyph
	}
	if glyph := os.Getenv("WT_DISPLAY_EMPTY_GLYPH"); glyph != "" {
		c.Display.EmptyGlyph = glyph
	}
	if color := os.Getenv("WT_DISPLAY_COLOR"); color != "" {
		c.Display.Color = color
	}
	if os.Getenv("NO_COLOR") != "" {
		c.Display.Color = ColorNever
	}

	// Application configuration
	if timeout := os.Getenv("WT_APP_TIMEOUT"); timeout != "" {
		c.Application.Timeout = ParseDurationWithFallback(timeout, c.Application.Timeout)
	}
	if verbose := os.Getenv("WT_APP_VERBOSE"); verbose != "" {
		c.Application.Verbose = ParseBoolWithFallback(verbose, c.Application.Verbose)
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	// Validate storage configuration
	if c.Storage.File == "" && c.Storage.Dir == "" {
		return &ConfigError{Field: "storage.dir", Message: "state directory cannot be empty"}
	}
	if c.Storage.Backend != BackendJSON && c.Storage.Backend != BackendSQLite {
		return &ConfigError{Field: "storage.backend", Message: "backend must be " + BackendJSON + " or " + BackendSQLite}
	}

	// Validate week configuration
	if c.Week.WorkingHours <= 0 {
		return &ConfigError{Field: "week.working_hours", Message: "working hours must be positive"}
	}
	if c.Week.LunchHours < 0 || c.Week.LunchHours >= c.Week.WorkingHours {
		return &ConfigError{Field: "week.lunch_hours", Message: "lunch hours must be between 0 and the working hours"}
	}
	if c.Week.WorkingDays < 1 || c.Week.WorkingDays > 7 {
		return &ConfigError{Field: "week.working_days", Message: "working days must be between 1 and 7"}
	}

	// Validate display configuration
	if c.Display.MinBarWidth < 1 {
		return &ConfigError{Field: "display.min_bar_width", Message: "minimum bar width must be at least 1"}
	}
	if c.Display.FillGlyph == "" || c.Display.EmptyGlyph == "" {
		return &ConfigError{Field: "display.glyphs", Message: "bar glyphs cannot be empty"}
	}
	switch c.Display.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return &ConfigError{Field: "display.color", Message: "color must be auto, always or never"}
	}

	// Validate application configuration
	if c.Application.Timeout <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "application timeout must be positive"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}

// ParseDurationWithFallback parses a duration string with a fallback value
func ParseDurationWithFallback(s string, fallback time.Duration) time.Duration {
	if d, err := time.ParseDuration(s); err == nil {
		return d
	}
	return fallback
}

// ParseIntWithFallback parses an integer string with a fallback value
func ParseIntWithFallback(s string, fallback int) int {
	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	return fallback
}

// ParseFloatWithFallback parses a float string with a fallback value
func ParseFloatWithFallback(s string, fallback float64) float64 {
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return fallback
}

// ParseBoolWithFallback parses a boolean string with a fallback value
func ParseBoolWithFallback(s string, fallback bool) bool {
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	return fallback
}

// ParseUint32WithFallback parses a uint32 string with a fallback value
func ParseUint32WithFallback(s string, base int, fallback uint32) uint32 {
	if u, err := strconv.ParseUint(s, base, 32); err == nil {
		return uint32(u)
	}
	return fallback
}
