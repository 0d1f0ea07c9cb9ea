package targets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"week-tracker/internal/domain"
	apperrors "week-tracker/internal/errors"
)

func writeTargets(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "targets.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func assertConfigurationError(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeConfiguration), "got %v", err)
}

func TestRegistry_Default(t *testing.T) {
	ts, err := NewRegistry(domain.DefaultWeek()).Default()
	require.NoError(t, err)

	assert.Equal(t, []string{"AnaDull", "AnaCool", "Helping", "Faff", "CPD", "RTA", "QEE", "Luke", "Meetings"}, ts.Names())
	assert.Equal(t, 34.0, ts.SumHours())
}

func TestRegistry_Load_PreservesOrder(t *testing.T) {
	path := writeTargets(t, "Zeta: 30\nAlpha: 4\n")

	ts, err := NewRegistry(domain.DefaultWeek()).Load(path, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"Zeta", "Alpha"}, ts.Names())

	task, ok := ts.Get("Alpha")
	require.True(t, ok)
	assert.Equal(t, 4.0, task.TargetHours)
}

func TestRegistry_Load_JSON(t *testing.T) {
	path := writeTargets(t, `{"A": 4, "B": 30}`)

	ts, err := NewRegistry(domain.DefaultWeek()).Load(path, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, ts.Names())
}

func TestRegistry_Load_MissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.yaml")
	registry := NewRegistry(domain.DefaultWeek())

	ts, err := registry.Load(missing, false)
	require.NoError(t, err)
	assert.Len(t, ts.Tasks, 9, "falls back to the built-in table")

	_, err = registry.Load(missing, true)
	assertConfigurationError(t, err)

	ts, err = registry.Load("", false)
	require.NoError(t, err)
	assert.Len(t, ts.Tasks, 9)

	_, err = registry.Load("", true)
	assertConfigurationError(t, err)
}

func TestRegistry_SumInvariant(t *testing.T) {
	tests := []struct {
		name    string
		content string
		week    domain.WeekConfig
		valid   bool
	}{
		{
			name:    "4 + 30 + 3.5 lunch is 37.5",
			content: "A: 4\nB: 30\n",
			week:    domain.DefaultWeek(),
			valid:   true,
		},
		{
			name:    "sums to 30 instead of 34",
			content: "A: 4\nB: 26\n",
			week:    domain.DefaultWeek(),
			valid:   false,
		},
		{
			name:    "over by a fraction",
			content: "A: 4\nB: 30.25\n",
			week:    domain.DefaultWeek(),
			valid:   false,
		},
		{
			name:    "fractional targets that add up exactly",
			content: "A: 16.5\nB: 17.5\n",
			week:    domain.DefaultWeek(),
			valid:   true,
		},
		{
			name:    "custom week",
			content: "A: 20\nB: 15\n",
			week:    domain.WeekConfig{WorkingHours: 40, LunchHours: 5, WorkingDays: 5},
			valid:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, err := NewRegistry(tt.week).Load(writeTargets(t, tt.content), true)
			if tt.valid {
				require.NoError(t, err)
				assert.Equal(t, tt.week, ts.Week)
				return
			}
			assertConfigurationError(t, err)
			assert.Contains(t, err.Error(), "not working the correct amount of hours")
		})
	}
}

func TestRegistry_RejectsBadTables(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty file", ""},
		{"not a mapping", "- A\n- B\n"},
		{"non-numeric target", "A: lots\nB: 30\n"},
		{"nested target", "A:\n  hours: 4\nB: 30\n"},
		{"zero target", "A: 0\nB: 34\n"},
		{"negative target", "A: -4\nB: 38\n"},
		{"flag-unsafe name", "\"two words\": 4\nB: 30\n"},
		{"reserved name", "show: 4\nB: 30\n"},
		{"malformed yaml", "A: [4\n"},
	}

	registry := NewRegistry(domain.DefaultWeek(), "show", "clean", "save-to")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := registry.Load(writeTargets(t, tt.content), true)
			assertConfigurationError(t, err)
		})
	}
}

func TestRegistry_ErrorCarriesSource(t *testing.T) {
	path := writeTargets(t, "A: 1\n")

	_, err := NewRegistry(domain.DefaultWeek()).Load(path, true)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)

	assert.Equal(t, path, appErr.Context["source"])
}
