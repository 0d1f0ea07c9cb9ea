package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"week-tracker/internal/config"
	"week-tracker/internal/domain"
	"week-tracker/internal/errors"
	"week-tracker/internal/repository/jsonfile"
	"week-tracker/internal/repository/sqlite"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_SelectsBackend(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		backend string
		file    string
		check   func(t *testing.T, s Store)
	}{
		{backend: "", file: "a.json", check: func(t *testing.T, s Store) { assert.IsType(t, &jsonfile.Store{}, s) }},
		{backend: config.BackendJSON, file: "b.json", check: func(t *testing.T, s Store) { assert.IsType(t, &jsonfile.Store{}, s) }},
		{backend: config.BackendSQLite, file: "c.db", check: func(t *testing.T, s Store) { assert.IsType(t, &sqlite.Store{}, s) }},
	}

	for _, tt := range tests {
		t.Run("backend "+tt.backend, func(t *testing.T) {
			path := filepath.Join(dir, tt.file)
			store, err := Open(tt.backend, path, 0755)
			require.NoError(t, err)
			defer store.Close()

			assert.Equal(t, path, store.Path())
			tt.check(t, store)
		})
	}
}

func TestOpen_UnknownBackend(t *testing.T) {
	_, err := Open("csv", filepath.Join(t.TempDir(), "x"), 0755)
	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeConfiguration))
}

// The reset example: {A: 2.0} reset to 1.5 persists as {A: 1.5} on both backends.
func TestStores_ResetScenario(t *testing.T) {
	targets := domain.NewTargetSet([]domain.Task{domain.NewTask("A", 34)}, domain.DefaultWeek())

	for _, backend := range []string{config.BackendJSON, config.BackendSQLite} {
		t.Run(backend, func(t *testing.T) {
			store, err := Open(backend, filepath.Join(t.TempDir(), "state"), 0755)
			require.NoError(t, err)
			defer store.Close()
			ctx := context.Background()

			state := domain.NewCurrentState(targets)
			state.Set("A", 2*time.Hour)
			require.NoError(t, store.Save(ctx, state))

			loaded, err := store.Load(ctx, targets)
			require.NoError(t, err)
			loaded.Set("A", domain.HoursToDuration(1.5))
			require.NoError(t, store.Save(ctx, loaded))

			final, err := store.Load(ctx, targets)
			require.NoError(t, err)
			assert.Equal(t, 1.5, domain.DurationToHours(final.Get("A")))
		})
	}
}
