// Package repository defines how the weekly state is persisted and selects a
// backend for a configured state path.
package repository

import (
	"context"
	"os"

	"week-tracker/internal/config"
	"week-tracker/internal/domain"
	"week-tracker/internal/errors"
	"week-tracker/internal/repository/jsonfile"
	"week-tracker/internal/repository/sqlite"
)

// Store loads and saves the accumulated time per task.
type Store interface {
	// Load reads the persisted state for the given targets. A store with
	// nothing persisted yet yields an all-zero state.
	Load(ctx context.Context, targets *domain.TargetSet) (*domain.CurrentState, error)

	// Save persists every task in the state, replacing what was there.
	Save(ctx context.Context, state *domain.CurrentState) error

	// Path is the location the store reads from and writes to.
	Path() string

	Close() error
}

// Open returns the store for backend at path. An empty backend selects JSON.
func Open(backend string, path string, dirPerm os.FileMode) (Store, error) {
	switch backend {
	case "", config.BackendJSON:
		return jsonfile.New(path, dirPerm), nil
	case config.BackendSQLite:
		store, err := sqlite.Open(path, dirPerm)
		if err != nil {
			return nil, err
		}
		return store, nil
	default:
		return nil, errors.NewConfigurationError("unknown storage backend "+backend, nil).
			WithContext("backend", backend)
	}
}
