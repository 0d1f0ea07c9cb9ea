// Package sqlite stores the weekly state in a SQLite database, one row per
// task.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"week-tracker/internal/domain"
	"week-tracker/internal/errors"
	"week-tracker/internal/logging"
	"week-tracker/internal/validation"
	"week-tracker/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// hoursCheck rejects stored hours that are negative, non-finite or too large
// for a duration.
var hoursCheck = validation.NewValidator()

const (
	selectTaskHours = `SELECT task_name, hours, updated_at FROM task_hours`

	upsertTaskHours = `
	INSERT INTO task_hours (task_name, hours, updated_at)
	VALUES (?, ?, ?)
	ON CONFLICT(task_name) DO UPDATE SET
		hours = excluded.hours,
		updated_at = excluded.updated_at`
)

// Store is a SQLite backed state store.
type Store struct {
	db   *sql.DB
	path string
	now  func() time.Time
}

// Open opens (creating if needed) the database at path and applies pending
// migrations. A file that is not a usable database is a state error.
func Open(path string, dirPerm os.FileMode) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return nil, HandleDatabaseError("create directory for", path, err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, HandleDatabaseError("open", path, err)
	}

	if err := migrations.RunMigrations(context.Background(), db); err != nil {
		db.Close()
		return nil, errors.NewStateError(path, "is not a usable database", err)
	}

	return &Store{db: db, path: path, now: time.Now}, nil
}

// Path returns the database file.
func (s *Store) Path() string {
	return s.path
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

// Load reads every row for a configured task. Rows for other task names are
// skipped and configured tasks without a row stay at zero.
func (s *Store) Load(ctx context.Context, targets *domain.TargetSet) (*domain.CurrentState, error) {
	rows, err := QueryMultiple(ctx, s.db, selectTaskHours, ScanAllTaskHours)
	if err != nil {
		return nil, errors.NewStateError(s.path, "cannot be read", err)
	}

	state := domain.NewCurrentState(targets)
	for _, row := range rows {
		if !state.Has(row.TaskName) {
			logging.Debugf("ignoring unknown task %q in %s\n", row.TaskName, s.path)
			continue
		}
		if !row.Hours.Valid {
			return nil, errors.NewStateError(s.path, "task "+row.TaskName+" has no hours", nil).
				WithContext("task", row.TaskName)
		}
		h := row.Hours.Float64
		if !hoursCheck.IsNonNegativeHours(h) {
			return nil, errors.NewStateError(s.path, fmt.Sprintf("task %s has invalid hours %v", row.TaskName, h), nil).
				WithContext("task", row.TaskName)
		}
		if !row.UpdatedAt.IsZero() {
			logging.Debugf("%s: %vh, last updated %s\n", row.TaskName, h, FormatTimeForDB(row.UpdatedAt))
		}
		state.Set(row.TaskName, domain.HoursToDuration(h))
	}

	return state, nil
}

// Save upserts every task in one transaction and drops rows for tasks the
// state no longer tracks.
func (s *Store) Save(ctx context.Context, state *domain.CurrentState) error {
	updatedAt := FormatTimeForDB(s.now())
	tasks := state.Tasks()

	err := WithTransaction(ctx, s.db, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, upsertTaskHours)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for _, name := range tasks {
			if _, err := stmt.ExecContext(ctx, name, domain.DurationToHours(state.Get(name)), updatedAt); err != nil {
				return fmt.Errorf("upsert %s: %w", name, err)
			}
		}

		return deleteUntracked(ctx, tx, tasks)
	})
	if err != nil {
		return HandleDatabaseError("write", s.path, err)
	}

	logging.Debugf("wrote %d tasks to %s\n", len(tasks), s.path)
	return nil
}

func deleteUntracked(ctx context.Context, tx *sql.Tx, tasks []string) error {
	if len(tasks) == 0 {
		_, err := tx.ExecContext(ctx, `DELETE FROM task_hours`)
		return err
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(tasks)), ",")
	args := make([]interface{}, len(tasks))
	for i, name := range tasks {
		args[i] = name
	}

	_, err := tx.ExecContext(ctx, `DELETE FROM task_hours WHERE task_name NOT IN (`+placeholders+`)`, args...)
	return err
}
