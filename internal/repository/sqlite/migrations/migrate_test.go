package migrations

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func openDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestLoadMigrations(t *testing.T) {
	migrations, err := LoadMigrations()
	require.NoError(t, err)
	require.NotEmpty(t, migrations)

	assert.Equal(t, 1, migrations[0].Version)
	assert.Contains(t, migrations[0].Up, "CREATE TABLE IF NOT EXISTS task_hours")
	for i := 1; i < len(migrations); i++ {
		assert.Less(t, migrations[i-1].Version, migrations[i].Version)
	}
}

func TestRunMigrations_CreatesSchema(t *testing.T) {
	db := openDB(t)
	ctx := context.Background()

	require.NoError(t, RunMigrations(ctx, db))

	_, err := db.Exec("INSERT INTO task_hours (task_name, hours, updated_at) VALUES ('A', 1.5, '2025-01-06T09:00:00Z')")
	require.NoError(t, err)

	applied, err := AppliedVersions(ctx, db)
	require.NoError(t, err)
	assert.True(t, applied[1])
}

func TestRunMigrations_IsIdempotent(t *testing.T) {
	db := openDB(t)
	ctx := context.Background()

	require.NoError(t, RunMigrations(ctx, db))
	require.NoError(t, RunMigrations(ctx, db))

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM migrations").Scan(&count))
	migrations, err := LoadMigrations()
	require.NoError(t, err)
	assert.Equal(t, len(migrations), count)
}

func TestExtractVersion(t *testing.T) {
	assert.Equal(t, 1, extractVersion("000001_create_task_hours.up.sql"))
	assert.Equal(t, 12, extractVersion("000012_x.up.sql"))
	assert.Equal(t, 0, extractVersion("readme.md"))
}
