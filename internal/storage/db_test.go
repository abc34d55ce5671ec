// ABOUTME: Tests for database initialization and connection settings.
// ABOUTME: Verifies schema creation, XDG paths and per-connection pragmas.
package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenCreatesSchema(t *testing.T) {
	db := setupTestDB(t)

	for _, table := range []string{"workouts", "exercises", "workout_exercises", "sets"} {
		n := countRows(t, db, "SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?", table)
		assert.Equal(t, 1, n, "table %s should exist", table)
	}

	indexes := []string{
		"idx_workouts_user",
		"idx_workouts_user_date",
		"idx_workout_exercises_workout",
		"idx_workout_exercises_exercise",
		"idx_sets_workout_exercise",
	}
	for _, index := range indexes {
		n := countRows(t, db, "SELECT COUNT(*) FROM sqlite_master WHERE type='index' AND name=?", index)
		assert.Equal(t, 1, n, "index %s should exist", index)
	}
}

func TestOpenIsIdempotent(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "lift.db")

	first, err := Open(dbPath)
	require.NoError(t, err)
	w, err := first.CreateWorkout(context.Background(), "u1", "Push", "2024-05-01")
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := Open(dbPath)
	require.NoError(t, err)
	defer second.Close()

	got, err := second.GetWorkoutByID(context.Background(), "u1", w.ID)
	require.NoError(t, err)
	assert.Equal(t, "Push", got.Name)
}

func TestOpenCreatesDirectory(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "nested", "test.db")

	db, err := Open(dbPath)
	require.NoError(t, err)
	defer db.Close()

	_, err = os.Stat(filepath.Dir(dbPath))
	assert.NoError(t, err, "expected directory to be created")
	assert.Equal(t, dbPath, db.Path())
}

func TestDefaultDBPath(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", tmpDir)

	assert.Equal(t, filepath.Join(tmpDir, "lift"), DataDir())
	assert.Equal(t, filepath.Join(tmpDir, "lift", "lift.db"), DefaultDBPath())
}

func TestPragmasApplyToEveryConnection(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	// Hold several connections at once so the pool cannot hand back the same one.
	for i := 0; i < 3; i++ {
		conn, err := db.db.Conn(ctx)
		require.NoError(t, err)
		defer conn.Close()

		var fk int
		require.NoError(t, conn.QueryRowContext(ctx, "PRAGMA foreign_keys").Scan(&fk))
		assert.Equal(t, 1, fk, "foreign_keys on connection %d", i)

		var timeout int
		require.NoError(t, conn.QueryRowContext(ctx, "PRAGMA busy_timeout").Scan(&timeout))
		assert.Equal(t, 5000, timeout, "busy_timeout on connection %d", i)
	}
}
