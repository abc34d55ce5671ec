// ABOUTME: Exercise catalog operations: find-or-create, lookup, listing and delete.
// ABOUTME: Concurrent find-or-create calls for one name converge on a single row.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/harperreed/lift/internal/models"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// FindOrCreateExercise returns the catalog exercise named name (trimmed),
// inserting it first if needed. The insert ignores a name conflict and the
// canonical row is always re-read, so whichever caller wins the insert every
// caller gets the same id.
func (d *DB) FindOrCreateExercise(ctx context.Context, name string) (*models.Exercise, error) {
	name = models.NormalizeExerciseName(name)
	if err := checkName("exercise", name); err != nil {
		return nil, err
	}

	now := formatTime(time.Now())
	_, err := d.db.ExecContext(ctx, `
		INSERT INTO exercises (name, created_at, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(name) DO NOTHING
	`, name, now, now)
	if err != nil {
		return nil, fmt.Errorf("insert exercise: %w", err)
	}

	e, err := scanExercise(d.db.QueryRowContext(ctx, `
		SELECT id, name, created_at, updated_at
		FROM exercises
		WHERE name = ?
	`, name))
	if errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("%w: exercise %q missing after insert", ErrConsistency, name)
	}
	return e, err
}

// GetExercise retrieves a catalog exercise by id.
func (d *DB) GetExercise(ctx context.Context, id int64) (*models.Exercise, error) {
	if err := checkID("exercise", id); err != nil {
		return nil, err
	}
	return getExercise(ctx, d.db, id)
}

// ListExercises returns catalog exercises whose name starts with prefix
// (case-insensitive for ASCII), sorted by name. A limit <= 0 means no limit.
func (d *DB) ListExercises(ctx context.Context, prefix string, limit int) ([]*models.Exercise, error) {
	query := `
		SELECT id, name, created_at, updated_at
		FROM exercises
		WHERE name LIKE ? ESCAPE '\'
		ORDER BY name ASC
	`
	args := []any{escapeLike(strings.TrimSpace(prefix)) + "%"}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}
	defer rows.Close()

	var exercises []*models.Exercise
	for rows.Next() {
		var e models.Exercise
		var createdAt, updatedAt string
		if err := rows.Scan(&e.ID, &e.Name, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("scan exercise: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		e.UpdatedAt = parseTime(updatedAt)
		exercises = append(exercises, &e)
	}
	return exercises, rows.Err()
}

// DeleteExercise removes an exercise from the catalog. It fails with
// ErrExerciseInUse while any workout still references it.
func (d *DB) DeleteExercise(ctx context.Context, id int64) error {
	if err := checkID("exercise", id); err != nil {
		return err
	}

	result, err := d.db.ExecContext(ctx, "DELETE FROM exercises WHERE id = ?", id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("delete exercise %d: %w", id, ErrExerciseInUse)
		}
		return fmt.Errorf("delete exercise: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete exercise: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func getExercise(ctx context.Context, q querier, id int64) (*models.Exercise, error) {
	return scanExercise(q.QueryRowContext(ctx, `
		SELECT id, name, created_at, updated_at
		FROM exercises
		WHERE id = ?
	`, id))
}

func scanExercise(row *sql.Row) (*models.Exercise, error) {
	var e models.Exercise
	var createdAt, updatedAt string

	if err := row.Scan(&e.ID, &e.Name, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan exercise: %w", err)
	}
	e.CreatedAt = parseTime(createdAt)
	e.UpdatedAt = parseTime(updatedAt)
	return &e, nil
}

// isForeignKeyViolation reports whether err is SQLite's foreign key constraint failure.
func isForeignKeyViolation(err error) bool {
	var sqliteErr *sqlite.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	code := sqliteErr.Code()
	if code == sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY {
		return true
	}
	return code&0xff == sqlite3.SQLITE_CONSTRAINT && strings.Contains(sqliteErr.Error(), "FOREIGN KEY")
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
