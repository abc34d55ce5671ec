// ABOUTME: Workout CRUD operations scoped to the owning user.
// ABOUTME: Reads return workouts with nested exercises and sets in ordinal order.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/harperreed/lift/internal/models"
)

const workoutColumns = `id, user_id, name, date, started_at, completed_at, created_at, updated_at`

// CreateWorkout stores a new workout owned by userID.
func (d *DB) CreateWorkout(ctx context.Context, userID, name, date string) (*models.Workout, error) {
	if err := firstErr(checkUser(userID), checkName("workout", name), checkDate(date)); err != nil {
		return nil, err
	}

	w := models.NewWorkout(userID, name, date)
	result, err := d.db.ExecContext(ctx, `
		INSERT INTO workouts (user_id, name, date, started_at, completed_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`,
		w.UserID,
		w.Name,
		w.Date,
		nullTime(w.StartedAt),
		nullTime(w.CompletedAt),
		formatTime(w.CreatedAt),
		formatTime(w.UpdatedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("create workout: %w", err)
	}

	w.ID, err = result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("create workout: %w", err)
	}
	w.WorkoutExercises = []models.WorkoutExercise{}
	return w, nil
}

// GetWorkoutsByDate returns userID's workouts on date, oldest first, fully nested.
func (d *DB) GetWorkoutsByDate(ctx context.Context, userID, date string) ([]*models.Workout, error) {
	if err := firstErr(checkUser(userID), checkDate(date)); err != nil {
		return nil, err
	}

	rows, err := d.db.QueryContext(ctx, `
		SELECT `+workoutColumns+`
		FROM workouts
		WHERE user_id = ? AND date = ?
		ORDER BY id ASC
	`, userID, date)
	if err != nil {
		return nil, fmt.Errorf("get workouts by date: %w", err)
	}
	defer rows.Close()

	workouts, err := scanWorkouts(rows)
	if err != nil {
		return nil, err
	}
	if err := loadNested(ctx, d.db, workouts); err != nil {
		return nil, err
	}
	return workouts, nil
}

// GetWorkoutByID returns one of userID's workouts, fully nested.
func (d *DB) GetWorkoutByID(ctx context.Context, userID string, id int64) (*models.Workout, error) {
	if err := firstErr(checkUser(userID), checkID("workout", id)); err != nil {
		return nil, err
	}
	return getWorkout(ctx, d.db, userID, id)
}

// ListWorkouts returns userID's workouts, most recent date first, fully nested.
// A limit <= 0 means no limit.
func (d *DB) ListWorkouts(ctx context.Context, userID string, limit int) ([]*models.Workout, error) {
	if err := checkUser(userID); err != nil {
		return nil, err
	}

	query := `
		SELECT ` + workoutColumns + `
		FROM workouts
		WHERE user_id = ?
		ORDER BY date DESC, id DESC
	`
	args := []any{userID}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}
	defer rows.Close()

	workouts, err := scanWorkouts(rows)
	if err != nil {
		return nil, err
	}
	if err := loadNested(ctx, d.db, workouts); err != nil {
		return nil, err
	}
	return workouts, nil
}

// UpdateWorkoutForUser renames or re-dates a workout owned by userID.
func (d *DB) UpdateWorkoutForUser(ctx context.Context, userID string, id int64, upd models.WorkoutUpdate) (*models.Workout, error) {
	if err := firstErr(
		checkUser(userID),
		checkID("workout", id),
		checkName("workout", upd.Name),
		checkDate(upd.Date),
	); err != nil {
		return nil, err
	}

	var w *models.Workout
	err := d.withTx(ctx, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, `
			UPDATE workouts
			SET name = ?, date = ?, updated_at = ?
			WHERE id = ? AND user_id = ?
		`, upd.Name, upd.Date, formatTime(time.Now()), id, userID)
		if err != nil {
			return fmt.Errorf("update workout: %w", err)
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("update workout: %w", err)
		}
		if affected == 0 {
			return ErrNotFound
		}

		w, err = getWorkout(ctx, tx, userID, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return w, nil
}

// DeleteWorkoutForUser removes a workout owned by userID together with its
// exercises and sets (cascade delete).
func (d *DB) DeleteWorkoutForUser(ctx context.Context, userID string, id int64) error {
	if err := firstErr(checkUser(userID), checkID("workout", id)); err != nil {
		return err
	}

	result, err := d.db.ExecContext(ctx, "DELETE FROM workouts WHERE id = ? AND user_id = ?", id, userID)
	if err != nil {
		return fmt.Errorf("delete workout: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete workout: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// getWorkout loads one owned workout with its nested children.
func getWorkout(ctx context.Context, q querier, userID string, id int64) (*models.Workout, error) {
	row := q.QueryRowContext(ctx, `
		SELECT `+workoutColumns+`
		FROM workouts
		WHERE id = ? AND user_id = ?
	`, id, userID)

	w, err := scanWorkout(row)
	if err != nil {
		return nil, err
	}
	if err := loadNested(ctx, q, []*models.Workout{w}); err != nil {
		return nil, err
	}
	return w, nil
}

// loadNested attaches workout exercises (by order) with their catalog
// exercise and sets (by set number) to each workout.
func loadNested(ctx context.Context, q querier, workouts []*models.Workout) error {
	if len(workouts) == 0 {
		return nil
	}

	byWorkout := make(map[int64]*models.Workout, len(workouts))
	workoutIDs := make([]any, 0, len(workouts))
	for _, w := range workouts {
		w.WorkoutExercises = []models.WorkoutExercise{}
		byWorkout[w.ID] = w
		workoutIDs = append(workoutIDs, w.ID)
	}

	rows, err := q.QueryContext(ctx, `
		SELECT we.id, we.workout_id, we.exercise_id, we.position, we.created_at,
		       e.id, e.name, e.created_at, e.updated_at
		FROM workout_exercises we
		JOIN exercises e ON e.id = we.exercise_id
		WHERE we.workout_id IN (`+placeholders(len(workoutIDs))+`)
		ORDER BY we.workout_id, we.position ASC, we.id ASC
	`, workoutIDs...)
	if err != nil {
		return fmt.Errorf("load workout exercises: %w", err)
	}

	type slot struct {
		workout *models.Workout
		index   int
	}
	slots := make(map[int64]slot)
	var weIDs []any

	for rows.Next() {
		var we models.WorkoutExercise
		var createdAt, exCreatedAt, exUpdatedAt string
		err := rows.Scan(&we.ID, &we.WorkoutID, &we.ExerciseID, &we.Order, &createdAt,
			&we.Exercise.ID, &we.Exercise.Name, &exCreatedAt, &exUpdatedAt)
		if err != nil {
			rows.Close()
			return fmt.Errorf("scan workout exercise: %w", err)
		}
		we.CreatedAt = parseTime(createdAt)
		we.Exercise.CreatedAt = parseTime(exCreatedAt)
		we.Exercise.UpdatedAt = parseTime(exUpdatedAt)
		we.Sets = []models.Set{}

		w := byWorkout[we.WorkoutID]
		w.WorkoutExercises = append(w.WorkoutExercises, we)
		slots[we.ID] = slot{workout: w, index: len(w.WorkoutExercises) - 1}
		weIDs = append(weIDs, we.ID)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return fmt.Errorf("load workout exercises: %w", err)
	}
	rows.Close()

	if len(weIDs) == 0 {
		return nil
	}

	setRows, err := q.QueryContext(ctx, `
		SELECT `+setColumns+`
		FROM sets
		WHERE workout_exercise_id IN (`+placeholders(len(weIDs))+`)
		ORDER BY set_number ASC, id ASC
	`, weIDs...)
	if err != nil {
		return fmt.Errorf("load sets: %w", err)
	}
	defer setRows.Close()

	for setRows.Next() {
		s, err := scanSetRow(setRows)
		if err != nil {
			return err
		}
		sl := slots[s.WorkoutExerciseID]
		we := &sl.workout.WorkoutExercises[sl.index]
		we.Sets = append(we.Sets, *s)
	}
	return setRows.Err()
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanWorkoutFrom(s scanner) (*models.Workout, error) {
	var w models.Workout
	var startedAt, completedAt sql.NullString
	var createdAt, updatedAt string

	err := s.Scan(&w.ID, &w.UserID, &w.Name, &w.Date, &startedAt, &completedAt, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	w.StartedAt = parseNullTime(startedAt)
	w.CompletedAt = parseNullTime(completedAt)
	w.CreatedAt = parseTime(createdAt)
	w.UpdatedAt = parseTime(updatedAt)
	return &w, nil
}

// scanWorkout scans a single row into a Workout struct.
func scanWorkout(row *sql.Row) (*models.Workout, error) {
	w, err := scanWorkoutFrom(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan workout: %w", err)
	}
	return w, nil
}

// scanWorkouts scans multiple rows into a slice of Workouts.
func scanWorkouts(rows *sql.Rows) ([]*models.Workout, error) {
	workouts := []*models.Workout{}
	for rows.Next() {
		w, err := scanWorkoutFrom(rows)
		if err != nil {
			return nil, fmt.Errorf("scan workout: %w", err)
		}
		workouts = append(workouts, w)
	}
	return workouts, rows.Err()
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?,", n), ",")
}
