// ABOUTME: Adding and removing catalog exercises on a user's workout.
// ABOUTME: Order is assigned as one past the current maximum inside the workout.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/harperreed/lift/internal/models"
)

// AddExerciseToWorkout appends a catalog exercise to a workout owned by
// userID. The new row's order is 1 + the workout's current maximum; orders
// are never reused, so removals leave gaps.
func (d *DB) AddExerciseToWorkout(ctx context.Context, userID string, workoutID, exerciseID int64) (*models.WorkoutExercise, error) {
	if err := firstErr(checkUser(userID), checkID("workout", workoutID), checkID("exercise", exerciseID)); err != nil {
		return nil, err
	}

	var we *models.WorkoutExercise
	err := d.withTx(ctx, func(tx *sql.Tx) error {
		if err := requireWorkoutOwner(ctx, tx, userID, workoutID); err != nil {
			return err
		}

		exercise, err := getExercise(ctx, tx, exerciseID)
		if err != nil {
			return err
		}

		var maxOrder int
		err = tx.QueryRowContext(ctx, `
			SELECT COALESCE(MAX(position), 0)
			FROM workout_exercises
			WHERE workout_id = ?
		`, workoutID).Scan(&maxOrder)
		if err != nil {
			return fmt.Errorf("compute next order: %w", err)
		}

		we = &models.WorkoutExercise{
			WorkoutID:  workoutID,
			ExerciseID: exerciseID,
			Order:      maxOrder + 1,
			CreatedAt:  time.Now().UTC(),
			Exercise:   *exercise,
			Sets:       []models.Set{},
		}
		result, err := tx.ExecContext(ctx, `
			INSERT INTO workout_exercises (workout_id, exercise_id, position, created_at)
			VALUES (?, ?, ?, ?)
		`, we.WorkoutID, we.ExerciseID, we.Order, formatTime(we.CreatedAt))
		if err != nil {
			return fmt.Errorf("add exercise to workout: %w", err)
		}
		we.ID, err = result.LastInsertId()
		if err != nil {
			return fmt.Errorf("add exercise to workout: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return we, nil
}

// RemoveExerciseFromWorkout deletes a workout exercise (and its sets) after
// walking up to the workout to confirm userID owns it.
func (d *DB) RemoveExerciseFromWorkout(ctx context.Context, userID string, workoutExerciseID int64) error {
	if err := firstErr(checkUser(userID), checkID("workout exercise", workoutExerciseID)); err != nil {
		return err
	}

	return d.withTx(ctx, func(tx *sql.Tx) error {
		if err := requireWorkoutExerciseOwner(ctx, tx, userID, workoutExerciseID); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, "DELETE FROM workout_exercises WHERE id = ?", workoutExerciseID); err != nil {
			return fmt.Errorf("remove exercise from workout: %w", err)
		}
		return nil
	})
}
