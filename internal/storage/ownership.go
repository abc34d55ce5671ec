// ABOUTME: Ownership walks from a child row up to its workout's owner.
// ABOUTME: Ids supplied by callers are never trusted; the owner is always re-derived.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// requireWorkoutOwner checks that workout id belongs to userID.
func requireWorkoutOwner(ctx context.Context, q querier, userID string, workoutID int64) error {
	return requireRow(ctx, q, "workout", `
		SELECT w.id
		FROM workouts w
		WHERE w.id = ? AND w.user_id = ?
	`, workoutID, userID)
}

// requireWorkoutExerciseOwner walks workout exercise -> workout.
func requireWorkoutExerciseOwner(ctx context.Context, q querier, userID string, workoutExerciseID int64) error {
	return requireRow(ctx, q, "workout exercise", `
		SELECT we.id
		FROM workout_exercises we
		JOIN workouts w ON w.id = we.workout_id
		WHERE we.id = ? AND w.user_id = ?
	`, workoutExerciseID, userID)
}

// requireSetOwner walks set -> workout exercise -> workout.
func requireSetOwner(ctx context.Context, q querier, userID string, setID int64) error {
	return requireRow(ctx, q, "set", `
		SELECT s.id
		FROM sets s
		JOIN workout_exercises we ON we.id = s.workout_exercise_id
		JOIN workouts w ON w.id = we.workout_id
		WHERE s.id = ? AND w.user_id = ?
	`, setID, userID)
}

func requireRow(ctx context.Context, q querier, kind, query string, id int64, userID string) error {
	var found int64
	err := q.QueryRowContext(ctx, query, id, userID).Scan(&found)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("check %s ownership: %w", kind, err)
	}
	return nil
}
