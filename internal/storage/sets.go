// ABOUTME: Set operations on a user's workout exercises.
// ABOUTME: Set numbers are one past the current maximum; updates are partial.
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

const setColumns = `id, workout_exercise_id, set_number, reps, weight, completed, created_at`

// AddSetToWorkoutExercise records a new, not yet completed set. Its number
// is 1 + the current maximum for the workout exercise.
func (d *DB) AddSetToWorkoutExercise(ctx context.Context, userID string, workoutExerciseID int64, reps int, weight float64) (*models.Set, error) {
	if err := firstErr(
		checkUser(userID),
		checkID("workout exercise", workoutExerciseID),
		checkReps(reps),
		checkWeight(weight),
	); err != nil {
		return nil, err
	}

	var s *models.Set
	err := d.withTx(ctx, func(tx *sql.Tx) error {
		if err := requireWorkoutExerciseOwner(ctx, tx, userID, workoutExerciseID); err != nil {
			return err
		}

		var maxSetNumber int
		err := tx.QueryRowContext(ctx, `
			SELECT COALESCE(MAX(set_number), 0)
			FROM sets
			WHERE workout_exercise_id = ?
		`, workoutExerciseID).Scan(&maxSetNumber)
		if err != nil {
			return fmt.Errorf("compute next set number: %w", err)
		}

		s = &models.Set{
			WorkoutExerciseID: workoutExerciseID,
			SetNumber:         maxSetNumber + 1,
			Reps:              reps,
			Weight:            weight,
			CreatedAt:         time.Now().UTC(),
		}
		result, err := tx.ExecContext(ctx, `
			INSERT INTO sets (workout_exercise_id, set_number, reps, weight, completed, created_at)
			VALUES (?, ?, ?, ?, ?, ?)
		`, s.WorkoutExerciseID, s.SetNumber, s.Reps, s.Weight, s.Completed, formatTime(s.CreatedAt))
		if err != nil {
			return fmt.Errorf("add set: %w", err)
		}
		s.ID, err = result.LastInsertId()
		if err != nil {
			return fmt.Errorf("add set: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s, nil
}

// UpdateSetForUser changes only the fields supplied in upd.
func (d *DB) UpdateSetForUser(ctx context.Context, userID string, setID int64, upd models.SetUpdate) (*models.Set, error) {
	if err := firstErr(checkUser(userID), checkID("set", setID)); err != nil {
		return nil, err
	}

	var assignments []string
	var args []any
	if upd.Reps != nil {
		if err := checkReps(*upd.Reps); err != nil {
			return nil, err
		}
		assignments = append(assignments, "reps = ?")
		args = append(args, *upd.Reps)
	}
	if upd.Weight != nil {
		if err := checkWeight(*upd.Weight); err != nil {
			return nil, err
		}
		assignments = append(assignments, "weight = ?")
		args = append(args, *upd.Weight)
	}
	if upd.Completed != nil {
		assignments = append(assignments, "completed = ?")
		args = append(args, *upd.Completed)
	}

	var s *models.Set
	err := d.withTx(ctx, func(tx *sql.Tx) error {
		if err := requireSetOwner(ctx, tx, userID, setID); err != nil {
			return err
		}

		if len(assignments) > 0 {
			query := "UPDATE sets SET " + strings.Join(assignments, ", ") + " WHERE id = ?"
			if _, err := tx.ExecContext(ctx, query, append(args, setID)...); err != nil {
				return fmt.Errorf("update set: %w", err)
			}
		}

		var err error
		s, err = getSet(ctx, tx, setID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return s, nil
}

// RemoveSetForUser deletes a set owned (through its workout) by userID.
func (d *DB) RemoveSetForUser(ctx context.Context, userID string, setID int64) error {
	if err := firstErr(checkUser(userID), checkID("set", setID)); err != nil {
		return err
	}

	return d.withTx(ctx, func(tx *sql.Tx) error {
		if err := requireSetOwner(ctx, tx, userID, setID); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, "DELETE FROM sets WHERE id = ?", setID); err != nil {
			return fmt.Errorf("remove set: %w", err)
		}
		return nil
	})
}

func getSet(ctx context.Context, q querier, id int64) (*models.Set, error) {
	row := q.QueryRowContext(ctx, `SELECT `+setColumns+` FROM sets WHERE id = ?`, id)
	s, err := scanSetRow(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return s, err
}

func scanSetRow(s scanner) (*models.Set, error) {
	var set models.Set
	var createdAt string

	err := s.Scan(&set.ID, &set.WorkoutExerciseID, &set.SetNumber, &set.Reps, &set.Weight, &set.Completed, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan set: %w", err)
	}
	set.CreatedAt = parseTime(createdAt)
	return &set, nil
}
