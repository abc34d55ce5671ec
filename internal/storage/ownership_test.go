// ABOUTME: Tests that every workout-scoped operation enforces ownership.
// ABOUTME: Foreign rows and missing rows must be indistinguishable to the caller.
package storage

import (
	"context"
	"testing"

	"github.com/harperreed/lift/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCrossUserAccessIsNotFound(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	w, err := db.CreateWorkout(ctx, "alice", "Push", "2024-05-01")
	require.NoError(t, err)
	we := addExercise(t, db, "alice", w.ID, "Bench Press")
	s := addSet(t, db, "alice", we.ID, 5, 80)

	bench, err := db.FindOrCreateExercise(ctx, "Bench Press")
	require.NoError(t, err)

	checks := map[string]func() error{
		"get workout": func() error {
			_, err := db.GetWorkoutByID(ctx, "bob", w.ID)
			return err
		},
		"update workout": func() error {
			_, err := db.UpdateWorkoutForUser(ctx, "bob", w.ID, models.WorkoutUpdate{Name: "X", Date: "2024-05-01"})
			return err
		},
		"delete workout": func() error {
			return db.DeleteWorkoutForUser(ctx, "bob", w.ID)
		},
		"add exercise": func() error {
			_, err := db.AddExerciseToWorkout(ctx, "bob", w.ID, bench.ID)
			return err
		},
		"remove exercise": func() error {
			return db.RemoveExerciseFromWorkout(ctx, "bob", we.ID)
		},
		"add set": func() error {
			_, err := db.AddSetToWorkoutExercise(ctx, "bob", we.ID, 5, 80)
			return err
		},
		"update set": func() error {
			_, err := db.UpdateSetForUser(ctx, "bob", s.ID, models.SetUpdate{}.WithCompleted(true))
			return err
		},
		"remove set": func() error {
			return db.RemoveSetForUser(ctx, "bob", s.ID)
		},
	}

	for name, call := range checks {
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, call(), ErrNotFound)
		})
	}

	// Alice's data is untouched.
	got, err := db.GetWorkoutByID(ctx, "alice", w.ID)
	require.NoError(t, err)
	assert.Equal(t, "Push", got.Name)
	require.Len(t, got.WorkoutExercises, 1)
	require.Len(t, got.WorkoutExercises[0].Sets, 1)
	assert.False(t, got.WorkoutExercises[0].Sets[0].Completed)
}

func TestForeignAndMissingErrorsMatch(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	w, err := db.CreateWorkout(ctx, "alice", "Push", "2024-05-01")
	require.NoError(t, err)

	_, foreign := db.GetWorkoutByID(ctx, "bob", w.ID)
	_, missing := db.GetWorkoutByID(ctx, "bob", w.ID+1000)
	require.Error(t, foreign)
	require.Error(t, missing)
	assert.Equal(t, missing.Error(), foreign.Error())
}

func TestAddExerciseUnknownCatalogID(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	w, err := db.CreateWorkout(ctx, "alice", "Push", "2024-05-01")
	require.NoError(t, err)

	_, err = db.AddExerciseToWorkout(ctx, "alice", w.ID, 4242)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 0, countRows(t, db, "SELECT COUNT(*) FROM workout_exercises"))
}

func TestNonPositiveIDsAreInvalid(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	_, err := db.GetWorkoutByID(ctx, "alice", 0)
	assert.ErrorIs(t, err, ErrInvalid)
	_, err = db.AddSetToWorkoutExercise(ctx, "alice", -3, 5, 10)
	assert.ErrorIs(t, err, ErrInvalid)
	err = db.RemoveSetForUser(ctx, "alice", 0)
	assert.ErrorIs(t, err, ErrInvalid)
	err = db.RemoveExerciseFromWorkout(ctx, "", 1)
	assert.ErrorIs(t, err, ErrInvalid)
}
