// ABOUTME: Tests for the shared exercise catalog.
// ABOUTME: Covers find-or-create convergence, prefix search and delete restrictions.
package storage

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindOrCreateExerciseIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	first, err := db.FindOrCreateExercise(ctx, "Bench Press")
	require.NoError(t, err)
	second, err := db.FindOrCreateExercise(ctx, "  Bench Press  ")
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Bench Press", second.Name)
	assert.Equal(t, 1, countRows(t, db, "SELECT COUNT(*) FROM exercises"))
}

func TestFindOrCreateExerciseIsCaseSensitive(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	upper, err := db.FindOrCreateExercise(ctx, "Squat")
	require.NoError(t, err)
	lower, err := db.FindOrCreateExercise(ctx, "squat")
	require.NoError(t, err)

	assert.NotEqual(t, upper.ID, lower.ID)
}

func TestFindOrCreateExerciseRejectsBadNames(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	for _, name := range []string{"", "   ", "\t\n"} {
		_, err := db.FindOrCreateExercise(ctx, name)
		assert.ErrorIs(t, err, ErrInvalid, "name %q", name)
	}
	assert.Equal(t, 0, countRows(t, db, "SELECT COUNT(*) FROM exercises"))
}

func TestFindOrCreateExerciseConcurrent(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	const workers = 16
	ids := make([]int64, workers)
	errs := make([]error, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			e, err := db.FindOrCreateExercise(ctx, "Overhead Press")
			errs[i] = err
			if e != nil {
				ids[i] = e.ID
			}
		}(i)
	}
	wg.Wait()

	for i := 0; i < workers; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, ids[0], ids[i])
	}
	assert.Equal(t, 1, countRows(t, db, "SELECT COUNT(*) FROM exercises WHERE name = 'Overhead Press'"))
}

func TestGetExercise(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	e, err := db.FindOrCreateExercise(ctx, "Row")
	require.NoError(t, err)

	got, err := db.GetExercise(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, "Row", got.Name)

	_, err = db.GetExercise(ctx, 9999)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = db.GetExercise(ctx, 0)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestListExercises(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	for _, name := range []string{"Squat", "Bench Press", "Back Squat", "Bent Row", "100%_Effort"} {
		_, err := db.FindOrCreateExercise(ctx, name)
		require.NoError(t, err)
	}

	all, err := db.ListExercises(ctx, "", 0)
	require.NoError(t, err)
	require.Len(t, all, 5)
	assert.Equal(t, "100%_Effort", all[0].Name)
	assert.Equal(t, "Squat", all[4].Name)

	b, err := db.ListExercises(ctx, "b", 0)
	require.NoError(t, err)
	var names []string
	for _, e := range b {
		names = append(names, e.Name)
	}
	assert.Equal(t, []string{"Back Squat", "Bench Press", "Bent Row"}, names)

	limited, err := db.ListExercises(ctx, "B", 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)

	// Wildcards in the prefix match literally.
	literal, err := db.ListExercises(ctx, "100%_", 0)
	require.NoError(t, err)
	require.Len(t, literal, 1)
	none, err := db.ListExercises(ctx, "%", 0)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestDeleteExercise(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	w, err := db.CreateWorkout(ctx, "u1", "Push", "2024-05-01")
	require.NoError(t, err)
	we := addExercise(t, db, "u1", w.ID, "Dips")

	err = db.DeleteExercise(ctx, we.ExerciseID)
	assert.ErrorIs(t, err, ErrExerciseInUse)

	require.NoError(t, db.RemoveExerciseFromWorkout(ctx, "u1", we.ID))
	require.NoError(t, db.DeleteExercise(ctx, we.ExerciseID))

	_, err = db.GetExercise(ctx, we.ExerciseID)
	assert.ErrorIs(t, err, ErrNotFound)

	err = db.DeleteExercise(ctx, we.ExerciseID)
	assert.ErrorIs(t, err, ErrNotFound)
}
