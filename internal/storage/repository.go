// ABOUTME: Repository interface for the workout log store.
// ABOUTME: Every workout-scoped operation takes the authenticated user id first.
package storage

import (
	"context"

	"github.com/harperreed/lift/internal/models"
)

// Repository defines the storage interface for workout data.
// Operations on workout-owned rows resolve the owner server-side and
// return ErrNotFound for rows the user does not own.
type Repository interface {
	// Exercise catalog
	FindOrCreateExercise(ctx context.Context, name string) (*models.Exercise, error)
	GetExercise(ctx context.Context, id int64) (*models.Exercise, error)
	ListExercises(ctx context.Context, prefix string, limit int) ([]*models.Exercise, error)
	DeleteExercise(ctx context.Context, id int64) error

	// Workout operations
	CreateWorkout(ctx context.Context, userID, name, date string) (*models.Workout, error)
	GetWorkoutsByDate(ctx context.Context, userID, date string) ([]*models.Workout, error)
	GetWorkoutByID(ctx context.Context, userID string, id int64) (*models.Workout, error)
	ListWorkouts(ctx context.Context, userID string, limit int) ([]*models.Workout, error)
	UpdateWorkoutForUser(ctx context.Context, userID string, id int64, upd models.WorkoutUpdate) (*models.Workout, error)
	DeleteWorkoutForUser(ctx context.Context, userID string, id int64) error

	// Workout exercise operations
	AddExerciseToWorkout(ctx context.Context, userID string, workoutID, exerciseID int64) (*models.WorkoutExercise, error)
	RemoveExerciseFromWorkout(ctx context.Context, userID string, workoutExerciseID int64) error

	// Set operations
	AddSetToWorkoutExercise(ctx context.Context, userID string, workoutExerciseID int64, reps int, weight float64) (*models.Set, error)
	UpdateSetForUser(ctx context.Context, userID string, setID int64, upd models.SetUpdate) (*models.Set, error)
	RemoveSetForUser(ctx context.Context, userID string, setID int64) error

	// Lifecycle
	Close() error
}

// Compile-time check that DB implements Repository.
var _ Repository = (*DB)(nil)
