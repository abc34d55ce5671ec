// ABOUTME: Action layer: the user-facing entry points for workout logging.
// ABOUTME: Each action requires an identity in the context, validates input and forwards to the store.
package actions

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/harperreed/lift/internal/auth"
	"github.com/harperreed/lift/internal/models"
	"github.com/harperreed/lift/internal/storage"
	"go.uber.org/zap"
)

// Service exposes workout actions for the user carried in each call's context.
type Service struct {
	repo     storage.Repository
	logger   *zap.Logger
	validate *validator.Validate
}

// New returns a Service backed by repo. A nil logger disables logging.
func New(repo storage.Repository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		repo:     repo,
		logger:   logger.Named("actions"),
		validate: newValidator(),
	}
}

// user returns the authenticated user id or ErrUnauthorized.
func (s *Service) user(ctx context.Context) (string, error) {
	userID, ok := auth.UserFromContext(ctx)
	if !ok {
		return "", ErrUnauthorized
	}
	return userID, nil
}

// check resolves the caller and validates in, in that order.
func (s *Service) check(ctx context.Context, in any) (string, error) {
	userID, err := s.user(ctx)
	if err != nil {
		return "", err
	}
	if err := s.validate.Struct(in); err != nil {
		return "", newValidationError(err)
	}
	return userID, nil
}

// CreateWorkout starts a new workout named name on date (YYYY-MM-DD).
func (s *Service) CreateWorkout(ctx context.Context, name, date string) (*models.Workout, error) {
	in := workoutInput{Name: strings.TrimSpace(name), Date: strings.TrimSpace(date)}
	userID, err := s.check(ctx, in)
	if err != nil {
		return nil, err
	}

	w, err := s.repo.CreateWorkout(ctx, userID, in.Name, in.Date)
	if err != nil {
		return nil, err
	}
	s.logger.Info("workout created", zap.String("user", userID), zap.Int64("workout_id", w.ID), zap.String("date", w.Date))
	return w, nil
}

// UpdateWorkout renames or re-dates one of the caller's workouts.
func (s *Service) UpdateWorkout(ctx context.Context, id int64, name, date string) (*models.Workout, error) {
	in := updateWorkoutInput{ID: id, Name: strings.TrimSpace(name), Date: strings.TrimSpace(date)}
	userID, err := s.check(ctx, in)
	if err != nil {
		return nil, err
	}

	w, err := s.repo.UpdateWorkoutForUser(ctx, userID, id, models.WorkoutUpdate{Name: in.Name, Date: in.Date})
	if err != nil {
		return nil, err
	}
	s.logger.Info("workout updated", zap.String("user", userID), zap.Int64("workout_id", id))
	return w, nil
}

// DeleteWorkout removes one of the caller's workouts with everything in it.
func (s *Service) DeleteWorkout(ctx context.Context, id int64) error {
	userID, err := s.check(ctx, idInput{ID: id})
	if err != nil {
		return err
	}

	if err := s.repo.DeleteWorkoutForUser(ctx, userID, id); err != nil {
		return err
	}
	s.logger.Info("workout deleted", zap.String("user", userID), zap.Int64("workout_id", id))
	return nil
}

// WorkoutsByDate returns the caller's workouts on date.
func (s *Service) WorkoutsByDate(ctx context.Context, date string) ([]*models.Workout, error) {
	in := dateInput{Date: strings.TrimSpace(date)}
	userID, err := s.check(ctx, in)
	if err != nil {
		return nil, err
	}
	return s.repo.GetWorkoutsByDate(ctx, userID, in.Date)
}

// Workout returns one of the caller's workouts.
func (s *Service) Workout(ctx context.Context, id int64) (*models.Workout, error) {
	userID, err := s.check(ctx, idInput{ID: id})
	if err != nil {
		return nil, err
	}
	return s.repo.GetWorkoutByID(ctx, userID, id)
}

// RecentWorkouts returns up to limit of the caller's workouts, newest first.
// A limit of 0 means DefaultRecentLimit.
func (s *Service) RecentWorkouts(ctx context.Context, limit int) ([]*models.Workout, error) {
	if limit == 0 {
		limit = DefaultRecentLimit
	}
	userID, err := s.check(ctx, limitInput{Limit: limit})
	if err != nil {
		return nil, err
	}
	return s.repo.ListWorkouts(ctx, userID, limit)
}

// AddExercise appends the catalog exercise called name to one of the
// caller's workouts, creating the catalog entry if it is new.
func (s *Service) AddExercise(ctx context.Context, workoutID int64, name string) (*models.WorkoutExercise, error) {
	in := addExerciseInput{WorkoutID: workoutID, Name: models.NormalizeExerciseName(name)}
	userID, err := s.check(ctx, in)
	if err != nil {
		return nil, err
	}

	exercise, err := s.repo.FindOrCreateExercise(ctx, in.Name)
	if err != nil {
		return nil, err
	}
	we, err := s.repo.AddExerciseToWorkout(ctx, userID, workoutID, exercise.ID)
	if err != nil {
		return nil, err
	}
	s.logger.Info("exercise added",
		zap.String("user", userID),
		zap.Int64("workout_id", workoutID),
		zap.Int64("workout_exercise_id", we.ID),
		zap.String("exercise", exercise.Name),
		zap.Int("order", we.Order))
	return we, nil
}

// RemoveExercise drops an exercise (and its sets) from the caller's workout.
func (s *Service) RemoveExercise(ctx context.Context, workoutExerciseID int64) error {
	userID, err := s.check(ctx, idInput{ID: workoutExerciseID})
	if err != nil {
		return err
	}

	if err := s.repo.RemoveExerciseFromWorkout(ctx, userID, workoutExerciseID); err != nil {
		return err
	}
	s.logger.Info("exercise removed", zap.String("user", userID), zap.Int64("workout_exercise_id", workoutExerciseID))
	return nil
}

// AddSet records a set of reps at weight against a workout exercise.
func (s *Service) AddSet(ctx context.Context, workoutExerciseID int64, reps int, weight float64) (*models.Set, error) {
	userID, err := s.check(ctx, addSetInput{WorkoutExerciseID: workoutExerciseID, Reps: reps, Weight: weight})
	if err != nil {
		return nil, err
	}

	set, err := s.repo.AddSetToWorkoutExercise(ctx, userID, workoutExerciseID, reps, weight)
	if err != nil {
		return nil, err
	}
	s.logger.Info("set added",
		zap.String("user", userID),
		zap.Int64("workout_exercise_id", workoutExerciseID),
		zap.Int64("set_id", set.ID),
		zap.Int("set_number", set.SetNumber))
	return set, nil
}

// UpdateSet applies the fields present in upd to one of the caller's sets.
func (s *Service) UpdateSet(ctx context.Context, setID int64, upd models.SetUpdate) (*models.Set, error) {
	userID, err := s.check(ctx, updateSetInput{ID: setID, Reps: upd.Reps, Weight: upd.Weight})
	if err != nil {
		return nil, err
	}

	set, err := s.repo.UpdateSetForUser(ctx, userID, setID, upd)
	if err != nil {
		return nil, err
	}
	s.logger.Info("set updated", zap.String("user", userID), zap.Int64("set_id", setID))
	return set, nil
}

// RemoveSet deletes one of the caller's sets.
func (s *Service) RemoveSet(ctx context.Context, setID int64) error {
	userID, err := s.check(ctx, idInput{ID: setID})
	if err != nil {
		return err
	}

	if err := s.repo.RemoveSetForUser(ctx, userID, setID); err != nil {
		return err
	}
	s.logger.Info("set removed", zap.String("user", userID), zap.Int64("set_id", setID))
	return nil
}

// Exercises searches the shared catalog by name prefix. A limit of 0 means no limit.
func (s *Service) Exercises(ctx context.Context, prefix string, limit int) ([]*models.Exercise, error) {
	if _, err := s.check(ctx, exercisesInput{Prefix: prefix, Limit: limit}); err != nil {
		return nil, err
	}
	return s.repo.ListExercises(ctx, prefix, limit)
}

// ForgetExercise removes an unused exercise from the shared catalog.
func (s *Service) ForgetExercise(ctx context.Context, exerciseID int64) error {
	userID, err := s.check(ctx, idInput{ID: exerciseID})
	if err != nil {
		return err
	}

	if err := s.repo.DeleteExercise(ctx, exerciseID); err != nil {
		return err
	}
	s.logger.Info("exercise forgotten", zap.String("user", userID), zap.Int64("exercise_id", exerciseID))
	return nil
}
