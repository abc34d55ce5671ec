// ABOUTME: Workout, WorkoutExercise and Set models for strength training logs.
// ABOUTME: Workouts nest their exercises in entry order and each exercise nests its sets.
package models

import (
	"time"
)

// MaxNameLength bounds workout and exercise names.
const MaxNameLength = 256

// Workout is a dated training session owned by exactly one user.
type Workout struct {
	ID          int64      `json:"id" yaml:"id"`
	UserID      string     `json:"user_id" yaml:"user_id"`
	Name        string     `json:"name" yaml:"name"`
	Date        string     `json:"date" yaml:"date"`
	StartedAt   *time.Time `json:"started_at,omitempty" yaml:"started_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty" yaml:"completed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at" yaml:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" yaml:"updated_at"`

	// Populated by nested reads, ordered by Order ascending.
	WorkoutExercises []WorkoutExercise `json:"workout_exercises" yaml:"workout_exercises"`
}

// NewWorkout creates an unsaved Workout for userID on the given calendar date.
func NewWorkout(userID, name, date string) *Workout {
	now := time.Now().UTC()
	return &Workout{
		UserID:    userID,
		Name:      name,
		Date:      date,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// WithStartedAt sets the session start timestamp.
func (w *Workout) WithStartedAt(t time.Time) *Workout {
	w.StartedAt = &t
	return w
}

// WithCompletedAt sets the session completion timestamp.
func (w *Workout) WithCompletedAt(t time.Time) *Workout {
	w.CompletedAt = &t
	return w
}

// SetCount returns the number of sets across all exercises.
func (w *Workout) SetCount() int {
	n := 0
	for _, we := range w.WorkoutExercises {
		n += len(we.Sets)
	}
	return n
}

// WorkoutExercise links a catalog Exercise into a Workout.
type WorkoutExercise struct {
	ID         int64     `json:"id" yaml:"id"`
	WorkoutID  int64     `json:"workout_id" yaml:"workout_id"`
	ExerciseID int64     `json:"exercise_id" yaml:"exercise_id"`
	Order      int       `json:"order" yaml:"order"`
	CreatedAt  time.Time `json:"created_at" yaml:"created_at"`

	Exercise Exercise `json:"exercise" yaml:"exercise"`
	Sets     []Set    `json:"sets" yaml:"sets"` // ordered by SetNumber ascending
}

// Set is one performed unit of an exercise.
type Set struct {
	ID                int64     `json:"id" yaml:"id"`
	WorkoutExerciseID int64     `json:"workout_exercise_id" yaml:"workout_exercise_id"`
	SetNumber         int       `json:"set_number" yaml:"set_number"`
	Reps              int       `json:"reps" yaml:"reps"`
	Weight            float64   `json:"weight" yaml:"weight"`
	Completed         bool      `json:"completed" yaml:"completed"`
	CreatedAt         time.Time `json:"created_at" yaml:"created_at"`
}

// Volume returns reps times weight.
func (s Set) Volume() float64 {
	return float64(s.Reps) * s.Weight
}

// WorkoutUpdate carries the editable fields of a workout.
type WorkoutUpdate struct {
	Name string
	Date string
}

// SetUpdate is a partial update; nil fields are left untouched.
type SetUpdate struct {
	Reps      *int
	Weight    *float64
	Completed *bool
}

// WithReps returns a copy of u that sets reps.
func (u SetUpdate) WithReps(reps int) SetUpdate {
	u.Reps = &reps
	return u
}

// WithWeight returns a copy of u that sets weight.
func (u SetUpdate) WithWeight(weight float64) SetUpdate {
	u.Weight = &weight
	return u
}

// WithCompleted returns a copy of u that sets the completion flag.
func (u SetUpdate) WithCompleted(completed bool) SetUpdate {
	u.Completed = &completed
	return u
}

// IsEmpty reports whether no field was supplied.
func (u SetUpdate) IsEmpty() bool {
	return u.Reps == nil && u.Weight == nil && u.Completed == nil
}
