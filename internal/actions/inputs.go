// ABOUTME: Validated input shapes for each action.
// ABOUTME: Field names in errors follow the json tags so transports can echo them.
package actions

import (
	"math"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	// DefaultRecentLimit is used when RecentWorkouts is called with limit 0.
	DefaultRecentLimit = 20
	// MaxRecentLimit caps RecentWorkouts and Exercises.
	MaxRecentLimit = 100
)

type workoutInput struct {
	Name string `json:"name" validate:"required,max=256"`
	Date string `json:"date" validate:"required,datetime=2006-01-02"`
}

type idInput struct {
	ID int64 `json:"id" validate:"gt=0"`
}

type updateWorkoutInput struct {
	ID   int64  `json:"id" validate:"gt=0"`
	Name string `json:"name" validate:"required,max=256"`
	Date string `json:"date" validate:"required,datetime=2006-01-02"`
}

type dateInput struct {
	Date string `json:"date" validate:"required,datetime=2006-01-02"`
}

type limitInput struct {
	Limit int `json:"limit" validate:"min=1,max=100"`
}

type addExerciseInput struct {
	WorkoutID int64  `json:"workout_id" validate:"gt=0"`
	Name      string `json:"name" validate:"required,max=256"`
}

type addSetInput struct {
	WorkoutExerciseID int64   `json:"workout_exercise_id" validate:"gt=0"`
	Reps              int     `json:"reps" validate:"gt=0"`
	Weight            float64 `json:"weight" validate:"gte=0,finite"`
}

type updateSetInput struct {
	ID     int64    `json:"id" validate:"gt=0"`
	Reps   *int     `json:"reps" validate:"omitempty,gt=0"`
	Weight *float64 `json:"weight" validate:"omitempty,gte=0,finite"`
}

type exercisesInput struct {
	Prefix string `json:"prefix" validate:"max=256"`
	Limit  int    `json:"limit" validate:"min=0,max=100"`
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	_ = v.RegisterValidation("finite", func(fl validator.FieldLevel) bool {
		f := fl.Field().Float()
		return !math.IsNaN(f) && !math.IsInf(f, 0)
	})
	return v
}
