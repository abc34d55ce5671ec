// ABOUTME: Sentinel errors returned by the workout store.
// ABOUTME: Missing and foreign-owned rows share ErrNotFound so existence never leaks.
package storage

import "errors"

var (
	// ErrNotFound means the row does not exist or is not owned by the caller.
	ErrNotFound = errors.New("not found")

	// ErrInvalid rejects values that can never be stored.
	ErrInvalid = errors.New("invalid input")

	// ErrConsistency means a catalog row vanished right after being ensured.
	ErrConsistency = errors.New("catalog consistency error")

	// ErrExerciseInUse means a catalog exercise is still referenced by a workout.
	ErrExerciseInUse = errors.New("exercise is in use")
)
