// ABOUTME: Defensive input checks applied before any statement runs.
// ABOUTME: Callers validate first; these reject values the schema could never hold.
package storage

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/harperreed/lift/internal/models"
)

func checkUser(userID string) error {
	if strings.TrimSpace(userID) == "" {
		return fmt.Errorf("%w: user id is required", ErrInvalid)
	}
	return nil
}

func checkID(kind string, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: %s id must be positive, got %d", ErrInvalid, kind, id)
	}
	return nil
}

func checkName(kind, name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: %s name is required", ErrInvalid, kind)
	}
	if utf8.RuneCountInString(name) > models.MaxNameLength {
		return fmt.Errorf("%w: %s name exceeds %d characters", ErrInvalid, kind, models.MaxNameLength)
	}
	return nil
}

func checkDate(date string) error {
	if !models.IsValidDate(date) {
		return fmt.Errorf("%w: date %q is not YYYY-MM-DD", ErrInvalid, date)
	}
	return nil
}

func checkReps(reps int) error {
	if reps <= 0 {
		return fmt.Errorf("%w: reps must be positive, got %d", ErrInvalid, reps)
	}
	return nil
}

func checkWeight(weight float64) error {
	if math.IsNaN(weight) || math.IsInf(weight, 0) || weight < 0 {
		return fmt.Errorf("%w: weight must be a non-negative number, got %v", ErrInvalid, weight)
	}
	return nil
}

// firstErr returns the first non-nil error.
func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
