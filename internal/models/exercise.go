// ABOUTME: Exercise model for the shared, deduplicated exercise catalog.
// ABOUTME: Catalog names are compared after trimming surrounding whitespace.
package models

import (
	"strings"
	"time"
)

// Exercise is a named movement shared by all users.
type Exercise struct {
	ID        int64     `json:"id" yaml:"id"`
	Name      string    `json:"name" yaml:"name"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
	UpdatedAt time.Time `json:"updated_at" yaml:"updated_at"`
}

// NormalizeExerciseName returns the canonical catalog form of name.
// Matching stays case-sensitive.
func NormalizeExerciseName(name string) string {
	return strings.TrimSpace(name)
}
