// ABOUTME: Export and import functionality for a user's workout log.
// ABOUTME: Supports JSON, YAML, and Markdown export formats; imports replay through the Repository.
package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/harperreed/lift/internal/models"
	"gopkg.in/yaml.v3"
)

// ExportData represents the full export format for one user's workouts.
type ExportData struct {
	Version    string            `json:"version" yaml:"version"`
	ExportedAt time.Time         `json:"exported_at" yaml:"exported_at"`
	Tool       string            `json:"tool" yaml:"tool"`
	UserID     string            `json:"user_id" yaml:"user_id"`
	Workouts   []*models.Workout `json:"workouts" yaml:"workouts"`
}

// NewExportData wraps workouts in the export envelope.
func NewExportData(userID string, workouts []*models.Workout) *ExportData {
	return &ExportData{
		Version:    "1.0",
		ExportedAt: time.Now().UTC(),
		Tool:       "lift",
		UserID:     userID,
		Workouts:   workouts,
	}
}

// ExportJSON renders data as indented JSON.
func ExportJSON(data *ExportData) ([]byte, error) {
	return json.MarshalIndent(data, "", "  ")
}

// ExportYAML renders data as YAML in a compact, human-readable layout.
func ExportYAML(data *ExportData) ([]byte, error) {
	yamlData := struct {
		Version    string        `yaml:"version"`
		ExportedAt string        `yaml:"exported_at"`
		Tool       string        `yaml:"tool"`
		UserID     string        `yaml:"user_id"`
		Workouts   []yamlWorkout `yaml:"workouts"`
	}{
		Version:    data.Version,
		ExportedAt: data.ExportedAt.Format(time.RFC3339),
		Tool:       data.Tool,
		UserID:     data.UserID,
		Workouts:   make([]yamlWorkout, 0, len(data.Workouts)),
	}

	for _, w := range data.Workouts {
		yw := yamlWorkout{
			ID:   w.ID,
			Name: w.Name,
			Date: w.Date,
		}
		for _, we := range w.WorkoutExercises {
			ye := yamlExercise{
				Order: we.Order,
				Name:  we.Exercise.Name,
			}
			for _, s := range we.Sets {
				ye.Sets = append(ye.Sets, yamlSet{
					Number:    s.SetNumber,
					Reps:      s.Reps,
					Weight:    s.Weight,
					Completed: s.Completed,
				})
			}
			yw.Exercises = append(yw.Exercises, ye)
		}
		yamlData.Workouts = append(yamlData.Workouts, yw)
	}

	return yaml.Marshal(yamlData)
}

type yamlWorkout struct {
	ID        int64          `yaml:"id"`
	Name      string         `yaml:"name"`
	Date      string         `yaml:"date"`
	Exercises []yamlExercise `yaml:"exercises,omitempty"`
}

type yamlExercise struct {
	Order int       `yaml:"order"`
	Name  string    `yaml:"name"`
	Sets  []yamlSet `yaml:"sets,omitempty"`
}

type yamlSet struct {
	Number    int     `yaml:"set"`
	Reps      int     `yaml:"reps"`
	Weight    float64 `yaml:"weight"`
	Completed bool    `yaml:"completed"`
}

// ExportMarkdown renders data as Markdown: one section per workout, one
// table of sets per exercise.
func ExportMarkdown(data *ExportData) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("# Workout Log - %s\n\n", data.UserID))
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", data.ExportedAt.Format(time.RFC3339)))

	if len(data.Workouts) == 0 {
		sb.WriteString("No workouts.\n")
		return sb.String()
	}

	for _, w := range data.Workouts {
		sb.WriteString(fmt.Sprintf("## %s - %s\n\n", w.Date, w.Name))
		if len(w.WorkoutExercises) == 0 {
			sb.WriteString("_No exercises logged._\n\n")
			continue
		}
		for _, we := range w.WorkoutExercises {
			sb.WriteString(fmt.Sprintf("### %d. %s\n\n", we.Order, we.Exercise.Name))
			sb.WriteString("| Set | Reps | Weight | Done |\n")
			sb.WriteString("|-----|------|--------|------|\n")
			for _, s := range we.Sets {
				done := ""
				if s.Completed {
					done = "x"
				}
				sb.WriteString(fmt.Sprintf("| %d | %d | %g | %s |\n", s.SetNumber, s.Reps, s.Weight, done))
			}
			sb.WriteString("\n")
		}
	}

	return sb.String()
}

// ImportSummary holds counts of imported entities.
type ImportSummary struct {
	Workouts  int `json:"workouts"`
	Exercises int `json:"exercises"`
	Sets      int `json:"sets"`
}

// ImportData recreates exported workouts for userID through repo. Rows get
// fresh ids and ordinals follow the exported order; completion flags are kept.
func ImportData(ctx context.Context, repo Repository, userID string, data *ExportData) (*ImportSummary, error) {
	summary := &ImportSummary{}

	for _, w := range data.Workouts {
		created, err := repo.CreateWorkout(ctx, userID, w.Name, w.Date)
		if err != nil {
			return summary, fmt.Errorf("import workout %q: %w", w.Name, err)
		}
		summary.Workouts++

		for _, we := range w.WorkoutExercises {
			exercise, err := repo.FindOrCreateExercise(ctx, we.Exercise.Name)
			if err != nil {
				return summary, fmt.Errorf("import exercise %q: %w", we.Exercise.Name, err)
			}
			added, err := repo.AddExerciseToWorkout(ctx, userID, created.ID, exercise.ID)
			if err != nil {
				return summary, fmt.Errorf("import exercise %q: %w", we.Exercise.Name, err)
			}
			summary.Exercises++

			for _, s := range we.Sets {
				set, err := repo.AddSetToWorkoutExercise(ctx, userID, added.ID, s.Reps, s.Weight)
				if err != nil {
					return summary, fmt.Errorf("import set %d: %w", s.SetNumber, err)
				}
				if s.Completed {
					if _, err := repo.UpdateSetForUser(ctx, userID, set.ID, models.SetUpdate{}.WithCompleted(true)); err != nil {
						return summary, fmt.Errorf("import set %d: %w", s.SetNumber, err)
					}
				}
				summary.Sets++
			}
		}
	}

	return summary, nil
}

// ImportJSON decodes a JSON export and imports it for userID.
func ImportJSON(ctx context.Context, repo Repository, userID string, raw []byte) (*ImportSummary, error) {
	var data ExportData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("unmarshal JSON: %w", err)
	}
	return ImportData(ctx, repo, userID, &data)
}
