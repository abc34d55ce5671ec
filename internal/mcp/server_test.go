// ABOUTME: Tests for MCP server, tools, and resources.
// ABOUTME: Handlers are called directly against a temp SQLite store.
package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/harperreed/lift/internal/actions"
	"github.com/harperreed/lift/internal/models"
	"github.com/harperreed/lift/internal/storage"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"
)

// setupTestServer creates a server acting as userID over a temp database.
func setupTestServer(t *testing.T, userID string) (*Server, *storage.DB) {
	t.Helper()

	db, err := storage.Open(filepath.Join(t.TempDir(), "lift.db"))
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	server, err := NewServer(actions.New(db, zap.NewNop()), userID, zap.NewNop())
	if err != nil {
		t.Fatalf("NewServer failed: %v", err)
	}
	return server, db
}

func TestNewServer(t *testing.T) {
	server, _ := setupTestServer(t, "alice")

	if server.mcpServer == nil {
		t.Error("Expected non-nil mcpServer")
	}
	if server.userID != "alice" {
		t.Errorf("Expected user alice, got %q", server.userID)
	}

	if _, err := NewServer(nil, "  ", nil); err == nil {
		t.Error("Expected error for empty user id")
	}
}

// field pulls a typed value out of a map output.
func field[T any](t *testing.T, out any, key string) T {
	t.Helper()
	m, ok := out.(map[string]any)
	if !ok {
		t.Fatalf("Expected map output, got %T", out)
	}
	v, ok := m[key].(T)
	if !ok {
		t.Fatalf("Expected %s of type %T, got %T", key, *new(T), m[key])
	}
	return v
}

func TestWorkoutTools(t *testing.T) {
	server, _ := setupTestServer(t, "alice")
	ctx := context.Background()
	req := &mcp.CallToolRequest{}

	_, out, err := server.handleCreateWorkout(ctx, req, createWorkoutInput{Name: "Push", Date: "2024-05-01"})
	if err != nil {
		t.Fatalf("create_workout failed: %v", err)
	}
	w := field[*models.Workout](t, out, "workout")
	if w.UserID != "alice" {
		t.Errorf("Expected workout owned by alice, got %q", w.UserID)
	}

	_, out, err = server.handleAddExercise(ctx, req, addExerciseInput{WorkoutID: w.ID, Name: "Bench Press"})
	if err != nil {
		t.Fatalf("add_exercise failed: %v", err)
	}
	we := field[*models.WorkoutExercise](t, out, "workout_exercise")
	if we.Order != 1 {
		t.Errorf("Expected order 1, got %d", we.Order)
	}

	_, out, err = server.handleAddSet(ctx, req, addSetInput{WorkoutExerciseID: we.ID, Reps: 5, Weight: 80})
	if err != nil {
		t.Fatalf("add_set failed: %v", err)
	}
	set := field[*models.Set](t, out, "set")

	done := true
	_, out, err = server.handleUpdateSet(ctx, req, updateSetInput{SetID: set.ID, Completed: &done})
	if err != nil {
		t.Fatalf("update_set failed: %v", err)
	}
	if updated := field[*models.Set](t, out, "set"); !updated.Completed || updated.Reps != 5 {
		t.Errorf("Expected completed set with 5 reps, got %+v", updated)
	}

	_, out, err = server.handleGetWorkout(ctx, req, workoutIDInput{WorkoutID: w.ID})
	if err != nil {
		t.Fatalf("get_workout failed: %v", err)
	}
	got := field[*models.Workout](t, out, "workout")
	if len(got.WorkoutExercises) != 1 || len(got.WorkoutExercises[0].Sets) != 1 {
		t.Errorf("Expected 1 exercise with 1 set, got %+v", got.WorkoutExercises)
	}

	_, out, err = server.handleListWorkouts(ctx, req, listWorkoutsInput{Date: "2024-05-01"})
	if err != nil {
		t.Fatalf("list_workouts failed: %v", err)
	}
	if n := field[int](t, out, "count"); n != 1 {
		t.Errorf("Expected 1 workout, got %d", n)
	}

	_, out, err = server.handleUpdateWorkout(ctx, req, updateWorkoutInput{WorkoutID: w.ID, Name: "Push A", Date: "2024-05-02"})
	if err != nil {
		t.Fatalf("update_workout failed: %v", err)
	}
	if renamed := field[*models.Workout](t, out, "workout"); renamed.Name != "Push A" {
		t.Errorf("Expected Push A, got %q", renamed.Name)
	}

	if _, _, err := server.handleRemoveSet(ctx, req, setIDInput{SetID: set.ID}); err != nil {
		t.Errorf("remove_set failed: %v", err)
	}
	if _, _, err := server.handleRemoveExercise(ctx, req, workoutExerciseIDInput{WorkoutExerciseID: we.ID}); err != nil {
		t.Errorf("remove_exercise failed: %v", err)
	}
	_, msg, err := server.handleDeleteWorkout(ctx, req, workoutIDInput{WorkoutID: w.ID})
	if err != nil {
		t.Fatalf("delete_workout failed: %v", err)
	}
	if !strings.Contains(msg.Message, "Deleted workout") {
		t.Errorf("Unexpected message: %q", msg.Message)
	}

	_, _, err = server.handleGetWorkout(ctx, req, workoutIDInput{WorkoutID: w.ID})
	if !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("Expected ErrNotFound after delete, got %v", err)
	}
}

func TestCreateWorkoutDefaultsToToday(t *testing.T) {
	server, _ := setupTestServer(t, "alice")

	_, out, err := server.handleCreateWorkout(context.Background(), &mcp.CallToolRequest{}, createWorkoutInput{Name: "Quick"})
	if err != nil {
		t.Fatalf("create_workout failed: %v", err)
	}
	if w := field[*models.Workout](t, out, "workout"); w.Date != models.Today() {
		t.Errorf("Expected today's date, got %s", w.Date)
	}
}

func TestToolsActAsConfiguredUser(t *testing.T) {
	alice, db := setupTestServer(t, "alice")
	ctx := context.Background()

	w, err := db.CreateWorkout(ctx, "bob", "Bob's Day", "2024-05-01")
	if err != nil {
		t.Fatalf("CreateWorkout failed: %v", err)
	}

	_, _, err = alice.handleGetWorkout(ctx, &mcp.CallToolRequest{}, workoutIDInput{WorkoutID: w.ID})
	if !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("Expected ErrNotFound for another user's workout, got %v", err)
	}

	_, out, err := alice.handleListWorkouts(ctx, &mcp.CallToolRequest{}, listWorkoutsInput{Date: "2024-05-01"})
	if err != nil {
		t.Fatalf("list_workouts failed: %v", err)
	}
	if msg := field[string](t, out, "message"); msg != "No workouts found." {
		t.Errorf("Unexpected message: %q", msg)
	}
}

func TestToolValidationErrors(t *testing.T) {
	server, _ := setupTestServer(t, "alice")
	ctx := context.Background()
	req := &mcp.CallToolRequest{}

	tests := []struct {
		name string
		call func() error
	}{
		{"empty workout name", func() error {
			_, _, err := server.handleCreateWorkout(ctx, req, createWorkoutInput{Name: "", Date: "2024-05-01"})
			return err
		}},
		{"bad date", func() error {
			_, _, err := server.handleListWorkouts(ctx, req, listWorkoutsInput{Date: "tomorrow"})
			return err
		}},
		{"zero reps", func() error {
			_, _, err := server.handleAddSet(ctx, req, addSetInput{WorkoutExerciseID: 1, Reps: 0, Weight: 10})
			return err
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.call(); !errors.Is(err, actions.ErrValidation) {
				t.Errorf("Expected validation error, got %v", err)
			}
		})
	}
}

func TestListExercisesTool(t *testing.T) {
	server, db := setupTestServer(t, "alice")
	ctx := context.Background()

	for _, name := range []string{"Squat", "Split Squat", "Deadlift"} {
		if _, err := db.FindOrCreateExercise(ctx, name); err != nil {
			t.Fatalf("FindOrCreateExercise failed: %v", err)
		}
	}

	_, out, err := server.handleListExercises(ctx, &mcp.CallToolRequest{}, listExercisesInput{Prefix: "s"})
	if err != nil {
		t.Fatalf("list_exercises failed: %v", err)
	}
	names := field[[]string](t, out, "names")
	if len(names) != 2 || names[0] != "Split Squat" || names[1] != "Squat" {
		t.Errorf("Expected [Split Squat Squat], got %v", names)
	}
}

func TestTodayResource(t *testing.T) {
	server, db := setupTestServer(t, "alice")
	ctx := context.Background()

	w, err := db.CreateWorkout(ctx, "alice", "Today", models.Today())
	if err != nil {
		t.Fatalf("CreateWorkout failed: %v", err)
	}
	e, _ := db.FindOrCreateExercise(ctx, "Row")
	we, _ := db.AddExerciseToWorkout(ctx, "alice", w.ID, e.ID)
	if _, err := db.AddSetToWorkoutExercise(ctx, "alice", we.ID, 10, 40); err != nil {
		t.Fatalf("AddSet failed: %v", err)
	}
	if _, err := db.CreateWorkout(ctx, "bob", "Not Mine", models.Today()); err != nil {
		t.Fatalf("CreateWorkout failed: %v", err)
	}

	result, err := server.handleTodayResource(ctx, &mcp.ReadResourceRequest{})
	if err != nil {
		t.Fatalf("today resource failed: %v", err)
	}
	if len(result.Contents) != 1 || result.Contents[0].URI != todayURI {
		t.Fatalf("Unexpected contents: %+v", result.Contents)
	}

	var body struct {
		Date     string           `json:"date"`
		Workouts []models.Workout `json:"workouts"`
		Counts   map[string]int   `json:"counts"`
	}
	if err := json.Unmarshal([]byte(result.Contents[0].Text), &body); err != nil {
		t.Fatalf("Failed to decode resource: %v", err)
	}
	if body.Counts["workouts"] != 1 || body.Counts["sets"] != 1 {
		t.Errorf("Expected 1 workout and 1 set, got %v", body.Counts)
	}
	if body.Workouts[0].Name != "Today" {
		t.Errorf("Expected alice's workout, got %q", body.Workouts[0].Name)
	}
}

func TestRecentResource(t *testing.T) {
	server, db := setupTestServer(t, "alice")
	ctx := context.Background()

	for _, date := range []string{"2024-05-01", "2024-05-02"} {
		if _, err := db.CreateWorkout(ctx, "alice", "W", date); err != nil {
			t.Fatalf("CreateWorkout failed: %v", err)
		}
	}

	result, err := server.handleRecentResource(ctx, &mcp.ReadResourceRequest{})
	if err != nil {
		t.Fatalf("recent resource failed: %v", err)
	}
	if !strings.Contains(result.Contents[0].Text, "2024-05-02") {
		t.Errorf("Expected recent workouts in resource, got %s", result.Contents[0].Text)
	}
}
