// ABOUTME: MCP tool implementations for workout logging.
// ABOUTME: Workouts, exercises within them, sets, and the shared exercise catalog.
package mcp

import (
	"context"
	"fmt"

	"github.com/harperreed/lift/internal/models"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "create_workout",
		Description: "Start a new workout on a date (defaults to today)",
	}, s.handleCreateWorkout)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_workouts",
		Description: "List workouts on a date, or the most recent ones when no date is given",
	}, s.handleListWorkouts)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_workout",
		Description: "Get a workout with its exercises and sets",
	}, s.handleGetWorkout)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "update_workout",
		Description: "Rename a workout or move it to another date",
	}, s.handleUpdateWorkout)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_workout",
		Description: "Delete a workout with all its exercises and sets",
	}, s.handleDeleteWorkout)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_exercise",
		Description: "Append an exercise to a workout by name; new names are added to the catalog",
	}, s.handleAddExercise)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "remove_exercise",
		Description: "Remove an exercise and its sets from a workout",
	}, s.handleRemoveExercise)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_set",
		Description: "Record a set of reps at a weight for an exercise in a workout",
	}, s.handleAddSet)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "update_set",
		Description: "Change reps, weight or completion of a set; omitted fields stay as they are",
	}, s.handleUpdateSet)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "remove_set",
		Description: "Delete a set",
	}, s.handleRemoveSet)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_exercises",
		Description: "Search the exercise catalog by name prefix",
	}, s.handleListExercises)
}

// Tool input/output types

type createWorkoutInput struct {
	Name string `json:"name" jsonschema:"Workout name, e.g. Push Day"`
	Date string `json:"date,omitempty" jsonschema:"Date as YYYY-MM-DD, defaults to today"`
}

type listWorkoutsInput struct {
	Date  string `json:"date,omitempty" jsonschema:"Only workouts on this date (YYYY-MM-DD)"`
	Limit int    `json:"limit,omitempty" jsonschema:"Max results when no date is given (default 20)"`
}

type workoutIDInput struct {
	WorkoutID int64 `json:"workout_id" jsonschema:"Workout ID"`
}

type updateWorkoutInput struct {
	WorkoutID int64  `json:"workout_id" jsonschema:"Workout ID"`
	Name      string `json:"name" jsonschema:"New workout name"`
	Date      string `json:"date" jsonschema:"New date as YYYY-MM-DD"`
}

type addExerciseInput struct {
	WorkoutID int64  `json:"workout_id" jsonschema:"Workout ID"`
	Name      string `json:"name" jsonschema:"Exercise name, e.g. Bench Press"`
}

type workoutExerciseIDInput struct {
	WorkoutExerciseID int64 `json:"workout_exercise_id" jsonschema:"ID of the exercise entry within the workout"`
}

type addSetInput struct {
	WorkoutExerciseID int64   `json:"workout_exercise_id" jsonschema:"ID of the exercise entry within the workout"`
	Reps              int     `json:"reps" jsonschema:"Repetitions, at least 1"`
	Weight            float64 `json:"weight" jsonschema:"Weight lifted, 0 for bodyweight"`
}

type updateSetInput struct {
	SetID     int64    `json:"set_id" jsonschema:"Set ID"`
	Reps      *int     `json:"reps,omitempty" jsonschema:"New repetitions"`
	Weight    *float64 `json:"weight,omitempty" jsonschema:"New weight"`
	Completed *bool    `json:"completed,omitempty" jsonschema:"Mark the set done or not done"`
}

type setIDInput struct {
	SetID int64 `json:"set_id" jsonschema:"Set ID"`
}

type listExercisesInput struct {
	Prefix string `json:"prefix,omitempty" jsonschema:"Name prefix, case-insensitive"`
	Limit  int    `json:"limit,omitempty" jsonschema:"Max results"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

// Tool handlers

func (s *Server) handleCreateWorkout(ctx context.Context, req *mcp.CallToolRequest, input createWorkoutInput) (*mcp.CallToolResult, any, error) {
	date := input.Date
	if date == "" {
		date = models.Today()
	}

	w, err := s.svc.CreateWorkout(s.as(ctx), input.Name, date)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create workout: %w", err)
	}

	return nil, map[string]any{
		"workout": w,
		"message": fmt.Sprintf("Started %s on %s (ID: %d)", w.Name, w.Date, w.ID),
	}, nil
}

func (s *Server) handleListWorkouts(ctx context.Context, req *mcp.CallToolRequest, input listWorkoutsInput) (*mcp.CallToolResult, any, error) {
	var (
		workouts []*models.Workout
		err      error
	)
	if input.Date != "" {
		workouts, err = s.svc.WorkoutsByDate(s.as(ctx), input.Date)
	} else {
		workouts, err = s.svc.RecentWorkouts(s.as(ctx), input.Limit)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list workouts: %w", err)
	}

	if len(workouts) == 0 {
		return nil, map[string]any{"message": "No workouts found.", "workouts": []any{}}, nil
	}

	return nil, map[string]any{"workouts": workouts, "count": len(workouts)}, nil
}

func (s *Server) handleGetWorkout(ctx context.Context, req *mcp.CallToolRequest, input workoutIDInput) (*mcp.CallToolResult, any, error) {
	w, err := s.svc.Workout(s.as(ctx), input.WorkoutID)
	if err != nil {
		return nil, nil, fmt.Errorf("workout %d: %w", input.WorkoutID, err)
	}

	return nil, map[string]any{"workout": w}, nil
}

func (s *Server) handleUpdateWorkout(ctx context.Context, req *mcp.CallToolRequest, input updateWorkoutInput) (*mcp.CallToolResult, any, error) {
	w, err := s.svc.UpdateWorkout(s.as(ctx), input.WorkoutID, input.Name, input.Date)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to update workout: %w", err)
	}

	return nil, map[string]any{
		"workout": w,
		"message": fmt.Sprintf("Updated workout %d: %s on %s", w.ID, w.Name, w.Date),
	}, nil
}

func (s *Server) handleDeleteWorkout(ctx context.Context, req *mcp.CallToolRequest, input workoutIDInput) (*mcp.CallToolResult, simpleOutput, error) {
	if err := s.svc.DeleteWorkout(s.as(ctx), input.WorkoutID); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to delete workout: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Deleted workout: %d", input.WorkoutID),
	}, nil
}

func (s *Server) handleAddExercise(ctx context.Context, req *mcp.CallToolRequest, input addExerciseInput) (*mcp.CallToolResult, any, error) {
	we, err := s.svc.AddExercise(s.as(ctx), input.WorkoutID, input.Name)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to add exercise: %w", err)
	}

	return nil, map[string]any{
		"workout_exercise": we,
		"message":          fmt.Sprintf("Added %s as exercise #%d (ID: %d)", we.Exercise.Name, we.Order, we.ID),
	}, nil
}

func (s *Server) handleRemoveExercise(ctx context.Context, req *mcp.CallToolRequest, input workoutExerciseIDInput) (*mcp.CallToolResult, simpleOutput, error) {
	if err := s.svc.RemoveExercise(s.as(ctx), input.WorkoutExerciseID); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to remove exercise: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Removed exercise entry: %d", input.WorkoutExerciseID),
	}, nil
}

func (s *Server) handleAddSet(ctx context.Context, req *mcp.CallToolRequest, input addSetInput) (*mcp.CallToolResult, any, error) {
	set, err := s.svc.AddSet(s.as(ctx), input.WorkoutExerciseID, input.Reps, input.Weight)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to add set: %w", err)
	}

	return nil, map[string]any{
		"set":     set,
		"message": fmt.Sprintf("Set %d: %d x %g (ID: %d)", set.SetNumber, set.Reps, set.Weight, set.ID),
	}, nil
}

func (s *Server) handleUpdateSet(ctx context.Context, req *mcp.CallToolRequest, input updateSetInput) (*mcp.CallToolResult, any, error) {
	upd := models.SetUpdate{Reps: input.Reps, Weight: input.Weight, Completed: input.Completed}

	set, err := s.svc.UpdateSet(s.as(ctx), input.SetID, upd)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to update set: %w", err)
	}

	return nil, map[string]any{"set": set}, nil
}

func (s *Server) handleRemoveSet(ctx context.Context, req *mcp.CallToolRequest, input setIDInput) (*mcp.CallToolResult, simpleOutput, error) {
	if err := s.svc.RemoveSet(s.as(ctx), input.SetID); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to remove set: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Deleted set: %d", input.SetID),
	}, nil
}

func (s *Server) handleListExercises(ctx context.Context, req *mcp.CallToolRequest, input listExercisesInput) (*mcp.CallToolResult, any, error) {
	exercises, err := s.svc.Exercises(s.as(ctx), input.Prefix, input.Limit)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list exercises: %w", err)
	}

	names := make([]string, 0, len(exercises))
	for _, e := range exercises {
		names = append(names, e.Name)
	}

	return nil, map[string]any{"exercises": exercises, "names": names}, nil
}
