// ABOUTME: Output and argument helpers shared by the CLI commands.
// ABOUTME: Renders workouts as indented exercise/set listings.
package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/lift/internal/models"
)

func parseID(kind, s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s id: %s", kind, s)
	}
	return id, nil
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return strings.Repeat(".", maxLen)
	}
	return s[:maxLen-3] + "..."
}

// formatWeight prints whole weights without decimals.
func formatWeight(w float64) string {
	return strconv.FormatFloat(w, 'f', -1, 64)
}

func printWorkoutLine(out io.Writer, w *models.Workout) {
	faint := color.New(color.Faint)
	fmt.Fprintf(out, "%s %s %s %s\n",
		faint.Sprint(padRight(strconv.FormatInt(w.ID, 10), 5)),
		faint.Sprint(w.Date),
		padRight(truncate(w.Name, 30), 30),
		faint.Sprintf("%d exercises, %d sets", len(w.WorkoutExercises), w.SetCount()))
}

func printWorkout(out io.Writer, w *models.Workout) {
	bold := color.New(color.Bold)
	faint := color.New(color.Faint)
	green := color.New(color.FgGreen)

	bold.Fprintf(out, "%s", w.Name)
	fmt.Fprintf(out, " %s\n", faint.Sprintf("(#%d, %s)", w.ID, w.Date))

	if len(w.WorkoutExercises) == 0 {
		faint.Fprintln(out, "  No exercises yet.")
		return
	}

	for _, we := range w.WorkoutExercises {
		fmt.Fprintf(out, "  %d. %s %s\n", we.Order, we.Exercise.Name, faint.Sprintf("[entry %d]", we.ID))
		if len(we.Sets) == 0 {
			faint.Fprintln(out, "     no sets")
			continue
		}
		for _, s := range we.Sets {
			mark := " "
			if s.Completed {
				mark = green.Sprint("✓")
			}
			fmt.Fprintf(out, "     %s set %d: %d x %s %s\n",
				mark, s.SetNumber, s.Reps, formatWeight(s.Weight), faint.Sprintf("[set %d]", s.ID))
		}
	}
}
