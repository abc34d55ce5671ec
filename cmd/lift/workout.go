// ABOUTME: CLI commands for managing workouts.
// ABOUTME: Supports add, list, show, edit, and rm subcommands.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/lift/internal/models"
	"github.com/spf13/cobra"
)

var (
	workoutDate  string
	workoutName  string
	workoutLimit int
)

var workoutCmd = &cobra.Command{
	Use:     "workout",
	Aliases: []string{"w"},
	Short:   "Manage workouts",
	Long: `Create, browse and edit workouts.

WORKFLOW:

  1. Start a workout:        lift workout add "Leg Day"
  2. Add exercises to it:    lift exercise add <workout-id> Squat
  3. Log sets:               lift set add <entry-id> 5 100
  4. View workout details:   lift workout show <workout-id>

COMMANDS:

  add      Create a new workout (today unless --date is given)
  list     List recent workouts, or those on --date
  show     View a workout with its exercises and sets
  edit     Rename or re-date a workout
  rm       Delete a workout with everything in it`,
}

var workoutAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a new workout",
	Long: `Add a new workout.

Examples:
  lift workout add "Push Day"
  lift workout add Legs --date 2024-05-01`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := localContext(cmd)
		if err != nil {
			return err
		}

		date := workoutDate
		if date == "" {
			date = models.Today()
		}

		w, err := svc.CreateWorkout(ctx, args[0], date)
		if err != nil {
			return fmt.Errorf("failed to create workout: %w", err)
		}

		out := cmd.OutOrStdout()
		color.New(color.FgGreen).Fprintf(out, "✓ Added workout %s\n", w.Name)
		fmt.Fprintf(out, "  ID: %d\n", w.ID)
		fmt.Fprintf(out, "  Date: %s\n", w.Date)
		return nil
	},
}

var workoutListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List workouts",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := localContext(cmd)
		if err != nil {
			return err
		}

		var workouts []*models.Workout
		if workoutDate != "" {
			workouts, err = svc.WorkoutsByDate(ctx, workoutDate)
		} else {
			workouts, err = svc.RecentWorkouts(ctx, workoutLimit)
		}
		if err != nil {
			return fmt.Errorf("failed to list workouts: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(workouts) == 0 {
			fmt.Fprintln(out, "No workouts found.")
			return nil
		}
		for _, w := range workouts {
			printWorkoutLine(out, w)
		}
		return nil
	},
}

var workoutShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show workout details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := localContext(cmd)
		if err != nil {
			return err
		}
		id, err := parseID("workout", args[0])
		if err != nil {
			return err
		}

		w, err := svc.Workout(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to get workout: %w", err)
		}

		printWorkout(cmd.OutOrStdout(), w)
		return nil
	},
}

var workoutEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Rename or re-date a workout",
	Long: `Change a workout's name and/or date. Omitted flags keep the current value.

Examples:
  lift workout edit 3 --name "Push A"
  lift workout edit 3 --date 2024-05-02`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := localContext(cmd)
		if err != nil {
			return err
		}
		id, err := parseID("workout", args[0])
		if err != nil {
			return err
		}
		if !cmd.Flags().Changed("name") && !cmd.Flags().Changed("date") {
			return fmt.Errorf("nothing to change: pass --name and/or --date")
		}

		current, err := svc.Workout(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to get workout: %w", err)
		}
		name, date := current.Name, current.Date
		if cmd.Flags().Changed("name") {
			name = workoutName
		}
		if cmd.Flags().Changed("date") {
			date = workoutDate
		}

		w, err := svc.UpdateWorkout(ctx, id, name, date)
		if err != nil {
			return fmt.Errorf("failed to update workout: %w", err)
		}

		color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "✓ Updated workout %d: %s on %s\n", w.ID, w.Name, w.Date)
		return nil
	},
}

var workoutRmCmd = &cobra.Command{
	Use:     "rm <id>",
	Aliases: []string{"delete", "del"},
	Short:   "Delete a workout",
	Long: `Delete a workout together with its exercises and sets.

CAUTION:

  This permanently deletes the workout. There is no undo.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := localContext(cmd)
		if err != nil {
			return err
		}
		id, err := parseID("workout", args[0])
		if err != nil {
			return err
		}

		if err := svc.DeleteWorkout(ctx, id); err != nil {
			return fmt.Errorf("failed to delete workout: %w", err)
		}

		color.New(color.FgYellow).Fprintf(cmd.OutOrStdout(), "✗ Deleted workout %d\n", id)
		return nil
	},
}

func init() {
	workoutAddCmd.Flags().StringVarP(&workoutDate, "date", "d", "", "workout date YYYY-MM-DD (default: today)")
	workoutListCmd.Flags().StringVarP(&workoutDate, "date", "d", "", "only workouts on this date")
	workoutListCmd.Flags().IntVarP(&workoutLimit, "limit", "n", 20, "max number of results")
	workoutEditCmd.Flags().StringVar(&workoutName, "name", "", "new name")
	workoutEditCmd.Flags().StringVarP(&workoutDate, "date", "d", "", "new date YYYY-MM-DD")

	workoutCmd.AddCommand(workoutAddCmd)
	workoutCmd.AddCommand(workoutListCmd)
	workoutCmd.AddCommand(workoutShowCmd)
	workoutCmd.AddCommand(workoutEditCmd)
	workoutCmd.AddCommand(workoutRmCmd)
	rootCmd.AddCommand(workoutCmd)
}
