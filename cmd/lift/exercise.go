// ABOUTME: CLI commands for exercises within workouts and the shared catalog.
// ABOUTME: Supports add, rm, list, and forget subcommands.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var exerciseLimit int

var exerciseCmd = &cobra.Command{
	Use:     "exercise",
	Aliases: []string{"ex", "e"},
	Short:   "Manage exercises in workouts",
	Long: `Add exercises to workouts and browse the exercise catalog.

Exercise names are shared: the first time a name is used it joins the
catalog, and later uses of the same name (case-sensitive, surrounding
spaces ignored) point at the same catalog entry.

Each time an exercise is added to a workout it gets its own entry ID;
sets are logged against that entry.

COMMANDS:

  add      Append an exercise to a workout
  rm       Remove an exercise entry (and its sets) from a workout
  list     Search the catalog by name prefix
  forget   Delete an unused catalog exercise`,
}

var exerciseAddCmd = &cobra.Command{
	Use:   "add <workout-id> <name>",
	Short: "Add an exercise to a workout",
	Long: `Append an exercise to a workout. It is placed after the existing ones.

Examples:
  lift exercise add 3 "Bench Press"
  lift exercise add 3 Dips`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := localContext(cmd)
		if err != nil {
			return err
		}
		workoutID, err := parseID("workout", args[0])
		if err != nil {
			return err
		}

		we, err := svc.AddExercise(ctx, workoutID, args[1])
		if err != nil {
			return fmt.Errorf("failed to add exercise: %w", err)
		}

		out := cmd.OutOrStdout()
		color.New(color.FgGreen).Fprintf(out, "✓ Added %s as exercise #%d\n", we.Exercise.Name, we.Order)
		fmt.Fprintf(out, "  Entry ID: %d\n", we.ID)
		return nil
	},
}

var exerciseRmCmd = &cobra.Command{
	Use:     "rm <entry-id>",
	Aliases: []string{"delete", "del"},
	Short:   "Remove an exercise entry from its workout",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := localContext(cmd)
		if err != nil {
			return err
		}
		id, err := parseID("exercise entry", args[0])
		if err != nil {
			return err
		}

		if err := svc.RemoveExercise(ctx, id); err != nil {
			return fmt.Errorf("failed to remove exercise: %w", err)
		}

		color.New(color.FgYellow).Fprintf(cmd.OutOrStdout(), "✗ Removed exercise entry %d\n", id)
		return nil
	},
}

var exerciseListCmd = &cobra.Command{
	Use:     "list [prefix]",
	Aliases: []string{"ls"},
	Short:   "List catalog exercises",
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := localContext(cmd)
		if err != nil {
			return err
		}
		prefix := ""
		if len(args) == 1 {
			prefix = args[0]
		}

		exercises, err := svc.Exercises(ctx, prefix, exerciseLimit)
		if err != nil {
			return fmt.Errorf("failed to list exercises: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(exercises) == 0 {
			fmt.Fprintln(out, "No exercises found.")
			return nil
		}
		faint := color.New(color.Faint)
		for _, e := range exercises {
			fmt.Fprintf(out, "%s %s\n", faint.Sprint(padRight(fmt.Sprint(e.ID), 5)), e.Name)
		}
		return nil
	},
}

var exerciseForgetCmd = &cobra.Command{
	Use:   "forget <exercise-id>",
	Short: "Delete an unused exercise from the catalog",
	Long: `Delete an exercise from the shared catalog.

This only works when no workout uses the exercise anymore. Use the catalog
ID shown by 'lift exercise list', not a workout entry ID.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := localContext(cmd)
		if err != nil {
			return err
		}
		id, err := parseID("exercise", args[0])
		if err != nil {
			return err
		}

		if err := svc.ForgetExercise(ctx, id); err != nil {
			return fmt.Errorf("failed to forget exercise: %w", err)
		}

		color.New(color.FgYellow).Fprintf(cmd.OutOrStdout(), "✗ Removed exercise %d from the catalog\n", id)
		return nil
	},
}

func init() {
	exerciseListCmd.Flags().IntVarP(&exerciseLimit, "limit", "n", 50, "max number of results")

	exerciseCmd.AddCommand(exerciseAddCmd)
	exerciseCmd.AddCommand(exerciseRmCmd)
	exerciseCmd.AddCommand(exerciseListCmd)
	exerciseCmd.AddCommand(exerciseForgetCmd)
	rootCmd.AddCommand(exerciseCmd)
}
