// ABOUTME: CLI commands for logging sets against workout exercise entries.
// ABOUTME: Supports add, edit, and rm subcommands.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/harperreed/lift/internal/models"
	"github.com/spf13/cobra"
)

var (
	setReps   int
	setWeight float64
	setDone   bool
	setUndone bool
)

var setCmd = &cobra.Command{
	Use:     "set",
	Aliases: []string{"s"},
	Short:   "Log sets",
	Long: `Log, correct and remove sets.

Sets are numbered within their exercise entry in the order they are added.
Removing a set leaves a gap; numbers are never shuffled.

COMMANDS:

  add    Log a set of reps at a weight
  edit   Change reps or weight, or mark a set done/undone
  rm     Delete a set`,
}

var setAddCmd = &cobra.Command{
	Use:   "add <entry-id> <reps> <weight>",
	Short: "Log a set",
	Long: `Log a set against an exercise entry. Use weight 0 for bodyweight.

Examples:
  lift set add 7 5 100
  lift set add 8 12 0`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := localContext(cmd)
		if err != nil {
			return err
		}
		entryID, err := parseID("exercise entry", args[0])
		if err != nil {
			return err
		}
		reps, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid reps: %s", args[1])
		}
		weight, err := strconv.ParseFloat(args[2], 64)
		if err != nil {
			return fmt.Errorf("invalid weight: %s", args[2])
		}

		set, err := svc.AddSet(ctx, entryID, reps, weight)
		if err != nil {
			return fmt.Errorf("failed to add set: %w", err)
		}

		out := cmd.OutOrStdout()
		color.New(color.FgGreen).Fprintf(out, "✓ Set %d: %d x %s\n", set.SetNumber, set.Reps, formatWeight(set.Weight))
		fmt.Fprintf(out, "  ID: %d\n", set.ID)
		return nil
	},
}

var setEditCmd = &cobra.Command{
	Use:   "edit <set-id>",
	Short: "Change a set",
	Long: `Change a set. Only the flags you pass are applied.

Examples:
  lift set edit 12 --done
  lift set edit 12 --reps 4 --weight 102.5`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := localContext(cmd)
		if err != nil {
			return err
		}
		id, err := parseID("set", args[0])
		if err != nil {
			return err
		}
		if setDone && setUndone {
			return fmt.Errorf("--done and --undone are mutually exclusive")
		}

		var upd models.SetUpdate
		if cmd.Flags().Changed("reps") {
			upd = upd.WithReps(setReps)
		}
		if cmd.Flags().Changed("weight") {
			upd = upd.WithWeight(setWeight)
		}
		if setDone {
			upd = upd.WithCompleted(true)
		}
		if setUndone {
			upd = upd.WithCompleted(false)
		}
		if upd.IsEmpty() {
			return fmt.Errorf("nothing to change: pass --reps, --weight, --done or --undone")
		}

		set, err := svc.UpdateSet(ctx, id, upd)
		if err != nil {
			return fmt.Errorf("failed to update set: %w", err)
		}

		state := "not done"
		if set.Completed {
			state = "done"
		}
		color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "✓ Set %d: %d x %s (%s)\n",
			set.SetNumber, set.Reps, formatWeight(set.Weight), state)
		return nil
	},
}

var setRmCmd = &cobra.Command{
	Use:     "rm <set-id>",
	Aliases: []string{"delete", "del"},
	Short:   "Delete a set",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := localContext(cmd)
		if err != nil {
			return err
		}
		id, err := parseID("set", args[0])
		if err != nil {
			return err
		}

		if err := svc.RemoveSet(ctx, id); err != nil {
			return fmt.Errorf("failed to remove set: %w", err)
		}

		color.New(color.FgYellow).Fprintf(cmd.OutOrStdout(), "✗ Deleted set %d\n", id)
		return nil
	},
}

func init() {
	setEditCmd.Flags().IntVar(&setReps, "reps", 0, "new rep count")
	setEditCmd.Flags().Float64Var(&setWeight, "weight", 0, "new weight")
	setEditCmd.Flags().BoolVar(&setDone, "done", false, "mark the set done")
	setEditCmd.Flags().BoolVar(&setUndone, "undone", false, "mark the set not done")

	setCmd.AddCommand(setAddCmd)
	setCmd.AddCommand(setEditCmd)
	setCmd.AddCommand(setRmCmd)
	rootCmd.AddCommand(setCmd)
}
