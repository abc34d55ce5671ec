// ABOUTME: CLI command for starting the MCP server.
// ABOUTME: Runs a stdio MCP server that acts for the local user.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/harperreed/lift/internal/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant integration.

The server communicates via stdin/stdout and acts for the local user
(--user, LIFT_USER_ID, user_id in config, or $USER).

CLAUDE DESKTOP CONFIGURATION:

  {
    "mcpServers": {
      "lift": {
        "command": "lift",
        "args": ["mcp"]
      }
    }
  }

AVAILABLE TOOLS:

  create_workout    Start a workout session
  list_workouts     Workouts on a date, or the most recent ones
  get_workout       A workout with its exercises and sets
  update_workout    Rename or re-date a workout
  delete_workout    Delete a workout
  add_exercise      Append an exercise to a workout
  remove_exercise   Remove an exercise entry and its sets
  add_set           Log a set
  update_set        Change reps, weight or completion
  remove_set        Delete a set
  list_exercises    Search the exercise catalog

AVAILABLE RESOURCES:

  lift://workouts/today     Today's workouts
  lift://workouts/recent    Recent workouts`,
	RunE: func(cmd *cobra.Command, args []string) error {
		user, err := localUser()
		if err != nil {
			return err
		}
		server, err := mcp.NewServer(svc, user, logger)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(sigChan)
		go func() {
			select {
			case <-sigChan:
				cancel()
			case <-ctx.Done():
			}
		}()

		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
