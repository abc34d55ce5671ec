// ABOUTME: Root Cobra command for lift CLI.
// ABOUTME: Loads config, builds the logger and opens the store before each command.
package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/harperreed/lift/internal/actions"
	"github.com/harperreed/lift/internal/auth"
	"github.com/harperreed/lift/internal/config"
	"github.com/harperreed/lift/internal/logging"
	"github.com/harperreed/lift/internal/storage"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// skipStore marks commands that never touch the database.
const skipStore = "skip-store"

var (
	dbPath  string
	userID  string
	verbose bool

	cfg    *config.Config
	logger *zap.Logger
	store  *storage.DB
	svc    *actions.Service
)

var rootCmd = &cobra.Command{
	Use:   "lift",
	Short: "Strength training log",
	Long: `Lift is a workout log for strength training.

A workout is a dated session. Each workout holds exercises in the order you
did them, and each exercise holds numbered sets of reps at a weight.

QUICK START:

  $ lift workout add "Push Day"             # Start today's workout (prints its ID)
  $ lift exercise add 1 "Bench Press"       # Add an exercise to workout 1
  $ lift set add 1 5 80                     # 5 reps at 80 on workout-exercise 1
  $ lift set edit 1 --done                  # Mark set 1 done
  $ lift workout show 1                     # See everything

SERVERS:

  lift serve    JSON API over HTTP (bearer tokens from 'lift token')
  lift mcp      Model Context Protocol server over stdio

CONFIGURATION:

  ~/.config/lift/config.json, a .env file in the working directory, and
  LIFT_* environment variables (LIFT_USER_ID, LIFT_DATA_DIR, LIFT_JWT_SECRET,
  LIFT_ADDR, LIFT_TOKEN_TTL, LIFT_LOG_LEVEL, LIFT_LOG_JSON).

DATA STORAGE:

  Workouts are stored in SQLite at ~/.local/share/lift/lift.db.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" || cmd.Name() == "version" {
			return nil
		}

		if err := config.LoadDotEnv(); err != nil {
			return err
		}
		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logger, err = newLogger(cmd)
		if err != nil {
			return err
		}

		if cmd.Annotations[skipStore] == "true" {
			return nil
		}

		if dbPath != "" {
			store, err = storage.Open(dbPath)
		} else {
			store, err = cfg.OpenStorage()
		}
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		svc = actions.New(store, logger)
		return nil
	},
}

// Execute runs the root command and releases the store and logger afterwards,
// including when the command failed.
func Execute() error {
	defer cleanup()
	return rootCmd.Execute()
}

func cleanup() {
	if logger != nil {
		_ = logger.Sync()
	}
	if store != nil {
		_ = store.Close()
		store = nil
	}
	svc = nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "database path (default: ~/.local/share/lift/lift.db)")
	rootCmd.PersistentFlags().StringVar(&userID, "user", "", "act as this user (default: config user_id or $USER)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
}

// newLogger builds the logger. Servers log at the configured level; one-shot
// commands only surface warnings unless --verbose is set.
func newLogger(cmd *cobra.Command) (*zap.Logger, error) {
	level := "warn"
	if cmd.Name() == "serve" || cmd.Name() == "mcp" {
		level = cfg.GetLogLevel()
	}
	if verbose {
		level = "debug"
	}
	return logging.New(level, cfg.LogJSON)
}

// localUser resolves the identity for CLI and MCP use.
func localUser() (string, error) {
	id := strings.TrimSpace(userID)
	if id == "" {
		id = cfg.GetUserID()
	}
	if id == "" {
		return "", errors.New("no user configured (use --user, LIFT_USER_ID or user_id in config)")
	}
	return id, nil
}

// localContext carries the local user into the action layer.
func localContext(cmd *cobra.Command) (context.Context, error) {
	id, err := localUser()
	if err != nil {
		return nil, err
	}
	return auth.WithUser(cmd.Context(), id), nil
}
