// ABOUTME: CLI commands for exporting and importing the workout log.
// ABOUTME: Supports JSON, YAML, and Markdown export formats.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/harperreed/lift/internal/storage"
	"github.com/spf13/cobra"
)

var (
	exportOutput string
	exportDate   string
)

var exportCmd = &cobra.Command{
	Use:   "export <format>",
	Short: "Export your workouts",
	Long: `Export your workouts in various formats.

FORMATS:

  json       Full JSON export (suitable for backup/restore)
  yaml       YAML export (human-readable)
  markdown   Markdown tables (for documentation/sharing)

OPTIONS:

  --output, -o   Write to file instead of stdout
  --date, -d     Only include workouts on this date (YYYY-MM-DD)

EXAMPLES:

  lift export json                          # Export everything as JSON
  lift export json -o backup.json           # Save to file
  lift export markdown --date 2025-03-01    # One day as Markdown`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"json", "yaml", "markdown"},
	RunE: func(cmd *cobra.Command, args []string) error {
		format := args[0]
		if format != "json" && format != "yaml" && format != "markdown" {
			return fmt.Errorf("unknown format: %s (use json, yaml, or markdown)", format)
		}

		ctx, err := localContext(cmd)
		if err != nil {
			return err
		}
		export, err := svc.Export(ctx, exportDate)
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		var data []byte
		switch format {
		case "json":
			data, err = storage.ExportJSON(export)
		case "yaml":
			data, err = storage.ExportYAML(export)
		case "markdown":
			data = []byte(storage.ExportMarkdown(export))
		}
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		if exportOutput != "" {
			if err := os.WriteFile(exportOutput, data, 0600); err != nil {
				return fmt.Errorf("failed to write file: %w", err)
			}
			color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "✓ Exported %d workouts to %s\n", len(export.Workouts), exportOutput)
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import workouts from a JSON export",
	Long: `Import workouts from a JSON file written by 'lift export json'.

Imported workouts belong to the current user, whoever exported them. Every
row gets a new ID; exercise order and set order follow the file.

EXAMPLES:

  lift import backup.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filename := args[0]

		raw, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}
		var data storage.ExportData
		if err := json.Unmarshal(raw, &data); err != nil {
			return fmt.Errorf("import failed: invalid JSON: %w", err)
		}

		ctx, err := localContext(cmd)
		if err != nil {
			return err
		}
		summary, err := svc.Import(ctx, &data)
		if err != nil {
			return fmt.Errorf("import failed: %w", err)
		}

		color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "✓ Imported %d workouts, %d exercises, %d sets from %s\n",
			summary.Workouts, summary.Exercises, summary.Sets, filename)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default: stdout)")
	exportCmd.Flags().StringVarP(&exportDate, "date", "d", "", "only include workouts on this date (YYYY-MM-DD)")

	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}
