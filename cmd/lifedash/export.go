// ABOUTME: CLI command exporting the active identity's full snapshot.
// ABOUTME: Writes pretty-printed JSON to stdout or a file.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export every slice of the active identity as JSON",
	Long: `Dump the active identity's complete state: habits, tasks,
transactions, savings, health logs, periods, reflections, roadmap,
channel stats, study log, video plans, and settings.

Examples:
  lifedash export
  lifedash export -o backup.json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := json.MarshalIndent(st.Export(), "", "  ")
		if err != nil {
			return fmt.Errorf("marshal snapshot: %w", err)
		}

		if exportOutput == "" {
			fmt.Println(string(data))
			return nil
		}
		if err := os.WriteFile(exportOutput, data, 0600); err != nil {
			return fmt.Errorf("write %s: %w", exportOutput, err)
		}
		color.Green("✓ Exported to %s", exportOutput)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "write to file instead of stdout")
	rootCmd.AddCommand(exportCmd)
}
