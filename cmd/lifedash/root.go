// ABOUTME: Root Cobra command for lifedash CLI.
// ABOUTME: Opens the keyed store before commands run and flushes after.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harperreed/lifedash/internal/config"
	"github.com/harperreed/lifedash/internal/kv"
	"github.com/harperreed/lifedash/internal/store"
	"github.com/harperreed/lifedash/internal/youtube"
)

var (
	db kv.Store
	st *store.Store
)

var rootCmd = &cobra.Command{
	Use:   "lifedash",
	Short: "Personal life-management dashboard",
	Long: `Lifedash tracks the moving parts of daily life from one place:
habits, tasks, money, health, goals, study hours, and a video planner.

QUICK START:

  $ lifedash habit add "Read" --category Mind   # Track a habit
  $ lifedash habit done read                    # Toggle today's completion
  $ lifedash task add "Ship the report"         # Add a to-do
  $ lifedash tx add "Groceries" 42.50 expense   # Record spending
  $ lifedash health log --sleep 7.5 --cups 6    # Upsert today's health log
  $ lifedash today                              # Dashboard for today

IDENTITIES:

  Data is namespaced per identity. Without a login you are the guest
  identity; 'lifedash login you@example.com' switches to a private key
  space and 'lifedash logout' switches back. Nothing is merged or erased
  when switching.

DATA STORAGE:

  Every slice persists as one blob in a local Badger database at
  ~/.local/share/lifedash (XDG aware). Set "backend": "charm" in
  ~/.config/lifedash/config.json to sync through Charm Cloud instead.

MCP INTEGRATION:

  Run 'lifedash mcp' to start the Model Context Protocol server for use
  with MCP-compatible AI assistants.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip store init for commands that don't need it
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		db, err = cfg.OpenStorage()
		if err != nil {
			return fmt.Errorf("open storage: %w", err)
		}

		st = store.New(db, store.Options{
			Env:   config.LoadEnvCredentials(),
			Stats: youtube.NewClient(),
		})
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if st != nil {
			st.Close()
		}
		if db != nil {
			return db.Close()
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
