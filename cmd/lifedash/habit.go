// ABOUTME: CLI commands for the habits slice.
// ABOUTME: Add, list, toggle daily completion, and delete habits.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/lifedash/internal/models"
)

var (
	habitCategory  string
	habitPriority  string
	habitIcon      string
	habitFrequency string
	habitDoneDate  string
)

var habitCmd = &cobra.Command{
	Use:     "habit",
	Aliases: []string{"h"},
	Short:   "Track recurring habits",
}

var habitAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a habit",
	Long: `Add a habit to track.

Examples:
  lifedash habit add "Read" --category Mind
  lifedash habit add "Run" --priority high --icon 🏃`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := strings.TrimSpace(args[0])
		if name == "" {
			return fmt.Errorf("habit name cannot be empty")
		}

		h := models.NewHabit(name, habitCategory)
		if habitPriority != "" {
			h.WithPriority(models.Priority(habitPriority))
		}
		if habitFrequency != "" {
			h.WithFrequency(models.HabitFrequency(habitFrequency))
		}
		if habitIcon != "" {
			h.WithIcon(habitIcon)
		}
		st.AddHabit(h)

		color.Green("✓ Added habit %q", h.Name)
		fmt.Printf("  %s\n", color.New(color.Faint).Sprint(h.ID.String()[:8]))
		return nil
	},
}

var habitListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List habits",
	RunE: func(cmd *cobra.Command, args []string) error {
		habits := st.Habits()
		if len(habits) == 0 {
			fmt.Println("No habits yet. Add one with 'lifedash habit add'.")
			return nil
		}

		today := models.Today()
		for _, h := range habits {
			check := color.New(color.Faint).Sprint("·")
			if h.CompletedOn(today) {
				check = color.GreenString("✓")
			}
			fmt.Printf("%s %s  %-24s %-10s streak %d\n",
				color.New(color.Faint).Sprint(h.ID.String()[:8]),
				check, h.Name, h.Category, h.Streak)
		}
		return nil
	},
}

var habitDoneCmd = &cobra.Command{
	Use:     "done <id|name>",
	Aliases: []string{"toggle"},
	Short:   "Toggle a habit's completion for a date (default today)",
	Long: `Toggle a habit's daily completion. Completing bumps the streak
counter; toggling the same date again un-completes it and drops the
counter (never below zero).

Examples:
  lifedash habit done read
  lifedash habit done a1b2c3d4 --date 2024-01-01`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := findHabit(args[0])
		if err != nil {
			return err
		}

		date := habitDoneDate
		if date == "" {
			date = models.Today()
		} else if !models.ValidDateKey(date) {
			return fmt.Errorf("invalid date: %s (want YYYY-MM-DD)", habitDoneDate)
		}

		st.ToggleHabitDate(h.ID, date)

		updated, err := findHabit(h.ID.String())
		if err != nil {
			return err
		}
		if updated.CompletedOn(date) {
			color.Green("✓ %s completed for %s (streak: %d)", updated.Name, date, updated.Streak)
		} else {
			fmt.Printf("↺ %s un-completed for %s (streak: %d)\n", updated.Name, date, updated.Streak)
		}
		return nil
	},
}

var habitDeleteCmd = &cobra.Command{
	Use:     "delete <id|name>",
	Aliases: []string{"rm"},
	Short:   "Delete a habit",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := findHabit(args[0])
		if err != nil {
			return err
		}
		st.DeleteHabit(h.ID)
		color.Green("✓ Deleted habit %q", h.Name)
		return nil
	},
}

// findHabit resolves a habit by ID prefix or case-insensitive name.
func findHabit(ref string) (*models.Habit, error) {
	var match *models.Habit
	for _, h := range st.Habits() {
		if strings.HasPrefix(h.ID.String(), strings.ToLower(ref)) ||
			strings.EqualFold(h.Name, ref) {
			if match != nil {
				return nil, fmt.Errorf("ambiguous habit reference: %s", ref)
			}
			hh := h
			match = &hh
		}
	}
	if match == nil {
		return nil, fmt.Errorf("habit not found: %s", ref)
	}
	return match, nil
}

func init() {
	habitAddCmd.Flags().StringVarP(&habitCategory, "category", "c", "", "habit category (Mind, Body, Work, ...)")
	habitAddCmd.Flags().StringVarP(&habitPriority, "priority", "p", "", "priority: low, medium, high")
	habitAddCmd.Flags().StringVar(&habitFrequency, "frequency", "", "frequency: daily, weekly, monthly")
	habitAddCmd.Flags().StringVar(&habitIcon, "icon", "", "display icon")
	habitDoneCmd.Flags().StringVar(&habitDoneDate, "date", "", "date to toggle (YYYY-MM-DD, default today)")

	habitCmd.AddCommand(habitAddCmd, habitListCmd, habitDoneCmd, habitDeleteCmd)
	rootCmd.AddCommand(habitCmd)
}
