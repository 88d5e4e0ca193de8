// ABOUTME: CLI commands for the goal roadmap slice.
// ABOUTME: Milestones stay sorted by due date; focus notes key on month.
package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/lifedash/internal/models"
)

var goalYear int

var goalCmd = &cobra.Command{
	Use:   "goal",
	Short: "Plan the yearly goal roadmap",
}

var goalShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the roadmap",
	RunE: func(cmd *cobra.Command, args []string) error {
		r := st.Roadmap()
		if r.MainGoal == "" && len(r.Milestones) == 0 {
			fmt.Println("No roadmap yet. Set a goal with 'lifedash goal set'.")
			return nil
		}

		fmt.Printf("%s (%d)\n", color.New(color.Bold).Sprint(r.MainGoal), r.Year)
		for _, m := range r.Milestones {
			check := color.New(color.Faint).Sprint("·")
			if m.Status == models.MilestoneCompleted {
				check = color.GreenString("✓")
			}
			fmt.Printf("%s %s  %s  %s\n",
				color.New(color.Faint).Sprint(m.ID.String()[:8]), check, m.DueDate, m.Title)
		}
		if len(r.MonthlyFocus) > 0 {
			fmt.Println()
			months := make([]string, 0, len(r.MonthlyFocus))
			for m := range r.MonthlyFocus {
				months = append(months, m)
			}
			sort.Strings(months)
			for _, m := range months {
				fmt.Printf("  %-10s %s\n", m, r.MonthlyFocus[m])
			}
		}
		return nil
	},
}

var goalSetCmd = &cobra.Command{
	Use:   "set <main-goal>",
	Short: "Set the main goal for the year",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r := st.Roadmap()
		r.MainGoal = args[0]
		if goalYear != 0 {
			r.Year = goalYear
		}
		st.SetRoadmap(r)
		color.Green("✓ Goal set: %s (%d)", r.MainGoal, r.Year)
		return nil
	},
}

var goalMilestoneCmd = &cobra.Command{
	Use:   "milestone <title> <due-date>",
	Short: "Add a milestone",
	Long: `Add a milestone. The list keeps due-date order, so an earlier
due date lands earlier in the roadmap.

Example:
  lifedash goal milestone "First 1000 subscribers" 2025-10-01`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !models.ValidDateKey(args[1]) {
			return fmt.Errorf("invalid due date: %s (want YYYY-MM-DD)", args[1])
		}
		m := models.NewMilestone(args[0], args[1])
		st.AddMilestone(m)
		color.Green("✓ Added milestone %q due %s", m.Title, m.DueDate)
		return nil
	},
}

var goalDoneCmd = &cobra.Command{
	Use:   "done <milestone-id>",
	Short: "Toggle a milestone between pending and completed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r := st.Roadmap()
		for _, m := range r.Milestones {
			if strings.HasPrefix(m.ID.String(), strings.ToLower(args[0])) {
				st.UpdateMilestone(m.ID, func(ms *models.Milestone) {
					if ms.Status == models.MilestoneCompleted {
						ms.Status = models.MilestonePending
					} else {
						ms.Status = models.MilestoneCompleted
					}
				})
				color.Green("✓ Toggled milestone %q", m.Title)
				return nil
			}
		}
		return fmt.Errorf("milestone not found: %s", args[0])
	},
}

var goalFocusCmd = &cobra.Command{
	Use:   "focus <month> <text>",
	Short: "Set the focus note for a month",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		st.SetMonthlyFocus(args[0], args[1])
		color.Green("✓ Focus for %s set", args[0])
		return nil
	},
}

func init() {
	goalSetCmd.Flags().IntVar(&goalYear, "year", 0, "roadmap year (default current)")

	goalCmd.AddCommand(goalShowCmd, goalSetCmd, goalMilestoneCmd, goalDoneCmd, goalFocusCmd)
	rootCmd.AddCommand(goalCmd)
}
