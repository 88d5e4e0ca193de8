// ABOUTME: CLI dashboard command aggregating today's state across slices.
// ABOUTME: Read-only view over habits, tasks, money, study, and health.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's dashboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		sum := st.TodaySummary()

		fmt.Println(color.New(color.Bold).Sprint(sum.Date))
		fmt.Printf("  habits   %d/%d done\n", sum.HabitsDone, sum.HabitsTotal)
		fmt.Printf("  tasks    %d pending\n", sum.PendingTasks)
		fmt.Printf("  study    %.1fh\n", sum.StudyHours)
		if sum.HealthLog != nil {
			fmt.Printf("  health   sleep %.1fh, %d cups, mood %s\n",
				sum.HealthLog.SleepHours, sum.HealthLog.HydrationCups, sum.HealthLog.Mood)
		} else {
			fmt.Println("  health   no log yet")
		}
		fmt.Printf("  balance  %+.2f this month", sum.MonthBalance)
		if sum.MonthlyBudget > 0 {
			fmt.Printf(" (spent %.2f of %.2f)", sum.MonthExpenses, sum.MonthlyBudget)
		}
		fmt.Println()
		if sum.SavingsProgress > 0 {
			fmt.Printf("  savings  %.0f%% of goal\n", sum.SavingsProgress*100)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(todayCmd)
}
