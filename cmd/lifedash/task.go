// ABOUTME: CLI commands for the tasks slice.
// ABOUTME: Add, list, toggle done state, and delete to-dos.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/lifedash/internal/models"
)

var (
	taskDate     string
	taskPriority string
	taskCategory string
	taskListAll  bool
)

var taskCmd = &cobra.Command{
	Use:     "task",
	Aliases: []string{"t"},
	Short:   "Manage to-do tasks",
}

var taskAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a task",
	Long: `Add a task. New tasks go to the top of the list.

Examples:
  lifedash task add "Ship the report"
  lifedash task add "Dentist" --date 2025-09-03 --priority high`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := strings.TrimSpace(args[0])
		if name == "" {
			return fmt.Errorf("task name cannot be empty")
		}

		date := taskDate
		if date == "" {
			date = models.Today()
		} else if !models.ValidDateKey(date) {
			return fmt.Errorf("invalid date: %s (want YYYY-MM-DD)", taskDate)
		}

		t := models.NewTask(name, date)
		if taskPriority != "" {
			t.WithPriority(models.Priority(taskPriority))
		}
		if taskCategory != "" {
			t.WithCategory(taskCategory)
		}
		st.AddTask(t)

		color.Green("✓ Added task %q for %s", t.Name, t.Time)
		fmt.Printf("  %s\n", color.New(color.Faint).Sprint(t.ID.String()[:8]))
		return nil
	},
}

var taskListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List tasks (pending by default)",
	RunE: func(cmd *cobra.Command, args []string) error {
		tasks := st.Tasks()
		shown := 0
		for _, t := range tasks {
			if t.Completed && !taskListAll {
				continue
			}
			check := color.New(color.Faint).Sprint("·")
			if t.Completed {
				check = color.GreenString("✓")
			}
			fmt.Printf("%s %s  %-32s %s %s\n",
				color.New(color.Faint).Sprint(t.ID.String()[:8]),
				check, t.Name, t.Time, t.Priority)
			shown++
		}
		if shown == 0 {
			fmt.Println("Nothing to do. Add a task with 'lifedash task add'.")
		}
		return nil
	},
}

var taskDoneCmd = &cobra.Command{
	Use:     "done <id|name>",
	Aliases: []string{"toggle"},
	Short:   "Toggle a task's done state",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := findTask(args[0])
		if err != nil {
			return err
		}
		st.ToggleTask(t.ID)
		if t.Completed {
			fmt.Printf("↺ Reopened %q\n", t.Name)
		} else {
			color.Green("✓ Completed %q", t.Name)
		}
		return nil
	},
}

var taskDeleteCmd = &cobra.Command{
	Use:     "delete <id|name>",
	Aliases: []string{"rm"},
	Short:   "Delete a task",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := findTask(args[0])
		if err != nil {
			return err
		}
		st.DeleteTask(t.ID)
		color.Green("✓ Deleted task %q", t.Name)
		return nil
	},
}

// findTask resolves a task by ID prefix or case-insensitive name.
func findTask(ref string) (*models.Task, error) {
	var match *models.Task
	for _, t := range st.Tasks() {
		if strings.HasPrefix(t.ID.String(), strings.ToLower(ref)) ||
			strings.EqualFold(t.Name, ref) {
			if match != nil {
				return nil, fmt.Errorf("ambiguous task reference: %s", ref)
			}
			tt := t
			match = &tt
		}
	}
	if match == nil {
		return nil, fmt.Errorf("task not found: %s", ref)
	}
	return match, nil
}

func init() {
	taskAddCmd.Flags().StringVar(&taskDate, "date", "", "scheduled date (YYYY-MM-DD, default today)")
	taskAddCmd.Flags().StringVarP(&taskPriority, "priority", "p", "", "priority: low, medium, high")
	taskAddCmd.Flags().StringVarP(&taskCategory, "category", "c", "", "task category")
	taskListCmd.Flags().BoolVarP(&taskListAll, "all", "a", false, "include completed tasks")

	taskCmd.AddCommand(taskAddCmd, taskListCmd, taskDoneCmd, taskDeleteCmd)
	rootCmd.AddCommand(taskCmd)
}
