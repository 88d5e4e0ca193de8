// ABOUTME: CLI commands for the study-hours slice.
// ABOUTME: Hours accumulate per date; logging adds to the day's total.
package main

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/lifedash/internal/models"
)

var studyDate string

var studyCmd = &cobra.Command{
	Use:   "study [hours]",
	Short: "Log study hours, or show the log",
	Long: `Add study hours to a date's running total (default today), or
show the full log when called without arguments.

Examples:
  lifedash study 1.5
  lifedash study 2 --date 2025-08-26
  lifedash study`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			log := st.StudyLog()
			if len(log) == 0 {
				fmt.Println("No study hours logged.")
				return nil
			}
			dates := make([]string, 0, len(log))
			for d := range log {
				dates = append(dates, d)
			}
			sort.Sort(sort.Reverse(sort.StringSlice(dates)))
			for _, d := range dates {
				fmt.Printf("%s  %.1fh\n", d, log[d])
			}
			fmt.Printf("\ntotal %.1fh\n", log.Total())
			return nil
		}

		hours, err := strconv.ParseFloat(args[0], 64)
		if err != nil || hours <= 0 {
			return fmt.Errorf("invalid hours: %s", args[0])
		}

		date := studyDate
		if date == "" {
			date = models.Today()
		} else if !models.ValidDateKey(date) {
			return fmt.Errorf("invalid date: %s (want YYYY-MM-DD)", studyDate)
		}

		st.LogStudyHours(date, hours)
		color.Green("✓ Logged %.1fh for %s (total %.1fh)", hours, date, st.StudyHoursFor(date))
		return nil
	},
}

func init() {
	studyCmd.Flags().StringVar(&studyDate, "date", "", "date (YYYY-MM-DD, default today)")
	rootCmd.AddCommand(studyCmd)
}
