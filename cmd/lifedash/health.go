// ABOUTME: CLI commands for health logs, food analysis, and period tracking.
// ABOUTME: Health logs upsert per calendar date; periods key on start date.
package main

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/lifedash/internal/models"
	"github.com/harperreed/lifedash/internal/openai"
)

var (
	healthDate    string
	healthSleep   float64
	healthCups    int
	healthMood    string
	healthQuality int
	healthJunk    int
	healthWeight  float64

	periodEnd       string
	periodIntensity string
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Track daily health logs",
}

var healthLogCmd = &cobra.Command{
	Use:   "log",
	Short: "Upsert a day's health log",
	Long: `Update the health log for a date (default today). A day has at
most one log; fields you pass are merged over what is already there.

Examples:
  lifedash health log --sleep 7.5 --cups 6
  lifedash health log --mood good --weight 82.5 --date 2025-08-27`,
	RunE: func(cmd *cobra.Command, args []string) error {
		date := healthDate
		if date == "" {
			date = models.Today()
		} else if !models.ValidDateKey(date) {
			return fmt.Errorf("invalid date: %s (want YYYY-MM-DD)", healthDate)
		}

		var patch models.HealthPatch
		if cmd.Flags().Changed("sleep") {
			patch.SleepHours = &healthSleep
		}
		if cmd.Flags().Changed("cups") {
			patch.HydrationCups = &healthCups
		}
		if cmd.Flags().Changed("mood") {
			patch.Mood = &healthMood
		}
		if cmd.Flags().Changed("quality") {
			patch.FoodQuality = &healthQuality
		}
		if cmd.Flags().Changed("junk") {
			patch.JunkFoodCount = &healthJunk
		}
		if cmd.Flags().Changed("weight") {
			patch.Weight = &healthWeight
		}

		st.UpsertHealthLog(date, patch)
		color.Green("✓ Health log updated for %s", date)
		return nil
	},
}

var healthShowCmd = &cobra.Command{
	Use:   "show [date]",
	Short: "Show a day's health log",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		date := models.Today()
		if len(args) == 1 {
			if !models.ValidDateKey(args[0]) {
				return fmt.Errorf("invalid date: %s", args[0])
			}
			date = args[0]
		}

		l, ok := st.HealthLogFor(date)
		if !ok {
			fmt.Printf("No health log for %s.\n", date)
			return nil
		}
		fmt.Printf("%s\n  sleep %.1fh  hydration %d cups  mood %s\n",
			color.New(color.Bold).Sprint(date), l.SleepHours, l.HydrationCups, l.Mood)
		fmt.Printf("  food quality %d/5  junk food x%d\n", l.FoodQuality, l.JunkFoodCount)
		if l.Weight != nil {
			fmt.Printf("  weight %.1f\n", *l.Weight)
		}
		if l.Calories != nil || l.Protein != nil {
			var cal, prot float64
			if l.Calories != nil {
				cal = *l.Calories
			}
			if l.Protein != nil {
				prot = *l.Protein
			}
			fmt.Printf("  calories %.0f  protein %.0fg\n", cal, prot)
		}
		if l.FoodLog != "" {
			fmt.Printf("  food: %s\n", l.FoodLog)
		}
		return nil
	},
}

var healthFoodCmd = &cobra.Command{
	Use:   "food <description>",
	Short: "Analyze a food description and log it for today",
	Long: `Send a free-form food description to OpenAI for nutrition
analysis and merge the result into today's health log. Requires an OpenAI
API key in settings or LIFEDASH_OPENAI_API_KEY.

Example:
  lifedash health food "two eggs, toast with butter, black coffee"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		apiKey := st.Settings().OpenAIAPIKey
		if !apiKey.IsSet() {
			return fmt.Errorf("no OpenAI API key configured (set one with 'lifedash settings set openai-key ...')")
		}

		client := openai.NewClient(string(apiKey))
		analysis, err := client.AnalyzeFood(context.Background(), args[0])
		if err != nil {
			// Analysis errors surface directly; the log stays untouched.
			return fmt.Errorf("food analysis failed: %w", err)
		}

		today := models.Today()
		existing, _ := st.HealthLogFor(today)
		calories := analysis.Calories
		protein := analysis.Protein
		if existing.Calories != nil {
			calories += *existing.Calories
		}
		if existing.Protein != nil {
			protein += *existing.Protein
		}
		junk := existing.JunkFoodCount
		if analysis.IsJunkFood {
			junk++
		}
		foodLog := args[0]
		if existing.FoodLog != "" {
			foodLog = existing.FoodLog + "; " + args[0]
		}

		st.UpsertHealthLog(today, models.HealthPatch{
			Calories:      &calories,
			Protein:       &protein,
			FoodQuality:   &analysis.Quality,
			JunkFoodCount: &junk,
			FoodLog:       &foodLog,
		})

		color.Green("✓ Logged: ~%.0f kcal, %.0fg protein, quality %d/5", analysis.Calories, analysis.Protein, analysis.Quality)
		if analysis.Insights != "" {
			fmt.Printf("  %s\n", analysis.Insights)
		}
		return nil
	},
}

var periodCmd = &cobra.Command{
	Use:   "period",
	Short: "Track menstrual cycles",
}

var periodAddCmd = &cobra.Command{
	Use:   "add <start-date>",
	Short: "Record a cycle starting on a date",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !models.ValidDateKey(args[0]) {
			return fmt.Errorf("invalid start date: %s (want YYYY-MM-DD)", args[0])
		}
		intensity := models.IntensityMedium
		if periodIntensity != "" {
			if !models.IsValidIntensity(periodIntensity) {
				return fmt.Errorf("intensity must be light, medium, or heavy")
			}
			intensity = models.PeriodIntensity(periodIntensity)
		}
		if periodEnd != "" && !models.ValidDateKey(periodEnd) {
			return fmt.Errorf("invalid end date: %s", periodEnd)
		}

		st.AddPeriod(models.PeriodData{
			StartDate: args[0],
			EndDate:   periodEnd,
			Intensity: intensity,
		})
		color.Green("✓ Recorded cycle starting %s", args[0])
		return nil
	},
}

var periodListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List recorded cycles, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		periods := st.Periods()
		if len(periods) == 0 {
			fmt.Println("No cycles recorded.")
			return nil
		}
		for _, p := range periods {
			end := p.EndDate
			if end == "" {
				end = "…"
			}
			fmt.Printf("%s → %s  %s\n", p.StartDate, end, p.Intensity)
		}
		return nil
	},
}

var periodDeleteCmd = &cobra.Command{
	Use:     "delete <start-date>",
	Aliases: []string{"rm"},
	Short:   "Delete the cycle with the given start date",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st.DeletePeriod(args[0])
		color.Green("✓ Deleted cycle %s (if it existed)", args[0])
		return nil
	},
}

func init() {
	healthLogCmd.Flags().StringVar(&healthDate, "date", "", "date (YYYY-MM-DD, default today)")
	healthLogCmd.Flags().Float64Var(&healthSleep, "sleep", 0, "hours slept")
	healthLogCmd.Flags().IntVar(&healthCups, "cups", 0, "cups of water")
	healthLogCmd.Flags().StringVar(&healthMood, "mood", "", "mood word")
	healthLogCmd.Flags().IntVar(&healthQuality, "quality", 0, "food quality 1-5")
	healthLogCmd.Flags().IntVar(&healthJunk, "junk", 0, "junk food count")
	healthLogCmd.Flags().Float64Var(&healthWeight, "weight", 0, "body weight")

	periodAddCmd.Flags().StringVar(&periodEnd, "end", "", "end date (YYYY-MM-DD)")
	periodAddCmd.Flags().StringVar(&periodIntensity, "intensity", "", "light, medium, or heavy")

	healthCmd.AddCommand(healthLogCmd, healthShowCmd, healthFoodCmd)
	periodCmd.AddCommand(periodAddCmd, periodListCmd, periodDeleteCmd)
	rootCmd.AddCommand(healthCmd, periodCmd)
}
