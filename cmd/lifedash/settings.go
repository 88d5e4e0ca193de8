// ABOUTME: CLI commands for the settings singleton.
// ABOUTME: Set individual fields; credentials print masked.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/lifedash/internal/models"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change preferences",
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		set := st.Settings()
		fmt.Printf("name                %s\n", set.Name)
		fmt.Printf("theme               %s\n", set.Theme)
		fmt.Printf("monthly budget      %.2f\n", set.MonthlyBudget)
		fmt.Printf("weight unit         %s\n", set.WeightUnit)
		fmt.Printf("activity level      %s\n", set.ActivityLevel)
		fmt.Printf("hydration goal      %.1f L\n", set.HydrationGoalLiters)
		fmt.Printf("sleep goal          %.1f h\n", set.SleepGoalHours)
		fmt.Printf("youtube api key     %s\n", maskCredential(set.YouTubeAPIKey))
		fmt.Printf("youtube channel id  %s\n", maskCredential(set.YouTubeChannelID))
		fmt.Printf("openai api key      %s\n", maskCredential(set.OpenAIAPIKey))
		return nil
	},
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <field> <value>",
	Short: "Set a settings field",
	Long: `Set one settings field.

Fields: name, theme, budget, weight-unit, activity, hydration-goal,
sleep-goal, youtube-key, youtube-channel, openai-key

Examples:
  lifedash settings set budget 1500
  lifedash settings set youtube-key AIza...`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		field, value := args[0], args[1]

		var parseErr error
		st.UpdateSettings(func(set *models.Settings) {
			switch field {
			case "name":
				set.Name = value
			case "theme":
				set.Theme = value
			case "budget":
				set.MonthlyBudget, parseErr = strconv.ParseFloat(value, 64)
			case "weight-unit":
				set.WeightUnit = value
			case "activity":
				set.ActivityLevel = value
			case "hydration-goal":
				set.HydrationGoalLiters, parseErr = strconv.ParseFloat(value, 64)
			case "sleep-goal":
				set.SleepGoalHours, parseErr = strconv.ParseFloat(value, 64)
			case "youtube-key":
				set.YouTubeAPIKey = models.Credential(value)
			case "youtube-channel":
				set.YouTubeChannelID = models.Credential(value)
			case "openai-key":
				set.OpenAIAPIKey = models.Credential(value)
			default:
				parseErr = fmt.Errorf("unknown field: %s", field)
			}
		})
		if parseErr != nil {
			return parseErr
		}
		color.Green("✓ %s updated", field)
		return nil
	},
}

func maskCredential(c models.Credential) string {
	if !c.IsSet() {
		return "(unset)"
	}
	s := string(c)
	if len(s) <= 8 {
		return "****"
	}
	return s[:4] + "…" + s[len(s)-4:]
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd, settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}
