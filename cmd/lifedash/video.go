// ABOUTME: CLI commands for the video content planner slice.
// ABOUTME: Plans carry a checklist, target metrics, and a publish status.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/lifedash/internal/models"
)

var (
	videoCategory string
	videoAudience string
	videoDate     string
	videoNotes    string
)

var videoCmd = &cobra.Command{
	Use:   "video",
	Short: "Plan video content",
}

var videoAddCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a video plan",
	Long: `Add a draft video plan.

Example:
  lifedash video add "Badger internals deep dive" --category tech --publish 2025-09-15`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p := models.NewVideoPlan(args[0])
		p.Category = videoCategory
		p.TargetAudience = videoAudience
		p.PublishDate = videoDate
		p.Notes = videoNotes
		st.AddVideoPlan(p)

		color.Green("✓ Added video plan %q", p.Title)
		fmt.Printf("  %s\n", color.New(color.Faint).Sprint(p.ID.String()[:8]))
		return nil
	},
}

var videoListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List video plans",
	RunE: func(cmd *cobra.Command, args []string) error {
		plans := st.VideoPlans()
		if len(plans) == 0 {
			fmt.Println("No video plans yet.")
			return nil
		}
		for _, p := range plans {
			done := 0
			for _, item := range p.Checklist {
				if item.Completed {
					done++
				}
			}
			fmt.Printf("%s %-10s %-32s checklist %d/%d  %s\n",
				color.New(color.Faint).Sprint(p.ID.String()[:8]),
				p.Status, p.Title, done, len(p.Checklist), p.PublishDate)
		}
		return nil
	},
}

var videoChecklistCmd = &cobra.Command{
	Use:   "check <plan-id> <item-text>",
	Short: "Add a checklist item, or toggle one by its id",
	Long: `Add a checklist item to a plan. If the second argument matches
an existing checklist item's ID prefix, that item is toggled instead.

Examples:
  lifedash video check a1b2c3d4 "Write script"
  lifedash video check a1b2c3d4 e5f6a7b8`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		plan, err := findVideoPlan(args[0])
		if err != nil {
			return err
		}

		// Toggle if the argument resolves to an existing item.
		for _, item := range plan.Checklist {
			if strings.HasPrefix(item.ID.String(), strings.ToLower(args[1])) {
				st.ToggleChecklistItem(plan.ID, item.ID)
				color.Green("✓ Toggled %q", item.Text)
				return nil
			}
		}

		item := models.NewChecklistItem(args[1])
		st.UpdateVideoPlan(plan.ID, func(p *models.VideoPlan) {
			p.Checklist = append(p.Checklist, item)
		})
		color.Green("✓ Added checklist item %q", item.Text)
		fmt.Printf("  %s\n", color.New(color.Faint).Sprint(item.ID.String()[:8]))
		return nil
	},
}

var videoStatusCmd = &cobra.Command{
	Use:   "status <plan-id> <draft|scheduled|published>",
	Short: "Move a plan to a new status",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		plan, err := findVideoPlan(args[0])
		if err != nil {
			return err
		}
		if !models.IsValidVideoStatus(args[1]) {
			return fmt.Errorf("status must be draft, scheduled, or published")
		}
		st.UpdateVideoPlan(plan.ID, func(p *models.VideoPlan) {
			p.Status = models.VideoStatus(args[1])
		})
		color.Green("✓ %q is now %s", plan.Title, args[1])
		return nil
	},
}

var videoDeleteCmd = &cobra.Command{
	Use:     "delete <plan-id>",
	Aliases: []string{"rm"},
	Short:   "Delete a video plan",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		plan, err := findVideoPlan(args[0])
		if err != nil {
			return err
		}
		st.DeleteVideoPlan(plan.ID)
		color.Green("✓ Deleted %q", plan.Title)
		return nil
	},
}

// findVideoPlan resolves a plan by ID prefix or case-insensitive title.
func findVideoPlan(ref string) (*models.VideoPlan, error) {
	var match *models.VideoPlan
	for _, p := range st.VideoPlans() {
		if strings.HasPrefix(p.ID.String(), strings.ToLower(ref)) ||
			strings.EqualFold(p.Title, ref) {
			if match != nil {
				return nil, fmt.Errorf("ambiguous plan reference: %s", ref)
			}
			pp := p
			match = &pp
		}
	}
	if match == nil {
		return nil, fmt.Errorf("video plan not found: %s", ref)
	}
	return match, nil
}

func init() {
	videoAddCmd.Flags().StringVarP(&videoCategory, "category", "c", "", "content category")
	videoAddCmd.Flags().StringVar(&videoAudience, "audience", "", "target audience")
	videoAddCmd.Flags().StringVar(&videoDate, "publish", "", "planned publish date (YYYY-MM-DD)")
	videoAddCmd.Flags().StringVar(&videoNotes, "notes", "", "free-form notes")

	videoCmd.AddCommand(videoAddCmd, videoListCmd, videoChecklistCmd, videoStatusCmd, videoDeleteCmd)
	rootCmd.AddCommand(videoCmd)
}
