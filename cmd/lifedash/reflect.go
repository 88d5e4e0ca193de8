// ABOUTME: CLI commands for the reflection journal slice.
// ABOUTME: Reflections are timestamped thoughts with free-form tags.
package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/lifedash/internal/models"
)

var (
	reflectTags  string
	reflectLimit int
)

var reflectCmd = &cobra.Command{
	Use:   "reflect [thought]",
	Short: "Journal a reflection, or list recent ones",
	Long: `Append a reflection to the journal, or list recent entries when
called without arguments.

Examples:
  lifedash reflect "Shipped the tracker rewrite today"
  lifedash reflect "Slow morning" --tags energy,sleep
  lifedash reflect`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			refs := st.Reflections()
			if len(refs) == 0 {
				fmt.Println("No reflections yet.")
				return nil
			}
			limit := reflectLimit
			if limit <= 0 || limit > len(refs) {
				limit = len(refs)
			}
			for _, r := range refs[:limit] {
				fmt.Printf("%s  %s\n", color.New(color.Faint).Sprint(r.Date.Format(time.DateOnly)), r.Thought)
				if len(r.Tags) > 0 {
					fmt.Printf("          #%s\n", strings.Join(r.Tags, " #"))
				}
			}
			return nil
		}

		thought := strings.TrimSpace(args[0])
		if thought == "" {
			return fmt.Errorf("reflection cannot be empty")
		}
		var tags []string
		if reflectTags != "" {
			for _, tag := range strings.Split(reflectTags, ",") {
				if tag = strings.TrimSpace(tag); tag != "" {
					tags = append(tags, tag)
				}
			}
		}

		r := models.NewReflection(thought, tags)
		st.AddReflection(r)
		color.Green("✓ Saved reflection")
		return nil
	},
}

func init() {
	reflectCmd.Flags().StringVar(&reflectTags, "tags", "", "comma-separated tags")
	reflectCmd.Flags().IntVarP(&reflectLimit, "limit", "n", 10, "max reflections to list")
	rootCmd.AddCommand(reflectCmd)
}
