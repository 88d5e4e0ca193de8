// ABOUTME: CLI commands for the YouTube channel stats singleton.
// ABOUTME: Sync fetches fresh numbers; stale data renders as placeholders.
package main

import (
	"context"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var channelCmd = &cobra.Command{
	Use:   "channel",
	Short: "Track YouTube channel stats",
}

var channelSyncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Fetch fresh channel statistics",
	Long: `Fetch subscriber, view, and video counts from the YouTube Data
API. Requires a YouTube API key and channel ID in settings or in the
LIFEDASH_YOUTUBE_API_KEY / LIFEDASH_YOUTUBE_CHANNEL_ID environment.

On failure the previous snapshot is kept.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		st.SyncChannelStats(context.Background())
		return showChannelStats()
	},
}

var channelShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the last synced channel statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return showChannelStats()
	},
}

func showChannelStats() error {
	stats := st.ChannelStats()
	if stats.LastUpdated.IsZero() {
		fmt.Println("No stats yet. Run 'lifedash channel sync' with credentials configured.")
		return nil
	}

	fmt.Printf("%s subscribers  %s views  %s videos\n",
		color.New(color.Bold).Sprintf("%d", stats.Subscribers),
		color.New(color.Bold).Sprintf("%d", stats.Views),
		color.New(color.Bold).Sprintf("%d", stats.VideosCount))
	fmt.Printf("synced %s\n", stats.LastUpdated.Format(time.RFC822))

	if len(stats.RecentVideos) > 0 {
		fmt.Println("\nrecent uploads:")
		for _, v := range stats.RecentVideos {
			fmt.Printf("  %s  %s\n", v.PublishedAt.Format(time.DateOnly), v.Title)
		}
	}
	return nil
}

func init() {
	channelCmd.AddCommand(channelSyncCmd, channelShowCmd)
	rootCmd.AddCommand(channelCmd)
}
