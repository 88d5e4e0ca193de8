// ABOUTME: ChannelStats singleton for synced YouTube channel numbers.
// ABOUTME: Overwritten wholesale by the stats sync operation on success.
package models

import "time"

// RecentVideo is one recently published upload on the tracked channel.
type RecentVideo struct {
	VideoID     string    `json:"video_id"`
	Title       string    `json:"title"`
	PublishedAt time.Time `json:"published_at"`
	Thumbnail   string    `json:"thumbnail,omitempty"`
}

// ChannelStats is the singleton snapshot of the tracked channel.
type ChannelStats struct {
	Subscribers  int64         `json:"subscribers"`
	Views        int64         `json:"views"`
	VideosCount  int64         `json:"videos_count"`
	LastUpdated  time.Time     `json:"last_updated"`
	RecentVideos []RecentVideo `json:"recent_videos,omitempty"`
}

// DefaultChannelStats returns the zeroed placeholder shown before any sync.
func DefaultChannelStats() ChannelStats {
	return ChannelStats{}
}
