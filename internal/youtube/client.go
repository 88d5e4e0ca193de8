// ABOUTME: Minimal YouTube Data API v3 client for channel stats sync.
// ABOUTME: Two GET endpoints: channel statistics and recent uploads search.
package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/harperreed/lifedash/internal/models"
)

const defaultBaseURL = "https://www.googleapis.com/youtube/v3"

// Client calls the YouTube Data API.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a client with a sane request timeout.
func NewClient() *Client {
	return &Client{
		baseURL: defaultBaseURL,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// NewClientWithBaseURL creates a client against a custom endpoint. Used by
// tests to point at a local server.
func NewClientWithBaseURL(baseURL string) *Client {
	c := NewClient()
	c.baseURL = baseURL
	return c
}

type channelListResponse struct {
	Items []struct {
		Statistics struct {
			SubscriberCount string `json:"subscriberCount"`
			ViewCount       string `json:"viewCount"`
			VideoCount      string `json:"videoCount"`
		} `json:"statistics"`
	} `json:"items"`
}

type searchListResponse struct {
	Items []struct {
		ID struct {
			VideoID string `json:"videoId"`
		} `json:"id"`
		Snippet struct {
			Title       string `json:"title"`
			PublishedAt string `json:"publishedAt"`
			Thumbnails  struct {
				Medium struct {
					URL string `json:"url"`
				} `json:"medium"`
			} `json:"thumbnails"`
		} `json:"snippet"`
	} `json:"items"`
}

// ChannelStats fetches subscriber/view/video counts plus the five most
// recent uploads for a channel.
func (c *Client) ChannelStats(ctx context.Context, apiKey, channelID string) (models.ChannelStats, error) {
	var stats models.ChannelStats

	var channels channelListResponse
	err := c.get(ctx, "/channels", url.Values{
		"part": {"statistics"},
		"id":   {channelID},
		"key":  {apiKey},
	}, &channels)
	if err != nil {
		return stats, err
	}
	if len(channels.Items) == 0 {
		return stats, fmt.Errorf("channel not found: %s", channelID)
	}

	st := channels.Items[0].Statistics
	stats.Subscribers, _ = strconv.ParseInt(st.SubscriberCount, 10, 64)
	stats.Views, _ = strconv.ParseInt(st.ViewCount, 10, 64)
	stats.VideosCount, _ = strconv.ParseInt(st.VideoCount, 10, 64)
	stats.LastUpdated = time.Now()

	// Recent uploads are best-effort: stats alone are still a success.
	var search searchListResponse
	err = c.get(ctx, "/search", url.Values{
		"part":       {"snippet"},
		"channelId":  {channelID},
		"order":      {"date"},
		"type":       {"video"},
		"maxResults": {"5"},
		"key":        {apiKey},
	}, &search)
	if err != nil {
		return stats, nil
	}
	for _, item := range search.Items {
		published, _ := time.Parse(time.RFC3339, item.Snippet.PublishedAt)
		stats.RecentVideos = append(stats.RecentVideos, models.RecentVideo{
			VideoID:     item.ID.VideoID,
			Title:       item.Snippet.Title,
			PublishedAt: published,
			Thumbnail:   item.Snippet.Thumbnails.Medium.URL,
		})
	}
	return stats, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("youtube api request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("youtube api: unexpected status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("youtube api: decode response: %w", err)
	}
	return nil
}
