// ABOUTME: Tests for the YouTube stats client against a local httptest server.
// ABOUTME: Recent uploads are best-effort; stats alone still succeed.
package youtube

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

const channelJSON = `{
	"items": [{
		"statistics": {
			"subscriberCount": "15300",
			"viewCount": "2450000",
			"videoCount": "142"
		}
	}]
}`

const searchJSON = `{
	"items": [{
		"id": {"videoId": "abc123"},
		"snippet": {
			"title": "How I plan my week",
			"publishedAt": "2026-08-20T12:00:00Z",
			"thumbnails": {"medium": {"url": "https://i.ytimg.com/abc123.jpg"}}
		}
	}]
}`

func TestChannelStats(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/channels":
			if r.URL.Query().Get("key") != "test-key" {
				t.Errorf("missing api key in query: %s", r.URL.RawQuery)
			}
			if r.URL.Query().Get("id") != "UC123" {
				t.Errorf("missing channel id in query: %s", r.URL.RawQuery)
			}
			fmt.Fprint(w, channelJSON)
		case "/search":
			fmt.Fprint(w, searchJSON)
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	c := NewClientWithBaseURL(srv.URL)
	stats, err := c.ChannelStats(context.Background(), "test-key", "UC123")
	if err != nil {
		t.Fatalf("ChannelStats: %v", err)
	}

	if stats.Subscribers != 15300 || stats.Views != 2450000 || stats.VideosCount != 142 {
		t.Errorf("stats mismatch: %+v", stats)
	}
	if stats.LastUpdated.IsZero() {
		t.Error("LastUpdated should be stamped")
	}
	if len(stats.RecentVideos) != 1 || stats.RecentVideos[0].VideoID != "abc123" {
		t.Errorf("recent videos mismatch: %+v", stats.RecentVideos)
	}
	if stats.RecentVideos[0].Title != "How I plan my week" {
		t.Errorf("title mismatch: %q", stats.RecentVideos[0].Title)
	}
}

func TestChannelStatsSearchFailureIsBestEffort(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/channels" {
			fmt.Fprint(w, channelJSON)
			return
		}
		w.WriteHeader(http.StatusForbidden) // search quota exhausted
	}))
	defer srv.Close()

	c := NewClientWithBaseURL(srv.URL)
	stats, err := c.ChannelStats(context.Background(), "k", "UC123")
	if err != nil {
		t.Fatalf("stats-only fetch should still succeed: %v", err)
	}
	if stats.Subscribers != 15300 {
		t.Errorf("stats mismatch: %+v", stats)
	}
	if len(stats.RecentVideos) != 0 {
		t.Errorf("failed search should leave uploads empty: %+v", stats.RecentVideos)
	}
}

func TestChannelStatsUnknownChannel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"items": []}`)
	}))
	defer srv.Close()

	c := NewClientWithBaseURL(srv.URL)
	if _, err := c.ChannelStats(context.Background(), "k", "UC404"); err == nil {
		t.Fatal("unknown channel should error")
	}
}

func TestChannelStatsHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewClientWithBaseURL(srv.URL)
	if _, err := c.ChannelStats(context.Background(), "bad-key", "UC123"); err == nil {
		t.Fatal("unauthorized response should error")
	}
}
