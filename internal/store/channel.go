// ABOUTME: Channel stats singleton and the async stats sync operation.
// ABOUTME: Sync failures are logged and leave the prior snapshot untouched.
package store

import (
	"context"

	"github.com/harperreed/lifedash/internal/models"
)

// StatsFetcher fetches channel statistics from the YouTube Data API.
// Implemented by youtube.Client; faked in tests.
type StatsFetcher interface {
	ChannelStats(ctx context.Context, apiKey, channelID string) (models.ChannelStats, error)
}

// ChannelStats returns the channel stats singleton.
func (s *Store) ChannelStats() models.ChannelStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.channelStats
}

// SyncChannelStats fetches fresh channel statistics and overwrites the
// singleton on success. Missing credentials are a soft precondition: the
// operation logs a warning and exits early. Fetch failures are logged and
// leave the prior snapshot unchanged; neither case returns an error.
func (s *Store) SyncChannelStats(ctx context.Context) {
	s.mu.RLock()
	apiKey := s.settings.YouTubeAPIKey
	channelID := s.settings.YouTubeChannelID
	fetcher := s.stats
	s.mu.RUnlock()

	if fetcher == nil {
		logger.Warn("channel stats sync skipped: no fetcher configured")
		return
	}
	if !apiKey.IsSet() || !channelID.IsSet() {
		logger.Warn("channel stats sync skipped: missing YouTube credentials")
		return
	}

	stats, err := fetcher.ChannelStats(ctx, string(apiKey), string(channelID))
	if err != nil {
		logger.Error("channel stats sync failed", "err", err)
		return
	}

	s.mu.Lock()
	s.channelStats = stats
	s.persist(sliceChannelStats, s.channelStats)
	s.mu.Unlock()
}
