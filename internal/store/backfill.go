// ABOUTME: Credential backfill from environment defaults at load time.
// ABOUTME: Only unset or placeholder fields are ever filled, never clobbered.
package store

import "github.com/harperreed/lifedash/internal/models"

// backfillCredentials fills unset integration credentials from the
// environment defaults. Runs at construction and again on every identity
// reload. A genuine user-entered value is never overwritten.
func (s *Store) backfillCredentials(set models.Settings) models.Settings {
	if !set.YouTubeAPIKey.IsSet() && s.env.YouTubeAPIKey != "" {
		set.YouTubeAPIKey = models.Credential(s.env.YouTubeAPIKey)
	}
	if !set.YouTubeChannelID.IsSet() && s.env.YouTubeChannelID != "" {
		set.YouTubeChannelID = models.Credential(s.env.YouTubeChannelID)
	}
	if !set.OpenAIAPIKey.IsSet() && s.env.OpenAIAPIKey != "" {
		set.OpenAIAPIKey = models.Credential(s.env.OpenAIAPIKey)
	}
	return set
}
