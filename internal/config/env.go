// ABOUTME: Environment-provided credential defaults for settings backfill.
// ABOUTME: Read once at startup; .env files are honored when present.
package config

import (
	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"

	"github.com/harperreed/lifedash/internal/models"
)

// EnvCredentials are the build/deploy-time integration defaults. A field is
// only ever used to backfill a settings credential that is itself unset.
type EnvCredentials struct {
	YouTubeAPIKey    string `env:"LIFEDASH_YOUTUBE_API_KEY"`
	YouTubeChannelID string `env:"LIFEDASH_YOUTUBE_CHANNEL_ID"`
	OpenAIAPIKey     string `env:"LIFEDASH_OPENAI_API_KEY"`
}

// LoadEnvCredentials reads credential defaults from the environment,
// loading a .env file first if one exists in the working directory.
func LoadEnvCredentials() EnvCredentials {
	_ = godotenv.Load() // missing .env is the normal case

	var creds EnvCredentials
	_ = env.Parse(&creds)

	// A placeholder shipped in a .env template counts as absent.
	if !models.Credential(creds.YouTubeAPIKey).IsSet() {
		creds.YouTubeAPIKey = ""
	}
	if !models.Credential(creds.YouTubeChannelID).IsSet() {
		creds.YouTubeChannelID = ""
	}
	if !models.Credential(creds.OpenAIAPIKey).IsSet() {
		creds.OpenAIAPIKey = ""
	}
	return creds
}
