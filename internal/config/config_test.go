// ABOUTME: Tests for config defaults, path expansion, and load/save.
package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGetBackendDefault(t *testing.T) {
	cfg := &Config{}
	if got := cfg.GetBackend(); got != "badger" {
		t.Errorf("default backend = %q, want badger", got)
	}

	cfg.Backend = "charm"
	if got := cfg.GetBackend(); got != "charm" {
		t.Errorf("backend = %q, want charm", got)
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home dir in test environment")
	}

	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"~", home},
		{"~/data", filepath.Join(home, "data")},
		{"/abs/path", "/abs/path"},
		{"relative/path", "relative/path"},
	}
	for _, tt := range tests {
		if got := ExpandPath(tt.input); got != tt.want {
			t.Errorf("ExpandPath(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestLoadMissingConfigReturnsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Backend != "" || cfg.DataDir != "" {
		t.Errorf("missing config should be zero-valued: %+v", cfg)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	in := &Config{Backend: "charm", DataDir: "~/lifedash-data"}
	if err := in.Save(); err != nil {
		t.Fatalf("save: %v", err)
	}

	out, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if out.Backend != "charm" || out.DataDir != "~/lifedash-data" {
		t.Errorf("round trip mismatch: %+v", out)
	}
}

func TestLoadRejectsMalformedConfig(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	path := filepath.Join(dir, "lifedash", "config.json")
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("{broken"), 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(); err == nil {
		t.Fatal("malformed config should error, not silently default")
	}
}

func TestOpenStorageUnknownBackend(t *testing.T) {
	cfg := &Config{Backend: "postgres"}
	if _, err := cfg.OpenStorage(); err == nil {
		t.Fatal("unknown backend should error")
	}
}

func TestLoadEnvCredentialsBlanksPlaceholders(t *testing.T) {
	t.Setenv("LIFEDASH_YOUTUBE_API_KEY", "changeme")
	t.Setenv("LIFEDASH_YOUTUBE_CHANNEL_ID", "UC-real-channel")
	t.Setenv("LIFEDASH_OPENAI_API_KEY", "")

	creds := LoadEnvCredentials()
	if creds.YouTubeAPIKey != "" {
		t.Errorf("placeholder env value should blank, got %q", creds.YouTubeAPIKey)
	}
	if creds.YouTubeChannelID != "UC-real-channel" {
		t.Errorf("real env value should pass through, got %q", creds.YouTubeChannelID)
	}
	if creds.OpenAIAPIKey != "" {
		t.Errorf("empty env value stays empty, got %q", creds.OpenAIAPIKey)
	}
}
