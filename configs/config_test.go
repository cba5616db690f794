package config

import "testing"

func TestGetEnvWithDefault(t *testing.T) {
	t.Setenv("COOKIE_NAME", "")
	if got := getEnv("COOKIE_NAME", "contentdesk_session"); got != "contentdesk_session" {
		t.Fatalf("expected default, got %s", got)
	}
	t.Setenv("COOKIE_NAME", "other")
	if got := getEnv("COOKIE_NAME", "contentdesk_session"); got != "other" {
		t.Fatalf("expected other, got %s", got)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("REDIS_URI", "")
	t.Setenv("ANTHROPIC_MODEL", "")

	cfg := LoadConfig()
	if cfg.RedisURI != "127.0.0.1:6379" {
		t.Fatalf("unexpected redis default: %s", cfg.RedisURI)
	}
	if cfg.AnthropicModel != "claude-3-5-sonnet-20241022" {
		t.Fatalf("unexpected model default: %s", cfg.AnthropicModel)
	}
}
