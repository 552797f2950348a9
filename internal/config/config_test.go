package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	if cfg.ServerPort != "8080" {
		t.Fatalf("want default port 8080, got %q", cfg.ServerPort)
	}
	if cfg.TokenTTL != 24*time.Hour {
		t.Fatalf("want default TTL 24h, got %v", cfg.TokenTTL)
	}
	if cfg.AuthRateLimit != 30 {
		t.Fatalf("want default auth rate limit 30, got %d", cfg.AuthRateLimit)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("TOKEN_TTL", "1h")
	t.Setenv("REDIS_DB", "3")

	cfg := Load()

	if cfg.ServerPort != "9000" {
		t.Fatalf("port override ignored: %q", cfg.ServerPort)
	}
	if cfg.TokenTTL != time.Hour {
		t.Fatalf("ttl override ignored: %v", cfg.TokenTTL)
	}
	if cfg.RedisDB != 3 {
		t.Fatalf("redis db override ignored: %d", cfg.RedisDB)
	}
	if cfg.Addr() != ":9000" {
		t.Fatalf("addr: %q", cfg.Addr())
	}
}

func TestLoad_MalformedValuesFallBack(t *testing.T) {
	t.Setenv("TOKEN_TTL", "soon")
	t.Setenv("AUTH_RATE_LIMIT", "many")

	cfg := Load()

	if cfg.TokenTTL != 24*time.Hour {
		t.Fatalf("malformed duration must fall back: %v", cfg.TokenTTL)
	}
	if cfg.AuthRateLimit != 30 {
		t.Fatalf("malformed int must fall back: %d", cfg.AuthRateLimit)
	}
}
