package config

import "testing"

func TestGetEnv(t *testing.T) {
	t.Setenv("CFG_VALUE", "custom")
	if got := getEnv("CFG_VALUE", "default"); got != "custom" {
		t.Fatalf("getEnv returned %q, want custom", got)
	}

	// Empty environment value should fall back to default
	t.Setenv("CFG_EMPTY", "")
	if got := getEnv("CFG_EMPTY", "fallback"); got != "fallback" {
		t.Fatalf("getEnv returned %q, want fallback", got)
	}
}

func TestGetEnvInt(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  int
	}{
		{"unset", "", 42},
		{"valid", "15", 15},
		{"negative", "-3", -3},
		{"garbage", "ten", 42},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("CFG_INT", tt.value)
			if got := getEnvInt("CFG_INT", 42); got != tt.want {
				t.Fatalf("getEnvInt returned %d, want %d", got, tt.want)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	// Ensure defaults when env vars are empty.
	for _, key := range []string{
		"PORT", "DATABASE_URL", "LOG_LEVEL", "LOG_FORMAT", "SEED",
		"EMA_LINK_WINDOW_MINUTES", "OPENAI_API_KEY", "OPENAI_COACH_MODEL",
		"COACH_FALLBACK_MESSAGE", "COACH_TIMEOUT_SECONDS", "METRICS_ENABLED",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.Port != "8080" || cfg.DatabaseURL == "" || cfg.LogLevel != "info" || cfg.LogFormat != "json" {
		t.Fatalf("defaults not applied: %+v", cfg)
	}
	if cfg.Seed {
		t.Fatalf("expected Seed default false")
	}
	if cfg.EMALinkWindowMinutes != 120 || cfg.CoachTimeoutSeconds != 20 {
		t.Fatalf("numeric defaults not applied: %+v", cfg)
	}
	if cfg.CoachFallbackMessage == "" || !cfg.MetricsEnabled {
		t.Fatalf("coach/metrics defaults not applied: %+v", cfg)
	}

	// Custom values override defaults
	t.Setenv("PORT", "9090")
	t.Setenv("DATABASE_URL", "postgres://example")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "console")
	t.Setenv("SEED", "true")
	t.Setenv("EMA_LINK_WINDOW_MINUTES", "30")
	t.Setenv("OPENAI_API_KEY", "key")
	t.Setenv("OPENAI_COACH_MODEL", "model")
	t.Setenv("COACH_FALLBACK_MESSAGE", "try later")
	t.Setenv("METRICS_ENABLED", "false")

	cfg = Load()
	if cfg.Port != "9090" || cfg.DatabaseURL != "postgres://example" || cfg.LogLevel != "debug" || !cfg.Seed {
		t.Fatalf("env overrides not applied: %+v", cfg)
	}
	if cfg.LogFormat != "console" || cfg.EMALinkWindowMinutes != 30 {
		t.Fatalf("env overrides not applied: %+v", cfg)
	}
	if cfg.OpenAIAPIKey != "key" || cfg.OpenAICoachModel != "model" || cfg.CoachFallbackMessage != "try later" {
		t.Fatalf("openai env overrides missing: %+v", cfg)
	}
	if cfg.MetricsEnabled {
		t.Fatalf("expected metrics disabled")
	}
}
