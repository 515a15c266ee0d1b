package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("RICETIMER_HTTP_ADDR", "")
	t.Setenv("RICETIMER_REDIS_ADDR", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("unexpected http addr: %q", cfg.HTTPAddr)
	}
	if cfg.RedisAddr != "" {
		t.Fatalf("expected in-memory cache by default, got redis addr %q", cfg.RedisAddr)
	}
	if cfg.DefaultStepHours != 0.5 {
		t.Fatalf("unexpected default step: %v", cfg.DefaultStepHours)
	}
}

func TestLoadReadsEnvKeys(t *testing.T) {
	t.Setenv("RICETIMER_ENV", "production")
	t.Setenv("RICETIMER_REDIS_ADDR", "redis:6379")
	t.Setenv("RICETIMER_CACHE_TTL_SECONDS", "2")
	t.Setenv("RICETIMER_DEFAULT_STEP_HOURS", "0.25")
	t.Setenv("RICETIMER_DEFAULT_COOK_MINUTES", "45")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Environment != "production" {
		t.Fatalf("unexpected environment: %q", cfg.Environment)
	}
	if cfg.RedisAddr != "redis:6379" {
		t.Fatalf("unexpected redis addr: %q", cfg.RedisAddr)
	}
	if cfg.CacheTTL != 2*time.Second {
		t.Fatalf("unexpected cache ttl: %v", cfg.CacheTTL)
	}
	if cfg.DefaultStepHours != 0.25 || cfg.DefaultCookMinutes != 45 {
		t.Fatalf("unexpected defaults: step=%v cook=%d", cfg.DefaultStepHours, cfg.DefaultCookMinutes)
	}
}

func TestLoadRejectsNonPositiveStep(t *testing.T) {
	t.Setenv("RICETIMER_DEFAULT_STEP_HOURS", "0")

	if _, err := Load(); err == nil {
		t.Fatal("expected config load to fail for a zero default step")
	}
}

func TestLoadRejectsNonPositiveRateLimit(t *testing.T) {
	t.Setenv("RICETIMER_RATE_LIMIT", "-1")

	if _, err := Load(); err == nil {
		t.Fatal("expected config load to fail for a negative rate limit")
	}
}

func TestLoadRejectsDefaultsOutsideServiceBounds(t *testing.T) {
	cases := []struct {
		key, value string
	}{
		{"RICETIMER_DEFAULT_STEP_HOURS", "NaN"},
		{"RICETIMER_DEFAULT_STEP_HOURS", "Inf"},
		{"RICETIMER_DEFAULT_STEP_HOURS", "25"},
		{"RICETIMER_DEFAULT_COOK_MINUTES", "1441"},
	}

	for _, tc := range cases {
		t.Run(tc.key+"="+tc.value, func(t *testing.T) {
			t.Setenv(tc.key, tc.value)

			if _, err := Load(); err == nil {
				t.Fatalf("expected config load to fail for %s=%s", tc.key, tc.value)
			}
		})
	}
}

func TestLoadAcceptsDefaultsAtServiceBounds(t *testing.T) {
	t.Setenv("RICETIMER_DEFAULT_STEP_HOURS", "24")
	t.Setenv("RICETIMER_DEFAULT_COOK_MINUTES", "1440")

	if _, err := Load(); err != nil {
		t.Fatalf("load config: %v", err)
	}
}
