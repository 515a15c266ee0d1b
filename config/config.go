package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"rice-timer/service"
)

// Config covers process level configuration read from environment variables.
type Config struct {
	Environment string
	HTTPAddr    string

	RedisAddr     string // empty selects the in-memory cache
	RedisPassword string
	RedisDB       int
	CacheTTL      time.Duration

	RateLimit       int
	RateLimitWindow time.Duration

	DefaultCookMinutes int
	DefaultStepHours   float64
	HistorySize        int

	ShutdownTimeout time.Duration
}

// Load reads an optional .env file and the environment, applies defaults and
// validates the result.
func Load() (*Config, error) {
	// A missing .env file is the normal case outside local development.
	_ = godotenv.Load()

	cfg := &Config{
		Environment:        getEnv("RICETIMER_ENV", "development"),
		HTTPAddr:           getEnv("RICETIMER_HTTP_ADDR", ":8080"),
		RedisAddr:          getEnv("RICETIMER_REDIS_ADDR", ""),
		RedisPassword:      getEnv("RICETIMER_REDIS_PASSWORD", ""),
		RedisDB:            getEnvInt("RICETIMER_REDIS_DB", 0),
		CacheTTL:           time.Duration(getEnvInt("RICETIMER_CACHE_TTL_SECONDS", 5)) * time.Second,
		RateLimit:          getEnvInt("RICETIMER_RATE_LIMIT", 120),
		RateLimitWindow:    time.Duration(getEnvInt("RICETIMER_RATE_WINDOW_SECONDS", 60)) * time.Second,
		DefaultCookMinutes: getEnvInt("RICETIMER_DEFAULT_COOK_MINUTES", 60),
		DefaultStepHours:   getEnvFloat("RICETIMER_DEFAULT_STEP_HOURS", 0.5),
		HistorySize:        getEnvInt("RICETIMER_HISTORY_SIZE", 100),
		ShutdownTimeout:    time.Duration(getEnvInt("RICETIMER_SHUTDOWN_TIMEOUT_SECONDS", 10)) * time.Second,
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	var errs []error

	if strings.TrimSpace(c.HTTPAddr) == "" {
		errs = append(errs, errors.New("RICETIMER_HTTP_ADDR must not be empty"))
	}
	if c.CacheTTL < 0 {
		errs = append(errs, errors.New("RICETIMER_CACHE_TTL_SECONDS must not be negative"))
	}
	if c.RateLimit <= 0 {
		errs = append(errs, errors.New("RICETIMER_RATE_LIMIT must be positive"))
	}
	if c.RateLimitWindow <= 0 {
		errs = append(errs, errors.New("RICETIMER_RATE_WINDOW_SECONDS must be positive"))
	}
	if c.DefaultCookMinutes < 0 || c.DefaultCookMinutes > service.MaxCookMinutes {
		errs = append(errs, fmt.Errorf("RICETIMER_DEFAULT_COOK_MINUTES must be between 0 and %d", service.MaxCookMinutes))
	}
	if math.IsNaN(c.DefaultStepHours) || c.DefaultStepHours <= 0 || c.DefaultStepHours > service.MaxStepHours {
		errs = append(errs, fmt.Errorf("RICETIMER_DEFAULT_STEP_HOURS must be above 0 and at most %.0f", service.MaxStepHours))
	}
	if c.HistorySize <= 0 {
		errs = append(errs, errors.New("RICETIMER_HISTORY_SIZE must be positive"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}

func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := getEnv(key, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func getEnvFloat(key string, def float64) float64 {
	v := getEnv(key, "")
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return f
}
