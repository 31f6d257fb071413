package api

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.temporal.io/sdk/client"

	accountsapp "github.com/enayetchefonline/partner-gateway/internal/domains/accounts/application"
)

// Config carries environment-driven settings for the API process.
type Config struct {
	Port                       string
	LegacyBaseURL              string
	PostgresDSN                string
	SessionTTL                 time.Duration
	TemporalAddress            string
	TemporalNamespace          string
	TemporalDisabled           bool
	SessionPurgeIntervalMinute int
}

// LoadConfig reads environment variables, applies defaults, and validates
// basic constraints. A .env file in the working directory is loaded first
// when present, for local development.
func LoadConfig() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Port:              envDefault("PORT", "8080"),
		LegacyBaseURL:     strings.TrimSpace(os.Getenv("LEGACY_BASE_URL")),
		PostgresDSN:       strings.TrimSpace(os.Getenv("POSTGRES_DSN")),
		SessionTTL:        accountsapp.DefaultSessionTTL,
		TemporalAddress:   envDefault("TEMPORAL_ADDRESS", client.DefaultHostPort),
		TemporalNamespace: envDefault("TEMPORAL_NAMESPACE", client.DefaultNamespace),
		TemporalDisabled:  isTruthy(os.Getenv("TEMPORAL_DISABLED")),
	}
	if cfg.LegacyBaseURL == "" {
		return Config{}, fmt.Errorf("LEGACY_BASE_URL is required")
	}
	if raw := strings.TrimSpace(os.Getenv("SESSION_TTL")); raw != "" {
		ttl, err := time.ParseDuration(raw)
		if err != nil || ttl <= 0 {
			return Config{}, fmt.Errorf("SESSION_TTL must be a positive duration")
		}
		cfg.SessionTTL = ttl
	}
	if raw := strings.TrimSpace(os.Getenv("SESSION_PURGE_INTERVAL_MINUTES")); raw != "" {
		minutes, err := strconv.Atoi(raw)
		if err != nil || minutes <= 0 {
			return Config{}, fmt.Errorf("SESSION_PURGE_INTERVAL_MINUTES must be a positive integer")
		}
		cfg.SessionPurgeIntervalMinute = minutes
	}
	return cfg, nil
}

// Addr is the HTTP listen address.
func (c Config) Addr() string { return ":" + c.Port }

func envDefault(key, fallback string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return fallback
}

func isTruthy(value string) bool {
	value = strings.TrimSpace(strings.ToLower(value))
	return value == "1" || value == "true" || value == "yes"
}
