package config

import (
	"os"
	"strconv"
	"time"

	"github.com/colinjeanne/mealplan/internal/auth/cache"
)

type Config struct {
	AppPort string

	GoogleClientID     string
	GoogleClientSecret string

	RedisAddr     string
	RedisPassword string

	DatabaseDSN string

	// CacheTTL bounds how long a verified token short-circuits
	// re-verification.
	CacheTTL time.Duration

	// DisableProvisioning turns off lazy user creation for unrecognized
	// verified identities.
	DisableProvisioning bool
}

func Load() Config {

	cfg := Config{

		AppPort: os.Getenv("APP_PORT"),

		GoogleClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		GoogleClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		DatabaseDSN: os.Getenv("DATABASE_DSN"),

		CacheTTL:            durationEnv("CACHE_TTL", cache.DefaultTTL),
		DisableProvisioning: boolEnv("DISABLE_PROVISIONING"),
	}

	if cfg.AppPort == "" {
		cfg.AppPort = "8080"
	}

	return cfg

}

func durationEnv(name string, fallback time.Duration) time.Duration {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback
	}

	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

func boolEnv(name string) bool {
	enabled, _ := strconv.ParseBool(os.Getenv(name))
	return enabled
}
