package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
)

type Config struct {
	Port            string
	UpstreamURL     string
	UpstreamAPIKey  string
	UpstreamTimeout time.Duration
	JWTSecret       string
	RefreshSpec     string
	JournalPath     string
}

// Load reads configuration from the environment, after loading a .env file
// when one is present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:            getEnv("PORT", "8082"),
		UpstreamURL:     getEnv("UPSTREAM_URL", "http://localhost:3000/api"),
		UpstreamAPIKey:  getEnv("UPSTREAM_API_KEY", ""),
		UpstreamTimeout: cast.ToDuration(getEnv("UPSTREAM_TIMEOUT", "15s")),
		JWTSecret:       getEnv("JWT_SECRET", "dev-secret-change-in-production"),
		RefreshSpec:     getEnv("REFDATA_REFRESH", "@every 5m"),
		JournalPath:     getEnv("JOURNAL_PATH", "orders.db"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
