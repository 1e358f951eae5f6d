package config

import (
	"os"
	"strconv"
)

// Config holds all runtime configuration, sourced from the environment.
type Config struct {
	Port                string
	Env                 string
	PostgresConnStr     string
	JWTSecret           string
	MetricsPort         string
	SeedDB              bool
	FeedCandidateWindow int
	FeedDefaultLimit    int
}

// Load reads configuration from environment variables with defaults.
func Load() *Config {
	return &Config{
		Port:                getEnv("PORT", "8080"),
		Env:                 getEnv("ENV", "development"),
		PostgresConnStr:     getEnv("POSTGRES_CONN_STR", ""),
		JWTSecret:           getEnv("JWT_SECRET", "supersecretjwtkey"),
		MetricsPort:         getEnv("METRICS_PORT", "9090"),
		SeedDB:              getEnvBool("SEED_DB", false),
		FeedCandidateWindow: getEnvInt("FEED_CANDIDATE_WINDOW", 100),
		FeedDefaultLimit:    getEnvInt("FEED_DEFAULT_LIMIT", 20),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
