package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Match source kinds
const (
	SourceFile       = "file"
	SourcePostgres   = "postgres"
	SourceClickHouse = "clickhouse"
)

type Config struct {
	// Server
	Port int
	Env  string

	// CORS
	AllowedOrigins []string

	// Match source
	MatchSource   string
	MatchesFile   string
	PostgresURL   string
	ClickHouseURL string

	// Response cache
	RedisURL string
	CacheTTL time.Duration

	// Pagination
	DefaultPageSize int
	MaxPageSize     int

	// Statistics
	FormWindow int
}

// Load loads configuration from environment variables.
// It returns an error if critical configuration is missing.
func Load() (*Config, error) {
	cfg := &Config{
		Port: getEnvInt("PORT", 8080),
		Env:  getEnv("ENV", "development"),

		MatchSource: getEnv("MATCH_SOURCE", SourceFile),
		MatchesFile: getEnv("MATCHES_FILE", "data/matches.json"),

		RedisURL: getEnv("REDIS_URL", ""),
		CacheTTL: getEnvDuration("CACHE_TTL", 60*time.Second),

		DefaultPageSize: getEnvInt("DEFAULT_PAGE_SIZE", 20),
		MaxPageSize:     getEnvInt("MAX_PAGE_SIZE", 100),

		FormWindow: getEnvInt("FORM_WINDOW", 5),
	}

	// CORS
	origins := getEnv("ALLOWED_ORIGINS", "http://localhost:3000")
	rawOrigins := strings.Split(origins, ",")
	for _, o := range rawOrigins {
		if trimmed := strings.TrimSpace(o); trimmed != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, trimmed)
		}
	}

	// Source-specific configuration - fail early when missing
	var err error
	switch cfg.MatchSource {
	case SourceFile:
		// default path is acceptable; the store reports a missing file
		// at first access
	case SourcePostgres:
		if cfg.PostgresURL, err = getEnvRequired("POSTGRES_URL"); err != nil {
			return nil, err
		}
	case SourceClickHouse:
		if cfg.ClickHouseURL, err = getEnvRequired("CLICKHOUSE_URL"); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown MATCH_SOURCE: %s", cfg.MatchSource)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvRequired(key string) (string, error) {
	if value := os.Getenv(key); value != "" {
		return value, nil
	}
	return "", fmt.Errorf("missing required environment variable: %s", key)
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
