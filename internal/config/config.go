package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Snapshot store backends
const (
	SnapshotStoreMemory = "memory"
	SnapshotStoreRedis  = "redis"
)

// Config holds application configuration
type Config struct {
	Port                    string
	BackendURL              string
	LogLevel                string
	RequestTimeout          time.Duration
	SnapshotStore           string
	SnapshotTTL             time.Duration
	RedisAddr               string
	RedisPassword           string
	RedisDB                 int
	HealthProbeSchedule     string
	EnableTransactionExport bool
	SessionCookie           string
}

// NewConfig loads configuration from a .env file (when present) and environment variables
func NewConfig() (*Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	requestTimeout, err := getDuration("REQUEST_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}
	snapshotTTL, err := getDuration("SNAPSHOT_TTL", 30*time.Minute)
	if err != nil {
		return nil, err
	}
	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("REDIS_DB must be an integer: %w", err)
	}

	cfg := &Config{
		Port:                    getEnv("PORT", "8080"),
		BackendURL:              strings.TrimRight(getEnv("BACKEND_URL", "http://localhost:9090/api"), "/"),
		LogLevel:                getEnv("LOG_LEVEL", "INFO"),
		RequestTimeout:          requestTimeout,
		SnapshotStore:           strings.ToLower(getEnv("SNAPSHOT_STORE", SnapshotStoreMemory)),
		SnapshotTTL:             snapshotTTL,
		RedisAddr:               getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:           getEnv("REDIS_PASSWORD", ""),
		RedisDB:                 redisDB,
		HealthProbeSchedule:     getEnv("HEALTH_PROBE_SCHEDULE", "@every 30s"),
		EnableTransactionExport: getEnv("ENABLE_TRANSACTION_EXPORT", "false") == "true",
		SessionCookie:           getEnv("SESSION_COOKIE", "custlysis_session"),
	}

	if cfg.BackendURL == "" {
		return nil, fmt.Errorf("BACKEND_URL is required")
	}
	if cfg.SessionCookie == "" {
		return nil, fmt.Errorf("SESSION_COOKIE is required")
	}
	switch cfg.SnapshotStore {
	case SnapshotStoreMemory:
	case SnapshotStoreRedis:
		if cfg.RedisAddr == "" {
			return nil, fmt.Errorf("REDIS_ADDR is required when SNAPSHOT_STORE=redis")
		}
	default:
		return nil, fmt.Errorf("unknown SNAPSHOT_STORE %q", cfg.SnapshotStore)
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}

func getDuration(key string, defaultVal time.Duration) (time.Duration, error) {
	raw, exists := os.LookupEnv(key)
	if !exists || raw == "" {
		return defaultVal, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be a duration: %w", key, err)
	}
	return d, nil
}
