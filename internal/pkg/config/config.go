// Package config reads process settings from the environment, optionally
// seeded from a .env file. Variables already set in the environment win over
// the file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	ModeGRPC  = "grpc"
	ModeLocal = "local"
)

type Config struct {
	ServiceName string
	LogLevel    slog.Level
	OTelEnabled bool

	HTTPAddr       string
	GRPCAddr       string
	StorefrontAddr string
	StorefrontMode string

	RedisAddr         string
	IdempotencyTTL    time.Duration
	SessionIdleTTL    time.Duration
	ActivityLogPath   string
	DefaultAppearance string

	ShutdownTimeout time.Duration
}

// Load builds a Config for serviceName. envFiles default to ".env"; a missing
// file is not an error.
func Load(serviceName string, envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("config: load %s: %w", f, err)
		}
	}

	cfg := Config{
		ServiceName:       getEnv("OTEL_SERVICE_NAME", serviceName),
		HTTPAddr:          getEnv("HTTP_ADDR", ":8080"),
		GRPCAddr:          getEnv("GRPC_ADDR", ":9090"),
		StorefrontAddr:    getEnv("STOREFRONT_ADDR", "localhost:9090"),
		StorefrontMode:    strings.ToLower(getEnv("STOREFRONT_MODE", ModeGRPC)),
		RedisAddr:         os.Getenv("REDIS_ADDR"),
		ActivityLogPath:   os.Getenv("ACTIVITY_LOG_PATH"),
		DefaultAppearance: getEnv("DEFAULT_APPEARANCE", "light"),
	}

	var err error
	if cfg.LogLevel, err = getLevel("LOG_LEVEL", slog.LevelInfo); err != nil {
		return Config{}, err
	}
	if cfg.OTelEnabled, err = getBool("OTEL_ENABLED", true); err != nil {
		return Config{}, err
	}
	if cfg.IdempotencyTTL, err = getDuration("IDEMPOTENCY_TTL", 10*time.Minute); err != nil {
		return Config{}, err
	}
	if cfg.SessionIdleTTL, err = getDuration("SESSION_IDLE_TTL", 30*time.Minute); err != nil {
		return Config{}, err
	}
	if cfg.ShutdownTimeout, err = getDuration("SHUTDOWN_TIMEOUT", 5*time.Second); err != nil {
		return Config{}, err
	}

	if cfg.StorefrontMode != ModeGRPC && cfg.StorefrontMode != ModeLocal {
		return Config{}, fmt.Errorf("config: STOREFRONT_MODE must be %q or %q, got %q", ModeGRPC, ModeLocal, cfg.StorefrontMode)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getBool(key string, fallback bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("config: %s: %w", key, err)
	}
	return b, nil
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", key, err)
	}
	return d, nil
}

func getLevel(key string, fallback slog.Level) (slog.Level, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	var l slog.Level
	if err := l.UnmarshalText([]byte(v)); err != nil {
		return fallback, fmt.Errorf("config: %s: %w", key, err)
	}
	return l, nil
}
