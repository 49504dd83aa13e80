package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Environment string
	LogLevel    slog.Level
	LogFile     string

	RedisURL string // Empty selects in-memory storage
	DataDir  string

	Region       string // Catalog file under DataDir/regions
	ExpeditionID string // Resume this expedition when set
	DrawSeed     uint64

	TooltipsEnabled  bool
	PartialIntelCost int
	FullIntelCost    int
}

func Load() (*Config, error) {
	cfg := &Config{
		Environment:  getEnv("ENVIRONMENT", "development"),
		LogLevel:     parseLogLevel(getEnv("LOG_LEVEL", "info")),
		LogFile:      getEnv("LOG_FILE", "expedition.log"),
		RedisURL:     getEnv("REDIS_URL", ""),
		DataDir:      getEnv("DATA_DIR", "./data"),
		Region:       getEnv("REGION", ""),
		ExpeditionID: getEnv("EXPEDITION_ID", ""),
	}

	var err error
	if cfg.DrawSeed, err = parseSeed(getEnv("DRAW_SEED", "")); err != nil {
		return nil, err
	}
	if cfg.TooltipsEnabled, err = strconv.ParseBool(getEnv("TOOLTIPS_ENABLED", "true")); err != nil {
		return nil, fmt.Errorf("invalid TOOLTIPS_ENABLED: %w", err)
	}
	if cfg.PartialIntelCost, err = parseCost("PARTIAL_INTEL_COST", 20); err != nil {
		return nil, err
	}
	if cfg.FullIntelCost, err = parseCost("FULL_INTEL_COST", 20); err != nil {
		return nil, err
	}

	return cfg, nil
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// parseSeed falls back to the clock when no seed is configured.
func parseSeed(s string) (uint64, error) {
	if s == "" {
		return uint64(time.Now().UnixNano()), nil
	}
	seed, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid DRAW_SEED: %w", err)
	}
	return seed, nil
}

func parseCost(key string, defaultValue int) (int, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	if n <= 0 {
		return 0, fmt.Errorf("invalid %s: must be positive, got %d", key, n)
	}
	return n, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
