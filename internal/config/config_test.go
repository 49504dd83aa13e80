package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"ENVIRONMENT", "LOG_LEVEL", "LOG_FILE", "REDIS_URL", "DATA_DIR", "REGION",
		"EXPEDITION_ID", "DRAW_SEED", "TOOLTIPS_ENABLED", "PARTIAL_INTEL_COST", "FULL_INTEL_COST"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, "expedition.log", cfg.LogFile)
	assert.Empty(t, cfg.RedisURL)
	assert.Equal(t, "./data", cfg.DataDir)
	assert.Empty(t, cfg.Region)
	assert.True(t, cfg.TooltipsEnabled)
	assert.Equal(t, 20, cfg.PartialIntelCost)
	assert.Equal(t, 20, cfg.FullIntelCost)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("REDIS_URL", "redis://localhost:6379")
	t.Setenv("DRAW_SEED", "42")
	t.Setenv("TOOLTIPS_ENABLED", "false")
	t.Setenv("PARTIAL_INTEL_COST", "15")
	t.Setenv("FULL_INTEL_COST", "30")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, "redis://localhost:6379", cfg.RedisURL)
	assert.Equal(t, uint64(42), cfg.DrawSeed)
	assert.False(t, cfg.TooltipsEnabled)
	assert.Equal(t, 15, cfg.PartialIntelCost)
	assert.Equal(t, 30, cfg.FullIntelCost)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"seed not a number", "DRAW_SEED", "abc"},
		{"negative seed", "DRAW_SEED", "-1"},
		{"tooltips not a bool", "TOOLTIPS_ENABLED", "sometimes"},
		{"zero partial cost", "PARTIAL_INTEL_COST", "0"},
		{"full cost not a number", "FULL_INTEL_COST", "lots"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseLogLevel(tt.input))
		})
	}
}
