// Package config loads converter settings from the environment
package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/chronicles-of-arvandor/spell-converter/internal/errors"
)

// Environment variables read by Load
const (
	EnvInput         = "SPELL_CONVERTER_INPUT"
	EnvOutput        = "SPELL_CONVERTER_OUTPUT"
	EnvWorkers       = "SPELL_CONVERTER_WORKERS"
	EnvRedisAddr     = "SPELL_CONVERTER_REDIS_ADDR"
	EnvRedisPassword = "SPELL_CONVERTER_REDIS_PASSWORD"
	EnvRedisDB       = "SPELL_CONVERTER_REDIS_DB"
	EnvLogLevel      = "SPELL_CONVERTER_LOG_LEVEL"
	EnvStableIDs     = "SPELL_CONVERTER_STABLE_IDS"
)

// LogLevels accepted by Validate
var LogLevels = []string{"debug", "info", "warn", "error"}

// Config holds all configuration for a conversion run
type Config struct {
	// Input is the 5etools spell JSON file
	Input string
	// Output is the directory documents are written to
	Output string

	Workers         int
	ContinueOnError bool
	DryRun          bool
	StableIDs       bool
	LogLevel        string

	Redis RedisConfig
}

// RedisConfig holds Redis-specific configuration. An empty Addr means
// documents go to the output directory instead.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// Load loads configuration from environment variables. Paths may be left
// empty here and supplied later by flags or prompts.
func Load() (*Config, error) {
	workers, err := getEnvAsIntOrDefault(EnvWorkers, 1)
	if err != nil {
		return nil, err
	}
	db, err := getEnvAsIntOrDefault(EnvRedisDB, 0)
	if err != nil {
		return nil, err
	}
	stableIDs, err := getEnvAsBoolOrDefault(EnvStableIDs, false)
	if err != nil {
		return nil, err
	}

	return &Config{
		Input:     os.Getenv(EnvInput),
		Output:    os.Getenv(EnvOutput),
		Workers:   workers,
		StableIDs: stableIDs,
		LogLevel:  strings.ToLower(getEnvOrDefault(EnvLogLevel, "info")),
		Redis: RedisConfig{
			Addr:     os.Getenv(EnvRedisAddr),
			Password: os.Getenv(EnvRedisPassword),
			DB:       db,
		},
	}, nil
}

// UsesRedis reports whether documents are published to Redis
func (c *Config) UsesRedis() bool {
	return c.Redis.Addr != ""
}

// Validate checks a fully resolved configuration
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()

	errors.ValidateRequired("input", c.Input, vb)
	if !c.UsesRedis() && !c.DryRun {
		errors.ValidateRequired("output", c.Output, vb)
	}
	if c.Workers < 1 {
		vb.Field("workers", "must be at least 1")
	}
	errors.ValidateEnum("log-level", c.LogLevel, LogLevels, vb)
	if c.Redis.DB < 0 {
		vb.Field("redis-db", "must not be negative")
	}

	return vb.Build()
}

// SlogLevel maps LogLevel to a slog level, defaulting to info
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsIntOrDefault(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		return 0, errors.InvalidArgumentf("%s must be an integer, got %q", key, value)
	}
	return intValue, nil
}

func getEnvAsBoolOrDefault(key string, defaultValue bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		return false, errors.InvalidArgumentf("%s must be a boolean, got %q", key, value)
	}
	return boolValue, nil
}
