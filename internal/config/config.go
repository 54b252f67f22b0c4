package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the client configuration
type Config struct {
	APIURL      string        `validate:"required,url"`
	APIKey      string        `validate:"omitempty,printascii"`
	HTTPTimeout time.Duration `validate:"gt=0"`

	LogLevel    string `validate:"oneof=debug info warn warning error DEBUG INFO WARN WARNING ERROR"`
	LogFormat   string `validate:"oneof=text json"`
	LogFile     string
	Environment string `validate:"required"`

	// StatusPort serves /healthz and /metrics when non-zero.
	StatusPort int `validate:"gte=0,lte=65535"`

	// CountdownWarning is the remaining time below which the countdown turns to warning.
	CountdownWarning time.Duration `validate:"gt=0"`

	DiscordToken       string
	DiscordAppID       string
	DiscordGuildID     string
	DiscordForceUpdate bool
}

// Load loads the configuration from .env and environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		APIURL:             getEnv(EnvAPIURL, DefaultAPIURL),
		APIKey:             getEnv(EnvAPIKey, ""),
		LogLevel:           getEnv(EnvLogLevel, DefaultLogLevel),
		LogFormat:          strings.ToLower(getEnv(EnvLogFormat, DefaultLogFormat)),
		LogFile:            getEnv(EnvLogFile, ""),
		Environment:        getEnv(EnvEnvironment, DefaultEnvironment),
		DiscordToken:       getEnv(EnvDiscordToken, ""),
		DiscordAppID:       getEnv(EnvDiscordAppID, ""),
		DiscordGuildID:     getEnv(EnvDiscordGuildID, ""),
		DiscordForceUpdate: getEnv(EnvDiscordForce, "") == "true",
	}

	var err error
	if cfg.HTTPTimeout, err = getEnvAsDuration(EnvHTTPTimeout, DefaultHTTPTimeout); err != nil {
		return nil, err
	}
	if cfg.CountdownWarning, err = getEnvAsDuration(EnvCountdownWarning, DefaultCountdownWarning); err != nil {
		return nil, err
	}

	portStr := getEnv(EnvStatusPort, strconv.Itoa(DefaultStatusPort))
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value: %w", EnvStatusPort, err)
	}
	cfg.StatusPort = port

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// IsDevelopment reports whether the environment is a development one
func (c *Config) IsDevelopment() bool {
	return c.Environment == "dev" || c.Environment == "development"
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsDuration parses a Go duration such as "10s" or "2h"
func getEnvAsDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := getEnv(key, "")
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return d, nil
}
