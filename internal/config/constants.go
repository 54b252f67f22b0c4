package config

import "time"

// Environment variable names
const (
	EnvAPIURL           = "API_URL"
	EnvAPIKey           = "API_KEY"
	EnvHTTPTimeout      = "HTTP_TIMEOUT"
	EnvLogLevel         = "LOG_LEVEL"
	EnvLogFormat        = "LOG_FORMAT"
	EnvLogFile          = "LOG_FILE"
	EnvEnvironment      = "ENVIRONMENT"
	EnvStatusPort       = "STATUS_PORT"
	EnvCountdownWarning = "COUNTDOWN_WARNING"
	EnvDiscordToken     = "DISCORD_TOKEN"
	EnvDiscordAppID     = "DISCORD_APP_ID"
	EnvDiscordGuildID   = "DISCORD_GUILD_ID"
	EnvDiscordForce     = "DISCORD_FORCE_COMMAND_UPDATE"
)

// Defaults
const (
	DefaultAPIURL           = "http://localhost:5000"
	DefaultHTTPTimeout      = 10 * time.Second
	DefaultLogLevel         = "info"
	DefaultLogFormat        = "text"
	DefaultEnvironment      = "dev"
	DefaultStatusPort       = 0
	DefaultCountdownWarning = 2 * time.Hour
)
