package app

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	AuthMode     string   // Required: how callers are authenticated (jwks, static)
	JWKSURL      string   // Required in jwks mode: key set of the external auth provider
	JWTAlgorithm string   // Optional: expected JWS algorithm (RS256, ES256, EdDSA) (default: EdDSA)
	JWTIssuer    string   // Optional: expected issuer claim ("" disables the check)
	JWTAudience  []string // Optional: accepted audience values ("" disables the check)

	AcceptBaseURL string // Optional: base URL for shareable invite accept links

	DatabaseFile string // Optional: path to SQLite database file (default: ./league.db)

	SMTPAddr string // Optional: host:port of an SMTP relay; empty logs mail instead
	SMTPFrom string // Optional: sender address for invite mail

	Env       string        // Environment (dev, staging, prod) (default: dev)
	LogLevel  string        // Log level (debug, info, warn, error) (default: info)
	LogFormat string        // Log format (json, text) (default: json)
	Port      int           // HTTP server port (default: 8080)

	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Housekeeping interval (default: 1h)
	InviteRetention      time.Duration // How long expired invites stay queryable (default: 168h)
}

func LoadConfig() Config {
	cfg := Config{
		AuthMode:     getEnvOrDefault("LEAGUE_AUTH_MODE", "jwks"),
		JWKSURL:      os.Getenv("LEAGUE_JWKS_URL"),
		JWTAlgorithm: getEnvOrDefault("LEAGUE_JWT_ALGORITHM", "EdDSA"),
		JWTIssuer:    os.Getenv("LEAGUE_JWT_ISSUER"),

		AcceptBaseURL: os.Getenv("LEAGUE_ACCEPT_BASE_URL"),

		DatabaseFile: getEnvOrDefault("LEAGUE_DATABASE_FILE", "league.db"),

		SMTPAddr: os.Getenv("LEAGUE_SMTP_ADDR"),
		SMTPFrom: getEnvOrDefault("LEAGUE_SMTP_FROM", "invites@leaguehub.local"),

		Env:       getEnvOrDefault("ENV", "dev"),
		LogLevel:  getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat: getEnvOrDefault("LOG_FORMAT", "json"),
		Port:      getEnvIntOrDefault("PORT", 8080),

		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),
		InviteRetention:      getEnvDurationOrDefault("LEAGUE_INVITE_RETENTION", 7*24*time.Hour),
	}

	if audience := os.Getenv("LEAGUE_JWT_AUDIENCE"); audience != "" {
		cfg.JWTAudience = []string{audience}
	}

	return cfg
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Try parsing as integer minutes (for backwards compatibility)
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
