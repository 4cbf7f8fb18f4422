package infra

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// SSLMode is the TLS negotiation policy for the database connection.
type SSLMode string

const (
	SSLModeRequire SSLMode = "require"
	SSLModePrefer  SSLMode = "prefer"
	SSLModeAllow   SSLMode = "allow"
	SSLModeDisable SSLMode = "disable"
)

// Valid reports whether the mode is one of the recognized policies.
func (m SSLMode) Valid() bool {
	switch m {
	case SSLModeRequire, SSLModePrefer, SSLModeAllow, SSLModeDisable:
		return true
	}
	return false
}

// Config represents application configuration loaded from environment variables.
type Config struct {
	AppEnv             string
	Port               string
	DatabaseURL        string
	DatabaseSSLMode    SSLMode
	PoolMaxConns       int32
	PoolIdleTimeout    time.Duration
	PoolConnectTimeout time.Duration
	HTTPReadTimeout    time.Duration
	HTTPWriteTimeout   time.Duration
	HTTPIdleTimeout    time.Duration
	CORSOrigins        []string
}

// IsProduction reports whether the process runs with the production flag set.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// LoadConfig loads configuration from environment variables and applies
// defaults where needed. A missing database URL is a fatal startup condition:
// POSTGRES_URL is preferred, DATABASE_URL satisfies as a fallback.
func LoadConfig() (*Config, error) {
	cfg := LoadOptionalConfig()
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("database is not configured: set POSTGRES_URL or DATABASE_URL")
	}
	return cfg, nil
}

// LoadOptionalConfig resolves the same configuration but tolerates a missing
// database URL. Build-time contexts intentionally withhold the URL; callers
// must treat an empty DatabaseURL as the no-client state, not an error.
func LoadOptionalConfig() *Config {
	cfg := &Config{
		AppEnv:             getEnv("APP_ENV", "development"),
		Port:               getEnv("PORT", "8080"),
		DatabaseURL:        getEnv("POSTGRES_URL", os.Getenv("DATABASE_URL")),
		PoolIdleTimeout:    20 * time.Second,
		PoolConnectTimeout: 10 * time.Second,
		HTTPReadTimeout:    time.Second * time.Duration(getEnvInt("HTTP_READ_TIMEOUT_SECONDS", 15)),
		HTTPWriteTimeout:   time.Second * time.Duration(getEnvInt("HTTP_WRITE_TIMEOUT_SECONDS", 30)),
		HTTPIdleTimeout:    time.Second * time.Duration(getEnvInt("HTTP_IDLE_TIMEOUT_SECONDS", 60)),
		CORSOrigins:        splitHosts(os.Getenv("CORS_ALLOWED_ORIGINS")),
	}

	if cfg.IsProduction() {
		cfg.PoolMaxConns = 20
		cfg.DatabaseSSLMode = SSLModeRequire
	} else {
		cfg.PoolMaxConns = 10
		cfg.DatabaseSSLMode = SSLModePrefer
	}

	// An unrecognized POSTGRES_SSL_MODE keeps the environment default.
	if mode := SSLMode(os.Getenv("POSTGRES_SSL_MODE")); mode.Valid() {
		cfg.DatabaseSSLMode = mode
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func splitHosts(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
