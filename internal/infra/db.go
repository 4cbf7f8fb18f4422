package infra

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
)

// NewDBPool initializes a pgx connection pool from the resolved configuration.
//
// A config without a database URL returns (nil, nil): the no-client state.
// This tolerates build-time contexts where the URL is intentionally withheld,
// and every call site must treat a nil pool as valid, not as a failure.
func NewDBPool(ctx context.Context, cfg *Config) (*pgxpool.Pool, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	if cfg.DatabaseURL == "" {
		return nil, nil
	}

	poolCfg, err := pgxpool.ParseConfig(withSSLMode(cfg.DatabaseURL, cfg.DatabaseSSLMode))
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}

	poolCfg.MaxConns = cfg.PoolMaxConns
	poolCfg.MinConns = 1
	poolCfg.MaxConnIdleTime = cfg.PoolIdleTimeout
	poolCfg.ConnConfig.ConnectTimeout = cfg.PoolConnectTimeout

	ctx, cancel := context.WithTimeout(ctx, cfg.PoolConnectTimeout)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	return pool, nil
}

// withSSLMode applies the resolved sslmode policy to the connection string
// unless the string already carries one. Handles both URL and key=value DSN
// forms, which is what pgx accepts.
func withSSLMode(url string, mode SSLMode) string {
	if strings.Contains(url, "sslmode=") {
		return url
	}
	if strings.Contains(url, "://") {
		sep := "?"
		if strings.Contains(url, "?") {
			sep = "&"
		}
		return url + sep + "sslmode=" + string(mode)
	}
	return url + " sslmode=" + string(mode)
}
