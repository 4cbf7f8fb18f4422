package data

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"dashboard/internal/domain"
	"dashboard/internal/infra"
	"dashboard/internal/sqlinline"
)

// PageSize is the fixed number of rows per invoice table page.
const PageSize = 6

// Store executes the dashboard's read queries against a shared executor.
//
// Every fetch method is independently defensive: with no database configured
// it returns its safe default, and a failing query is logged and masked
// behind the same default so the page shell stays available. Callers cannot
// distinguish a truly empty result set from an unreachable database; Ping is
// the only method that surfaces the error.
type Store struct {
	sql infra.SQLExecutor
	log zerolog.Logger
}

// NewStore builds a Store. A nil executor is the valid no-client state used
// when no connection URL is configured.
func NewStore(sql infra.SQLExecutor, log zerolog.Logger) *Store {
	return &Store{sql: sql, log: log}
}

// Ping issues the liveness query. Unlike the fetch methods it reports the
// failure, so the health endpoint can distinguish outcomes.
func (s *Store) Ping(ctx context.Context) error {
	if s.sql == nil {
		return domain.ErrNoDatabase
	}
	var one int
	if err := s.sql.QueryRow(ctx, sqlinline.QHealthCheck).Scan(&one); err != nil {
		return fmt.Errorf("liveness query: %w", err)
	}
	return nil
}

// pattern builds the single ILIKE parameter shared by the filtered queries.
func pattern(query string) string {
	return "%" + query + "%"
}
