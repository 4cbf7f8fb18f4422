package infra

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// SQLExecutor defines the contract required by the data layer for executing
// SQL statements. *SQLRunner satisfies it in production; tests substitute
// in-memory fakes.
type SQLExecutor interface {
	Exec(ctx context.Context, query string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, query string, args ...any) pgx.Row
	Query(ctx context.Context, query string, args ...any) (pgx.Rows, error)
}

// Every inline statement starts with a `--sql <uuid>` audit marker so query
// logs can be correlated back to the constant that produced them without
// echoing SQL text. The sqllint tool enforces the convention.
var markerRegexp = regexp.MustCompile(`^--sql [0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)

// SQLRunner executes marked statements against a pgx pool, logging each one
// by its audit marker.
type SQLRunner struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

func NewSQLRunner(pool *pgxpool.Pool, logger zerolog.Logger) *SQLRunner {
	return &SQLRunner{pool: pool, logger: logger}
}

func (r *SQLRunner) Exec(ctx context.Context, query string, args ...any) (pgconn.CommandTag, error) {
	marker, stmt, err := extractMarker(query)
	if err != nil {
		return pgconn.CommandTag{}, err
	}
	r.logger.Debug().Str("sql", marker).Msg("exec")
	tag, err := r.pool.Exec(ctx, stmt, args...)
	if err != nil {
		r.logger.Error().Err(err).Str("sql", marker).Msg("exec failed")
	}
	return tag, err
}

func (r *SQLRunner) QueryRow(ctx context.Context, query string, args ...any) pgx.Row {
	marker, stmt, err := extractMarker(query)
	if err != nil {
		return errorRow{err: err}
	}
	r.logger.Debug().Str("sql", marker).Msg("query_row")
	return loggingRow{row: r.pool.QueryRow(ctx, stmt, args...), logger: r.logger, marker: marker}
}

func (r *SQLRunner) Query(ctx context.Context, query string, args ...any) (pgx.Rows, error) {
	marker, stmt, err := extractMarker(query)
	if err != nil {
		return nil, err
	}
	r.logger.Debug().Str("sql", marker).Msg("query")
	rows, err := r.pool.Query(ctx, stmt, args...)
	if err != nil {
		r.logger.Error().Err(err).Str("sql", marker).Msg("query failed")
		return nil, err
	}
	return rows, nil
}

type loggingRow struct {
	row    pgx.Row
	logger zerolog.Logger
	marker string
}

func (l loggingRow) Scan(dest ...any) error {
	err := l.row.Scan(dest...)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		l.logger.Error().Err(err).Str("sql", l.marker).Msg("scan failed")
	}
	return err
}

type errorRow struct {
	err error
}

func (e errorRow) Scan(dest ...any) error {
	return e.err
}

func extractMarker(query string) (marker, stmt string, err error) {
	trimmed := strings.TrimSpace(query)
	line, rest, _ := strings.Cut(trimmed, "\n")
	line = strings.TrimSpace(line)
	if !markerRegexp.MatchString(line) {
		return "", "", errors.New("sql marker missing or invalid")
	}
	return strings.TrimPrefix(line, "--sql "), rest, nil
}

var _ SQLExecutor = (*SQLRunner)(nil)
