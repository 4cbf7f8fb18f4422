package data

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"dashboard/internal/infra"
)

// fakeExec substitutes the pgx-backed SQLRunner behind the SQLExecutor
// contract. Unset function fields fail the statement, which doubles as the
// unreachable-database fixture.
type fakeExec struct {
	query    func(query string, args ...any) (pgx.Rows, error)
	queryRow func(query string, args ...any) pgx.Row
}

var errDatabaseDown = fmt.Errorf("connection refused")

func (f *fakeExec) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, errDatabaseDown
}

func (f *fakeExec) Query(_ context.Context, query string, args ...any) (pgx.Rows, error) {
	if f.query == nil {
		return nil, errDatabaseDown
	}
	return f.query(query, args...)
}

func (f *fakeExec) QueryRow(_ context.Context, query string, args ...any) pgx.Row {
	if f.queryRow == nil {
		return simpleRow{scan: func(...any) error { return errDatabaseDown }}
	}
	return f.queryRow(query, args...)
}

var _ infra.SQLExecutor = (*fakeExec)(nil)

type simpleRow struct {
	scan func(dest ...any) error
}

func (r simpleRow) Scan(dest ...any) error {
	if r.scan == nil {
		return pgx.ErrNoRows
	}
	return r.scan(dest...)
}

// rowsBase stubs the pgx.Rows surface the data layer never touches.
type rowsBase struct{}

func (rowsBase) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (rowsBase) Conn() *pgx.Conn                              { return nil }
func (rowsBase) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (rowsBase) RawValues() [][]byte                          { return nil }

func (rowsBase) Values() ([]any, error) {
	return nil, fmt.Errorf("values not supported in test rows")
}

type fakeRows struct {
	rowsBase
	scans []func(dest ...any) error
	idx   int
	err   error
}

func (r *fakeRows) Close() {}

func (r *fakeRows) Err() error { return r.err }

func (r *fakeRows) Next() bool {
	if r.idx >= len(r.scans) {
		return false
	}
	r.idx++
	return true
}

func (r *fakeRows) Scan(dest ...any) error {
	if r.idx == 0 || r.idx > len(r.scans) {
		return pgx.ErrNoRows
	}
	return r.scans[r.idx-1](dest...)
}

var _ pgx.Rows = (*fakeRows)(nil)
