package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var errNoDatabase = errors.New("no database")

// recordingQuerier captures every statement and its arguments. Queries fail
// with errNoDatabase, so tests assert on the SQL text without a live server.
type recordingQuerier struct {
	sql  []string
	args [][]any
}

func (q *recordingQuerier) record(sql string, args []any) {
	q.sql = append(q.sql, sql)
	q.args = append(q.args, args)
}

func (q *recordingQuerier) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	q.record(sql, args)
	return pgconn.CommandTag{}, nil
}

func (q *recordingQuerier) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	q.record(sql, args)
	return nil, errNoDatabase
}

func (q *recordingQuerier) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	q.record(sql, args)
	return errRow{err: errNoDatabase}
}

type errRow struct{ err error }

func (r errRow) Scan(...any) error { return r.err }
