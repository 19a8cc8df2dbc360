package adapters

import (
	"context"
	"database/sql"
)

// DBAdapter defines the interface for database operations needed by the document store.
type DBAdapter interface {
	QueryRow(ctx context.Context, query string, args ...any) DBRow
	Exec(ctx context.Context, query string, args ...any) (DBResult, error)
}

// DBRow defines the interface for a single-row query result.
type DBRow interface {
	Scan(dest ...any) error
}

// DBResult defines the interface for execution results.
type DBResult interface {
	RowsAffected() (int64, error)
}

// stdRow wraps standard library sql.Row to implement the DBRow interface.
type stdRow struct {
	row *sql.Row
}

// Scan copies row values into provided destinations.
func (s *stdRow) Scan(dest ...any) error {
	return s.row.Scan(dest...)
}

// stdResult wraps standard library sql.Result to implement the DBResult interface.
type stdResult struct {
	result sql.Result
}

// RowsAffected returns the number of rows affected by the command.
func (s *stdResult) RowsAffected() (int64, error) {
	return s.result.RowsAffected()
}
