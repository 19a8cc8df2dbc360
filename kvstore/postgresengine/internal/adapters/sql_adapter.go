package adapters

import (
	"context"
	"database/sql"
)

// SQLAdapter implements DBAdapter for sql.DB.
type SQLAdapter struct {
	db *sql.DB
}

// NewSQLAdapter creates a new SQL adapter.
func NewSQLAdapter(db *sql.DB) *SQLAdapter {
	return &SQLAdapter{db: db}
}

// QueryRow executes a single-row query using the sql.DB.
func (s *SQLAdapter) QueryRow(ctx context.Context, query string, args ...any) DBRow {
	return &stdRow{row: s.db.QueryRowContext(ctx, query, args...)}
}

// Exec executes a statement using the sql.DB and returns a wrapped result.
func (s *SQLAdapter) Exec(ctx context.Context, query string, args ...any) (DBResult, error) {
	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	return &stdResult{result: result}, nil
}
