package sqliteengine

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3" // driver import

	"github.com/AntonStoeckl/library-circulation-go/kvstore"
)

const defaultTableName = "documents"

// Engine is a SQLite-backed implementation of kvstore.Store.
type Engine struct {
	db        *sql.DB
	tableName string
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine) error

// WithTableName sets the documents table name for the Engine.
func WithTableName(tableName string) Option {
	return func(e *Engine) error {
		if tableName == "" {
			return kvstore.ErrEmptyTableName
		}

		e.tableName = tableName

		return nil
	}
}

// NewEngine opens (or creates) the SQLite database at dbPath and ensures the
// documents table exists. The parent directory is created on first run.
func NewEngine(dbPath string, options ...Option) (*Engine, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
	}

	// busy_timeout keeps concurrent openers from failing immediately.
	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000", dbPath)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	engine := &Engine{db: db, tableName: defaultTableName}

	for _, option := range options {
		if optionErr := option(engine); optionErr != nil {
			_ = db.Close()
			return nil, optionErr
		}
	}

	if err := engine.applySchema(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return engine, nil
}

// NewEngineFromSQLDB wraps an already opened sql.DB (sqlite3 driver) and
// ensures the documents table exists.
func NewEngineFromSQLDB(db *sql.DB, options ...Option) (*Engine, error) {
	if db == nil {
		return nil, kvstore.ErrNilDatabaseConnection
	}

	engine := &Engine{db: db, tableName: defaultTableName}

	for _, option := range options {
		if optionErr := option(engine); optionErr != nil {
			return nil, optionErr
		}
	}

	if err := engine.applySchema(); err != nil {
		return nil, err
	}

	return engine, nil
}

// Close closes the underlying database.
func (e *Engine) Close() error {
	return e.db.Close()
}

func (e *Engine) applySchema() error {
	// WAL improves write durability characteristics for a local store.
	if _, err := e.db.Exec("PRAGMA journal_mode=WAL;"); err != nil {
		return fmt.Errorf("enable WAL: %w", err)
	}

	schema := fmt.Sprintf(
		`CREATE TABLE IF NOT EXISTS %s (key TEXT PRIMARY KEY, value BLOB NOT NULL);`,
		e.tableName,
	)
	if _, err := e.db.Exec(schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}

	return nil
}

// Load reads the document stored under key,
// or reports kvstore.ErrKeyNotFound if there is none.
func (e *Engine) Load(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, kvstore.ErrEmptyKey
	}

	query := fmt.Sprintf(`SELECT value FROM %s WHERE key = ?`, e.tableName)

	var value []byte
	err := e.db.QueryRowContext(ctx, query, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, kvstore.ErrKeyNotFound
	}
	if err != nil {
		return nil, errors.Join(kvstore.ErrLoadingDocumentFailed, err)
	}

	return value, nil
}

// Save upserts the document under key.
func (e *Engine) Save(ctx context.Context, key string, value []byte) error {
	if key == "" {
		return kvstore.ErrEmptyKey
	}

	query := fmt.Sprintf(
		`INSERT INTO %s (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		e.tableName,
	)

	if _, err := e.db.ExecContext(ctx, query, key, value); err != nil {
		return errors.Join(kvstore.ErrSavingDocumentFailed, err)
	}

	return nil
}

// Delete removes the document stored under key; deleting a missing key is a no-op.
func (e *Engine) Delete(ctx context.Context, key string) error {
	if key == "" {
		return kvstore.ErrEmptyKey
	}

	query := fmt.Sprintf(`DELETE FROM %s WHERE key = ?`, e.tableName)

	if _, err := e.db.ExecContext(ctx, query, key); err != nil {
		return errors.Join(kvstore.ErrDeletingDocumentFailed, err)
	}

	return nil
}
