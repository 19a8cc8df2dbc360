package postgresengine

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect import
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"

	"github.com/AntonStoeckl/library-circulation-go/kvstore"
	"github.com/AntonStoeckl/library-circulation-go/kvstore/postgresengine/internal/adapters"
)

const (
	defaultTableName = "documents"

	logMsgBuildQueryFailed  = "failed to build query"
	logMsgDBQueryFailed     = "database query execution failed"
	logMsgDBExecFailed      = "database execution failed"
	logMsgScanRowFailed     = "failed to scan database row"
	logMsgDocumentLoaded    = "document loaded"
	logMsgDocumentSaved     = "document saved"
	logMsgDocumentDeleted   = "document deleted"
	logMsgSQLExecuted       = "executed sql for: "
	logMsgOperation         = "document store operation: "
	logAttrError            = "error"
	logAttrQuery            = "query"
	logAttrKey              = "key"
	logAttrValueBytes       = "value_bytes"
	logAttrDurationMS       = "duration_ms"
	logActionLoad           = "load"
	logActionSave           = "save"
	logActionDelete         = "delete"
	colKey                  = "key"
	colValue                = "value"
	dialectPostgres         = "postgres"
	metricOperationDuration = "kvstore_operation_duration_seconds"
	metricOperationErrors   = "kvstore_operation_errors_total"
)

// Engine represents a PostgreSQL-backed document store for the circulation data.
// It leverages a database adapter and supports customizable logging, metrics,
// and table configuration.
type Engine struct {
	db               adapters.DBAdapter
	tableName        string
	logger           kvstore.Logger
	metricsCollector kvstore.MetricsCollector
}

// NewEngineFromPGXPool creates a new Engine using a pgx pool with optional configuration.
func NewEngineFromPGXPool(db *pgxpool.Pool, options ...Option) (*Engine, error) {
	if db == nil {
		return nil, kvstore.ErrNilDatabaseConnection
	}

	return newEngine(adapters.NewPGXAdapter(db), options...)
}

// NewEngineFromSQLDB creates a new Engine using a sql.DB with optional configuration.
func NewEngineFromSQLDB(db *sql.DB, options ...Option) (*Engine, error) {
	if db == nil {
		return nil, kvstore.ErrNilDatabaseConnection
	}

	return newEngine(adapters.NewSQLAdapter(db), options...)
}

// NewEngineFromSQLX creates a new Engine using a sqlx.DB with optional configuration.
func NewEngineFromSQLX(db *sqlx.DB, options ...Option) (*Engine, error) {
	if db == nil {
		return nil, kvstore.ErrNilDatabaseConnection
	}

	return newEngine(adapters.NewSQLXAdapter(db), options...)
}

func newEngine(db adapters.DBAdapter, options ...Option) (*Engine, error) {
	engine := &Engine{
		db:        db,
		tableName: defaultTableName,
	}

	for _, option := range options {
		if err := option(engine); err != nil {
			return nil, err
		}
	}

	return engine, nil
}

// CreateSchema creates the documents table if it does not exist yet.
// Call it once at startup, or manage the table with your own migrations.
func (e *Engine) CreateSchema(ctx context.Context) error {
	ddl := fmt.Sprintf(
		`CREATE TABLE IF NOT EXISTS %s (%s TEXT PRIMARY KEY, %s TEXT NOT NULL)`,
		e.tableName, colKey, colValue,
	)

	if _, err := e.db.Exec(ctx, ddl); err != nil {
		e.logError(logMsgDBExecFailed, err, logAttrQuery, ddl)

		return errors.Join(kvstore.ErrSavingDocumentFailed, err)
	}

	return nil
}

// Load retrieves the document stored under key,
// or reports kvstore.ErrKeyNotFound if there is none.
func (e *Engine) Load(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, kvstore.ErrEmptyKey
	}

	sqlQuery, args, buildErr := goqu.Dialect(dialectPostgres).
		From(e.tableName).
		Select(colValue).
		Where(goqu.Ex{colKey: key}).
		Prepared(true).
		ToSQL()
	if buildErr != nil {
		e.logError(logMsgBuildQueryFailed, buildErr, logAttrKey, key)

		return nil, errors.Join(kvstore.ErrLoadingDocumentFailed, buildErr)
	}

	start := time.Now()
	var value string
	scanErr := e.db.QueryRow(ctx, sqlQuery, args...).Scan(&value)
	duration := time.Since(start)
	e.logQueryWithDuration(sqlQuery, logActionLoad, duration)
	e.recordDuration(logActionLoad, duration)

	if scanErr != nil {
		if errors.Is(scanErr, sql.ErrNoRows) || errors.Is(scanErr, pgx.ErrNoRows) {
			return nil, kvstore.ErrKeyNotFound
		}

		e.logError(logMsgScanRowFailed, scanErr, logAttrKey, key)
		e.recordError(logActionLoad)

		return nil, errors.Join(kvstore.ErrLoadingDocumentFailed, scanErr)
	}

	e.logOperation(logMsgDocumentLoaded, logAttrKey, key, logAttrValueBytes, len(value))

	return []byte(value), nil
}

// Save upserts the document under key.
func (e *Engine) Save(ctx context.Context, key string, value []byte) error {
	if key == "" {
		return kvstore.ErrEmptyKey
	}

	sqlQuery, args, buildErr := goqu.Dialect(dialectPostgres).
		Insert(e.tableName).
		Rows(goqu.Record{colKey: key, colValue: string(value)}).
		OnConflict(goqu.DoUpdate(colKey, goqu.Record{colValue: goqu.L("EXCLUDED." + colValue)})).
		Prepared(true).
		ToSQL()
	if buildErr != nil {
		e.logError(logMsgBuildQueryFailed, buildErr, logAttrKey, key)

		return errors.Join(kvstore.ErrSavingDocumentFailed, buildErr)
	}

	start := time.Now()
	_, execErr := e.db.Exec(ctx, sqlQuery, args...)
	duration := time.Since(start)
	e.logQueryWithDuration(sqlQuery, logActionSave, duration)
	e.recordDuration(logActionSave, duration)

	if execErr != nil {
		e.logError(logMsgDBExecFailed, execErr, logAttrQuery, sqlQuery)
		e.recordError(logActionSave)

		return errors.Join(kvstore.ErrSavingDocumentFailed, execErr)
	}

	e.logOperation(logMsgDocumentSaved, logAttrKey, key, logAttrValueBytes, len(value))

	return nil
}

// Delete removes the document stored under key; deleting a missing key is a no-op.
func (e *Engine) Delete(ctx context.Context, key string) error {
	if key == "" {
		return kvstore.ErrEmptyKey
	}

	sqlQuery, args, buildErr := goqu.Dialect(dialectPostgres).
		Delete(e.tableName).
		Where(goqu.Ex{colKey: key}).
		Prepared(true).
		ToSQL()
	if buildErr != nil {
		e.logError(logMsgBuildQueryFailed, buildErr, logAttrKey, key)

		return errors.Join(kvstore.ErrDeletingDocumentFailed, buildErr)
	}

	start := time.Now()
	_, execErr := e.db.Exec(ctx, sqlQuery, args...)
	duration := time.Since(start)
	e.logQueryWithDuration(sqlQuery, logActionDelete, duration)
	e.recordDuration(logActionDelete, duration)

	if execErr != nil {
		e.logError(logMsgDBExecFailed, execErr, logAttrQuery, sqlQuery)
		e.recordError(logActionDelete)

		return errors.Join(kvstore.ErrDeletingDocumentFailed, execErr)
	}

	e.logOperation(logMsgDocumentDeleted, logAttrKey, key)

	return nil
}

// logQueryWithDuration logs SQL queries with execution time at debug level if a logger is configured.
func (e *Engine) logQueryWithDuration(sqlQuery string, action string, duration time.Duration) {
	if e.logger != nil {
		e.logger.Debug(logMsgSQLExecuted+action, logAttrDurationMS, e.toMilliseconds(duration), logAttrQuery, sqlQuery)
	}
}

// logOperation logs operational information at info level if a logger is configured.
func (e *Engine) logOperation(action string, args ...any) {
	if e.logger != nil {
		e.logger.Info(logMsgOperation+action, args...)
	}
}

// logError logs error information at error level if a logger is configured.
func (e *Engine) logError(message string, err error, args ...any) {
	if e.logger != nil {
		allArgs := []any{logAttrError, err.Error()}
		allArgs = append(allArgs, args...)
		e.logger.Error(message, allArgs...)
	}
}

// recordDuration records operation timing if a metrics collector is configured.
func (e *Engine) recordDuration(operation string, duration time.Duration) {
	if e.metricsCollector != nil {
		e.metricsCollector.RecordDuration(metricOperationDuration, duration, map[string]string{"operation": operation})
	}
}

// recordError counts operation errors if a metrics collector is configured.
func (e *Engine) recordError(operation string) {
	if e.metricsCollector != nil {
		e.metricsCollector.IncrementCounter(metricOperationErrors, map[string]string{"operation": operation})
	}
}

// toMilliseconds converts a time.Duration to float64 milliseconds with 3 decimal places.
func (e *Engine) toMilliseconds(d time.Duration) float64 {
	return math.Round(float64(d.Nanoseconds())/1e6*1000) / 1000
}
