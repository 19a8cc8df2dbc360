package postgresengine

import (
	"github.com/AntonStoeckl/library-circulation-go/kvstore"
)

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

// WithLogger sets the logger for the Engine.
// The logger will receive messages at different levels based on the logger's configured level:
//
// Debug level: SQL queries with execution timing (development use)
// Info level: Document sizes and operation outcomes (production-safe)
// Error level: Critical failures that cause operation failures.
func WithLogger(logger kvstore.Logger) Option {
	return func(e *Engine) error {
		e.logger = logger
		return nil
	}
}

// WithMetrics sets the metrics collector for the Engine.
// The collector will receive operation durations and error counts.
func WithMetrics(collector kvstore.MetricsCollector) Option {
	return func(e *Engine) error {
		e.metricsCollector = collector
		return nil
	}
}
