// Package adapters provides database adapter implementations for the
// PostgreSQL document store engine.
//
// This package implements the adapter pattern to support multiple PostgreSQL
// database libraries: pgxpool.Pool, sql.DB, and sqlx.DB. All adapters provide
// equivalent functionality through a common DBAdapter interface, allowing the
// engine to work seamlessly with any supported database connection type.
package adapters
