// Package postgresengine provides a PostgreSQL implementation of kvstore.Store.
//
// The engine works with multiple PostgreSQL database libraries through an
// internal adapter layer, supporting pgxpool.Pool, sql.DB and sqlx.DB
// connections. SQL is built with goqu and executed with positional parameters,
// so all three adapters share the same statements.
//
// Documents live in a single table (key TEXT PRIMARY KEY, value TEXT NOT NULL);
// saves are upserts via ON CONFLICT. Use CreateSchema once at startup, or
// create the table with your own migration tooling.
//
// Functional options configure the table name, an optional Logger for SQL and
// operational logging, and an optional MetricsCollector.
package postgresengine
