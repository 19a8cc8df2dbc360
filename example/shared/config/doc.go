// Package config provides configuration loading and storage-engine wiring
// for the demo application.
//
// Configuration comes from an optional YAML file with environment-variable
// overrides (prefix CIRCULATION). The package contains factory functions for
// creating database connections using different PostgreSQL drivers
// (pgx.Pool, sql.DB, sqlx.DB), a Redis client, and the file/SQLite/in-memory
// engines, and assembles whichever storage engine the configuration selects.
package config
