// Package kvstore defines the durable key-value document store contract used
// by the circulation package to persist its collections.
//
// Each collection is stored as one JSON document under its own key. The
// contract is intentionally minimal: load, save, and delete by key. Engines
// for different storage backends live in the sub-packages:
//
//   - memoryengine: process-local map, for tests and demos
//   - fileengine: one file per key in a directory, atomic replace on save
//   - sqliteengine: single-file SQLite database
//   - postgresengine: PostgreSQL via pgxpool.Pool, sql.DB, or sqlx.DB
//   - redisengine: Redis string keys
//
// A missing key is reported as ErrKeyNotFound; callers that treat absence as
// "empty" branch on it with errors.Is.
package kvstore
