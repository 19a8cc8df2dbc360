// Package sqliteengine provides a kvstore.Store backed by a single-file SQLite
// database, a good fit for a circulation tracker that runs on one machine and
// wants durable local storage without a server.
//
// Documents live in one table (key TEXT PRIMARY KEY, value BLOB); saves are
// upserts. The schema is applied on open.
package sqliteengine
