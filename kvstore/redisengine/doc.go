// Package redisengine provides a kvstore.Store backed by Redis string keys.
//
// Each document is stored under an optional key prefix (default "circulation:")
// via GET/SET/DEL. Durability follows the Redis server's persistence
// configuration (RDB/AOF); with persistence disabled the engine degrades to a
// shared cache.
package redisengine
