package config

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/AntonStoeckl/library-circulation-go/circulation"
	"github.com/AntonStoeckl/library-circulation-go/kvstore/fileengine"
	"github.com/AntonStoeckl/library-circulation-go/kvstore/memoryengine"
	"github.com/AntonStoeckl/library-circulation-go/kvstore/postgresengine"
	"github.com/AntonStoeckl/library-circulation-go/kvstore/redisengine"
	"github.com/AntonStoeckl/library-circulation-go/kvstore/sqliteengine"
)

// BuildStorage assembles the storage engine the configuration selects. The
// returned cleanup func closes whatever connections the engine holds and is
// safe to call exactly once.
func BuildStorage(ctx context.Context, cfg *Config) (circulation.Storage, func(), error) {
	noop := func() {}

	switch cfg.Engine {
	case EngineMemory:
		return memoryengine.NewEngine(), noop, nil

	case EngineFile:
		engine, err := fileengine.NewEngine(cfg.File.Dir)
		if err != nil {
			return nil, nil, err
		}

		return engine, noop, nil

	case EngineSQLite:
		engine, err := sqliteengine.NewEngine(cfg.SQLite.Path)
		if err != nil {
			return nil, nil, err
		}

		return engine, func() { _ = engine.Close() }, nil

	case EnginePostgres:
		return buildPostgresStorage(ctx, cfg)

	case EngineRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})

		engine, err := redisengine.NewEngine(client, redisengine.WithKeyPrefix(cfg.Redis.KeyPrefix))
		if err != nil {
			return nil, nil, err
		}

		return engine, func() { _ = client.Close() }, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage engine %q", cfg.Engine)
	}
}

func buildPostgresStorage(ctx context.Context, cfg *Config) (circulation.Storage, func(), error) {
	options := []postgresengine.Option{postgresengine.WithTableName(cfg.Postgres.Table)}

	switch cfg.Postgres.Driver {
	case "pgx", "":
		pool, err := PostgresPGXPool(ctx, cfg.Postgres.DSN)
		if err != nil {
			return nil, nil, err
		}

		engine, err := postgresengine.NewEngineFromPGXPool(pool, options...)
		if err != nil {
			pool.Close()
			return nil, nil, err
		}

		if err = engine.CreateSchema(ctx); err != nil {
			pool.Close()
			return nil, nil, err
		}

		return engine, pool.Close, nil

	case "sqldb":
		db, err := PostgresSQLDB(ctx, cfg.Postgres.DSN)
		if err != nil {
			return nil, nil, err
		}

		engine, err := postgresengine.NewEngineFromSQLDB(db, options...)
		if err != nil {
			_ = db.Close()
			return nil, nil, err
		}

		if err = engine.CreateSchema(ctx); err != nil {
			_ = db.Close()
			return nil, nil, err
		}

		return engine, func() { _ = db.Close() }, nil

	case "sqlx":
		db, err := PostgresSQLX(ctx, cfg.Postgres.DSN)
		if err != nil {
			return nil, nil, err
		}

		engine, err := postgresengine.NewEngineFromSQLX(db, options...)
		if err != nil {
			_ = db.Close()
			return nil, nil, err
		}

		if err = engine.CreateSchema(ctx); err != nil {
			_ = db.Close()
			return nil, nil, err
		}

		return engine, func() { _ = db.Close() }, nil

	default:
		return nil, nil, fmt.Errorf("unknown postgres driver %q", cfg.Postgres.Driver)
	}
}
