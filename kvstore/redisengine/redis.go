package redisengine

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"

	"github.com/AntonStoeckl/library-circulation-go/kvstore"
)

const defaultKeyPrefix = "circulation:"

// Engine is a Redis-backed implementation of kvstore.Store.
type Engine struct {
	client    *redis.Client
	keyPrefix string
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine) error

// WithKeyPrefix sets the prefix prepended to every document key.
// An empty prefix is allowed and stores documents under their bare keys.
func WithKeyPrefix(prefix string) Option {
	return func(e *Engine) error {
		e.keyPrefix = prefix
		return nil
	}
}

// NewEngine creates an Engine on top of an existing Redis client.
func NewEngine(client *redis.Client, options ...Option) (*Engine, error) {
	if client == nil {
		return nil, kvstore.ErrNilDatabaseConnection
	}

	engine := &Engine{
		client:    client,
		keyPrefix: defaultKeyPrefix,
	}

	for _, option := range options {
		if err := option(engine); err != nil {
			return nil, err
		}
	}

	return engine, nil
}

// Load reads the document stored under key,
// or reports kvstore.ErrKeyNotFound if there is none.
func (e *Engine) Load(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, kvstore.ErrEmptyKey
	}

	value, err := e.client.Get(ctx, e.keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, kvstore.ErrKeyNotFound
	}
	if err != nil {
		return nil, errors.Join(kvstore.ErrLoadingDocumentFailed, err)
	}

	return value, nil
}

// Save stores the document under key without expiry, replacing any existing document.
func (e *Engine) Save(ctx context.Context, key string, value []byte) error {
	if key == "" {
		return kvstore.ErrEmptyKey
	}

	if err := e.client.Set(ctx, e.keyPrefix+key, value, 0).Err(); err != nil {
		return errors.Join(kvstore.ErrSavingDocumentFailed, err)
	}

	return nil
}

// Delete removes the document stored under key; deleting a missing key is a no-op.
func (e *Engine) Delete(ctx context.Context, key string) error {
	if key == "" {
		return kvstore.ErrEmptyKey
	}

	if err := e.client.Del(ctx, e.keyPrefix+key).Err(); err != nil {
		return errors.Join(kvstore.ErrDeletingDocumentFailed, err)
	}

	return nil
}
