package memoryengine

import (
	"context"
	"sync"

	"github.com/AntonStoeckl/library-circulation-go/kvstore"
)

// Engine is an in-memory implementation of kvstore.Store.
type Engine struct {
	mu        sync.RWMutex
	documents map[string][]byte
}

// NewEngine creates an empty in-memory engine.
func NewEngine() *Engine {
	return &Engine{documents: make(map[string][]byte)}
}

// Load returns a copy of the document stored under key,
// or kvstore.ErrKeyNotFound if there is none.
func (e *Engine) Load(_ context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, kvstore.ErrEmptyKey
	}

	e.mu.RLock()
	defer e.mu.RUnlock()

	value, ok := e.documents[key]
	if !ok {
		return nil, kvstore.ErrKeyNotFound
	}

	valueCopy := make([]byte, len(value))
	copy(valueCopy, value)

	return valueCopy, nil
}

// Save stores a copy of value under key, replacing any existing document.
func (e *Engine) Save(_ context.Context, key string, value []byte) error {
	if key == "" {
		return kvstore.ErrEmptyKey
	}

	valueCopy := make([]byte, len(value))
	copy(valueCopy, value)

	e.mu.Lock()
	defer e.mu.Unlock()

	e.documents[key] = valueCopy

	return nil
}

// Delete removes the document stored under key; deleting a missing key is a no-op.
func (e *Engine) Delete(_ context.Context, key string) error {
	if key == "" {
		return kvstore.ErrEmptyKey
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	delete(e.documents, key)

	return nil
}
