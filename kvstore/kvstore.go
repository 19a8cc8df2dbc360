package kvstore

import (
	"context"
	"errors"
)

var (
	// ErrKeyNotFound is returned by Load when no document exists under the key.
	ErrKeyNotFound = errors.New("no document stored under this key")

	// ErrEmptyKey is returned when an empty key is supplied to any operation.
	ErrEmptyKey = errors.New("empty key supplied")

	// ErrNilDatabaseConnection is returned by engine constructors when the
	// supplied database handle is nil.
	ErrNilDatabaseConnection = errors.New("database connection must not be nil")

	// ErrEmptyTableName is returned when an empty table name is supplied
	// to an engine option.
	ErrEmptyTableName = errors.New("empty table name supplied")

	// ErrSavingDocumentFailed is returned when a save operation fails.
	ErrSavingDocumentFailed = errors.New("saving document failed")

	// ErrLoadingDocumentFailed is returned when a load operation fails.
	ErrLoadingDocumentFailed = errors.New("loading document failed")

	// ErrDeletingDocumentFailed is returned when a delete operation fails.
	ErrDeletingDocumentFailed = errors.New("deleting document failed")
)

// Store is the durable key-value document store contract.
//
// Save overwrites any existing document under the key. Load returns
// ErrKeyNotFound (possibly wrapped) when the key does not exist. Delete of a
// missing key is a no-op, not an error.
type Store interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
