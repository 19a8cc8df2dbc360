package fileengine

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/AntonStoeckl/library-circulation-go/kvstore"
)

const fileExtension = ".json"

// ErrInvalidKey is returned when a key contains characters that are not safe
// to use as a file name.
var ErrInvalidKey = errors.New("key contains characters not allowed in a file name")

// Engine is a directory-backed implementation of kvstore.Store.
type Engine struct {
	dir string
}

// NewEngine creates an engine storing its documents in dir,
// creating the directory if it does not exist.
func NewEngine(dir string) (*Engine, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Join(kvstore.ErrSavingDocumentFailed, err)
	}

	return &Engine{dir: dir}, nil
}

// Load reads the document stored under key,
// or reports kvstore.ErrKeyNotFound if the file does not exist.
func (e *Engine) Load(_ context.Context, key string) ([]byte, error) {
	path, err := e.pathFor(key)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is built from a validated key
	if err != nil {
		if os.IsNotExist(err) {
			return nil, kvstore.ErrKeyNotFound
		}

		return nil, errors.Join(kvstore.ErrLoadingDocumentFailed, err)
	}

	return data, nil
}

// Save writes the document to a temporary file and atomically renames it over
// the target file.
func (e *Engine) Save(_ context.Context, key string, value []byte) error {
	path, err := e.pathFor(key)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(e.dir, key+".tmp-*")
	if err != nil {
		return errors.Join(kvstore.ErrSavingDocumentFailed, err)
	}

	if _, writeErr := tmp.Write(value); writeErr != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())

		return errors.Join(kvstore.ErrSavingDocumentFailed, writeErr)
	}

	if closeErr := tmp.Close(); closeErr != nil {
		_ = os.Remove(tmp.Name())

		return errors.Join(kvstore.ErrSavingDocumentFailed, closeErr)
	}

	if renameErr := os.Rename(tmp.Name(), path); renameErr != nil {
		_ = os.Remove(tmp.Name())

		return errors.Join(kvstore.ErrSavingDocumentFailed, renameErr)
	}

	return nil
}

// Delete removes the document file; deleting a missing key is a no-op.
func (e *Engine) Delete(_ context.Context, key string) error {
	path, err := e.pathFor(key)
	if err != nil {
		return err
	}

	if removeErr := os.Remove(path); removeErr != nil && !os.IsNotExist(removeErr) {
		return errors.Join(kvstore.ErrDeletingDocumentFailed, removeErr)
	}

	return nil
}

func (e *Engine) pathFor(key string) (string, error) {
	if key == "" {
		return "", kvstore.ErrEmptyKey
	}

	for _, r := range key {
		isSafe := r == '-' || r == '_' ||
			(r >= '0' && r <= '9') || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		if !isSafe {
			return "", ErrInvalidKey
		}
	}

	return filepath.Join(e.dir, key+fileExtension), nil
}
