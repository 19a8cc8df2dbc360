package fileengine_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-circulation-go/kvstore"
	"github.com/AntonStoeckl/library-circulation-go/kvstore/fileengine"
)

func Test_Engine_SaveLoadDelete_RoundTrip(t *testing.T) {
	// setup
	ctx := context.Background()
	engine, err := fileengine.NewEngine(t.TempDir())
	require.NoError(t, err)

	// act + assert
	err = engine.Save(ctx, "books", []byte(`[{"id":"B001","title":"Dune"}]`))
	assert.NoError(t, err, "Should save the document")

	loaded, err := engine.Load(ctx, "books")
	assert.NoError(t, err)
	assert.Equal(t, []byte(`[{"id":"B001","title":"Dune"}]`), loaded)

	err = engine.Delete(ctx, "books")
	assert.NoError(t, err)

	_, err = engine.Load(ctx, "books")
	assert.ErrorIs(t, err, kvstore.ErrKeyNotFound, "Deleted document should be gone")
}

func Test_Engine_Load_MissingKey(t *testing.T) {
	// setup
	ctx := context.Background()
	engine, err := fileengine.NewEngine(t.TempDir())
	require.NoError(t, err)

	// act
	_, err = engine.Load(ctx, "loanHistory")

	// assert
	assert.ErrorIs(t, err, kvstore.ErrKeyNotFound)
}

func Test_Engine_Save_LeavesNoTemporaryFiles(t *testing.T) {
	// setup
	ctx := context.Background()
	dir := t.TempDir()
	engine, err := fileengine.NewEngine(dir)
	require.NoError(t, err)

	// act
	require.NoError(t, engine.Save(ctx, "students", []byte(`[]`)))
	require.NoError(t, engine.Save(ctx, "students", []byte(`[{"name":"Ada"}]`)))

	// assert
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "Only the target document file should remain")
	assert.Equal(t, "students.json", entries[0].Name())
}

func Test_Engine_RejectsUnsafeKeys(t *testing.T) {
	// setup
	ctx := context.Background()
	engine, err := fileengine.NewEngine(t.TempDir())
	require.NoError(t, err)

	// act + assert
	_, err = engine.Load(ctx, "../escape")
	assert.ErrorIs(t, err, fileengine.ErrInvalidKey)

	assert.ErrorIs(t, engine.Save(ctx, "a/b", nil), fileengine.ErrInvalidKey)
	assert.ErrorIs(t, engine.Delete(ctx, "a b"), fileengine.ErrInvalidKey)

	_, err = engine.Load(ctx, "")
	assert.ErrorIs(t, err, kvstore.ErrEmptyKey)
}

func Test_NewEngine_CreatesDirectory(t *testing.T) {
	// setup
	dir := filepath.Join(t.TempDir(), "nested", "data")

	// act
	_, err := fileengine.NewEngine(dir)

	// assert
	assert.NoError(t, err)
	info, statErr := os.Stat(dir)
	require.NoError(t, statErr)
	assert.True(t, info.IsDir())
}
