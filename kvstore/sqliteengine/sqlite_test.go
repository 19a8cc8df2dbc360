package sqliteengine_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-circulation-go/kvstore"
	"github.com/AntonStoeckl/library-circulation-go/kvstore/sqliteengine"
)

func openTestEngine(t *testing.T) *sqliteengine.Engine {
	t.Helper()

	engine, err := sqliteengine.NewEngine(filepath.Join(t.TempDir(), "circulation.db"))
	require.NoError(t, err, "Should open the test database")
	t.Cleanup(func() { _ = engine.Close() })

	return engine
}

func Test_Engine_SaveLoadDelete_RoundTrip(t *testing.T) {
	// setup
	ctx := context.Background()
	engine := openTestEngine(t)

	// act + assert
	err := engine.Save(ctx, "books", []byte(`[{"id":"B001"}]`))
	assert.NoError(t, err, "Should save the document")

	loaded, err := engine.Load(ctx, "books")
	assert.NoError(t, err)
	assert.Equal(t, []byte(`[{"id":"B001"}]`), loaded)

	err = engine.Save(ctx, "books", []byte(`[]`))
	assert.NoError(t, err, "Save should upsert")

	loaded, err = engine.Load(ctx, "books")
	assert.NoError(t, err)
	assert.Equal(t, []byte(`[]`), loaded)

	assert.NoError(t, engine.Delete(ctx, "books"))

	_, err = engine.Load(ctx, "books")
	assert.ErrorIs(t, err, kvstore.ErrKeyNotFound)
}

func Test_Engine_Load_MissingKey(t *testing.T) {
	// setup
	ctx := context.Background()
	engine := openTestEngine(t)

	// act
	_, err := engine.Load(ctx, "loans")

	// assert
	assert.ErrorIs(t, err, kvstore.ErrKeyNotFound)
}

func Test_Engine_DocumentsSurviveReopen(t *testing.T) {
	// setup
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "circulation.db")

	engine, err := sqliteengine.NewEngine(dbPath)
	require.NoError(t, err)
	require.NoError(t, engine.Save(ctx, "students", []byte(`[{"name":"Ada"}]`)))
	require.NoError(t, engine.Close())

	// act
	reopened, err := sqliteengine.NewEngine(dbPath)
	require.NoError(t, err)
	defer func() { _ = reopened.Close() }()

	loaded, err := reopened.Load(ctx, "students")

	// assert
	assert.NoError(t, err)
	assert.Equal(t, []byte(`[{"name":"Ada"}]`), loaded, "Documents should survive a close/reopen cycle")
}

func Test_NewEngineFromSQLDB_NilConnection(t *testing.T) {
	// act
	_, err := sqliteengine.NewEngineFromSQLDB(nil)

	// assert
	assert.ErrorIs(t, err, kvstore.ErrNilDatabaseConnection)
}

func Test_WithTableName_Empty(t *testing.T) {
	// act
	_, err := sqliteengine.NewEngine(
		filepath.Join(t.TempDir(), "circulation.db"),
		sqliteengine.WithTableName(""),
	)

	// assert
	assert.ErrorIs(t, err, kvstore.ErrEmptyTableName)
}
