package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-circulation-go/example/shared/config"
)

func Test_Load_Defaults(t *testing.T) {
	// act
	cfg, err := config.Load("")

	// assert
	require.NoError(t, err)
	assert.Equal(t, config.EngineMemory, cfg.Engine)
	assert.Equal(t, 14, cfg.LoanPeriodDays)
	assert.Equal(t, "pgx", cfg.Postgres.Driver)
	assert.Equal(t, "documents", cfg.Postgres.Table)
	assert.Equal(t, "circulation:", cfg.Redis.KeyPrefix)
}

func Test_Load_FromYAMLFile(t *testing.T) {
	// setup
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	content := "engine: sqlite\nloan_period_days: 7\nsqlite:\n  path: /tmp/demo.db\n"
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o600), "error in arranging test data")

	// act
	cfg, err := config.Load(configPath)

	// assert
	require.NoError(t, err)
	assert.Equal(t, config.EngineSQLite, cfg.Engine)
	assert.Equal(t, 7, cfg.LoanPeriodDays)
	assert.Equal(t, "/tmp/demo.db", cfg.SQLite.Path)
}

func Test_Load_MissingFile_Fails(t *testing.T) {
	// act
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))

	// assert
	assert.Error(t, err)
}

func Test_BuildStorage_UnknownEngine_Fails(t *testing.T) {
	// act
	_, _, err := config.BuildStorage(context.Background(), &config.Config{Engine: "etcd"})

	// assert
	assert.Error(t, err)
}

func Test_BuildStorage_MemoryAndFileEngines(t *testing.T) {
	// setup
	ctx := context.Background()

	// act + assert: memory
	storage, cleanup, err := config.BuildStorage(ctx, &config.Config{Engine: config.EngineMemory})
	require.NoError(t, err)
	assert.NotNil(t, storage)
	cleanup()

	// act + assert: file
	storage, cleanup, err = config.BuildStorage(ctx, &config.Config{
		Engine: config.EngineFile,
		File:   config.FileConfig{Dir: t.TempDir()},
	})
	require.NoError(t, err)
	assert.NotNil(t, storage)
	cleanup()
}
