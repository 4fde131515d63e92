package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateRepository(t *testing.T) {
	tmpDir := filepath.Join(t.TempDir(), "nested")
	t.Setenv("TD_DB_DIR", tmpDir)
	t.Setenv(ConfigFileEnv, "")

	cfg, err := NewLoader().WithFile(writeConfigFile(t, "")).Load()
	require.NoError(t, err)

	repo, err := CreateRepository(cfg)
	require.NoError(t, err)
	defer repo.Close()

	_, err = os.Stat(filepath.Join(tmpDir, "td.db"))
	assert.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, repo.SetItem(ctx, cfg.Storage.Key, "[]"))
	value, ok, err := repo.GetItem(ctx, cfg.Storage.Key)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "[]", value)
}

func TestCreateRepository_Memory(t *testing.T) {
	cfg := NewConfig()
	cfg.Storage.Filename = ":memory:"
	cfg.Storage.Dir = ""

	repo, err := CreateRepository(cfg)
	require.NoError(t, err)
	defer repo.Close()

	_, ok, err := repo.GetItem(context.Background(), cfg.Storage.Key)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCreateRepository_BadMySQLDSN(t *testing.T) {
	cfg := NewConfig()
	cfg.Storage.Driver = DriverMySQL
	cfg.Storage.DSN = "not a dsn"

	_, err := CreateRepository(cfg)
	assert.Error(t, err)
}

