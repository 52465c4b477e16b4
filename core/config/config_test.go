package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 1024, cfg.Server.BodyLimitKB)
	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, 3306, cfg.Database.Port)
	assert.Equal(t, 30, cfg.Storage.TimeoutSeconds)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.Reconcile.StrictPositions)
	assert.True(t, cfg.Reconcile.Journal)
}

func TestLoadConfig_Environment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("RECONCILE_STRICT_POSITIONS", "true")
	t.Setenv("DATABASE_DRIVER", "sqlite")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.True(t, cfg.Reconcile.StrictPositions)
	assert.True(t, cfg.Reconcile.Options().StrictPositions)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("LOG_FORMAT=console\nRECONCILE_FAIL_FAST=true\n"), 0o644))
	t.Cleanup(func() {
		os.Unsetenv("LOG_FORMAT")
		os.Unsetenv("RECONCILE_FAIL_FAST")
	})

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "console", cfg.Log.Format)
	assert.True(t, cfg.Reconcile.FailFast)
}
