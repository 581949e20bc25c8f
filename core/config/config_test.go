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
	assert.Equal(t, "minio", cfg.Storage.Driver)
	assert.Equal(t, "objects", cfg.Storage.Bucket)
	assert.Equal(t, 1, cfg.Storage.PutAttempts)
	assert.Equal(t, 1, cfg.Storage.GetAttempts)
	assert.Equal(t, 10, cfg.Storage.PresignAttempts)
	assert.Equal(t, 1000, cfg.Storage.RetryDelayMillis)
	assert.True(t, cfg.Storage.PathStyle)
	assert.False(t, cfg.Database.Enabled)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("STORAGE_BUCKET", "knowledge")
	t.Setenv("STORAGE_PREFIX_PATH", "tenant-a")
	t.Setenv("STORAGE_GET_ATTEMPTS", "3")
	t.Setenv("STORAGE_USE_SSL", "true")
	t.Setenv("SERVER_PORT", "9090")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "knowledge", cfg.Storage.Bucket)
	assert.Equal(t, "tenant-a", cfg.Storage.PrefixPath)
	assert.Equal(t, 3, cfg.Storage.GetAttempts)
	assert.True(t, cfg.Storage.UseSSL)
	assert.Equal(t, "9090", cfg.Server.Port)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	// registers cleanup so the value godotenv sets is restored afterwards
	t.Setenv("STORAGE_REGION", "placeholder")

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("STORAGE_REGION=cn-beijing\n"), 0o600))

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "cn-beijing", cfg.Storage.Region)
}

func TestLoadConfig_Invalid(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "azure")

	cfg, err := LoadConfig(t.TempDir())
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestValidate_DatabaseDriver(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	cfg.Database.Driver = "postgres"
	assert.Error(t, cfg.Validate())
}
