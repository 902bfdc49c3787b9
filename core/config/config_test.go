package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	dockerEnvFile = filepath.Join(t.TempDir(), "missing")

	t.Run("Defaults", func(t *testing.T) {
		cfg, err := LoadConfig(t.TempDir())
		require.NoError(t, err)

		assert.Equal(t, "http://localhost:9000", cfg.Storage.Endpoint)
		assert.Equal(t, "us-east-1", cfg.Storage.Region)
		assert.True(t, cfg.Storage.PathStyle)
		assert.Equal(t, 30, cfg.Storage.TimeoutSeconds)
		assert.Equal(t, 3600, cfg.Storage.PresignExpirySeconds)
		assert.Equal(t, "8080", cfg.Server.Port)
		assert.Equal(t, "info", cfg.Log.Level)
	})

	t.Run("Environment", func(t *testing.T) {
		t.Setenv("STORAGE_ENDPOINT", "https://s3.example.com")
		t.Setenv("STORAGE_ACCESS_KEY", "key")
		t.Setenv("STORAGE_USE_SSL", "true")
		t.Setenv("SERVER_PORT", "9090")

		cfg, err := LoadConfig(t.TempDir())
		require.NoError(t, err)

		assert.Equal(t, "https://s3.example.com", cfg.Storage.Endpoint)
		assert.Equal(t, "key", cfg.Storage.AccessKey)
		assert.True(t, cfg.Storage.UseSSL)
		assert.Equal(t, "9090", cfg.Server.Port)
	})

	t.Run("LegacyVariables", func(t *testing.T) {
		t.Setenv("ENDPOINT_URL_YOUR_BUCKET", "https://s3.us-west-004.backblazeb2.com")
		t.Setenv("KEY_ID_YOUR_ACCOUNT", "key-id")
		t.Setenv("APPLICATION_KEY_YOUR_ACCOUNT", "app-key")

		cfg, err := LoadConfig(t.TempDir())
		require.NoError(t, err)

		assert.Equal(t, "https://s3.us-west-004.backblazeb2.com", cfg.Storage.Endpoint)
		assert.Equal(t, "key-id", cfg.Storage.AccessKey)
		assert.Equal(t, "app-key", cfg.Storage.SecretKey)
	})

	t.Run("DotEnvFile", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("LOG_LEVEL=debug\n"), 0644))
		t.Cleanup(func() { os.Unsetenv("LOG_LEVEL") })

		cfg, err := LoadConfig(dir)
		require.NoError(t, err)
		assert.Equal(t, "debug", cfg.Log.Level)
	})
}
