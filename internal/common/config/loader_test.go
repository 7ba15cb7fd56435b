package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.Mkdir(filepath.Join(dir, "configs"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "configs", "config.yaml"), []byte(content), 0o644))
}

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "activity-server", cfg.App.Name)
	assert.Equal(t, "0.0.0.0:8000", cfg.Server.Addr())
	assert.Equal(t, 8080, cfg.Server.MetricsPort)
	assert.Equal(t, "web/static", cfg.Server.StaticDir)
	assert.Equal(t, 15, cfg.Server.ShutdownTimeout)
	assert.False(t, cfg.Cache.Enabled)
	assert.Equal(t, "localhost:6379", cfg.Cache.Address)
	assert.Equal(t, 30, cfg.Cache.TTL)
	assert.False(t, cfg.Notifications.Enabled)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoad_FromFile(t *testing.T) {
	writeConfigFile(t, `
app:
  name: test-activities
server:
  port: 9000
seed:
  file: configs/activities.json
cache:
  enabled: true
  address: redis:6379
logging:
  level: debug
  format: json
`)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "test-activities", cfg.App.Name)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "configs/activities.json", cfg.Seed.File)
	assert.True(t, cfg.Cache.Enabled)
	assert.Equal(t, "redis:6379", cfg.Cache.Address)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoad_InvalidPort(t *testing.T) {
	writeConfigFile(t, `
server:
  port: 99999
`)

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server.port out of range")
}

func TestLoad_NotificationsRequireSender(t *testing.T) {
	writeConfigFile(t, `
notifications:
  enabled: true
`)

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "notifications.sender is required")
}
