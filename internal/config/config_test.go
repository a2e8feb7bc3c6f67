package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func chTempDir(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(origDir) })
}

func TestLoadDefaults(t *testing.T) {
	// Change to temp dir so no config.yaml is found
	chTempDir(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 15, cfg.Fetch.TimeoutSecs)
	assert.InDelta(t, 1.0, cfg.Fetch.MinDelaySecs, 0.001)
	assert.InDelta(t, 3.0, cfg.Fetch.MaxDelaySecs, 0.001)
	assert.InDelta(t, 1.0, cfg.Fetch.RequestsPerSecond, 0.001)
	assert.Equal(t, 2, cfg.Browser.SettleDelaySecs)
	assert.Equal(t, 15, cfg.Browser.SelectorTimeoutSecs)
	assert.True(t, cfg.Cache.Enabled)
	assert.Equal(t, "page_cache.db", cfg.Cache.Path)
	assert.Equal(t, 24*time.Hour, cfg.Cache.TTL())
	assert.Equal(t, ".", cfg.Output.Dir)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadFromYAML(t *testing.T) {
	chTempDir(t)

	yaml := `
fetch:
  timeout_secs: 30
cache:
  enabled: false
log:
  level: debug
  format: console
server:
  port: 9090
`
	dir, _ := os.Getwd()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 30, cfg.Fetch.TimeoutSecs)
	assert.False(t, cfg.Cache.Enabled)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, 9090, cfg.Server.Port)
	// Defaults still apply for unset values
	assert.Equal(t, 24, cfg.Cache.TTLHours)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	chTempDir(t)

	yaml := `
log:
  level: debug
`
	dir, _ := os.Getwd()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0644))

	t.Setenv("FACULTY_LOG_LEVEL", "warn")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadEnvOverridesDefaults(t *testing.T) {
	chTempDir(t)

	t.Setenv("FACULTY_SERVER_PORT", "3000")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 3000, cfg.Server.Port)
}

func TestValidateRun(t *testing.T) {
	chTempDir(t)
	cfg, err := Load()
	require.NoError(t, err)

	assert.NoError(t, cfg.Validate("run"))

	cfg.Fetch.TimeoutSecs = 0
	err = cfg.Validate("run")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "fetch.timeout_secs")

	cfg.Fetch.TimeoutSecs = 15
	cfg.Fetch.MaxDelaySecs = 0.5
	err = cfg.Validate("run")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "delay range")
}

func TestValidateServe(t *testing.T) {
	chTempDir(t)
	cfg, err := Load()
	require.NoError(t, err)

	assert.NoError(t, cfg.Validate("serve"))

	cfg.Server.Port = 0
	err = cfg.Validate("serve")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "server.port must be > 0")
}

func TestValidateUnknownMode(t *testing.T) {
	chTempDir(t)
	cfg, err := Load()
	require.NoError(t, err)

	err = cfg.Validate("unknown")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown mode")
}

func TestInitLoggerConsole(t *testing.T) {
	err := InitLogger(LogConfig{Level: "debug", Format: "console"})
	require.NoError(t, err)
	assert.NotNil(t, zap.L())
}

func TestInitLoggerJSON(t *testing.T) {
	err := InitLogger(LogConfig{Level: "info", Format: "json"})
	require.NoError(t, err)
	assert.NotNil(t, zap.L())
}

func TestInitLoggerInvalidLevel(t *testing.T) {
	err := InitLogger(LogConfig{Level: "invalid", Format: "json"})
	assert.Error(t, err)
}
