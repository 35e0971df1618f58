package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskdeck/internal/config"
)

func TestNew_Defaults(t *testing.T) {
	dir := t.TempDir()

	cfg, err := config.New(dir)
	require.NoError(t, err)

	assert.Equal(t, dir, cfg.Dir)
	assert.Equal(t, config.DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, filepath.Join(dir, "taskdeck.log"), cfg.LogFile)
}

func TestDefaultConfigDir_XDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	assert.Equal(t, filepath.Join("/tmp/xdg", "taskdeck"), config.DefaultConfigDir())
}

func TestLoad_NoFileUsesDefaults(t *testing.T) {
	chdir(t, t.TempDir())
	dir := t.TempDir()

	cfg, err := config.Load(dir)
	require.NoError(t, err)

	assert.Equal(t, config.DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, config.DefaultTimeout, cfg.Timeout)
}

func TestLoad_ConfigFile(t *testing.T) {
	chdir(t, t.TempDir())
	dir := t.TempDir()
	yaml := "base_url: http://localhost:8080/api/tasks\ntimeout: 3s\nlog_level: debug\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0600))

	cfg, err := config.Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080/api/tasks", cfg.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.Timeout)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	chdir(t, t.TempDir())
	dir := t.TempDir()
	yaml := "base_url: http://localhost:8080/api/tasks\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0600))
	t.Setenv("TASKDECK_BASE_URL", "http://example.test/tasks")

	cfg, err := config.Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "http://example.test/tasks", cfg.BaseURL)
}

func TestLoad_DotEnv(t *testing.T) {
	wd := t.TempDir()
	chdir(t, wd)
	require.NoError(t, os.WriteFile(filepath.Join(wd, ".env"), []byte("TASKDECK_TIMEOUT=7s\n"), 0600))
	// godotenv never overrides variables that are already set; make sure
	// the cleanup restores the environment after the test.
	t.Setenv("TASKDECK_TIMEOUT", "")
	require.NoError(t, os.Unsetenv("TASKDECK_TIMEOUT"))

	cfg, err := config.Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 7*time.Second, cfg.Timeout)
}

func TestLoad_InvalidBaseURL(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("TASKDECK_BASE_URL", "not a url")

	// Load leaves validation to the caller so a flag can still override.
	cfg, err := config.Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "not a url", cfg.BaseURL)
	assert.EqualError(t, cfg.Validate(), `invalid base URL: "not a url"`)
}

func TestLoad_TimeoutNeedsUnit(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("TASKDECK_TIMEOUT", "10")

	_, err := config.Load(t.TempDir())
	assert.EqualError(t, err, `invalid timeout: "10" (use a unit, e.g. 10s)`)
}

func TestLoad_TimeoutFromEnv(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("TASKDECK_TIMEOUT", "1m30s")

	cfg, err := config.Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, 90*time.Second, cfg.Timeout)
}

func TestValidate_Timeout(t *testing.T) {
	cfg, err := config.New(t.TempDir())
	require.NoError(t, err)

	cfg.Timeout = 0
	assert.EqualError(t, cfg.Validate(), "invalid timeout: 0s")
}

func TestEnsureDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "taskdeck")
	cfg, err := config.New(dir)
	require.NoError(t, err)

	require.NoError(t, cfg.EnsureDir())

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
