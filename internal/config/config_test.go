package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	t.Setenv("XDG_CACHE_HOME", filepath.Join(dir, "cache"))
	t.Setenv("CARDFAN_ASSET_DIR", "")
	t.Setenv("CARDFAN_LOG_LEVEL", "")
	return dir
}

func TestLoadCreatesDefault(t *testing.T) {
	dir := isolate(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "data", "cardfan", "cards"), cfg.AssetDir)
	assert.Equal(t, 5*time.Second, cfg.PreloadTimeout.Duration)
	assert.Equal(t, PolicySkip, cfg.OnLoadFailure)

	_, err = os.Stat(filepath.Join(dir, "config", "cardfan", "config.toml"))
	assert.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "cache", "cardfan"), GetCacheDir())
}

func TestLoadReadsFileAndEnv(t *testing.T) {
	isolate(t)

	path := GetConfigFilePath()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(`
preload_timeout = "250ms"
on_load_failure = "stall"
`), 0644))
	t.Setenv("CARDFAN_ASSET_DIR", "/srv/cards")
	t.Setenv("CARDFAN_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 250*time.Millisecond, cfg.PreloadTimeout.Duration)
	assert.Equal(t, PolicyStall, cfg.OnLoadFailure)
	assert.Equal(t, "/srv/cards", cfg.AssetDir)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 8, cfg.PreloadConcurrency)
}

func TestLoadRejectsBadPolicy(t *testing.T) {
	isolate(t)

	path := GetConfigFilePath()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(`on_load_failure = "retry"`), 0644))

	_, err := Load()
	assert.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg := Default()
	cfg.PreloadTimeout = Duration{time.Minute}
	require.NoError(t, Save(path, cfg))

	got, err := loadFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestLoadDotenv(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file is ignored", func(t *testing.T) {
		assert.NoError(t, loadDotenv(filepath.Join(dir, "absent.env")))
	})

	t.Run("variables are exported", func(t *testing.T) {
		path := filepath.Join(dir, "good.env")
		require.NoError(t, os.WriteFile(path, []byte("CARDFAN_DOTENV_CHECK=yes\n"), 0644))
		t.Cleanup(func() { os.Unsetenv("CARDFAN_DOTENV_CHECK") })

		require.NoError(t, loadDotenv(path))
		assert.Equal(t, "yes", os.Getenv("CARDFAN_DOTENV_CHECK"))
	})

	t.Run("malformed file is reported", func(t *testing.T) {
		path := filepath.Join(dir, "bad.env")
		require.NoError(t, os.WriteFile(path, []byte("CARDFAN_DOTENV_BAD=\"unterminated\n"), 0644))

		assert.Error(t, loadDotenv(path))
	})

	t.Run("unreadable file is reported", func(t *testing.T) {
		path := filepath.Join(dir, "dir.env")
		require.NoError(t, os.Mkdir(path, 0755))

		assert.Error(t, loadDotenv(path))
	})
}
