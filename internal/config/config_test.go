package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "marvin.yaml")
	content := `
log_level: debug
max_seed_size: 128
http:
  port: 9090
cache:
  enabled: true
  backend: redis
  redis_addr: cache:6379
  ttl: 10m
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path, nil)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 128, cfg.MaxSeedSize)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.True(t, cfg.Cache.Enabled)
	assert.Equal(t, "redis", cfg.Cache.Backend)
	assert.Equal(t, "cache:6379", cfg.Cache.RedisAddr)
	assert.Equal(t, 10*time.Minute, cfg.Cache.TTL)
	assert.Equal(t, "marvin:fp:", cfg.Cache.Prefix, "unset keys keep defaults")
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "marvin.yaml")
	require.NoError(t, os.WriteFile(path, []byte("http:\n  port: 9090\n"), 0o644))

	env := []string{
		"HOME=/root",
		"MARVIN_HTTP_PORT=7070",
		"MARVIN_LOG_LEVEL=warn",
		"MARVIN_CACHE_ENABLED=true",
		"MARVIN_CACHE_REDIS_DB=3",
		"MARVIN_CACHE_TTL=90s",
		"MARVIN_CACHE_MAX_ENTRIES=500",
	}
	cfg, err := Load(path, env)
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.HTTP.Port)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.True(t, cfg.Cache.Enabled)
	assert.Equal(t, 3, cfg.Cache.RedisDB)
	assert.Equal(t, 90*time.Second, cfg.Cache.TTL)
	assert.Equal(t, 500, cfg.Cache.MaxEntries)
	assert.Equal(t, "memory", cfg.Cache.Backend)
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("http: [1, 2"), 0o644))
	_, err := Load(bad, nil)
	assert.Error(t, err)

	_, err = Load("", []string{"MARVIN_HTTP_PORT=lots"})
	assert.Error(t, err)

	_, err = Load("", []string{"MARVIN_CACHE_BACKEND=disk"})
	assert.ErrorContains(t, err, "disk")

	_, err = Load("", []string{"MARVIN_HTTP_PORT=70000"})
	assert.ErrorContains(t, err, "out of range")

	_, err = Load("", []string{"MARVIN_CACHE_MAX_ENTRIES=-1"})
	assert.ErrorContains(t, err, "max_entries")
}
