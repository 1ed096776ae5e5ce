package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/piprun/internal/adapters/config"
	"go.trai.ch/piprun/internal/core/domain"
)

func newLoader(env map[string]string) *config.Loader {
	return &config.Loader{Getenv: func(key string) string { return env[key] }}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), domain.PrivateFilePerm))
	return path
}

func TestLoader_Defaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))

	cfg, err := newLoader(nil).Load("")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, ".piprun"), cfg.CacheRoot)
	assert.Equal(t, "virtualenv", cfg.CreatorCommand)
	assert.Equal(t, []string{"--quiet"}, cfg.CreatorArgs)
	assert.Equal(t, "pip", cfg.Installer)
	assert.Equal(t, "python", cfg.Interpreter)
	assert.Equal(t, 10*time.Minute, cfg.LockTimeout)
	assert.Equal(t, domain.HandoffExec, cfg.Handoff)
	assert.Equal(t, domain.LogLevelWarn, cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestLoader_File(t *testing.T) {
	path := writeConfig(t, `
cache_dir: /var/cache/piprun
creator:
  command: /opt/bin/virtualenv
  args: ["--quiet", "--no-download"]
installer: pip3
interpreter: python3
lock_timeout: 30s
handoff: spawn
log:
  level: debug
  format: json
`)

	cfg, err := newLoader(nil).Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/var/cache/piprun", cfg.CacheRoot)
	assert.Equal(t, "/opt/bin/virtualenv", cfg.CreatorCommand)
	assert.Equal(t, []string{"--quiet", "--no-download"}, cfg.CreatorArgs)
	assert.Equal(t, "pip3", cfg.Installer)
	assert.Equal(t, "python3", cfg.Interpreter)
	assert.Equal(t, 30*time.Second, cfg.LockTimeout)
	assert.Equal(t, domain.HandoffSpawn, cfg.Handoff)
	assert.Equal(t, domain.LogLevelDebug, cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoader_EnvOverrides(t *testing.T) {
	path := writeConfig(t, "cache_dir: /from/file\n")

	cfg, err := newLoader(map[string]string{
		"PIPRUN_CONFIG":    path,
		"PIPRUN_CACHE_DIR": "/from/env",
	}).Load("")
	require.NoError(t, err)

	assert.Equal(t, "/from/env", cfg.CacheRoot)
}

func TestLoader_RelativeCacheDir(t *testing.T) {
	wd := t.TempDir()
	t.Chdir(wd)

	cfg, err := newLoader(map[string]string{
		"PIPRUN_CONFIG":    writeConfig(t, ""),
		"PIPRUN_CACHE_DIR": "cache",
	}).Load("")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(wd, "cache"), cfg.CacheRoot)
}

func TestLoader_ConfigFromEnv(t *testing.T) {
	path := writeConfig(t, "installer: pip3\n")

	cfg, err := newLoader(map[string]string{"PIPRUN_CONFIG": path}).Load("")
	require.NoError(t, err)

	assert.Equal(t, "pip3", cfg.Installer)
}

func TestLoader_ExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	path := writeConfig(t, "cache_dir: ~/envs\n")

	cfg, err := newLoader(nil).Load(path)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, "envs"), cfg.CacheRoot)
}

func TestLoader_MissingExplicitFile(t *testing.T) {
	_, err := newLoader(nil).Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, domain.ErrConfigReadFailed)
}

func TestLoader_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    error
	}{
		{"malformed yaml", "cache_dir: [", domain.ErrConfigParseFailed},
		{"bad lock timeout", "lock_timeout: soon\n", domain.ErrInvalidConfig},
		{"negative lock timeout", "lock_timeout: -1s\n", domain.ErrInvalidConfig},
		{"bad handoff", "handoff: fork\n", domain.ErrInvalidConfig},
		{"bad log level", "log:\n  level: loud\n", domain.ErrInvalidConfig},
		{"bad log format", "log:\n  format: xml\n", domain.ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)
			_, err := newLoader(map[string]string{"PIPRUN_CACHE_DIR": "/tmp/piprun"}).Load(path)
			require.ErrorIs(t, err, tt.want)
		})
	}
}
