package domain

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/zerr"
)

const (
	// CacheDirName is the name of the default cache directory inside the home directory.
	CacheDirName = ".piprun"

	// BinDirName is the name of the binaries directory inside an environment.
	BinDirName = "bin"

	// ManifestFileName is the name of the manifest written into a completed environment.
	ManifestFileName = "piprun.json"

	// LockFileSuffix is appended to an environment key to name its lock file.
	LockFileSuffix = ".lock"

	// ConfigDirName is the name of the directory inside the user config dir.
	ConfigDirName = "piprun"

	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "config.yaml"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600
)

// Environment variables read or written by piprun.
const (
	EnvVirtualEnv = "VIRTUAL_ENV"
	EnvPath       = "PATH"
	EnvPythonHome = "PYTHONHOME"
	EnvCacheDir   = "PIPRUN_CACHE_DIR"
	EnvConfigPath = "PIPRUN_CONFIG"
)

// DefaultCacheRoot returns ~/.piprun.
func DefaultCacheRoot() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Join(ErrCacheRootUnavailable, zerr.Wrap(err, "home directory unknown"))
	}
	return filepath.Join(home, CacheDirName), nil
}

// DefaultConfigPath returns <user config dir>/piprun/config.yaml.
func DefaultConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ConfigDirName, ConfigFileName), nil
}

// ExpandHome replaces a leading "~" with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Join(ErrCacheRootUnavailable, zerr.Wrap(err, "home directory unknown"))
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

// ResolveCacheRoot expands a leading "~" in path and makes it absolute.
// Activation exports paths below the cache root, so they must survive a change of directory.
func ResolveCacheRoot(path string) (string, error) {
	expanded, err := ExpandHome(path)
	if err != nil {
		return "", err
	}
	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", errors.Join(ErrCacheRootUnavailable, zerr.With(zerr.Wrap(err, "cannot make path absolute"), "path", path))
	}
	return abs, nil
}
