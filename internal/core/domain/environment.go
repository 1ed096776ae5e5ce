package domain

import (
	"os"
	"path/filepath"
	"slices"
)

// Environment describes where the environment for a spec lives in a cache root.
// It is a pure path computation; only Exists touches the filesystem.
type Environment struct {
	key       string
	cacheRoot string
	spec      EnvSpec
}

// NewEnvironment creates the descriptor for spec under cacheRoot.
func NewEnvironment(cacheRoot string, spec EnvSpec) Environment {
	return Environment{
		key:       GenerateEnvKey(spec),
		cacheRoot: filepath.Clean(cacheRoot),
		spec: EnvSpec{
			Interpreter:  spec.Interpreter,
			Requirements: slices.Clone(spec.Requirements),
		},
	}
}

// Key returns the environment key.
func (e Environment) Key() string { return e.key }

// Spec returns the spec the environment was derived from.
func (e Environment) Spec() EnvSpec { return e.spec }

// CacheRoot returns the cache root containing the environment.
func (e Environment) CacheRoot() string { return e.cacheRoot }

// Root returns <cache_root>/<key>.
func (e Environment) Root() string {
	return filepath.Join(e.cacheRoot, e.key)
}

// BinDir returns <root>/bin.
func (e Environment) BinDir() string {
	return filepath.Join(e.Root(), BinDirName)
}

// LockPath returns <cache_root>/<key>.lock.
func (e Environment) LockPath() string {
	return LockPathFor(e.cacheRoot, e.key)
}

// ManifestPath returns <root>/piprun.json.
func (e Environment) ManifestPath() string {
	return filepath.Join(e.Root(), ManifestFileName)
}

// Exists reports whether the environment root directory is present.
func (e Environment) Exists() bool {
	info, err := os.Stat(e.Root())
	return err == nil && info.IsDir()
}

// LockPathFor returns the lock file path for key under cacheRoot.
func LockPathFor(cacheRoot, key string) string {
	return filepath.Join(cacheRoot, key+LockFileSuffix)
}
