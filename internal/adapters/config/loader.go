// Package config provides the configuration loader for piprun.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/piprun/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	// Getenv reads environment overrides. Defaults to os.Getenv.
	Getenv func(string) string
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	return &Loader{Getenv: os.Getenv}
}

// Load reads the configuration from path.
//
// An empty path selects $PIPRUN_CONFIG, then <user config dir>/piprun/config.yaml.
// A missing file at the default location yields the defaults; a missing file that
// was named explicitly is an error.
func (l *Loader) Load(path string) (*domain.Config, error) {
	explicit := path != ""
	if !explicit {
		if env := l.getenv(domain.EnvConfigPath); env != "" {
			path, explicit = env, true
		} else if def, err := domain.DefaultConfigPath(); err == nil {
			path = def
		}
	}

	var file Configfile
	if path != "" {
		data, err := os.ReadFile(filepath.Clean(path))
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &file); err != nil {
				return nil, errors.Join(domain.ErrConfigParseFailed, zerr.With(zerr.Wrap(err, "invalid yaml"), "path", path))
			}
		case errors.Is(err, fs.ErrNotExist) && !explicit:
		default:
			return nil, errors.Join(domain.ErrConfigReadFailed, zerr.With(zerr.Wrap(err, "read failed"), "path", path))
		}
	}

	return l.resolve(&file)
}

func (l *Loader) resolve(file *Configfile) (*domain.Config, error) {
	cfg := domain.DefaultConfig()

	cfg.CacheRoot = file.CacheDir
	if env := l.getenv(domain.EnvCacheDir); env != "" {
		cfg.CacheRoot = env
	}
	if cfg.CacheRoot == "" {
		root, err := domain.DefaultCacheRoot()
		if err != nil {
			return nil, err
		}
		cfg.CacheRoot = root
	}
	root, err := domain.ResolveCacheRoot(cfg.CacheRoot)
	if err != nil {
		return nil, err
	}
	cfg.CacheRoot = root

	if file.Creator != nil {
		if file.Creator.Command != "" {
			cfg.CreatorCommand = file.Creator.Command
		}
		if file.Creator.Args != nil {
			cfg.CreatorArgs = file.Creator.Args
		}
	}
	if file.Installer != "" {
		cfg.Installer = file.Installer
	}
	if file.Interpreter != "" {
		cfg.Interpreter = file.Interpreter
	}

	if file.LockTimeout != "" {
		d, err := time.ParseDuration(file.LockTimeout)
		if err != nil || d <= 0 {
			return nil, invalid("lock_timeout", file.LockTimeout)
		}
		cfg.LockTimeout = d
	}

	if file.Handoff != "" {
		mode := domain.HandoffMode(file.Handoff)
		if !mode.Valid() {
			return nil, invalid("handoff", file.Handoff)
		}
		cfg.Handoff = mode
	}

	if file.Log != nil {
		if file.Log.Level != "" {
			level, ok := domain.ParseLogLevel(file.Log.Level)
			if !ok {
				return nil, invalid("log.level", file.Log.Level)
			}
			cfg.LogLevel = level
		}
		switch file.Log.Format {
		case "":
		case "text", "json":
			cfg.LogFormat = file.Log.Format
		default:
			return nil, invalid("log.format", file.Log.Format)
		}
	}

	return &cfg, nil
}

func (l *Loader) getenv(key string) string {
	if l.Getenv == nil {
		return os.Getenv(key)
	}
	return l.Getenv(key)
}

func invalid(field, value string) error {
	return errors.Join(domain.ErrInvalidConfig, zerr.With(zerr.With(zerr.New("unsupported value"), "field", field), "value", value))
}
