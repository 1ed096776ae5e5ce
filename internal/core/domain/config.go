package domain

import "time"

// Default configuration values.
const (
	DefaultCreatorCommand = "virtualenv"
	DefaultInstaller      = "pip"
	DefaultInterpreter    = "python"
	DefaultLockTimeout    = 10 * time.Minute
	DefaultLogLevel       = LogLevelWarn
	DefaultLogFormat      = "text"
)

// Config holds the resolved piprun configuration.
type Config struct {
	// CacheRoot is the directory holding all environments.
	CacheRoot string
	// CreatorCommand builds an empty environment: <command> <args...> [--python=X] <root>.
	CreatorCommand string
	CreatorArgs    []string
	// Installer is the installer executable inside the environment's bin directory.
	Installer string
	// Interpreter is the program handed control inside the environment.
	Interpreter string
	// LockTimeout bounds the wait for another process building the same environment.
	LockTimeout time.Duration
	Handoff     HandoffMode
	LogLevel    LogLevel
	// LogFormat is "text" or "json".
	LogFormat string
}

// DefaultConfig returns the configuration used when no file is present.
// CacheRoot is left empty and resolved to ~/.piprun by the loader.
func DefaultConfig() Config {
	return Config{
		CreatorCommand: DefaultCreatorCommand,
		CreatorArgs:    []string{"--quiet"},
		Installer:      DefaultInstaller,
		Interpreter:    DefaultInterpreter,
		LockTimeout:    DefaultLockTimeout,
		Handoff:        HandoffExec,
		LogLevel:       DefaultLogLevel,
		LogFormat:      DefaultLogFormat,
	}
}
