package domain

import (
	"fmt"

	"go.trai.ch/zerr"
)

var (
	// ErrUsage is returned when the argument list is malformed.
	ErrUsage = zerr.New("argument list must include '--'")

	// ErrBuildFailed is returned when the environment-builder tool fails or leaves an incomplete environment.
	ErrBuildFailed = zerr.New("failed to create environment")

	// ErrInstallFailed is returned when the installer fails to install the requirements.
	ErrInstallFailed = zerr.New("failed to install requirements")

	// ErrLockTimeout is returned when the environment lock cannot be acquired in time.
	ErrLockTimeout = zerr.New("timed out waiting for environment lock")

	// ErrLockFailed is returned when the environment lock cannot be acquired for reasons other than a timeout.
	ErrLockFailed = zerr.New("failed to acquire environment lock")

	// ErrExecFailed is returned when control cannot be handed off to the interpreter.
	ErrExecFailed = zerr.New("failed to execute interpreter")

	// ErrCacheRootUnavailable is returned when the cache root cannot be determined or created.
	ErrCacheRootUnavailable = zerr.New("cache root is unavailable")

	// ErrStaleEnvironment is returned when a partial environment cannot be removed before a rebuild.
	ErrStaleEnvironment = zerr.New("failed to remove incomplete environment")

	// ErrManifestWriteFailed is returned when the environment manifest cannot be written.
	ErrManifestWriteFailed = zerr.New("failed to write environment manifest")

	// ErrManifestReadFailed is returned when the environment manifest cannot be read.
	ErrManifestReadFailed = zerr.New("failed to read environment manifest")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidConfig is returned when the configuration holds an invalid value.
	ErrInvalidConfig = zerr.New("invalid configuration")

	// ErrInvalidEnvKey is returned when a value passed as an environment key is not one.
	ErrInvalidEnvKey = zerr.New("invalid environment key")

	// ErrCleanFailed is returned when an environment cannot be removed.
	ErrCleanFailed = zerr.New("failed to remove environment")
)

// ExitError reports that a program run in a child process exited unsuccessfully.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("program exited with status %d", e.Code)
}
