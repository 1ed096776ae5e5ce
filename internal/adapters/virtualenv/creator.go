// Package virtualenv drives the external environment-builder and installer tools.
package virtualenv

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"slices"

	"go.trai.ch/piprun/internal/core/domain"
	"go.trai.ch/piprun/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.EnvironmentCreator = (*Creator)(nil)

// Option configures a Creator or an Installer.
type Option func(*options)

type options struct {
	stderr io.Writer
}

// WithStderr sends the tool's standard error to w instead of os.Stderr.
func WithStderr(w io.Writer) Option {
	return func(o *options) {
		o.stderr = w
	}
}

func newOptions(opts []Option) options {
	o := options{stderr: os.Stderr}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Creator implements ports.EnvironmentCreator by running virtualenv.
type Creator struct {
	command string
	args    []string
	stderr  io.Writer
}

// NewCreator creates a Creator running command with the given leading arguments.
func NewCreator(command string, args []string, opts ...Option) *Creator {
	o := newOptions(opts)
	return &Creator{
		command: command,
		args:    slices.Clone(args),
		stderr:  o.stderr,
	}
}

// Create runs `<command> <args...> [--python=<interpreter>] <root>`.
// Standard output is discarded and standard error passed through.
func (c *Creator) Create(ctx context.Context, root, interpreter string) error {
	argv := slices.Clone(c.args)
	if interpreter != "" {
		argv = append(argv, "--python="+interpreter)
	}
	argv = append(argv, root)

	//nolint:gosec // command comes from the user's configuration
	cmd := exec.CommandContext(ctx, c.command, argv...)
	cmd.Stdout = io.Discard
	cmd.Stderr = c.stderr

	if err := cmd.Run(); err != nil {
		buildErr := zerr.With(commandError(err, c.command), "root", root)
		if interpreter != "" {
			buildErr = zerr.With(buildErr, "interpreter", interpreter)
		}
		return errors.Join(domain.ErrBuildFailed, buildErr)
	}
	return nil
}

func commandError(err error, command string) error {
	exitCode := -1
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		exitCode = exitErr.ExitCode()
	}
	cmdErr := zerr.Wrap(err, "command failed")
	cmdErr = zerr.With(cmdErr, "command", command)
	return zerr.With(cmdErr, "exit_code", exitCode)
}
