// Package shell provides the executor that hands control to the interpreter.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"go.trai.ch/piprun/internal/core/domain"
	"go.trai.ch/piprun/internal/core/ports"
	"go.trai.ch/zerr"
)

// interruptGrace is how long a spawned program may run after being interrupted.
const interruptGrace = 5 * time.Second

var _ ports.Executor = (*Executor)(nil)

// Executor implements ports.Executor by replacing the process image or spawning a child.
type Executor struct {
	logger ports.Logger
	mode   domain.HandoffMode

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	// execFn replaces the current process. It only returns on failure.
	execFn func(path string, argv, env []string) error
}

// NewExecutor creates a new Executor using the given hand-off mode.
func NewExecutor(logger ports.Logger, mode domain.HandoffMode) *Executor {
	return &Executor{
		logger: logger,
		mode:   mode,
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
		execFn: replaceProcess,
	}
}

// SetStdio replaces the standard streams used in spawn mode.
func (e *Executor) SetStdio(stdin io.Reader, stdout, stderr io.Writer) {
	e.stdin, e.stdout, e.stderr = stdin, stdout, stderr
}

// Handoff starts h.Program with h.Args and the environment table h.Env.
//
// The program is resolved against the PATH in h.Env, so an activated environment's
// interpreter shadows the system one. argv[0] is h.Program as given.
func (e *Executor) Handoff(ctx context.Context, h domain.Handoff) error {
	path, err := resolveProgram(h.Program, h.Env)
	if err != nil {
		return errors.Join(domain.ErrExecFailed, zerr.With(zerr.Wrap(err, "program not found"), "program", h.Program))
	}

	if e.mode == domain.HandoffSpawn {
		return e.spawn(ctx, path, h)
	}

	e.logger.Debug(fmt.Sprintf("exec %s", path))
	err = e.execFn(path, h.Argv(), h.Env)
	if err == nil {
		return nil
	}
	if errors.Is(err, errors.ErrUnsupported) {
		e.logger.Debug("process replacement unsupported, running program as a child")
		return e.spawn(ctx, path, h)
	}
	return errors.Join(domain.ErrExecFailed, zerr.With(zerr.Wrap(err, "exec failed"), "path", path))
}

func (e *Executor) spawn(ctx context.Context, path string, h domain.Handoff) error {
	e.logger.Debug(fmt.Sprintf("spawn %s", path))

	cmd := exec.CommandContext(ctx, path, h.Args...) //nolint:gosec // the user's own program
	cmd.Args[0] = h.Program
	cmd.Env = h.Env
	cmd.Stdin = e.stdin
	cmd.Stdout = e.stdout
	cmd.Stderr = e.stderr
	cmd.Cancel = func() error {
		return cmd.Process.Signal(os.Interrupt)
	}
	cmd.WaitDelay = interruptGrace

	if err := cmd.Start(); err != nil {
		return errors.Join(domain.ErrExecFailed, zerr.With(zerr.Wrap(err, "start failed"), "path", path))
	}

	err := cmd.Wait()
	if err == nil {
		return nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &domain.ExitError{Code: exitStatus(exitErr.ProcessState)}
	}
	return errors.Join(domain.ErrExecFailed, zerr.With(zerr.Wrap(err, "wait failed"), "path", path))
}

// resolveProgram finds the executable for name. Names containing a path
// separator are used as given, like execvp.
func resolveProgram(name string, env []string) (string, error) {
	if strings.ContainsRune(name, filepath.Separator) {
		if err := findExecutable(name); err != nil {
			return "", err
		}
		return name, nil
	}
	return lookPath(name, env)
}

// lookPath searches for an executable in the directories named by the PATH entry of env.
func lookPath(file string, env []string) (string, error) {
	path, _ := domain.Lookup(env, domain.EnvPath)
	if path == "" {
		return "", exec.ErrNotFound
	}

	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}
		candidate := filepath.Join(dir, file)
		if err := findExecutable(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", exec.ErrNotFound
}

func findExecutable(file string) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0o111 != 0 {
		return nil
	}
	return os.ErrPermission
}
