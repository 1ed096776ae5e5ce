package virtualenv

import (
	"context"
	"errors"
	"io"
	"os/exec"
	"path/filepath"

	"go.trai.ch/piprun/internal/core/domain"
	"go.trai.ch/piprun/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.RequirementInstaller = (*Installer)(nil)

// Installer implements ports.RequirementInstaller by running pip from the environment.
type Installer struct {
	name   string
	stderr io.Writer
}

// NewInstaller creates an Installer running the executable name from the environment's bin directory.
func NewInstaller(name string, opts ...Option) *Installer {
	o := newOptions(opts)
	return &Installer{
		name:   name,
		stderr: o.stderr,
	}
}

// Name returns the installer executable name.
func (i *Installer) Name() string {
	return i.name
}

// Install runs `<binDir>/<name> install <requirements...>` once for all requirements.
// Standard output is discarded and standard error passed through.
func (i *Installer) Install(ctx context.Context, binDir string, requirements []string) error {
	bin := filepath.Join(binDir, i.name)
	args := append([]string{"install"}, requirements...)

	//nolint:gosec // requirements are the user's own arguments
	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Stdout = io.Discard
	cmd.Stderr = i.stderr

	if err := cmd.Run(); err != nil {
		installErr := zerr.With(commandError(err, bin), "requirements", requirements)
		return errors.Join(domain.ErrInstallFailed, installErr)
	}
	return nil
}
