// Package ports defines the core interfaces for the application.
package ports

import (
	"context"
)

// EnvironmentCreator creates empty isolated environments.
//
//go:generate go run go.uber.org/mock/mockgen -source=environment.go -destination=mocks/mock_environment.go -package=mocks
type EnvironmentCreator interface {
	// Create builds an empty environment rooted at root.
	//
	// An empty interpreter selects the creator's default interpreter.
	// The creator's standard output is discarded; its standard error is passed through.
	//
	// Returns an error wrapping domain.ErrBuildFailed if the creator fails.
	Create(ctx context.Context, root, interpreter string) error
}

// RequirementInstaller installs requirements into an existing environment.
type RequirementInstaller interface {
	// Install installs all requirements in a single installer invocation, using the
	// installer found in binDir.
	//
	// Returns an error wrapping domain.ErrInstallFailed if the installer fails.
	Install(ctx context.Context, binDir string, requirements []string) error

	// Name returns the installer executable name.
	Name() string
}
