package ports

import (
	"context"

	"go.trai.ch/piprun/internal/core/domain"
)

// Executor hands control to a program inside an activated environment.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Handoff starts h.Program, resolved against the PATH in h.Env.
	//
	// When the process image is replaced, Handoff does not return on success.
	// When the program runs as a child, a non-zero exit is reported as *domain.ExitError.
	// Failure to start the program is reported as domain.ErrExecFailed.
	Handoff(ctx context.Context, h domain.Handoff) error
}
