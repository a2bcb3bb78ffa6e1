package ports

import (
	"context"

	"weft/internal/domain"
)

// ProcessRunner executes a single child process and returns its captured
// result. Implementations must wait for the process to terminate before
// returning: callers rely on stdout/stderr being complete buffers.
//
// Error contract:
//   - *domain.SpawnError when the process could not be started
//   - domain.ErrInvocationTimeout (wrapped) when the time budget expired;
//     the child process group must be killed, not leaked, and the result
//     carries whatever output was captured with TimedOut set
//   - nil for any process that ran to completion, even with a non-zero
//     exit code (the exit code is part of the result, not an error)
type ProcessRunner interface {
	Run(ctx context.Context, inv domain.Invocation) (*domain.InvocationResult, error)
}
