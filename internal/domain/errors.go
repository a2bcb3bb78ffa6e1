package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrTaskNotFound is returned when a task name requested on the
	// command line does not exist in the catalog.
	ErrTaskNotFound = errors.New("task not found")

	// ErrInvocationTimeout is returned when a child process did not
	// terminate within its time budget. It is distinct from both spawn
	// failures and ordinary non-zero exits so callers can tell "tool is
	// slow or hung" from "tool is broken" from "environment is broken".
	ErrInvocationTimeout = errors.New("invocation timed out")
)

// SpawnError is an infrastructure fault: the child process could not be
// started at all (missing shell, permission failure, bad working
// directory). It never wraps a non-zero exit of a process that did run.
type SpawnError struct {
	Command string
	Err     error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("failed to spawn %q: %v", e.Command, e.Err)
}

func (e *SpawnError) Unwrap() error { return e.Err }

// IsSpawnError reports whether err is an infrastructure fault rather than
// a timeout or a task-level failure.
func IsSpawnError(err error) bool {
	var spawnErr *SpawnError
	return errors.As(err, &spawnErr)
}
