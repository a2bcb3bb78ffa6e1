package ports

import (
	"context"

	"weft/internal/domain"
)

// RunReader reads recorded task runs.
type RunReader interface {
	// List returns runs newest-first. taskName filters to a single task
	// when non-empty; limit caps the result when positive.
	List(ctx context.Context, taskName string, limit int) ([]domain.TaskRun, error)
}

// RunWriter records task runs.
type RunWriter interface {
	Record(ctx context.Context, run domain.TaskRun) error
}

// RunRepository is the composite interface for the run-history store.
type RunRepository interface {
	RunReader
	RunWriter
	Close() error
}
