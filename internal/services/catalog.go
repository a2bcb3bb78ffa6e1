package services

import (
	"fmt"

	"weft/internal/config"
	"weft/internal/domain"
	"weft/internal/logging"
)

// CatalogService loads the task catalog and answers selection queries.
type CatalogService struct {
	tasks []domain.Task
}

// NewCatalogService loads the taskfile at path.
func NewCatalogService(path string) (*CatalogService, error) {
	tasks, err := config.LoadTaskfile(path)
	if err != nil {
		return nil, err
	}
	logging.Logger.Debug("Task catalog loaded", "path", path, "tasks", len(tasks))
	return &CatalogService{tasks: tasks}, nil
}

// NewCatalogServiceFromTasks wraps an already-built catalog.
func NewCatalogServiceFromTasks(tasks []domain.Task) *CatalogService {
	return &CatalogService{tasks: tasks}
}

// Tasks returns every catalog entry in taskfile order.
func (s *CatalogService) Tasks() []domain.Task {
	return s.tasks
}

// Get returns the task with the given name.
func (s *CatalogService) Get(name string) (domain.Task, error) {
	for _, task := range s.tasks {
		if task.Name == name {
			return task, nil
		}
	}
	return domain.Task{}, fmt.Errorf("%q: %w", name, domain.ErrTaskNotFound)
}

// Select resolves a run request to a task list. Explicit names are
// resolved first (every name must exist); the grep pattern then narrows
// the selection by substring match. With neither, the whole catalog is
// selected. A grep that matches nothing is not an error: the zero-match
// outcome is a benign result the caller reports and exits cleanly on.
func (s *CatalogService) Select(names []string, grep string) ([]domain.Task, error) {
	candidates := s.tasks
	if len(names) > 0 {
		candidates = make([]domain.Task, 0, len(names))
		for _, name := range names {
			task, err := s.Get(name)
			if err != nil {
				return nil, err
			}
			candidates = append(candidates, task)
		}
	}

	if grep == "" {
		return candidates, nil
	}

	selected := make([]domain.Task, 0, len(candidates))
	for _, task := range candidates {
		if task.Matches(grep) {
			selected = append(selected, task)
		}
	}
	return selected, nil
}
