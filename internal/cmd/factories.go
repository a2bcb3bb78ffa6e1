package cmd

import (
	"fmt"

	"weft/internal/adapters/process"
	"weft/internal/adapters/storage"
	"weft/internal/config"
	"weft/internal/ports"
	"weft/internal/services"
)

// Container wires adapters and services for the commands.
type Container struct {
	Repository ports.RunRepository
	Runner     *services.RunnerService

	catalog      *services.CatalogService
	taskfilePath string
}

// NewContainer creates the container. The task catalog is loaded lazily so
// commands that never touch it (history, serve) work without a taskfile.
func NewContainer(taskfilePath string) (*Container, error) {
	dbPath, err := config.DBPath()
	if err != nil {
		return nil, err
	}

	repository, err := storage.NewSQLiteRepository(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open run history: %w", err)
	}

	runner := services.NewRunnerService(process.NewShellRunner(), repository)

	return &Container{
		Repository:   repository,
		Runner:       runner,
		taskfilePath: taskfilePath,
	}, nil
}

// Catalog loads (once) and returns the task catalog service.
func (c *Container) Catalog() (*services.CatalogService, error) {
	if c.catalog == nil {
		catalog, err := services.NewCatalogService(c.taskfilePath)
		if err != nil {
			return nil, err
		}
		c.catalog = catalog
	}
	return c.catalog, nil
}

// Close closes container resources.
func (c *Container) Close() error {
	if c.Repository != nil {
		return c.Repository.Close()
	}
	return nil
}
