package ui

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"weft/internal/domain"
)

// PickTasks prompts for a subset of the catalog with a multi-select form.
// Returns the selected task names in catalog order.
func PickTasks(tasks []domain.Task) ([]string, error) {
	options := make([]huh.Option[string], 0, len(tasks))
	for _, task := range tasks {
		label := task.Name
		if task.Description != "" {
			label = fmt.Sprintf("%s - %s", task.Name, task.Description)
		}
		options = append(options, huh.NewOption(label, task.Name))
	}

	var selected []string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Select tasks to run").
				Options(options...).
				Value(&selected),
		),
	)

	if err := form.Run(); err != nil {
		return nil, fmt.Errorf("task selection aborted: %w", err)
	}

	return selected, nil
}
