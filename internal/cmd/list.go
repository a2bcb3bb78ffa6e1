package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"weft/internal/theme"
)

// ListCmd prints the task catalog.
type ListCmd struct {
	Format string `help:"Output format" enum:"text,json" default:"text"`
	Grep   string `help:"Show only tasks whose name contains this substring"`
}

// taskJSON is the JSON output shape for a catalog entry.
type taskJSON struct {
	Description string `json:"description,omitempty"`
	Name        string `json:"name"`
	Run         string `json:"run"`
	Timeout     string `json:"timeout,omitempty"`
}

// Run prints the catalog tasks, optionally narrowed by --grep.
func (l *ListCmd) Run(cli *CLI) error {
	catalog, err := cli.Container.Catalog()
	if err != nil {
		return err
	}

	tasks, err := catalog.Select(nil, l.Grep)
	if err != nil {
		return err
	}

	if l.Format == "json" {
		out := make([]taskJSON, 0, len(tasks))
		for _, task := range tasks {
			entry := taskJSON{
				Description: task.Description,
				Name:        task.Name,
				Run:         task.Run,
			}
			if task.Timeout > 0 {
				entry.Timeout = task.Timeout.String()
			}
			out = append(out, entry)
		}
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(out)
	}

	if len(tasks) == 0 {
		fmt.Println(theme.StyleMuted.Render("no tasks matched"))
		return nil
	}

	for _, task := range tasks {
		line := theme.StyleTitle.Render(task.Name)
		if task.Description != "" {
			line += " " + task.Description
		}
		fmt.Println(line)
		fmt.Println("  " + theme.StyleMuted.Render(task.Run))
	}
	fmt.Printf("\nTotal: %d tasks\n", len(tasks))

	return nil
}
