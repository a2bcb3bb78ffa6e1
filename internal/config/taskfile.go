package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"weft/internal/domain"
)

// DefaultTaskfileName is the catalog file weft looks for in the working
// directory when --taskfile / WEFT_TASKFILE is not given.
const DefaultTaskfileName = "weft.yaml"

// taskEntry is the YAML shape of a single catalog entry.
type taskEntry struct {
	Description string            `yaml:"description,omitempty"`
	Dir         string            `yaml:"dir,omitempty"`
	Env         map[string]string `yaml:"env,omitempty"`
	Name        string            `yaml:"name"`
	Run         string            `yaml:"run"`
	Timeout     string            `yaml:"timeout,omitempty"`
}

// taskfile is the YAML document root.
type taskfile struct {
	Tasks []taskEntry `yaml:"tasks"`
}

// LoadTaskfile reads and validates the task catalog at path.
func LoadTaskfile(path string) ([]domain.Task, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read taskfile: %w", err)
	}
	return ParseTaskfile(data)
}

// ParseTaskfile parses a task catalog from raw YAML.
func ParseTaskfile(data []byte) ([]domain.Task, error) {
	var tf taskfile
	if err := yaml.Unmarshal(data, &tf); err != nil {
		return nil, fmt.Errorf("failed to parse taskfile: %w", err)
	}

	if len(tf.Tasks) == 0 {
		return nil, fmt.Errorf("taskfile defines no tasks")
	}

	seen := make(map[string]bool, len(tf.Tasks))
	tasks := make([]domain.Task, 0, len(tf.Tasks))

	for i, entry := range tf.Tasks {
		if entry.Name == "" {
			return nil, fmt.Errorf("task #%d has no name", i+1)
		}
		if entry.Run == "" {
			return nil, fmt.Errorf("task %q has no run command", entry.Name)
		}
		if seen[entry.Name] {
			return nil, fmt.Errorf("duplicate task name %q", entry.Name)
		}
		seen[entry.Name] = true

		var timeout time.Duration
		if entry.Timeout != "" {
			parsed, err := time.ParseDuration(entry.Timeout)
			if err != nil {
				return nil, fmt.Errorf("task %q has invalid timeout %q: %w", entry.Name, entry.Timeout, err)
			}
			if parsed <= 0 {
				return nil, fmt.Errorf("task %q has non-positive timeout %q", entry.Name, entry.Timeout)
			}
			timeout = parsed
		}

		tasks = append(tasks, domain.Task{
			Description: entry.Description,
			Dir:         entry.Dir,
			Env:         entry.Env,
			Name:        entry.Name,
			Run:         entry.Run,
			Timeout:     timeout,
		})
	}

	return tasks, nil
}
