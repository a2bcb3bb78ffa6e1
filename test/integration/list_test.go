package integration_test

import (
	"testing"

	"weft/test/integration/harness"
)

func TestList(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		wantExitCode int
		validate     func(t *testing.T, result harness.CommandResult)
	}{
		{
			name:         "text output names every task",
			args:         []string{"list"},
			wantExitCode: 0,
			validate: func(t *testing.T, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "greet")
				harness.AssertStdoutContains(t, result, "shout")
				harness.AssertStdoutContains(t, result, "Total: 2 tasks")
			},
		},
		{
			name:         "grep narrows the listing",
			args:         []string{"list", "--grep", "greet"},
			wantExitCode: 0,
			validate: func(t *testing.T, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "greet")
				harness.AssertStdoutNotContains(t, result, "shout")
				harness.AssertStdoutContains(t, result, "Total: 1 tasks")
			},
		},
		{
			name:         "grep matching nothing reports it",
			args:         []string{"list", "--grep", "missing-task"},
			wantExitCode: 0,
			validate: func(t *testing.T, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "no tasks matched")
			},
		},
		{
			name:         "JSON output is parseable",
			args:         []string{"list", "--format", "json"},
			wantExitCode: 0,
			validate: func(t *testing.T, result harness.CommandResult) {
				var tasks []map[string]any
				harness.AssertValidJSON(t, result, &tasks)
				if len(tasks) != 2 {
					t.Errorf("Expected 2 tasks, got %d", len(tasks))
				}
				if len(tasks) > 0 && tasks[0]["name"] != "greet" {
					t.Errorf("Expected first task %q, got %v", "greet", tasks[0]["name"])
				}
			},
		},
		{
			name:         "JSON output for empty selection is an empty array",
			args:         []string{"list", "--grep", "missing-task", "--format", "json"},
			wantExitCode: 0,
			validate: func(t *testing.T, result harness.CommandResult) {
				var tasks []map[string]any
				harness.AssertValidJSON(t, result, &tasks)
				if len(tasks) != 0 {
					t.Errorf("Expected 0 tasks, got %d", len(tasks))
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := harness.NewTestEnvironment(t)

			result := harness.RunCommand(t, env, tt.args...)
			harness.AssertExitCode(t, result, tt.wantExitCode)
			if tt.validate != nil {
				tt.validate(t, result)
			}
		})
	}
}
