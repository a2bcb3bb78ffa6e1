package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTaskfile(t *testing.T) {
	data := []byte(`tasks:
  - name: build
    description: Compile everything
    run: go build ./...
  - name: test-unit
    run: go test ./...
    dir: ./internal
    timeout: 2m
    env:
      CGO_ENABLED: "0"
`)

	tasks, err := ParseTaskfile(data)
	require.NoError(t, err)
	require.Len(t, tasks, 2)

	assert.Equal(t, "build", tasks[0].Name)
	assert.Equal(t, "Compile everything", tasks[0].Description)
	assert.Equal(t, "go build ./...", tasks[0].Run)
	assert.Zero(t, tasks[0].Timeout)

	assert.Equal(t, "test-unit", tasks[1].Name)
	assert.Equal(t, "./internal", tasks[1].Dir)
	assert.Equal(t, 2*time.Minute, tasks[1].Timeout)
	assert.Equal(t, "0", tasks[1].Env["CGO_ENABLED"])
}

func TestParseTaskfileErrors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{
			name:    "invalid yaml",
			data:    "tasks: [",
			wantErr: "failed to parse taskfile",
		},
		{
			name:    "no tasks",
			data:    "tasks: []",
			wantErr: "defines no tasks",
		},
		{
			name: "missing name",
			data: `tasks:
  - run: echo hi
`,
			wantErr: "has no name",
		},
		{
			name: "missing run",
			data: `tasks:
  - name: quiet
`,
			wantErr: `task "quiet" has no run command`,
		},
		{
			name: "duplicate names",
			data: `tasks:
  - name: twice
    run: echo one
  - name: twice
    run: echo two
`,
			wantErr: `duplicate task name "twice"`,
		},
		{
			name: "invalid timeout",
			data: `tasks:
  - name: slow
    run: sleep 1
    timeout: soon
`,
			wantErr: "invalid timeout",
		},
		{
			name: "negative timeout",
			data: `tasks:
  - name: slow
    run: sleep 1
    timeout: -5s
`,
			wantErr: "non-positive timeout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTaskfile([]byte(tt.data))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadTaskfile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "weft.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tasks:\n  - name: hi\n    run: echo hi\n"), 0644))

	tasks, err := LoadTaskfile(path)
	require.NoError(t, err)
	assert.Len(t, tasks, 1)

	_, err = LoadTaskfile(filepath.Join(dir, "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read taskfile")
}
