package harness

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// DefaultTaskfile is the catalog seeded into every test environment.
const DefaultTaskfile = `tasks:
  - name: greet
    description: Say hello
    run: echo hello
  - name: shout
    description: Say hello loudly
    run: echo HELLO
`

// TestEnvironment provides an isolated test environment with its own
// WEFT_HOME and working directory. The child environment is built by
// filtering every WEFT_* variable out of the parent environment, so test
// overrides are scoped to the one invocation and never leak between tests.
type TestEnvironment struct {
	TaskfilePath string
	WeftHome     string
	WorkDir      string

	extraEnv map[string]string
	tb       testing.TB
}

// NewTestEnvironment creates an isolated test environment with a temp
// WEFT_HOME and a working directory seeded with the default taskfile.
// Both directories are cleaned up when the test completes.
func NewTestEnvironment(tb testing.TB) *TestEnvironment {
	tb.Helper()

	env := &TestEnvironment{
		WeftHome: tb.TempDir(),
		WorkDir:  tb.TempDir(),
		extraEnv: make(map[string]string),
		tb:       tb,
	}
	env.TaskfilePath = filepath.Join(env.WorkDir, "weft.yaml")
	env.WriteTaskfile(DefaultTaskfile)

	return env
}

// WriteTaskfile replaces the environment's task catalog.
func (e *TestEnvironment) WriteTaskfile(content string) {
	e.tb.Helper()
	if err := os.WriteFile(e.TaskfilePath, []byte(content), 0644); err != nil {
		e.tb.Fatalf("Failed to write taskfile: %v", err)
	}
}

// Environ returns environment variables configured for test isolation.
// It filters out WEFT_* variables and sets:
//   - WEFT_HOME to the temp directory
//   - WEFT_DEBUG to empty string (disables debug logging)
//   - WEFT_TASKFILE to the per-test catalog
func (e *TestEnvironment) Environ() []string {
	env := make([]string, 0, len(os.Environ())+3+len(e.extraEnv))

	// Build a set of keys we want to override
	overrideKeys := make(map[string]bool)
	overrideKeys["WEFT_HOME"] = true
	overrideKeys["WEFT_DEBUG"] = true
	overrideKeys["WEFT_TASKFILE"] = true
	for k := range e.extraEnv {
		overrideKeys[k] = true
	}

	// Filter out existing WEFT_* variables and any we're overriding
	for _, kv := range os.Environ() {
		parts := strings.SplitN(kv, "=", 2)
		key := parts[0]
		if strings.HasPrefix(key, "WEFT_") || overrideKeys[key] {
			continue
		}
		env = append(env, kv)
	}

	// Add isolated environment variables
	env = append(env,
		"WEFT_HOME="+e.WeftHome,
		"WEFT_DEBUG=",
		"WEFT_TASKFILE="+e.TaskfilePath,
	)

	// Add extra environment variables
	for k, v := range e.extraEnv {
		env = append(env, k+"="+v)
	}

	return env
}

// DBPath returns the path to the test run-history database.
func (e *TestEnvironment) DBPath() string {
	return filepath.Join(e.WeftHome, "state.db")
}

// SetEnv sets an additional environment variable for this test environment.
func (e *TestEnvironment) SetEnv(key, value string) {
	if e.extraEnv == nil {
		e.extraEnv = make(map[string]string)
	}
	e.extraEnv[key] = value
}
