package process

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weft/internal/domain"
)

func TestRunCapturesOutput(t *testing.T) {
	runner := NewShellRunner()

	result, err := runner.Run(context.Background(), domain.Invocation{
		Command: "echo out; echo err >&2",
	})

	require.NoError(t, err)
	assert.Equal(t, "out\n", result.Stdout)
	assert.Equal(t, "err\n", result.Stderr)
	assert.Equal(t, 0, result.ExitCode)
	assert.True(t, result.Success())
}

func TestRunReportsExitCode(t *testing.T) {
	runner := NewShellRunner()

	result, err := runner.Run(context.Background(), domain.Invocation{Command: "exit 7"})

	require.NoError(t, err, "a non-zero exit is a result, not an error")
	assert.Equal(t, 7, result.ExitCode)
	assert.False(t, result.Success())
}

func TestRunEnvOverridesAreScopedToChild(t *testing.T) {
	const key = "WEFT_TEST_PROBE"
	require.Empty(t, os.Getenv(key))

	runner := NewShellRunner()

	result, err := runner.Run(context.Background(), domain.Invocation{
		Command: "printf '%s' \"$WEFT_TEST_PROBE\"",
		Env:     map[string]string{key: "scoped-value"},
	})

	require.NoError(t, err)
	assert.Equal(t, "scoped-value", result.Stdout)

	// The override must not leak into the parent process
	assert.Empty(t, os.Getenv(key))
}

func TestRunInheritsParentEnv(t *testing.T) {
	t.Setenv("WEFT_TEST_INHERITED", "from-parent")

	runner := NewShellRunner()

	result, err := runner.Run(context.Background(), domain.Invocation{
		Command: "printf '%s' \"$WEFT_TEST_INHERITED\"",
	})

	require.NoError(t, err)
	assert.Equal(t, "from-parent", result.Stdout)
}

func TestRunWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "marker.txt"), []byte("x"), 0644))

	runner := NewShellRunner()

	result, err := runner.Run(context.Background(), domain.Invocation{
		Command: "ls",
		Dir:     dir,
	})

	require.NoError(t, err)
	assert.Contains(t, result.Stdout, "marker.txt")
	assert.Equal(t, 0, result.ExitCode)
}

func TestRunTimeoutKillsProcess(t *testing.T) {
	runner := NewShellRunner()

	started := time.Now()
	result, err := runner.Run(context.Background(), domain.Invocation{
		Command: "sleep 30",
		Timeout: 200 * time.Millisecond,
	})
	elapsed := time.Since(started)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvocationTimeout)
	assert.False(t, domain.IsSpawnError(err), "timeout must not be classified as a spawn failure")

	require.NotNil(t, result)
	assert.True(t, result.TimedOut)

	assert.Less(t, elapsed, 5*time.Second, "the child must be killed, not waited for")
}

func TestRunSpawnFailure(t *testing.T) {
	runner := NewShellRunner()

	_, err := runner.Run(context.Background(), domain.Invocation{
		Command: "echo hi",
		Dir:     "/definitely/not/a/directory",
	})

	require.Error(t, err)
	assert.True(t, domain.IsSpawnError(err))
	assert.NotErrorIs(t, err, domain.ErrInvocationTimeout)
}

func TestRunEmptyCommand(t *testing.T) {
	runner := NewShellRunner()

	_, err := runner.Run(context.Background(), domain.Invocation{})

	require.Error(t, err)
	assert.True(t, domain.IsSpawnError(err))
}

func TestMergeEnv(t *testing.T) {
	base := []string{"KEEP=1", "REPLACE=old"}

	merged := mergeEnv(base, map[string]string{"REPLACE": "new", "ADDED": "2"})

	assert.Contains(t, merged, "KEEP=1")
	assert.Contains(t, merged, "REPLACE=new")
	assert.Contains(t, merged, "ADDED=2")
	assert.NotContains(t, merged, "REPLACE=old")

	// No overrides returns a copy, not the same backing array
	copied := mergeEnv(base, nil)
	copied[0] = "KEEP=changed"
	assert.Equal(t, "KEEP=1", base[0])
}
