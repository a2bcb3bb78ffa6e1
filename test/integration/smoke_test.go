package integration_test

import (
	"testing"
	"time"

	"weft/test/integration/harness"
)

// brightBlack is the ANSI escape sequence for bright-black (gray)
// foreground text, the color the muted style renders in.
const brightBlack = "\x1b[90m"

// TestPipedOutputSuppressesColor verifies that when output goes to a pipe
// rather than a terminal, no ANSI color codes are emitted, even on the
// zero-results path of a filter that matches nothing. The harness strips
// WEFT_FORCE_COLOR from the child environment, so the behavior under test
// is the binary's own terminal detection.
func TestPipedOutputSuppressesColor(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	tests := []struct {
		name string
		args []string
	}{
		{
			name: "run with filter matching nothing",
			args: []string{"run", "--grep", "missing-task"},
		},
		{
			name: "list with filter matching nothing",
			args: []string{"list", "--grep", "missing-task"},
		},
		{
			name: "list full catalog",
			args: []string{"list"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := harness.RunCommandWithTimeout(t, env, 10*time.Second, tt.args...)

			// A launch failure is an infrastructure fault, not a color leak
			harness.RequireSuccess(t, result)

			harness.AssertStdoutNotContains(t, result, brightBlack)
		})
	}
}

// TestForcedColorEmitsAnsi is the negative control: with the color-forcing
// variable set for the child, the same zero-match invocation must contain
// the gray escape sequence, proving the piped-output assertion is not
// vacuously true.
func TestForcedColorEmitsAnsi(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	env.SetEnv("WEFT_FORCE_COLOR", "1")

	result := harness.RunCommandWithTimeout(t, env, 10*time.Second, "run", "--grep", "missing-task")

	harness.RequireSuccess(t, result)
	harness.AssertStdoutContains(t, result, brightBlack)
	harness.AssertStdoutContains(t, result, "no tasks matched")
}

// TestZeroMatchFilterExitsCleanly pins down the zero-results contract:
// a non-matching filter is a benign bounded exit, not an error.
func TestZeroMatchFilterExitsCleanly(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommandWithTimeout(t, env, 10*time.Second, "run", "--grep", "missing-task")

	harness.AssertExitCode(t, result, 0)
	harness.AssertStdoutContains(t, result, "no tasks matched")
	harness.AssertStdoutNotContains(t, result, "\x1b[")
}
