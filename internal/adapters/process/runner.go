package process

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"syscall"
	"time"

	"golang.org/x/sys/unix"

	"weft/internal/domain"
	"weft/internal/logging"
	"weft/internal/ports"
)

// ShellRunner executes invocations through "sh -c" with captured output.
type ShellRunner struct{}

// Compile-time interface verification
var _ ports.ProcessRunner = (*ShellRunner)(nil)

// NewShellRunner creates a new ShellRunner.
func NewShellRunner() *ShellRunner {
	return &ShellRunner{}
}

// Run starts the invocation's command and waits for it to terminate,
// returning the complete captured output. The child environment is built
// by merging the invocation's overrides over a copy of this process's
// environment; the parent environment is never touched, so concurrent
// invocations cannot interfere with each other.
func (r *ShellRunner) Run(ctx context.Context, inv domain.Invocation) (*domain.InvocationResult, error) {
	if inv.Command == "" {
		return nil, &domain.SpawnError{Command: inv.Command, Err: errors.New("empty command")}
	}

	timeout := inv.Timeout
	if timeout <= 0 {
		timeout = domain.DefaultTaskTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.Command("sh", "-c", inv.Command)
	cmd.Dir = inv.Dir
	cmd.Env = mergeEnv(os.Environ(), inv.Env)

	// Own process group so the whole child tree can be killed on timeout
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	started := time.Now()
	if err := cmd.Start(); err != nil {
		return nil, &domain.SpawnError{Command: inv.Command, Err: err}
	}

	done := make(chan error, 1)
	go func() {
		done <- cmd.Wait()
	}()

	var waitErr error
	select {
	case <-ctx.Done():
		// Kill the process group (negative PID) so grandchildren die too
		if cmd.Process != nil {
			if err := unix.Kill(-cmd.Process.Pid, unix.SIGKILL); err != nil {
				logging.Logger.Warn("Failed to kill process group", "error", err, "pid", cmd.Process.Pid)
			}
		}
		<-done // Reap the child before reporting

		result := &domain.InvocationResult{
			Duration: time.Since(started),
			ExitCode: -1,
			Stderr:   stderr.String(),
			Stdout:   stdout.String(),
		}
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			result.TimedOut = true
			return result, fmt.Errorf("command %q after %s: %w", inv.Command, timeout, domain.ErrInvocationTimeout)
		}
		return result, fmt.Errorf("command %q interrupted: %w", inv.Command, ctx.Err())
	case waitErr = <-done:
	}

	exitCode := 0
	if waitErr != nil {
		var exitErr *exec.ExitError
		if errors.As(waitErr, &exitErr) {
			exitCode = exitErr.ExitCode()
		} else {
			// Wait failed for a reason other than a non-zero exit
			return nil, &domain.SpawnError{Command: inv.Command, Err: waitErr}
		}
	}

	return &domain.InvocationResult{
		Duration: time.Since(started),
		ExitCode: exitCode,
		Stderr:   stderr.String(),
		Stdout:   stdout.String(),
	}, nil
}

// mergeEnv overlays explicit overrides on a copy of the base environment.
// Base entries with an overridden key are dropped rather than duplicated.
func mergeEnv(base []string, overrides map[string]string) []string {
	if len(overrides) == 0 {
		return append([]string(nil), base...)
	}

	env := make([]string, 0, len(base)+len(overrides))
	for _, kv := range base {
		key, _, ok := strings.Cut(kv, "=")
		if ok {
			if _, overridden := overrides[key]; overridden {
				continue
			}
		}
		env = append(env, kv)
	}
	for key, value := range overrides {
		env = append(env, key+"="+value)
	}

	return env
}
