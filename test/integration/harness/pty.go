//go:build unix

package harness

import (
	"context"
	"io"
	"os/exec"
	"testing"
	"time"

	"github.com/creack/pty"
)

// RunCommandPTY executes the weft binary with its output attached to a
// pseudo-terminal, so the binary's terminal detection sees a TTY. Stdout
// and stderr are interleaved in Stdout (a PTY has a single stream).
func RunCommandPTY(tb testing.TB, env *TestEnvironment, args ...string) CommandResult {
	tb.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, binaryPath, args...)
	cmd.Dir = env.WorkDir
	cmd.Env = append(env.Environ(), "TERM=xterm-256color")

	ptmx, err := pty.Start(cmd)
	if err != nil {
		tb.Fatalf("Failed to start command on PTY: %v", err)
	}
	defer ptmx.Close()

	// Reading until EOF doubles as waiting for output to drain; the
	// read side errors once the child closes the terminal.
	output := make(chan []byte, 1)
	go func() {
		data, _ := io.ReadAll(ptmx)
		output <- data
	}()

	err = cmd.Wait()

	var captured []byte
	select {
	case captured = <-output:
	case <-time.After(5 * time.Second):
		tb.Log("Timed out draining PTY output")
	}

	exitCode := 0
	if exitErr, ok := err.(*exec.ExitError); ok {
		exitCode = exitErr.ExitCode()
	} else if err != nil {
		tb.Logf("Command execution error: %v", err)
		exitCode = -1
	}

	return CommandResult{
		ExitCode: exitCode,
		Stdout:   string(captured),
	}
}
