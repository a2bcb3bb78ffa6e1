package domain

import "time"

// Invocation describes one child-process execution request. It is built
// once, handed to a ProcessRunner, and never modified afterwards.
//
// Env holds explicit overrides that are merged over a copy of the parent
// environment when the child is started. The parent process environment is
// never mutated on behalf of an invocation, so concurrent invocations
// cannot race on global state.
type Invocation struct {
	Command string
	Dir     string
	Env     map[string]string
	Timeout time.Duration
}

// InvocationResult captures everything observable about a completed child
// process. It is produced exactly once per Invocation, after the process
// has terminated; stdout and stderr are complete buffers, never partial
// streams.
type InvocationResult struct {
	Duration time.Duration
	ExitCode int
	Stderr   string
	Stdout   string
	TimedOut bool
}

// Success reports whether the child exited cleanly.
func (r InvocationResult) Success() bool {
	return !r.TimedOut && r.ExitCode == 0
}
