package domain

import (
	"strings"
	"time"
)

// DefaultTaskTimeout bounds a task invocation when the taskfile does not
// declare its own timeout.
const DefaultTaskTimeout = 10 * time.Minute

// Task is a single named entry of the task catalog: a shell command string
// plus the execution context it runs with.
type Task struct {
	Description string
	Dir         string
	Env         map[string]string
	Name        string
	Run         string
	Timeout     time.Duration
}

// EffectiveTimeout returns the task timeout, falling back to the default
// when the taskfile leaves it unset.
func (t Task) EffectiveTimeout() time.Duration {
	if t.Timeout > 0 {
		return t.Timeout
	}
	return DefaultTaskTimeout
}

// Matches reports whether the task name contains the given substring.
// An empty pattern matches every task.
func (t Task) Matches(pattern string) bool {
	if pattern == "" {
		return true
	}
	return strings.Contains(t.Name, pattern)
}
