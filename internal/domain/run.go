package domain

import "time"

// TaskState tracks where a task is in its lifecycle during a run.
type TaskState string

const (
	StateFailed  TaskState = "failed"
	StatePassed  TaskState = "passed"
	StatePending TaskState = "pending"
	StateRunning TaskState = "running"
)

// TaskRun is one recorded invocation of a catalog task. Runs are persisted
// to the history store so past executions can be inspected later.
type TaskRun struct {
	Command     string
	DurationMs  int64
	ExecutionID string
	ExitCode    int
	ID          string
	StartedAt   time.Time
	TaskName    string
	TimedOut    bool
}

// Succeeded reports whether the recorded run exited cleanly.
func (r TaskRun) Succeeded() bool {
	return !r.TimedOut && r.ExitCode == 0
}

// TaskResult pairs a task with the outcome of running it once.
type TaskResult struct {
	Err    error
	Result InvocationResult
	Task   Task
}

// Failed reports whether the task should count against the run: either the
// invocation could not complete (spawn error, timeout) or the task exited
// non-zero.
func (r TaskResult) Failed() bool {
	return r.Err != nil || !r.Result.Success()
}

// RunSummary aggregates the results of running a set of tasks.
type RunSummary struct {
	Results       []TaskResult
	TotalDuration time.Duration
}

// Passed returns the number of tasks that exited cleanly.
func (s RunSummary) Passed() int {
	n := 0
	for _, r := range s.Results {
		if !r.Failed() {
			n++
		}
	}
	return n
}

// Failed returns the number of tasks that did not exit cleanly.
func (s RunSummary) Failed() int {
	return len(s.Results) - s.Passed()
}

// Ok reports whether every task in the run passed.
func (s RunSummary) Ok() bool {
	return s.Failed() == 0
}
