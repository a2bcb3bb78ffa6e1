package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"weft/internal/domain"
	"weft/internal/logging"
	"weft/internal/ports"
)

// TaskEvent notifies observers of task lifecycle transitions during a run.
// Events for different tasks may be emitted from different goroutines.
type TaskEvent struct {
	Result   *domain.TaskResult
	State    domain.TaskState
	TaskName string
}

// RunOptions configures one run of a task selection.
type RunOptions struct {
	// Jobs bounds how many tasks execute at once. Zero or negative means 1.
	Jobs int

	// Timeout overrides every task's own timeout when positive.
	Timeout time.Duration

	// OnEvent, when set, receives lifecycle events. It may be invoked
	// concurrently from worker goroutines.
	OnEvent func(TaskEvent)
}

// RunnerService executes selected tasks with bounded concurrency and
// records every invocation in the run history.
type RunnerService struct {
	executionID string
	history     ports.RunWriter
	runner      ports.ProcessRunner
}

// NewRunnerService creates a RunnerService. history may be nil when run
// recording is not wanted (the SSH monitor uses a read-only view).
func NewRunnerService(runner ports.ProcessRunner, history ports.RunWriter) *RunnerService {
	return &RunnerService{
		executionID: uuid.New().String(),
		history:     history,
		runner:      runner,
	}
}

// ExecutionID identifies all task runs recorded by this service instance.
func (s *RunnerService) ExecutionID() string {
	return s.executionID
}

// Run executes the given tasks. A failing task never cancels its siblings;
// every task gets exactly one result, in input order. The returned error
// is non-nil only when the context was cancelled before all tasks started.
func (s *RunnerService) Run(ctx context.Context, tasks []domain.Task, opts RunOptions) (domain.RunSummary, error) {
	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = 1
	}

	logging.Logger.Info("Starting task run",
		"tasks", len(tasks),
		"jobs", jobs,
		"execution_id", s.executionID)

	results := make([]domain.TaskResult, len(tasks))
	started := time.Now()

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for i, task := range tasks {
		g.Go(func() error {
			results[i] = s.runOne(ctx, task, opts)
			return nil
		})
	}

	// Workers stash failures in their result slot instead of returning
	// them, so one failing task never cancels its siblings
	_ = g.Wait()

	summary := domain.RunSummary{
		Results:       results,
		TotalDuration: time.Since(started),
	}

	logging.Logger.Info("Task run finished",
		"passed", summary.Passed(),
		"failed", summary.Failed(),
		"duration", summary.TotalDuration)

	return summary, nil
}

func (s *RunnerService) runOne(ctx context.Context, task domain.Task, opts RunOptions) domain.TaskResult {
	s.emit(opts, TaskEvent{TaskName: task.Name, State: domain.StateRunning})

	timeout := task.EffectiveTimeout()
	if opts.Timeout > 0 {
		timeout = opts.Timeout
	}

	inv := domain.Invocation{
		Command: task.Run,
		Dir:     task.Dir,
		Env:     task.Env,
		Timeout: timeout,
	}

	startedAt := time.Now().UTC()
	result, err := s.runner.Run(ctx, inv)

	taskResult := domain.TaskResult{Task: task, Err: err}
	if result != nil {
		taskResult.Result = *result
	}

	if err != nil {
		logging.Logger.Warn("Task did not complete",
			"task", task.Name,
			"error", err)
	} else {
		logging.Logger.Debug("Task completed",
			"task", task.Name,
			"exit_code", result.ExitCode,
			"duration", result.Duration)
	}

	s.record(ctx, task, startedAt, taskResult)

	state := domain.StatePassed
	if taskResult.Failed() {
		state = domain.StateFailed
	}
	s.emit(opts, TaskEvent{TaskName: task.Name, State: state, Result: &taskResult})

	return taskResult
}

// record persists the run outcome. History failures are logged, never
// allowed to fail the task itself.
func (s *RunnerService) record(ctx context.Context, task domain.Task, startedAt time.Time, tr domain.TaskResult) {
	if s.history == nil {
		return
	}

	// Spawn failures have no result to speak of; record the attempt with
	// a sentinel exit code so the history still shows it happened.
	exitCode := tr.Result.ExitCode
	if tr.Err != nil && !tr.Result.TimedOut {
		exitCode = -1
	}

	run := domain.TaskRun{
		Command:     task.Run,
		DurationMs:  tr.Result.Duration.Milliseconds(),
		ExecutionID: s.executionID,
		ExitCode:    exitCode,
		ID:          uuid.New().String(),
		StartedAt:   startedAt,
		TaskName:    task.Name,
		TimedOut:    tr.Result.TimedOut,
	}

	// Recording must survive the run context being cancelled
	recordCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()

	if err := s.history.Record(recordCtx, run); err != nil {
		logging.Logger.Warn("Failed to record task run", "task", task.Name, "error", err)
	}
}

func (s *RunnerService) emit(opts RunOptions, event TaskEvent) {
	if opts.OnEvent != nil {
		opts.OnEvent(event)
	}
}
