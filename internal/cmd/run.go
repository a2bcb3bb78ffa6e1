package cmd

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"weft/internal/domain"
	"weft/internal/logging"
	"weft/internal/services"
	"weft/internal/theme"
	"weft/internal/ui"
)

// RunCmd executes a selection of catalog tasks.
type RunCmd struct {
	Tasks []string `arg:"" optional:"" help:"Task names to run (default: all tasks)"`

	Grep        string        `help:"Run only tasks whose name contains this substring"`
	Interactive bool          `help:"Pick tasks with a multi-select prompt" short:"i"`
	Jobs        int           `help:"Number of tasks to run concurrently" short:"j" default:"1"`
	Timeout     time.Duration `help:"Override the per-task time budget (e.g. 30s)"`
	UI          bool          `help:"Show a live progress view while tasks run" name:"ui"`
}

// Run executes the selected tasks and reports a summary.
func (r *RunCmd) Run(cli *CLI) error {
	if cli.settings != nil {
		if r.Jobs == 1 && cli.settings.Jobs != nil && *cli.settings.Jobs > 1 {
			r.Jobs = *cli.settings.Jobs
		}
		if r.Timeout == 0 && cli.settings.TimeoutSecs != nil && *cli.settings.TimeoutSecs > 0 {
			r.Timeout = time.Duration(*cli.settings.TimeoutSecs) * time.Second
		}
	}

	catalog, err := cli.Container.Catalog()
	if err != nil {
		return err
	}

	names := r.Tasks
	if r.Interactive {
		picked, err := ui.PickTasks(catalog.Tasks())
		if err != nil {
			return err
		}
		names = picked
	}

	tasks, err := catalog.Select(names, r.Grep)
	if err != nil {
		return err
	}

	if len(tasks) == 0 {
		// Zero matches is a benign outcome, not an error
		fmt.Println(theme.StyleMuted.Render("no tasks matched"))
		return nil
	}

	logging.Logger.Info("Running tasks", "count", len(tasks), "jobs", r.Jobs)

	opts := services.RunOptions{Jobs: r.Jobs, Timeout: r.Timeout}

	var summary domain.RunSummary
	if r.UI {
		summary, err = r.runWithUI(cli, tasks, opts)
	} else {
		summary, err = cli.Container.Runner.Run(context.Background(), tasks, opts)
	}
	if err != nil {
		return err
	}

	if !r.UI {
		printSummary(summary)
	}

	if !summary.Ok() {
		return fmt.Errorf("%d of %d tasks failed", summary.Failed(), len(summary.Results))
	}
	return nil
}

// runWithUI runs the tasks behind a live bubbletea monitor.
func (r *RunCmd) runWithUI(cli *CLI, tasks []domain.Task, opts services.RunOptions) (domain.RunSummary, error) {
	names := make([]string, len(tasks))
	for i, task := range tasks {
		names[i] = task.Name
	}

	monitor := ui.NewMonitor(names)
	program := tea.NewProgram(monitor)

	opts.OnEvent = func(event services.TaskEvent) {
		program.Send(ui.TaskEventMsg(event))
	}

	var summary domain.RunSummary
	var runErr error
	go func() {
		summary, runErr = cli.Container.Runner.Run(context.Background(), tasks, opts)
		program.Send(ui.RunDoneMsg(summary))
	}()

	if _, err := program.Run(); err != nil {
		return summary, fmt.Errorf("failed to run progress view: %w", err)
	}
	return summary, runErr
}

// printSummary writes the per-task lines and the pass/fail footer.
func printSummary(summary domain.RunSummary) {
	for _, result := range summary.Results {
		fmt.Println(renderResultLine(result))
		if result.Failed() && result.Result.Stderr != "" {
			fmt.Print(theme.StyleMuted.Render(result.Result.Stderr))
			if result.Result.Stderr[len(result.Result.Stderr)-1] != '\n' {
				fmt.Println()
			}
		}
	}

	fmt.Printf("\n%d passed, %d failed in %s\n",
		summary.Passed(), summary.Failed(), summary.TotalDuration.Round(time.Millisecond))
}

// renderResultLine formats one finished task for plain output.
func renderResultLine(result domain.TaskResult) string {
	name := theme.StyleTitle.Render(result.Task.Name)
	duration := theme.StyleMuted.Render(fmt.Sprintf("(%s)", result.Result.Duration.Round(time.Millisecond)))

	switch {
	case result.Err != nil && domain.IsSpawnError(result.Err):
		return fmt.Sprintf("%s %s %v", theme.StyleFailed.Render("✗"), name, result.Err)
	case result.Result.TimedOut:
		return fmt.Sprintf("%s %s timed out %s", theme.StyleFailed.Render("✗"), name, duration)
	case result.Result.ExitCode != 0:
		return fmt.Sprintf("%s %s exit %d %s", theme.StyleFailed.Render("✗"), name, result.Result.ExitCode, duration)
	default:
		return fmt.Sprintf("%s %s %s", theme.StylePassed.Render("✓"), name, duration)
	}
}
