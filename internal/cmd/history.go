package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"weft/internal/theme"
	"weft/internal/ui"
)

// HistoryCmd prints recorded task runs, newest first.
type HistoryCmd struct {
	Format string `help:"Output format" enum:"text,json" default:"text"`
	Limit  int    `help:"Maximum number of runs to show" default:"20"`
	Task   string `help:"Show only runs of this task"`
}

// runJSON is the JSON output shape for a recorded run.
type runJSON struct {
	Command     string    `json:"command"`
	DurationMs  int64     `json:"duration_ms"`
	ExecutionID string    `json:"execution_id"`
	ExitCode    int       `json:"exit_code"`
	ID          string    `json:"id"`
	StartedAt   time.Time `json:"started_at"`
	TaskName    string    `json:"task_name"`
	TimedOut    bool      `json:"timed_out"`
}

// Run prints the run history.
func (h *HistoryCmd) Run(cli *CLI) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	runs, err := cli.Container.Repository.List(ctx, h.Task, h.Limit)
	if err != nil {
		return err
	}

	if h.Format == "json" {
		out := make([]runJSON, 0, len(runs))
		for _, run := range runs {
			out = append(out, runJSON{
				Command:     run.Command,
				DurationMs:  run.DurationMs,
				ExecutionID: run.ExecutionID,
				ExitCode:    run.ExitCode,
				ID:          run.ID,
				StartedAt:   run.StartedAt,
				TaskName:    run.TaskName,
				TimedOut:    run.TimedOut,
			})
		}
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(out)
	}

	if len(runs) == 0 {
		fmt.Println(theme.StyleMuted.Render("no recorded runs"))
		return nil
	}

	for _, run := range runs {
		fmt.Println(ui.RenderRunLine(run))
	}
	fmt.Printf("\nTotal: %d runs\n", len(runs))

	return nil
}
