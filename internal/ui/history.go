package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"weft/internal/domain"
	"weft/internal/ports"
	"weft/internal/theme"
)

const (
	durationPrecision = time.Millisecond
	historyLimit      = 30
	refreshInterval   = 2 * time.Second
)

type historyTickMsg time.Time

type historyLoadedMsg struct {
	err  error
	runs []domain.TaskRun
}

// History is a read-only, periodically refreshing view of recorded runs.
// It backs the SSH monitor sessions.
type History struct {
	err    error
	height int
	reader ports.RunReader
	runs   []domain.TaskRun
}

// NewHistory creates a history view over the given reader.
func NewHistory(reader ports.RunReader) *History {
	return &History{reader: reader}
}

func (m *History) Init() tea.Cmd {
	return m.load
}

func (m *History) load() tea.Msg {
	ctx, cancel := context.WithTimeout(context.Background(), refreshInterval)
	defer cancel()

	runs, err := m.reader.List(ctx, "", historyLimit)
	return historyLoadedMsg{runs: runs, err: err}
}

func (m *History) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" || msg.String() == "q" {
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.height = msg.Height

	case historyLoadedMsg:
		m.err = msg.err
		if msg.err == nil {
			m.runs = msg.runs
		}
		return m, tea.Tick(refreshInterval, func(t time.Time) tea.Msg {
			return historyTickMsg(t)
		})

	case historyTickMsg:
		return m, m.load
	}

	return m, nil
}

func (m *History) View() string {
	var b strings.Builder

	b.WriteString(theme.StyleTitle.Render("weft history"))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(theme.StyleError.Render(fmt.Sprintf("error: %v", m.err)))
		b.WriteString("\n")
		return b.String()
	}

	if len(m.runs) == 0 {
		b.WriteString(theme.StyleMuted.Render("no recorded runs"))
		b.WriteString("\n")
		return b.String()
	}

	for _, run := range m.runs {
		b.WriteString(RenderRunLine(run))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(theme.StyleMuted.Render("q to quit"))
	b.WriteString("\n")

	return b.String()
}

// RenderRunLine formats one recorded run; shared with `weft history`.
func RenderRunLine(run domain.TaskRun) string {
	status := theme.StylePassed.Render("ok")
	switch {
	case run.TimedOut:
		status = theme.StyleFailed.Render("timeout")
	case run.ExitCode != 0:
		status = theme.StyleFailed.Render(fmt.Sprintf("exit %d", run.ExitCode))
	}

	return fmt.Sprintf("%s  %-20s %-8s %6dms  %s",
		run.StartedAt.Local().Format("2006-01-02 15:04:05"),
		run.TaskName,
		status,
		run.DurationMs,
		theme.StyleMuted.Render(run.Command))
}
