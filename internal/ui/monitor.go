package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"weft/internal/domain"
	"weft/internal/services"
	"weft/internal/theme"
)

// TaskEventMsg carries a runner lifecycle event into the monitor.
type TaskEventMsg services.TaskEvent

// RunDoneMsg signals that every task has finished.
type RunDoneMsg domain.RunSummary

// stateGlyph renders the status marker for a settled task state. The
// spinner covers the running state.
func stateGlyph(state domain.TaskState) (string, bool) {
	switch state {
	case domain.StateFailed:
		return theme.StyleFailed.Render("✗"), true
	case domain.StatePassed:
		return theme.StylePassed.Render("✓"), true
	case domain.StatePending:
		return theme.StyleMuted.Render("·"), true
	default:
		return "", false
	}
}

// Monitor is a live view of an in-flight task run.
type Monitor struct {
	order   []string
	results map[string]*domain.TaskResult
	spinner spinner.Model
	states  map[string]domain.TaskState
	summary *domain.RunSummary
}

// NewMonitor creates a monitor for the given task names, all pending.
func NewMonitor(taskNames []string) *Monitor {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.ColorSpinner)

	states := make(map[string]domain.TaskState, len(taskNames))
	for _, name := range taskNames {
		states[name] = domain.StatePending
	}

	return &Monitor{
		order:   taskNames,
		results: make(map[string]*domain.TaskResult, len(taskNames)),
		spinner: sp,
		states:  states,
	}
}

// Summary returns the final run summary once the run has completed.
func (m *Monitor) Summary() *domain.RunSummary {
	return m.summary
}

func (m *Monitor) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m *Monitor) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" || msg.String() == "q" {
			return m, tea.Quit
		}

	case TaskEventMsg:
		m.states[msg.TaskName] = msg.State
		if msg.Result != nil {
			m.results[msg.TaskName] = msg.Result
		}
		return m, nil

	case RunDoneMsg:
		summary := domain.RunSummary(msg)
		m.summary = &summary
		return m, tea.Quit

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *Monitor) View() string {
	var b strings.Builder

	b.WriteString(theme.StyleTitle.Render("weft"))
	b.WriteString("\n\n")

	for _, name := range m.order {
		state := m.states[name]

		glyph, ok := stateGlyph(state)
		if !ok {
			glyph = m.spinner.View()
		}
		b.WriteString(fmt.Sprintf(" %s %s", glyph, name))

		if result := m.results[name]; result != nil && result.Result.Duration > 0 {
			b.WriteString(theme.StyleMuted.Render(fmt.Sprintf("  %s", result.Result.Duration.Round(durationPrecision))))
		}
		b.WriteString("\n")
	}

	if m.summary != nil {
		b.WriteString("\n")
		b.WriteString(renderSummaryLine(*m.summary))
		b.WriteString("\n")
	}

	return b.String()
}

// renderSummaryLine formats the pass/fail footer shared with plain output.
func renderSummaryLine(s domain.RunSummary) string {
	line := fmt.Sprintf("%d passed, %d failed in %s",
		s.Passed(), s.Failed(), s.TotalDuration.Round(durationPrecision))
	if s.Ok() {
		return theme.StylePassed.Render(line)
	}
	return theme.StyleFailed.Render(line)
}
