package theme

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

// These tests manipulate the process-wide color profile; they must not
// run in parallel with anything that renders styles.

func TestMutedStyleRendersBrightBlackOnANSI(t *testing.T) {
	original := lipgloss.ColorProfile()
	t.Cleanup(func() { lipgloss.SetColorProfile(original) })

	lipgloss.SetColorProfile(termenv.ANSI)

	rendered := StyleMuted.Render("no tasks matched")
	assert.Contains(t, rendered, "\x1b[90m",
		"ANSI color 8 foreground must render as bright black")
}

func TestStylesRenderPlainOnAscii(t *testing.T) {
	original := lipgloss.ColorProfile()
	t.Cleanup(func() { lipgloss.SetColorProfile(original) })

	lipgloss.SetColorProfile(termenv.Ascii)

	for name, style := range map[string]lipgloss.Style{
		"muted":  StyleMuted,
		"title":  StyleTitle,
		"passed": StylePassed,
		"failed": StyleFailed,
	} {
		rendered := style.Render("text")
		assert.False(t, strings.Contains(rendered, "\x1b["),
			"style %q leaked an escape sequence into non-color output: %q", name, rendered)
	}
}

func TestConfigureForcesANSIProfile(t *testing.T) {
	original := lipgloss.ColorProfile()
	t.Cleanup(func() { lipgloss.SetColorProfile(original) })

	t.Setenv(ForceColorEnvVar, "1")
	Configure()

	assert.Equal(t, termenv.ANSI, lipgloss.ColorProfile())
}

func TestConfigureLeavesDetectionAloneWhenUnset(t *testing.T) {
	original := lipgloss.ColorProfile()
	t.Cleanup(func() { lipgloss.SetColorProfile(original) })

	t.Setenv(ForceColorEnvVar, "")
	lipgloss.SetColorProfile(termenv.Ascii)
	Configure()

	assert.Equal(t, termenv.Ascii, lipgloss.ColorProfile())
}
