package theme

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// ForceColorEnvVar force-enables color output regardless of whether stdout
// is a terminal. When unset, termenv's terminal detection decides: piped
// output gets plain text with no ANSI escape sequences.
const ForceColorEnvVar = "WEFT_FORCE_COLOR"

// Shared styles used by command output.
var (
	StyleTitle  = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
	StyleMuted  = lipgloss.NewStyle().Foreground(ColorMuted)
	StylePassed = lipgloss.NewStyle().Foreground(ColorPassed)
	StyleFailed = lipgloss.NewStyle().Foreground(ColorFailed).Bold(true)
	StyleError  = lipgloss.NewStyle().Foreground(ColorError)
)

// Configure resolves the color profile for this process. The forced
// profile is plain ANSI so the muted style renders a stable `ESC[90m`
// independent of $TERM; without the override the default renderer detects
// non-terminal destinations and emits no escape sequences at all.
func Configure() {
	if os.Getenv(ForceColorEnvVar) != "" {
		lipgloss.SetColorProfile(termenv.ANSI)
	}
}
