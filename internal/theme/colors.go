package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "99" // Purple - app name, task names
	ColorSecondary Color = "86" // Cyan - subtitles
)

// Task state colors
const (
	ColorFailed  Color = "1" // Red - failed
	ColorPassed  Color = "2" // Green - passed
	ColorPending Color = "3" // Yellow - queued
	ColorRunning Color = "6" // Cyan - in flight
)

// UI semantic colors
const (
	ColorError     Color = "196" // Bright red
	ColorHighlight Color = "255" // White - emphasis
	ColorMuted     Color = "8"   // Bright black - secondary text, commands
	ColorNormal    Color = "250" // Default text
	ColorSpinner   Color = "205" // Pink
)
