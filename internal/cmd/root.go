package cmd

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"weft/internal/config"
	"weft/internal/logging"
	"weft/internal/theme"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`
	Taskfile    string           `help:"Path to the task catalog" default:"weft.yaml"`

	Run     RunCmd     `cmd:"" help:"Run tasks from the catalog (default)" default:"withargs"`
	List    ListCmd    `cmd:"list" help:"List catalog tasks"`
	History HistoryCmd `cmd:"history" help:"Show recorded task runs"`
	Serve   ServeCmd   `cmd:"serve" help:"Serve the run history TUI over SSH"`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	settings  *config.Settings `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply() error {
	// Apply settings with proper precedence: CLI flags > env vars > settings.json > defaults
	// Only apply if flag is at default value and env var is not set

	if c.settings != nil {
		if c.MaxLogFiles == 1000 {
			if _, hasEnv := os.LookupEnv("WEFT_MAX_LOG_FILES"); !hasEnv {
				if c.settings.MaxLogFiles != nil {
					c.MaxLogFiles = *c.settings.MaxLogFiles
				}
			}
		}

		if !c.Debug {
			if _, hasEnv := os.LookupEnv("WEFT_DEBUG"); !hasEnv {
				if c.settings.Debug != nil && *c.settings.Debug {
					c.Debug = true
				}
			}
		}

		if c.Taskfile == config.DefaultTaskfileName {
			if _, hasEnv := os.LookupEnv("WEFT_TASKFILE"); !hasEnv {
				if c.settings.Taskfile != "" {
					c.Taskfile = c.settings.Taskfile
				}
			}
		}
	}
	if envTaskfile := os.Getenv("WEFT_TASKFILE"); envTaskfile != "" && c.Taskfile == config.DefaultTaskfileName {
		c.Taskfile = envTaskfile
	}

	// Initialize logging first and get the log file path
	logFilePath, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles)
	if err != nil {
		return err
	}

	// Set environment variables AFTER initialization so child processes inherit debug settings
	// and use the SAME log file (important for correlating parent/child process logs)
	if c.Debug || c.DebugFile != "" {
		os.Setenv("WEFT_DEBUG", "1")
		if logFilePath != "" {
			os.Setenv("WEFT_DEBUG_FILE", logFilePath)
		}
	}
	if c.MaxLogFiles != 1000 {
		os.Setenv("WEFT_MAX_LOG_FILES", fmt.Sprintf("%d", c.MaxLogFiles))
	}

	// Resolve the color profile before any command renders output
	theme.Configure()

	// Create container AFTER logging is initialized
	container, err := NewContainer(c.Taskfile)
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	c.Container = container

	return nil
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil {
		return c.Container.Close()
	}
	return nil
}
