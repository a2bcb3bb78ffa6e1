package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Settings represents the structure of ~/.weft/settings.json.
// Pointer fields distinguish "not configured" from zero values so CLI
// flag > env var > settings.json > default precedence can be applied.
type Settings struct {
	Debug       *bool  `json:"debug,omitempty"`
	Jobs        *int   `json:"jobs,omitempty"`
	MaxLogFiles *int   `json:"max_log_files,omitempty"`
	Taskfile    string `json:"taskfile,omitempty"`
	TimeoutSecs *int   `json:"timeout_secs,omitempty"`
}

// LoadSettings reads settings.json from the weft home. A missing file is
// not an error; it yields empty settings.
func LoadSettings() (*Settings, error) {
	home, err := HomeDir()
	if err != nil {
		return nil, err
	}
	return LoadSettingsFrom(filepath.Join(home, "settings.json"))
}

// LoadSettingsFrom reads settings from an explicit path.
func LoadSettingsFrom(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil
		}
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}

	return &settings, nil
}

// Save writes the settings back to settings.json in the weft home.
func (s *Settings) Save() error {
	home, err := HomeDir()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	path := filepath.Join(home, "settings.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}

	return nil
}
