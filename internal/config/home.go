package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// HomeDir returns the weft home directory. WEFT_HOME takes precedence;
// otherwise ~/.weft is used. The directory is created if missing.
func HomeDir() (string, error) {
	home := os.Getenv("WEFT_HOME")
	if home == "" {
		userHome, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		home = filepath.Join(userHome, ".weft")
	}

	if err := os.MkdirAll(home, 0755); err != nil {
		return "", fmt.Errorf("failed to create weft home: %w", err)
	}

	return home, nil
}

// DBPath returns the path of the run-history database inside the weft home.
func DBPath() (string, error) {
	home, err := HomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, "state.db"), nil
}
