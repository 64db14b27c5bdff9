package paths

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultDataDir returns the default pomo data directory.
func DefaultDataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}

	return filepath.Join(home, ".local", "share", "pomo"), nil
}

// DefaultConfigPath returns the default pomo config file path.
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}

	return filepath.Join(home, ".config", "pomo", "config.toml"), nil
}
