package util

import (
	"fmt"
	"os"
	"path/filepath"
)

// GetXDGDataDir returns the XDG data directory for prodash.
// It respects XDG_DATA_HOME if set, otherwise falls back to ~/.local/share/prodash
func GetXDGDataDir() (string, error) {
	if dataHome := os.Getenv("XDG_DATA_HOME"); dataHome != "" {
		return filepath.Join(dataHome, "prodash"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	return filepath.Join(homeDir, ".local", "share", "prodash"), nil
}
