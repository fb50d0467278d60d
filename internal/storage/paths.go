package storage

import (
	"os"
	"path/filepath"
	"runtime"
)

const appName = "plyboard"

// DefaultDataDir returns the platform-specific database directory,
// creating it if needed.
//   - macOS: ~/Library/Application Support/plyboard/db
//   - Linux: $XDG_DATA_HOME/plyboard/db or ~/.local/share/plyboard/db
//   - Windows: %APPDATA%/plyboard/db
func DefaultDataDir() (string, error) {
	var baseDir string

	switch runtime.GOOS {
	case "darwin":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		baseDir = filepath.Join(homeDir, "Library", "Application Support")

	case "windows":
		baseDir = os.Getenv("APPDATA")
		if baseDir == "" {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return "", err
			}
			baseDir = filepath.Join(homeDir, "AppData", "Roaming")
		}

	default:
		baseDir = os.Getenv("XDG_DATA_HOME")
		if baseDir == "" {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return "", err
			}
			baseDir = filepath.Join(homeDir, ".local", "share")
		}
	}

	dbDir := filepath.Join(baseDir, appName, "db")
	if err := os.MkdirAll(dbDir, 0755); err != nil { //nolint:gosec // G301: user data directory
		return "", err
	}
	return dbDir, nil
}
