package tui

import (
	"os"
	"path/filepath"
)

// GetLogFilePath returns the path to the log file.
// If SNAILGIT_LOG_FILE is set, uses that path.
// Otherwise, uses ~/.snailgit/logs/snailgit.log
func GetLogFilePath() string {
	if customPath := os.Getenv("SNAILGIT_LOG_FILE"); customPath != "" {
		return customPath
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if we can't get home dir
		return "snailgit.log"
	}

	return filepath.Join(homeDir, ".snailgit", "logs", "snailgit.log")
}
