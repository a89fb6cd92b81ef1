// Package core provides the application controller, file logging and the
// wiring between the settings store and the UI.
package core

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"termprefs/internal/constants"
)

const (
	// maxLogFileSize is the maximum log file size before rotation (10 MB)
	maxLogFileSize = 10 * 1024 * 1024
)

// checkAndRotateLogFile checks log file size and rotates if it exceeds maxLogFileSize.
// Rotates by renaming current file to .old and removing old backup if exists.
func checkAndRotateLogFile(logPath string) {
	info, err := os.Stat(logPath)
	if err != nil {
		return // File doesn't exist yet, nothing to rotate
	}

	if info.Size() > maxLogFileSize {
		oldPath := logPath + ".old"
		_ = os.Remove(oldPath) // Remove old backup if exists
		if err := os.Rename(logPath, oldPath); err != nil {
			log.Printf("checkAndRotateLogFile: Failed to rotate log file %s: %v", logPath, err)
		} else {
			log.Printf("checkAndRotateLogFile: Rotated log file %s (size: %d bytes)", logPath, info.Size())
		}
	}
}

// openLogFileWithRotation opens a log file and rotates it if it exceeds maxLogFileSize.
func openLogFileWithRotation(logPath string) (*os.File, error) {
	checkAndRotateLogFile(logPath)

	// Open in append mode (not truncate) to preserve recent logs
	return os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
}

// SetupFileLogging directs the standard logger to both stderr and a rotated
// log file under baseDir/logs. Returns the open file; the caller closes it
// on shutdown.
func SetupFileLogging(baseDir string) (*os.File, error) {
	logsDir := filepath.Join(baseDir, constants.LogsDirName)
	if err := os.MkdirAll(logsDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create logs directory: %w", err)
	}

	logPath := filepath.Join(logsDir, constants.MainLogFileName)
	f, err := openLogFileWithRotation(logPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	log.SetOutput(io.MultiWriter(os.Stderr, f))
	return f, nil
}
