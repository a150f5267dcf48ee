package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/adrg/xdg"
)

type LogFile struct {
	Path       string
	MaxSizeMB  int
	MaxBackups int
}

const defaultLogFile = "minesweeper-console/minesweeper.log"

// NewLogFile reads MINES_LOG_FILE, MINES_LOG_MAX_SIZE_MB and
// MINES_LOG_MAX_BACKUPS. Without MINES_LOG_FILE the log goes to the XDG
// state directory.
func NewLogFile() (*LogFile, error) {
	cfg := &LogFile{
		MaxSizeMB:  10,
		MaxBackups: 3,
	}

	if path, ok := os.LookupEnv("MINES_LOG_FILE"); ok && path != "" {
		cfg.Path = path
	} else {
		path, err := xdg.StateFile(defaultLogFile)
		if err != nil {
			return nil, fmt.Errorf("unable to resolve log file path: %w", err)
		}
		cfg.Path = path
	}

	if sizeStr, ok := os.LookupEnv("MINES_LOG_MAX_SIZE_MB"); ok {
		size, err := strconv.Atoi(sizeStr)
		if err != nil || size <= 0 {
			return nil, fmt.Errorf("MINES_LOG_MAX_SIZE_MB must be a positive int, got %q", sizeStr)
		}
		cfg.MaxSizeMB = size
	}

	if backupsStr, ok := os.LookupEnv("MINES_LOG_MAX_BACKUPS"); ok {
		backups, err := strconv.Atoi(backupsStr)
		if err != nil || backups < 0 {
			return nil, fmt.Errorf("MINES_LOG_MAX_BACKUPS must be a non-negative int, got %q", backupsStr)
		}
		cfg.MaxBackups = backups
	}

	return cfg, nil
}
