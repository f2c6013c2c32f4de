package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bouncybet/internal/storage"
)

// defaultLogPath is where the TUI writes logs while it owns the terminal.
const defaultLogPath = "~/.bouncybet/bouncybet.log"

// newLogger creates a logger writing to w at the level from --log-level.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}

// stderrLogger is used by commands that do not take over the terminal.
func stderrLogger() (*log.Logger, error) {
	return newLogger(os.Stderr, "bouncybet")
}

// fileLogger opens the log file in append mode. The caller closes it.
func fileLogger() (*log.Logger, io.Closer, error) {
	path, err := storage.ExpandHome(defaultLogPath)
	if err != nil {
		return nil, nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger, err := newLogger(f, "bouncybet")
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return logger, f, nil
}
