package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
)

// loadConfig loads the configuration and applies command-line overrides.
func loadConfig() (config.Config, error) {
	// The configured logger doesn't exist yet, so loader warnings go to stderr.
	boot := log.NewWithOptions(os.Stderr, log.Options{Prefix: "snake"})
	cfg, err := config.Load(flagConfig, boot)
	if err != nil {
		return cfg, err
	}
	if flagDBPath != "" {
		cfg.Storage.Path = flagDBPath
	}
	if flagLog != "" {
		cfg.Log.Path = flagLog
	}
	if flagDebug {
		cfg.Log.Level = "debug"
	}
	if flagMute {
		cfg.Audio.Enabled = false
	}
	return cfg, nil
}

// newLogger creates a timestamped logger writing to w at the configured level.
func newLogger(w io.Writer, cfg config.LogConfig) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
	})
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", cfg.Level)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

// openLogFile opens the log file for appending, creating its directory.
// The returned close function is never nil.
func openLogFile(path string) (io.Writer, func() error, error) {
	noop := func() error { return nil }
	if path == "" {
		return io.Discard, noop, nil
	}

	expanded, err := config.ExpandPath(path)
	if err != nil {
		return io.Discard, noop, err
	}
	if err := os.MkdirAll(filepath.Dir(expanded), 0o755); err != nil {
		return io.Discard, noop, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(expanded, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return io.Discard, noop, fmt.Errorf("failed to open log file: %w", err)
	}
	return f, f.Close, nil
}
