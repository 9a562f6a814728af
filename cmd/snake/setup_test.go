package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
)

func resetFlags(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		flagConfig, flagDBPath, flagLog = "", "", ""
		flagDebug, flagMute = false, false
	})
}

func TestLoadConfigOverrides(t *testing.T) {
	resetFlags(t)
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "snake.yaml")
	if err := os.WriteFile(cfgPath, []byte("game:\n  tick_ms: 80\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	flagConfig = cfgPath
	flagDBPath = filepath.Join(dir, "scores.db")
	flagLog = filepath.Join(dir, "snake.log")
	flagDebug = true
	flagMute = true

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig() failed: %v", err)
	}
	if cfg.Game.TickMS != 80 {
		t.Errorf("TickMS = %d, expected 80 from file", cfg.Game.TickMS)
	}
	if cfg.Storage.Path != flagDBPath || cfg.Log.Path != flagLog {
		t.Errorf("paths not overridden: %+v %+v", cfg.Storage, cfg.Log)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Level = %q, expected debug", cfg.Log.Level)
	}
	if cfg.Audio.Enabled {
		t.Error("--mute should disable audio")
	}
}

func TestLoadConfigBadPath(t *testing.T) {
	resetFlags(t)
	flagConfig = filepath.Join(t.TempDir(), "missing.yaml")

	if _, err := loadConfig(); err == nil {
		t.Error("a missing --config file should be an error")
	}
}

func TestNewLoggerLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, config.LogConfig{Level: "warn"})

	if logger.GetLevel() != log.WarnLevel {
		t.Errorf("level = %v, expected warn", logger.GetLevel())
	}
	logger.Info("hidden")
	logger.Warn("shown")
	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, "shown") {
		t.Errorf("unexpected log output %q", out)
	}
	if !strings.Contains(out, "snake") {
		t.Errorf("log output should carry the prefix: %q", out)
	}
}

func TestNewLoggerUnknownLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, config.LogConfig{Level: "loud"})

	if logger.GetLevel() != log.InfoLevel {
		t.Errorf("level = %v, expected info fallback", logger.GetLevel())
	}
}

func TestOpenLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "snake.log")

	w, closeFn, err := openLogFile(path)
	if err != nil {
		t.Fatalf("openLogFile() failed: %v", err)
	}
	newLogger(w, config.LogConfig{Level: "info"}).Info("round started", "round", 1)
	if err := closeFn(); err != nil {
		t.Fatalf("close failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "round started") {
		t.Errorf("log file missing entry: %q", data)
	}
}

func TestOpenLogFileEmptyPath(t *testing.T) {
	_, closeFn, err := openLogFile("")
	if err != nil {
		t.Errorf("empty path should discard logs, got %v", err)
	}
	if closeFn() != nil {
		t.Error("close should be a no-op")
	}
}
