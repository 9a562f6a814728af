package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestEmbeddedDefaultMatchesDefault(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded YAML drifted from Default():\n got %+v\nwant %+v", cfg, Default())
	}
}

func TestDefaultBoardGeometry(t *testing.T) {
	cfg := Default()

	if cfg.Board.Columns() != 24 || cfg.Board.Rows() != 24 {
		t.Errorf("expected 24x24 grid, got %dx%d", cfg.Board.Columns(), cfg.Board.Rows())
	}
	if cfg.Game.TickInterval() != 100*time.Millisecond {
		t.Errorf("expected 100ms tick, got %v", cfg.Game.TickInterval())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default() should validate, got %v", err)
	}
}

func TestParsePartialOverride(t *testing.T) {
	cfg, err := Parse([]byte("game:\n  tick_ms: 80\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg.Game.TickMS != 80 {
		t.Errorf("tick_ms = %d, expected 80", cfg.Game.TickMS)
	}
	// Untouched fields keep their defaults
	if cfg.Board.TileSize != 25 || cfg.Game.MaxObstacles != 10 {
		t.Errorf("partial file should keep defaults, got %+v", cfg)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero tile", func(c *Config) { c.Board.TileSize = 0 }},
		{"partial tiles", func(c *Config) { c.Board.Width = 610 }},
		{"zero tick", func(c *Config) { c.Game.TickMS = 0 }},
		{"start outside", func(c *Config) { c.Game.StartX = 24 }},
		{"negative start", func(c *Config) { c.Game.StartY = -1 }},
		{"inverted obstacle range", func(c *Config) { c.Game.MinObstacles = 8; c.Game.MaxObstacles = 4 }},
		{"crowded board", func(c *Config) { c.Game.MaxObstacles = 500 }},
		{"no high scores", func(c *Config) { c.Game.HighScoreLimit = 0 }},
		{"bad sample rate", func(c *Config) { c.Audio.SampleRate = 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, expected ErrInvalid", err)
			}
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "snake.yaml")
	data := []byte("board:\n  width: 400\n  height: 300\n  tile_size: 20\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path, nil)
	if err != nil {
		t.Fatalf("Load(%s) failed: %v", path, err)
	}
	if cfg.Board.Columns() != 20 || cfg.Board.Rows() != 15 {
		t.Errorf("expected 20x15 grid, got %dx%d", cfg.Board.Columns(), cfg.Board.Rows())
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml"), nil); err == nil {
		t.Error("Load of a missing custom file should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("board: [unclosed"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad, nil); err == nil {
		t.Error("Load of malformed YAML should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("board:\n  tile_size: 7\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(invalid, nil); !errors.Is(err, ErrInvalid) {
		t.Errorf("Load of invalid config = %v, expected ErrInvalid", err)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	out, err := Marshal(Default())
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	cfg, err := Parse(out)
	if err != nil {
		t.Fatalf("Parse(Marshal(Default())) failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("round trip changed config: %+v", cfg)
	}
}

func TestExpandPath(t *testing.T) {
	if got, _ := ExpandPath("/tmp/x.db"); got != "/tmp/x.db" {
		t.Errorf("absolute path changed: %q", got)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	got, err := ExpandPath("~/.snake/x.db")
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(home, ".snake", "x.db"); got != want {
		t.Errorf("ExpandPath = %q, expected %q", got, want)
	}
}

func TestLoadWarnsAboutBrokenUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir()) // no ./configs

	dir := filepath.Join(home, ".snake", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "snake.yaml"), []byte("game:\n  tick_ms: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	cfg, err := Load("", log.New(&buf))
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Game.TickMS != Default().Game.TickMS {
		t.Errorf("TickMS = %d, expected the embedded default", cfg.Game.TickMS)
	}
	out := buf.String()
	if !strings.Contains(out, "ignoring config file") || !strings.Contains(out, "snake.yaml") {
		t.Errorf("expected a warning naming the ignored file, got %q", out)
	}
}

func TestLoadUsesLocalConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	wd := t.TempDir()
	t.Chdir(wd)

	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", "snake.yaml"), []byte("game:\n  tick_ms: 150\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	cfg, err := Load("", log.New(&buf))
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Game.TickMS != 150 {
		t.Errorf("TickMS = %d, expected 150 from ./configs", cfg.Game.TickMS)
	}
	if strings.Contains(buf.String(), "ignoring") {
		t.Errorf("unexpected warning %q", buf.String())
	}
}
