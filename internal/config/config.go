// Package config provides YAML-based configuration loading for the snake game.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// ErrInvalid is returned by Validate for configurations the game cannot run with.
var ErrInvalid = errors.New("invalid config")

// Config contains all configuration for the game and its collaborators.
type Config struct {
	Board   BoardConfig   `yaml:"board"`
	Game    GameConfig    `yaml:"game"`
	Audio   AudioConfig   `yaml:"audio"`
	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`
}

// BoardConfig defines the board size in pixel units.
type BoardConfig struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	TileSize int `yaml:"tile_size"`
}

// GameConfig defines simulation parameters.
type GameConfig struct {
	TickMS         int `yaml:"tick_ms"`
	StartX         int `yaml:"start_x"`
	StartY         int `yaml:"start_y"`
	MinObstacles   int `yaml:"min_obstacles"`
	MaxObstacles   int `yaml:"max_obstacles"`
	HighScoreLimit int `yaml:"high_score_limit"`
}

// AudioConfig defines sound playback parameters.
type AudioConfig struct {
	Enabled       bool   `yaml:"enabled"`
	Dir           string `yaml:"dir"`
	EatClip       string `yaml:"eat_clip"`
	SampleRate    int    `yaml:"sample_rate"`
	SynthFallback bool   `yaml:"synth_fallback"` // play a generated blip when a clip can't be loaded
}

// StorageConfig defines where high scores are kept.
type StorageConfig struct {
	Path string `yaml:"path"`
}

// LogConfig defines the log destination and level.
type LogConfig struct {
	Path  string `yaml:"path"`
	Level string `yaml:"level"`
}

// Columns returns the number of tiles across the board.
func (b BoardConfig) Columns() int {
	return b.Width / b.TileSize
}

// Rows returns the number of tiles down the board.
func (b BoardConfig) Rows() int {
	return b.Height / b.TileSize
}

// TickInterval returns the simulation period.
func (g GameConfig) TickInterval() time.Duration {
	return time.Duration(g.TickMS) * time.Millisecond
}

// Validate checks that the configuration describes a playable board.
func (c Config) Validate() error {
	b, g := c.Board, c.Game
	switch {
	case b.TileSize <= 0:
		return fmt.Errorf("%w: tile_size must be positive, got %d", ErrInvalid, b.TileSize)
	case b.Width <= 0 || b.Height <= 0:
		return fmt.Errorf("%w: board must be positive, got %dx%d", ErrInvalid, b.Width, b.Height)
	case b.Width%b.TileSize != 0 || b.Height%b.TileSize != 0:
		return fmt.Errorf("%w: board %dx%d is not a whole number of %d-unit tiles", ErrInvalid, b.Width, b.Height, b.TileSize)
	case g.TickMS <= 0:
		return fmt.Errorf("%w: tick_ms must be positive, got %d", ErrInvalid, g.TickMS)
	case g.StartX < 0 || g.StartX >= b.Columns() || g.StartY < 0 || g.StartY >= b.Rows():
		return fmt.Errorf("%w: start cell (%d, %d) outside %dx%d grid", ErrInvalid, g.StartX, g.StartY, b.Columns(), b.Rows())
	case g.MinObstacles < 0 || g.MaxObstacles < g.MinObstacles:
		return fmt.Errorf("%w: obstacle range [%d, %d]", ErrInvalid, g.MinObstacles, g.MaxObstacles)
	case g.MaxObstacles+2 > b.Columns()*b.Rows()/2:
		// Rejection sampling needs most of the board free.
		return fmt.Errorf("%w: %d obstacles do not fit a %dx%d grid", ErrInvalid, g.MaxObstacles, b.Columns(), b.Rows())
	case g.HighScoreLimit <= 0:
		return fmt.Errorf("%w: high_score_limit must be positive, got %d", ErrInvalid, g.HighScoreLimit)
	}
	if c.Audio.Enabled && c.Audio.SampleRate <= 0 {
		return fmt.Errorf("%w: audio sample_rate must be positive, got %d", ErrInvalid, c.Audio.SampleRate)
	}
	return nil
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
