package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// Default returns the built-in configuration: a 600x600 board of 25-unit tiles
// advanced every 100ms, with 5 to 10 obstacles per round.
func Default() Config {
	return Config{
		Board: BoardConfig{
			Width:    600,
			Height:   600,
			TileSize: 25,
		},
		Game: GameConfig{
			TickMS:         100,
			StartX:         5,
			StartY:         5,
			MinObstacles:   5,
			MaxObstacles:   10,
			HighScoreLimit: 5,
		},
		Audio: AudioConfig{
			Enabled:    true,
			Dir:        "~/.snake/sounds",
			EatClip:    "eat.wav",
			SampleRate: 44100,
		},
		Storage: StorageConfig{
			Path: "~/.snake/highscores.db",
		},
		Log: LogConfig{
			Path:  "~/.snake/snake.log",
			Level: "info",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
