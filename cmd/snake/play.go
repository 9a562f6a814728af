package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/audio"
	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// The TUI owns the terminal, so logs go to a file.
	logOut, closeLog, err := openLogFile(cfg.Log.Path)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: logging disabled: %v\n", err)
	}
	defer closeLog()
	logger := newLogger(logOut, cfg.Log)

	opts := []snake.Option{snake.WithLogger(logger)}
	if flagSeed != 0 {
		opts = append(opts, snake.WithSeed(flagSeed))
	}

	// Open score storage
	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: could not open scores database: %v\n", err)
		logger.Warn("running without score storage", "path", cfg.Storage.Path, "error", err)
	} else {
		defer store.Close()
		opts = append(opts, snake.WithStore(store))
		logger.Info("session started", "session", store.Session(), "db", cfg.Storage.Path)
	}

	var sound interface {
		snake.SoundPlayer
		Close()
	} = audio.Silent{}
	if cfg.Audio.Enabled {
		dir, err := config.ExpandPath(cfg.Audio.Dir)
		if err != nil {
			logger.Warn("could not expand audio directory", "dir", cfg.Audio.Dir, "error", err)
		}
		cfg.Audio.Dir = dir

		player := audio.NewPlayer(cfg.Audio, logger)
		player.Preload(cfg.Audio.EatClip)
		sound = player
	}
	defer sound.Close()
	opts = append(opts, snake.WithSound(sound))

	game := snake.New(cfg, opts...)

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	shotDir := ""
	if home, err := os.UserHomeDir(); err == nil {
		shotDir = filepath.Join(home, ".snake", "screenshots")
	}

	runErr := tui.Run(game, width, height,
		tui.WithLogger(logger),
		tui.WithScreenshotDir(shotDir),
	)
	if runErr != nil {
		logger.Error("program exited with error", "error", runErr)
		return fmt.Errorf("running game: %w", runErr)
	}
	return nil
}
