package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	flagLimit int
	flagBoard bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the best recorded scores, highest first.

Examples:
  snake scores
  snake scores --limit 20
  snake scores --board
  snake scores clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

var scoresClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all recorded scores",
	Args:  cobra.NoArgs,
	RunE:  runScoresClear,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", storage.DefaultLimit, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagBoard, "board", false, "Browse scores in an interactive table")
	scoresCmd.AddCommand(scoresClearCmd)
}

// openStore loads the config and opens the score database.
func openStore(cmd *cobra.Command) (*storage.Store, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	logger := newLogger(cmd.ErrOrStderr(), cfg.Log)

	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		logger.Error("could not open scores database", "path", cfg.Storage.Path, "error", err)
		return nil, err
	}
	logger.Debug("scores database opened", "path", cfg.Storage.Path)
	return store, nil
}

func runScores(cmd *cobra.Command, args []string) error {
	store, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagBoard {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunScoreboard(store, width, height); err != nil {
			return fmt.Errorf("running scoreboard: %w", err)
		}
		return nil
	}

	scores, err := store.TopEntries(flagLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "High Scores - Snake")
	fmt.Fprintln(out)

	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Run 'snake' to set the first high score!")
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Fprintf(out, "  %-4s  %-10s  %s\n", "----", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Local().Format("2006-01-02 15:04")
		fmt.Fprintf(out, "  %-4d  %-10d  %s\n", i+1, entry.Score, dateStr)
	}

	fmt.Fprintln(out)
	if highScore, err := store.HighScore(); err == nil {
		fmt.Fprintf(out, "Best: %d\n", highScore)
	}
	if stats, err := store.Stats(); err == nil {
		fmt.Fprintf(out, "Games: %d  Sessions: %d  Average: %.1f\n", stats.GamesCount, stats.Sessions, stats.AvgScore)
	}
	return nil
}

func runScoresClear(cmd *cobra.Command, args []string) error {
	store, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Clear(); err != nil {
		return fmt.Errorf("clearing scores: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), "All scores cleared.")
	return nil
}
