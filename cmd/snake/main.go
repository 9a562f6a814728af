// snake is a terminal snake game with obstacles, sound and a local high-score table.
//
// Usage:
//
//	snake                    - Play
//	snake scores             - Show high scores
//	snake scores --board     - Browse high scores interactively
//	snake scores clear       - Delete all recorded scores
//	snake config             - Print the effective configuration
//
// Global flags:
//
//	--config <path> - Use a custom config YAML
//	--db <path>     - Set database path (default: ~/.snake/highscores.db)
//	--log <path>    - Set log file path (default: ~/.snake/snake.log)
//	--debug         - Log at debug level
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig string
	flagDBPath string
	flagLog    string
	flagDebug  bool

	// Play flags
	flagSeed int64
	flagMute bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - eat, grow and dodge obstacles in your terminal",
	Long: `Snake is a terminal snake game. Steer the snake to the food, grow by one
segment per bite and avoid the walls, the obstacles and your own tail.

Controls:
  Arrows/WASD - Steer
  Any key     - New round (after game over)
  Ctrl+S      - Save a text screenshot
  Q/Ctrl+C    - Quit

Examples:
  snake
  snake --seed 42 --mute
  snake --config ./my-snake.yaml
  snake scores
  snake scores --board`,
	Args: cobra.NoArgs,
	RunE: runPlay,

	// main prints the error.
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database (overrides storage.path)")
	rootCmd.PersistentFlags().StringVar(&flagLog, "log", "", "Path to log file (overrides log.path)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log at debug level")

	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")

	// Add subcommands
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
