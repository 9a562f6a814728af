package snake

import (
	"slices"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Snapshot captures the complete game state for determinism testing and debugging.
type Snapshot struct {
	Tick      uint64
	Round     int
	Score     int
	Head      core.Point
	Body      []core.Point
	Food      core.Point
	Obstacles []core.Point
	Velocity  core.Point
	GameOver  bool
	Cause     string
}

// Snapshot returns a copy of the current state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:      g.tick,
		Round:     g.round,
		Score:     len(g.body),
		Head:      g.head,
		Body:      slices.Clone(g.body),
		Food:      g.food,
		Obstacles: slices.Clone(g.obstacles),
		Velocity:  g.velocity,
		GameOver:  g.gameOver,
		Cause:     g.cause,
	}
}
