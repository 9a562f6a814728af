package snake

import (
	"errors"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// ErrBoardFull is returned when no cell satisfies a placement predicate.
var ErrBoardFull = errors.New("snake: no free cell")

// attemptsPerCell bounds rejection sampling before falling back to a scan.
const attemptsPerCell = 64

// offBoard parks food when nothing is free.
var offBoard = core.Point{X: -1, Y: -1}

// placeObstacles rolls a new obstacle layout. Obstacles only avoid the start
// cell; they are not checked against each other.
func (g *Game) placeObstacles() {
	lo, hi := g.cfg.Game.MinObstacles, g.cfg.Game.MaxObstacles
	n := lo + g.rng.Intn(hi-lo+1)

	g.obstacles = g.obstacles[:0]
	for range n {
		p, err := g.randomCell(func(p core.Point) bool { return p != g.start })
		if err != nil {
			g.logger.Warn("could not place obstacle", "placed", len(g.obstacles), "wanted", n, "error", err)
			return
		}
		g.obstacles = append(g.obstacles, p)
	}
}

// placeFood moves the food to a random cell clear of the snake and obstacles.
func (g *Game) placeFood() {
	p, err := g.randomCell(g.isFree)
	if err != nil {
		g.logger.Warn("could not place food", "error", err)
		g.food = offBoard
		return
	}
	g.food = p
}

// isFree reports whether p holds no snake segment and no obstacle.
func (g *Game) isFree(p core.Point) bool {
	return !p.Collides(g.head) && !p.CollidesAny(g.body) && !p.CollidesAny(g.obstacles)
}

// randomCell draws uniform grid cells until accept holds. After a bounded number
// of draws it scans the grid and picks uniformly among acceptable cells.
func (g *Game) randomCell(accept func(core.Point) bool) (core.Point, error) {
	for range g.cols * g.rows * attemptsPerCell {
		p := core.Point{X: g.rng.Intn(g.cols), Y: g.rng.Intn(g.rows)}
		if accept(p) {
			return p, nil
		}
	}

	var free []core.Point
	for y := range g.rows {
		for x := range g.cols {
			if p := (core.Point{X: x, Y: y}); accept(p) {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		return offBoard, ErrBoardFull
	}
	return free[g.rng.Intn(len(free))], nil
}
