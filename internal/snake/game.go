// Package snake implements the single-player snake simulation: a head and body moving
// on a tile grid with food and randomly placed obstacles, advanced one step per tick.
// It knows nothing about terminals, timers or databases; those are injected.
package snake

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// Collision causes reported in logs and snapshots.
const (
	CauseObstacle = "obstacle"
	CauseSelf     = "self"
	CauseWall     = "wall"
)

// DefaultVelocity is the direction every round starts with.
var DefaultVelocity = core.Point{X: 1, Y: 0}

// Game holds the complete state of one snake session.
// It is not safe for concurrent use; the platform calls it from a single loop.
type Game struct {
	cfg    config.Config
	cols   int
	rows   int
	start  core.Point
	rng    *rand.Rand
	logger *log.Logger
	store  ScoreStore
	sound  SoundPlayer

	tick  uint64
	round int

	head      core.Point
	body      []core.Point // index 0 nearest the head
	food      core.Point
	obstacles []core.Point
	velocity  core.Point
	lastMove  core.Point // velocity used by the most recent Advance

	gameOver  bool
	cause     string
	topScores []int
	best      int // highest score known, persisted or from this process
}

// Option configures a Game.
type Option func(*Game)

// WithStore sets the score store. Without one, scores are not persisted.
func WithStore(s ScoreStore) Option {
	return func(g *Game) {
		if s != nil {
			g.store = s
		}
	}
}

// WithSound sets the sound player.
func WithSound(p SoundPlayer) Option {
	return func(g *Game) {
		if p != nil {
			g.sound = p
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithSeed makes obstacle and food placement deterministic.
func WithSeed(seed int64) Option {
	return func(g *Game) {
		g.rng = rand.New(rand.NewSource(seed))
	}
}

// New creates a game for the given configuration and starts the first round.
// cfg must have passed Validate.
func New(cfg config.Config, opts ...Option) *Game {
	g := &Game{
		cfg:    cfg,
		cols:   cfg.Board.Columns(),
		rows:   cfg.Board.Rows(),
		start:  core.Point{X: cfg.Game.StartX, Y: cfg.Game.StartY},
		logger: log.New(io.Discard),
		sound:  silent{},
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	g.loadBest()
	g.Reset()
	return g
}

// Reset starts a new round: the head returns to the start cell, the body is
// cleared, obstacles and food are re-rolled and the default velocity is restored.
func (g *Game) Reset() {
	g.round++
	g.tick = 0
	g.head = g.start
	g.body = g.body[:0]
	g.velocity = DefaultVelocity
	g.lastMove = DefaultVelocity
	g.gameOver = false
	g.cause = ""
	g.topScores = nil

	g.placeObstacles()
	g.placeFood()

	g.logger.Debug("round started",
		"round", g.round,
		"obstacles", len(g.obstacles),
		"food", g.food,
	)
}

// Advance moves the snake one tile. It does nothing once the round is over.
func (g *Game) Advance() core.StepResult {
	if g.gameOver {
		return core.StepResult{Status: g.State()}
	}
	g.tick++

	next := g.head.Add(g.velocity)
	ate := next.Collides(g.food)

	// The cell the tail vacates becomes the new segment when growing.
	tail := g.head
	if n := len(g.body); n > 0 {
		tail = g.body[n-1]
	}

	for i := len(g.body) - 1; i > 0; i-- {
		g.body[i] = g.body[i-1]
	}
	if len(g.body) > 0 {
		g.body[0] = g.head
	}
	g.head = next
	g.lastMove = g.velocity

	if ate {
		g.body = append(g.body, tail)
		g.sound.Play(g.cfg.Audio.EatClip)
		g.placeFood()
	}

	if cause := g.collision(); cause != "" {
		g.end(cause)
		return core.StepResult{Status: g.State(), Ate: ate, Ended: true}
	}

	return core.StepResult{Status: g.State(), Ate: ate}
}

// SetDirection applies a player action. While the round is over any action
// starts a new round and SetDirection reports true. Otherwise only directional
// actions are honored, and never one that reverses the snake onto itself.
func (g *Game) SetDirection(a core.Action) (reset bool) {
	if a == core.ActionNone {
		return false
	}
	if g.gameOver {
		g.Reset()
		return true
	}

	v, ok := a.Direction()
	if !ok {
		return false
	}
	// Checking lastMove too stops two presses within one tick from folding back.
	// The second press is dropped, not queued for the next tick.
	if v == g.velocity.Neg() || v == g.lastMove.Neg() {
		return false
	}
	g.velocity = v
	return false
}

// collision returns the terminal condition the head is in, or "".
func (g *Game) collision() string {
	switch {
	case g.head.CollidesAny(g.obstacles):
		return CauseObstacle
	case g.head.CollidesAny(g.body):
		return CauseSelf
	case !g.insideBoard(g.head):
		return CauseWall
	}
	return ""
}

// insideBoard checks the cell's pixel position against the board's pixel bounds.
func (g *Game) insideBoard(p core.Point) bool {
	tile := g.cfg.Board.TileSize
	px, py := p.X*tile, p.Y*tile
	return px >= 0 && px < g.cfg.Board.Width && py >= 0 && py < g.cfg.Board.Height
}

// end finishes the round and records the score once.
func (g *Game) end(cause string) {
	g.gameOver = true
	g.cause = cause
	score := len(g.body)

	g.logger.Info("game over", "round", g.round, "score", score, "cause", cause, "ticks", g.tick)
	g.best = max(g.best, score)

	if g.store == nil {
		return
	}
	if err := g.store.Record(score); err != nil {
		g.logger.Error("could not record score", "score", score, "error", err)
	}
	top, err := g.store.TopScores(g.cfg.Game.HighScoreLimit)
	if err != nil {
		g.logger.Error("could not load high scores", "error", err)
		return
	}
	g.topScores = top
	if len(top) > 0 {
		g.best = max(g.best, top[0])
	}
}

// loadBest seeds the best score from the store.
func (g *Game) loadBest() {
	if g.store == nil {
		return
	}
	top, err := g.store.TopScores(1)
	if err != nil {
		g.logger.Warn("could not load best score", "error", err)
		return
	}
	if len(top) > 0 {
		g.best = top[0]
	}
}

// State returns the current score and game-over flag.
func (g *Game) State() core.Status {
	return core.Status{
		Score:    len(g.body),
		GameOver: g.gameOver,
	}
}

// TopScores returns the high scores fetched when the round ended.
func (g *Game) TopScores() []int {
	return g.topScores
}

// TickInterval returns the configured period between Advance calls.
func (g *Game) TickInterval() time.Duration {
	return g.cfg.Game.TickInterval()
}
